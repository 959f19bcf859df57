// Package samples decodes the base64-embedded binary payloads of
// Analysis Studio documents: sequences of little-endian IEEE-754 32-bit
// floats.
package samples

import (
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"math"
	"strings"

	"github.com/tsawler/anasys/axd"
)

// Decode interprets the base64 payload as count consecutive
// little-endian 32-bit floats, widened to float64. The decoded byte
// length must be exactly 4*count; a mismatch yields an
// *axd.SizeMismatchError.
func Decode(b64 string, count int) ([]float64, error) {
	return DecodeScaled(b64, count, 1.0, 0.0)
}

// DecodeScaled decodes like Decode and applies v*mul + off to every
// sample in the same pass. Height-map decoding uses this to fold the
// unit-prefix multiplier into the read.
func DecodeScaled(b64 string, count int, mul, off float64) ([]float64, error) {
	raw, err := base64.StdEncoding.DecodeString(stripSpace(b64))
	if err != nil {
		return nil, fmt.Errorf("decoding base64 payload: %w", err)
	}
	// Guard the multiplication: a corrupt count must not wrap the size
	// check or drive an impossible allocation.
	if count < 0 || count > math.MaxInt/4 {
		return nil, fmt.Errorf("invalid sample count %d", count)
	}
	want := 4 * count
	if len(raw) != want {
		return nil, &axd.SizeMismatchError{Expected: want, Actual: len(raw)}
	}
	out := make([]float64, count)
	for i := range out {
		bits := binary.LittleEndian.Uint32(raw[4*i:])
		out[i] = float64(math.Float32frombits(bits))*mul + off
	}
	return out, nil
}

// stripSpace removes the whitespace XML pretty-printers insert into
// long base64 runs.
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r':
			return -1
		}
		return r
	}, s)
}
