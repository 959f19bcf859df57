// Package format provides file format detection for the anasys library.
package format

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
)

// Format represents a supported scan file format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// AXD indicates an Analysis Studio XML document.
	AXD
)

// MinFileSize is the smallest byte count a plausible .axd file can
// have; anything shorter is rejected outright.
const MinFileSize = 2173

// The vendor URL appears UTF-16LE encoded in the document header, a
// short distance into the file.
const (
	magicOffset = 350
	magicWindow = 100
)

// signature is the UTF-16LE encoding of "anasysinstruments.com".
var signature = encodeUTF16LE("anasysinstruments.com")

func encodeUTF16LE(s string) []byte {
	out := make([]byte, 0, 2*len(s))
	for i := 0; i < len(s); i++ {
		out = append(out, s[i], 0x00)
	}
	return out
}

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case AXD:
		return "AXD"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case AXD:
		return ".axd"
	default:
		return ""
	}
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".axd":
		return AXD
	default:
		return Unknown
	}
}

// DetectFromMagic checks file content to determine format. This is
// more reliable than extension-based detection: the buffer must be at
// least MinFileSize bytes and carry the vendor signature within a
// small window near the file start.
func DetectFromMagic(data []byte) Format {
	if len(data) < MinFileSize {
		return Unknown
	}
	end := magicOffset + magicWindow + len(signature)
	if end > len(data) {
		end = len(data)
	}
	if bytes.Contains(data[magicOffset:end], signature) {
		return AXD
	}
	return Unknown
}

// DetectFromReader inspects content to determine format without
// loading the whole file.
func DetectFromReader(r io.ReaderAt, size int64) (Format, error) {
	if size < MinFileSize {
		return Unknown, nil
	}
	head := make([]byte, magicOffset+magicWindow+len(signature))
	n, err := r.ReadAt(head, 0)
	if err != nil && err != io.EOF {
		return Unknown, err
	}
	if n <= magicOffset {
		return Unknown, nil
	}
	if bytes.Contains(head[magicOffset:n], signature) {
		return AXD, nil
	}
	return Unknown, nil
}
