package axd

import (
	"bufio"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Open reads and parses an .axd file.
func Open(filename string) (*Document, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes an .axd document from r. Analysis Studio writes UTF-16
// XML; the byte order mark (or a bare UTF-16LE "<") selects the
// transcoding, and plain UTF-8 input is accepted as-is.
func Parse(r io.Reader) (*Document, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(4)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("reading document: %w", err)
	}

	var dec transform.Transformer
	switch {
	case bytes.HasPrefix(head, []byte{0xFE, 0xFF}):
		dec = unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()
	case bytes.HasPrefix(head, []byte{0xFF, 0xFE}):
		dec = unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
	case len(head) >= 2 && head[0] == '<' && head[1] == 0x00:
		dec = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
	default:
		dec = unicode.UTF8.NewDecoder()
	}

	xd := xml.NewDecoder(transform.NewReader(br, dec))
	// The declaration still names utf-16 after transcoding; the stream
	// the decoder sees is already UTF-8.
	xd.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
		return input, nil
	}

	var root node
	if err := xd.Decode(&root); err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}

	return &Document{
		DocType: root.attr(docTypeAttr),
		Version: root.attr(versionAttr),
		root:    &root,
	}, nil
}
