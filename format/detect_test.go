package format

import (
	"bytes"
	"testing"
)

// fileWithSignatureAt builds a MinFileSize buffer carrying the vendor
// signature at the given byte offset.
func fileWithSignatureAt(offset int) []byte {
	data := make([]byte, MinFileSize)
	copy(data[offset:], signature)
	return data
}

func TestDetect(t *testing.T) {
	tests := []struct {
		filename string
		want     Format
	}{
		{"scan.axd", AXD},
		{"SCAN.AXD", AXD},
		{"dir/nested.axd", AXD},
		{"scan.xml", Unknown},
		{"scan", Unknown},
		{"", Unknown},
	}
	for _, tt := range tests {
		if got := Detect(tt.filename); got != tt.want {
			t.Errorf("Detect(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

func TestDetectFromMagic(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Format
	}{
		{"signature at window start", fileWithSignatureAt(magicOffset), AXD},
		{"signature inside window", fileWithSignatureAt(magicOffset + 40), AXD},
		{"signature at window end", fileWithSignatureAt(magicOffset + magicWindow), AXD},
		{"signature before window", fileWithSignatureAt(magicOffset - len(signature)), Unknown},
		{"signature past window", fileWithSignatureAt(magicOffset + magicWindow + 2), Unknown},
		{"no signature", make([]byte, MinFileSize), Unknown},
		{"too short", fileWithSignatureAt(magicOffset)[:MinFileSize-1], Unknown},
		{"empty", nil, Unknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectFromMagic(tt.data); got != tt.want {
				t.Errorf("DetectFromMagic = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetectFromMagic_ASCIISignatureRejected(t *testing.T) {
	// The signature must appear in its UTF-16LE form; the plain ASCII
	// URL does not match.
	data := make([]byte, MinFileSize)
	copy(data[magicOffset:], "anasysinstruments.com")
	if got := DetectFromMagic(data); got != Unknown {
		t.Errorf("DetectFromMagic = %v, want Unknown", got)
	}
}

func TestDetectFromReader(t *testing.T) {
	valid := fileWithSignatureAt(magicOffset + 10)

	got, err := DetectFromReader(bytes.NewReader(valid), int64(len(valid)))
	if err != nil {
		t.Fatalf("DetectFromReader failed: %v", err)
	}
	if got != AXD {
		t.Errorf("DetectFromReader = %v, want AXD", got)
	}

	got, err = DetectFromReader(bytes.NewReader(valid), MinFileSize-1)
	if err != nil || got != Unknown {
		t.Errorf("undersized file: got (%v, %v), want (Unknown, nil)", got, err)
	}

	plain := make([]byte, MinFileSize)
	got, err = DetectFromReader(bytes.NewReader(plain), int64(len(plain)))
	if err != nil || got != Unknown {
		t.Errorf("unsigned file: got (%v, %v), want (Unknown, nil)", got, err)
	}
}

func TestFormatStrings(t *testing.T) {
	if AXD.String() != "AXD" || AXD.Extension() != ".axd" {
		t.Errorf("AXD = (%q, %q), want (AXD, .axd)", AXD.String(), AXD.Extension())
	}
	if Unknown.String() != "Unknown" || Unknown.Extension() != "" {
		t.Errorf("Unknown = (%q, %q), want (Unknown, empty)", Unknown.String(), Unknown.Extension())
	}
}
