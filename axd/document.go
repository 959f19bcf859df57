package axd

import (
	"encoding/xml"
	"strings"
)

// Element and attribute names recognized in the .axd schema.
const (
	rootName            = "Document"
	heightMapsName      = "HeightMaps"
	renderedSpectraName = "RenderedSpectra"
	irSpectraName       = "IRRenderedSpectra"

	positionName     = "Position"
	sizeName         = "Size"
	resolutionName   = "Resolution"
	unitsName        = "Units"
	unitPrefixName   = "UnitPrefix"
	tagsName         = "Tags"
	sampleBase64Name = "SampleBase64"

	labelName           = "Label"
	dataPointsName      = "DataPoints"
	startWavenumberName = "StartWavenumber"
	endWavenumberName   = "EndWavenumber"
	locationName        = "Location"
	dataChannelsName    = "DataChannels"

	dataChannelAttr = "DataChannel"
	labelAttr       = "Label"
	nameAttr        = "Name"
	valueAttr       = "Value"
	scanAngleTag    = "ScanAngle"

	docTypeAttr = "DocType"
	versionAttr = "Version"

	supportedDocType = "IR"
	supportedVersion = "1.0"
)

// node is a generic XML element. The channel schema is open, so the
// tree is decoded generically and recognized elements are picked out by
// name afterwards.
type node struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Text     string     `xml:",chardata"`
	Children []node     `xml:",any"`
}

// attr returns the value of the named attribute, or "".
func (n *node) attr(name string) string {
	for _, a := range n.Attrs {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

// text returns the element's character data with surrounding whitespace
// removed.
func (n *node) text() string {
	return strings.TrimSpace(n.Text)
}

// isLeaf reports whether the element has no element children.
func (n *node) isLeaf() bool {
	return len(n.Children) == 0
}

// child returns the first child element with the given name, or nil.
func (n *node) child(name string) *node {
	for i := range n.Children {
		if n.Children[i].XMLName.Local == name {
			return &n.Children[i]
		}
	}
	return nil
}

// Document is a parsed .axd file.
type Document struct {
	DocType string // root DocType attribute, "" if absent
	Version string // root Version attribute, "" if absent

	root *node
}

// Validate checks the document against the supported type/version
// combination. Validation is permissive: a document whose root element
// is not named Document, or carries neither a DocType nor a Version
// attribute, passes. If the attributes are present they must match
// DocType "IR", Version "1.0" exactly; any mismatch yields a
// *FileTypeError.
func (d *Document) Validate() error {
	if d.root == nil || d.root.XMLName.Local != rootName {
		return nil
	}
	if d.DocType == "" && d.Version == "" {
		return nil
	}
	if d.DocType != supportedDocType || d.Version != supportedVersion {
		return &FileTypeError{Name: DisplayName}
	}
	return nil
}

// Channels extracts one record per height-map entry, in file order.
func (d *Document) Channels() []*Channel {
	if d.root == nil {
		return nil
	}
	var out []*Channel
	for i := range d.root.Children {
		sec := &d.root.Children[i]
		if sec.XMLName.Local != heightMapsName {
			continue
		}
		for j := range sec.Children {
			out = append(out, extractChannel(&sec.Children[j]))
		}
	}
	return out
}

// HasSpectra reports whether the document contains a RenderedSpectra
// section, even an empty one.
func (d *Document) HasSpectra() bool {
	if d.root == nil {
		return false
	}
	for i := range d.root.Children {
		if d.root.Children[i].XMLName.Local == renderedSpectraName {
			return true
		}
	}
	return false
}

// SpectrumEntries extracts one record per IRRenderedSpectra element, in
// file order. Children of RenderedSpectra with any other element name
// are ignored.
func (d *Document) SpectrumEntries() []*SpectrumEntry {
	if d.root == nil {
		return nil
	}
	var out []*SpectrumEntry
	for i := range d.root.Children {
		sec := &d.root.Children[i]
		if sec.XMLName.Local != renderedSpectraName {
			continue
		}
		for j := range sec.Children {
			entry := &sec.Children[j]
			if entry.XMLName.Local != irSpectraName {
				continue
			}
			out = append(out, extractSpectrumEntry(entry))
		}
	}
	return out
}
