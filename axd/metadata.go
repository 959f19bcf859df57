package axd

import (
	"strconv"
	"strings"
)

// Axis child element names inside Position/Size/Resolution/Location.
const (
	axisXName = "X"
	axisYName = "Y"
)

// Channel represents one height-map entry with its extracted typed
// fields, flat metadata map, and pending binary payload.
type Channel struct {
	DataChannel string
	Label       string

	// Meta holds every pass-through metadata field as strings. Keys are
	// unique; a later writer for a duplicate key overwrites.
	Meta map[string]string

	PositionX   float64 // micrometers
	PositionY   float64
	SizeX       float64 // micrometers
	SizeY       float64
	ResolutionX int
	ResolutionY int

	Units            string  // z-axis unit, default "m"
	PrefixMultiplier float64 // SI prefix applied to sample values, default 1
	ScanAngle        float64 // degrees, normalized into (-180, 180]

	// SampleData is the channel's base64 payload, verbatim.
	SampleData string
}

// SpectrumEntry represents one rendered-spectrum element.
type SpectrumEntry struct {
	Label   string
	Channel string // data channel name, used as the intensity axis label

	DataPoints      int
	StartWavenumber float64 // 1/cm
	EndWavenumber   float64 // 1/cm

	LocationX float64 // micrometers
	LocationY float64

	SampleData string
}

// extractChannel collects the typed fields and metadata map for one
// height-map element. Extraction never fails: absent numeric fields
// default to 0, absent strings to "".
func extractChannel(n *node) *Channel {
	ch := &Channel{
		DataChannel:      n.attr(dataChannelAttr),
		Label:            n.attr(labelAttr),
		Meta:             make(map[string]string),
		Units:            "m",
		PrefixMultiplier: 1.0,
	}
	ch.Meta[dataChannelAttr] = ch.DataChannel

	for i := range n.Children {
		el := &n.Children[i]
		switch el.XMLName.Local {
		case positionName:
			ch.PositionX, ch.PositionY = extractAxisPair(el, ch.Meta)
		case sizeName:
			ch.SizeX, ch.SizeY = extractAxisPair(el, ch.Meta)
		case resolutionName:
			x, y := extractAxisPair(el, ch.Meta)
			ch.ResolutionX = int(x)
			ch.ResolutionY = int(y)
		case unitsName:
			ch.Units = el.text()
			ch.Meta[unitsName] = ch.Units
		case unitPrefixName:
			// Informational only; the raw prefix is not stored.
			ch.PrefixMultiplier = PrefixMultiplier(el.text())
		case tagsName:
			extractTags(el, ch)
		case sampleBase64Name:
			ch.SampleData = el.text()
		default:
			if el.isLeaf() {
				ch.Meta[el.XMLName.Local] = el.text()
			} else {
				for j := range el.Children {
					sub := &el.Children[j]
					ch.Meta[el.XMLName.Local+"_"+sub.XMLName.Local] = sub.text()
				}
			}
		}
	}
	return ch
}

// extractAxisPair reads the X/Y children of a container element,
// storing each child's raw text under "<Container>_<Child>" and
// returning the parsed X and Y values.
func extractAxisPair(el *node, meta map[string]string) (x, y float64) {
	for i := range el.Children {
		c := &el.Children[i]
		raw := c.text()
		switch c.XMLName.Local {
		case axisXName:
			x = parseLeadingFloat(raw)
		case axisYName:
			y = parseLeadingFloat(raw)
		}
		meta[el.XMLName.Local+"_"+c.XMLName.Local] = raw
	}
	return x, y
}

// extractTags stores each Tag's Value under its Name and picks out the
// ScanAngle tag. The tag value has the form "<number> <unit>"; only the
// leading numeric token is parsed, and a value with no such token
// leaves the angle at 0.
func extractTags(el *node, ch *Channel) {
	for i := range el.Children {
		tag := &el.Children[i]
		name := tag.attr(nameAttr)
		value := tag.attr(valueAttr)
		if name == "" {
			continue
		}
		if name == scanAngleTag {
			ch.ScanAngle = NormalizeScanAngle(parseLeadingFloat(value))
		}
		ch.Meta[name] = value
	}
}

// extractSpectrumEntry collects the fields of one IRRenderedSpectra
// element.
func extractSpectrumEntry(n *node) *SpectrumEntry {
	e := &SpectrumEntry{}
	for i := range n.Children {
		el := &n.Children[i]
		switch el.XMLName.Local {
		case labelName:
			e.Label = el.text()
		case dataPointsName:
			e.DataPoints = int(parseLeadingFloat(el.text()))
		case startWavenumberName:
			e.StartWavenumber = parseLeadingFloat(el.text())
		case endWavenumberName:
			e.EndWavenumber = parseLeadingFloat(el.text())
		case locationName:
			for j := range el.Children {
				c := &el.Children[j]
				switch c.XMLName.Local {
				case axisXName:
					e.LocationX = parseLeadingFloat(c.text())
				case axisYName:
					e.LocationY = parseLeadingFloat(c.text())
				}
			}
		case dataChannelsName:
			e.Channel = el.attr(dataChannelAttr)
			if sb := el.child(sampleBase64Name); sb != nil {
				e.SampleData = sb.text()
			}
		}
	}
	return e
}

// parseLeadingFloat parses the longest numeric prefix of the first
// whitespace-delimited token in s. It returns 0 when no numeric prefix
// is present, mirroring C's atof on malformed input.
func parseLeadingFloat(s string) float64 {
	s = strings.TrimSpace(s)
	if i := strings.IndexFunc(s, func(r rune) bool { return r == ' ' || r == '\t' }); i >= 0 {
		s = s[:i]
	}
	end := 0
	for i := 1; i <= len(s); i++ {
		if _, err := strconv.ParseFloat(s[:i], 64); err == nil {
			end = i
		}
	}
	if end == 0 {
		return 0
	}
	v, _ := strconv.ParseFloat(s[:end], 64)
	return v
}
