package classify

import "strings"

// Tag labels one specialized variant detected on a descriptor. The string
// value doubles as the display form used in menus and dedup keys.
type Tag string

const (
	TagThreeD          Tag = "3D"
	TagSBS3D           Tag = "SBS-3D"
	TagTB3D            Tag = "TB-3D"
	TagAnaglyph3D      Tag = "Anaglyph-3D"
	TagDualFisheye3D   Tag = "DualFisheye-3D"
	TagVR360           Tag = "360°"
	TagVR360EQR        Tag = "360°-EQR"
	TagVR180           Tag = "180°"
	TagHDR             Tag = "HDR"
	TagCombined3D180VR Tag = "3D-180°-VR"
)

// Stereoscopic reports whether the tag belongs to the stereoscopic family.
// The combined 3D+180 tag is deliberately excluded; it is ranked on its own.
func (t Tag) Stereoscopic() bool {
	switch t {
	case TagThreeD, TagSBS3D, TagTB3D, TagAnaglyph3D, TagDualFisheye3D:
		return true
	default:
		return false
	}
}

// TagSet is an ordered, duplicate-free collection of tags. Insertion order
// is preserved so menu display and dedup keys stay deterministic.
type TagSet []Tag

// Add appends a tag unless it is already present.
func (s *TagSet) Add(t Tag) {
	if s.Contains(t) {
		return
	}
	*s = append(*s, t)
}

// Contains reports whether the set holds the tag.
func (s TagSet) Contains(t Tag) bool {
	for _, existing := range s {
		if existing == t {
			return true
		}
	}
	return false
}

// HasStereoscopic reports whether any stereoscopic-family tag is present.
func (s TagSet) HasStereoscopic() bool {
	for _, t := range s {
		if t.Stereoscopic() {
			return true
		}
	}
	return false
}

// Join renders the set as a single "+"-separated string, used both for
// display and as the tag component of video dedup keys.
func (s TagSet) Join() string {
	if len(s) == 0 {
		return ""
	}
	parts := make([]string, len(s))
	for i, t := range s {
		parts[i] = string(t)
	}
	return strings.Join(parts, "+")
}
