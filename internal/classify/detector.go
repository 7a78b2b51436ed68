package classify

import (
	"strings"

	"github.com/ababiyaworku/Pandora-Box/internal/media"
)

type keywordTag struct {
	keyword string
	tag     Tag
}

// Keyword order is the match priority. These must stay ordered slices, not
// maps: the stereoscopic scan stops at the first hit.
var stereoKeywords = []keywordTag{
	{"3d", TagThreeD},
	{"stereoscopic", TagThreeD},
	{"stereo", TagThreeD},
	{"sbs", TagSBS3D},
	{"side by side", TagSBS3D},
	{"side-by-side", TagSBS3D},
	{"top bottom", TagTB3D},
	{"top-bottom", TagTB3D},
	{"anaglyph", TagAnaglyph3D},
	{"dual fisheye", TagDualFisheye3D},
}

var immersiveKeywords = []keywordTag{
	{"360", TagVR360},
	{"vr", TagVR360},
	{"virtual reality", TagVR360},
	{"spherical", TagVR360},
	{"equirectangular", TagVR360EQR},
}

var vr180Keywords = []string{"180", "vr180", "half sphere", "hemispherical"}

var hdrKeywords = []string{"hdr", "hdr10", "hdr10+", "dolby vision", "high dynamic range", "rec2020", "bt2020"}

// Detect scans a descriptor and its owning metadata for variant evidence and
// returns the resulting tag set. It is a pure function over text: absent
// fields behave as empty strings and no input combination fails.
func Detect(format media.Format, info media.VideoInfo) TagSet {
	note := strings.ToLower(format.Note)
	formatID := strings.ToLower(format.ID)
	title := strings.ToLower(info.Title)
	description := strings.ToLower(info.Description)

	var tags TagSet

	// At most one stereoscopic tag: first keyword to match in any of the
	// three texts wins.
	for _, kt := range stereoKeywords {
		if containsAny(kt.keyword, note, title, description) {
			tags.Add(kt.tag)
			break
		}
	}

	// Immersive tags accumulate; distinct tags can coexist.
	for _, kt := range immersiveKeywords {
		if containsAny(kt.keyword, note, title, description) {
			tags.Add(kt.tag)
		}
	}

	for _, keyword := range vr180Keywords {
		if containsAny(keyword, note, title, description) {
			tags.Add(TagVR180)
		}
	}

	// HDR evidence only counts in descriptor-level text, never in the
	// video title or description.
	for _, keyword := range hdrKeywords {
		if containsAny(keyword, note, formatID) {
			tags.Add(TagHDR)
		}
	}

	return combine(tags)
}

// combine collapses a stereoscopic tag plus VR180 into the single combined
// tag, keeping independent tags such as HDR or VR360 untouched.
func combine(tags TagSet) TagSet {
	if !tags.HasStereoscopic() || !tags.Contains(TagVR180) {
		return tags
	}
	combined := TagSet{TagCombined3D180VR}
	for _, t := range tags {
		if t.Stereoscopic() || t == TagVR180 {
			continue
		}
		combined.Add(t)
	}
	return combined
}

func containsAny(keyword string, texts ...string) bool {
	for _, text := range texts {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
