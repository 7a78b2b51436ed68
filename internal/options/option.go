package options

import (
	"github.com/ababiyaworku/Pandora-Box/internal/classify"
	"github.com/ababiyaworku/Pandora-Box/internal/media"
)

// Source identifies which section of the menu produced an option.
type Source string

const (
	SourceQuick     Source = "quick"
	SourceVRSpecial Source = "vr-special"
	SourceAudio     Source = "audio"
	SourceVideo     Source = "video"
)

// Option is one entry in the numbered download menu. Ordinals are 1-based
// and contiguous; ordinal 0 is reserved by the presentation layer for
// cancel and never appears here.
type Option struct {
	Ordinal     int
	Description string
	Selector    string
	Container   string
	Tags        classify.TagSet
	Size        int64
	Source      Source

	// Format is the underlying descriptor for ranked audio/video entries;
	// quick and VR-special entries have none.
	Format *media.Format

	// VideoOnly marks ranked video entries whose descriptor carries no
	// audio stream and therefore downloads with a merged bestaudio pick.
	VideoOnly bool
}

// WantsInfoJSON reports whether the download should keep the backend's
// metadata sidecar. VR picks keep it so players can read projection data.
func (o Option) WantsInfoJSON() bool {
	return o.Source == SourceVRSpecial
}

// WantsAudioExtract reports whether the download is a straight-to-mp3 pick.
func (o Option) WantsAudioExtract() bool {
	return o.Container == "mp3"
}
