package options

import (
	"github.com/ababiyaworku/Pandora-Box/internal/classify"
	"github.com/ababiyaworku/Pandora-Box/internal/media"
)

// Entry is a descriptor annotated with its detected tags, ready for
// ranking.
type Entry struct {
	Format media.Format
	Tags   classify.TagSet

	// Muxed is set on video-bucket entries whose descriptor also carries
	// audio. Audio-bucket entries leave it false.
	Muxed bool
}

// Buckets partitions descriptors by stream class. The video bucket holds
// both muxed and video-only descriptors.
type Buckets struct {
	Video []Entry
	Audio []Entry
}

// Aggregate classifies each descriptor and assigns it to a bucket.
// Descriptors with neither a video nor an audio stream are dropped
// silently: that is a filtering policy, not an error.
func Aggregate(formats []media.Format, info media.VideoInfo) Buckets {
	var buckets Buckets
	for _, format := range formats {
		tags := classify.Detect(format, info)
		switch {
		case format.HasVideo() && format.HasAudio():
			buckets.Video = append(buckets.Video, Entry{Format: format, Tags: tags, Muxed: true})
		case format.HasVideo():
			buckets.Video = append(buckets.Video, Entry{Format: format, Tags: tags})
		case format.HasAudio():
			buckets.Audio = append(buckets.Audio, Entry{Format: format, Tags: tags})
		default:
			// No usable stream at all; intentionally not surfaced.
		}
	}
	return buckets
}
