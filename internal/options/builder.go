package options

import (
	"fmt"
	"strings"

	"github.com/ababiyaworku/Pandora-Box/internal/media"
	"github.com/ababiyaworku/Pandora-Box/internal/selector"
)

// vrIndicators trigger the VR-special menu section when found in the video
// title or description.
var vrIndicators = []string{"360", "vr", "180", "3d", "stereoscopic", "virtual reality"}

var sbsEvidence = []string{"sbs", "side by side", "side-by-side"}

// Build assembles the final numbered option list: VR-special entries when
// the content looks immersive, the always-present quick entries, then the
// ranked audio and video buckets. Ordinals are assigned contiguously from 1.
func Build(info media.VideoInfo, buckets Buckets, videoLimit int) []Option {
	var list []Option

	list = append(list, vrSpecialOptions(info, buckets.Video)...)
	list = append(list, quickOptions()...)

	for _, entry := range RankAudio(buckets.Audio) {
		list = append(list, audioOption(entry))
	}
	for _, entry := range RankVideo(buckets.Video, videoLimit) {
		list = append(list, videoOption(entry))
	}

	for i := range list {
		list[i].Ordinal = i + 1
	}
	return list
}

func vrSpecialOptions(info media.VideoInfo, videoEntries []Entry) []Option {
	title := strings.ToLower(info.Title)
	description := strings.ToLower(info.Description)

	isVR := false
	for _, indicator := range vrIndicators {
		if strings.Contains(title, indicator) || strings.Contains(description, indicator) {
			isVR = true
			break
		}
	}
	if !isVR {
		return nil
	}

	var list []Option
	if has3D180Evidence(title, description) || hasSBSEvidence(title, description, videoEntries) {
		list = append(list, Option{
			Description: "Best 3D 180° VR (Side-by-Side MKV)",
			Selector:    selector.BestMux(),
			Container:   "mkv",
			Source:      SourceVRSpecial,
		})
	}
	list = append(list,
		Option{
			Description: "Best 360° VR Video (MKV)",
			Selector:    selector.BestMux(),
			Container:   "mkv",
			Source:      SourceVRSpecial,
		},
		Option{
			Description: "Best 180° VR Video (MKV)",
			Selector:    selector.BestMux(),
			Container:   "mkv",
			Source:      SourceVRSpecial,
		},
		Option{
			Description: "Best 3D Stereoscopic Video (MKV)",
			Selector:    selector.BestMux(),
			Container:   "mkv",
			Source:      SourceVRSpecial,
		},
	)
	return list
}

func has3D180Evidence(texts ...string) bool {
	for _, text := range texts {
		if strings.Contains(text, "3d") && strings.Contains(text, "180") {
			return true
		}
	}
	return false
}

func hasSBSEvidence(title, description string, videoEntries []Entry) bool {
	for _, keyword := range sbsEvidence {
		if strings.Contains(title, keyword) || strings.Contains(description, keyword) {
			return true
		}
		for _, entry := range videoEntries {
			if strings.Contains(strings.ToLower(entry.Format.Note), keyword) ||
				strings.Contains(strings.ToLower(entry.Tags.Join()), keyword) {
				return true
			}
		}
	}
	return false
}

func quickOptions() []Option {
	return []Option{
		{
			Description: "Best Quality Video (MKV - Supports 4K/8K/HDR)",
			Selector:    selector.BestMux(),
			Container:   "mkv",
			Source:      SourceQuick,
		},
		{
			Description: "Best Quality Video (MP4 - More Compatible)",
			Selector:    selector.BestCompatible(),
			Container:   "mp4",
			Source:      SourceQuick,
		},
		{
			Description: "Best Quality Audio (MP3 320kbps)",
			Selector:    selector.BestAudioOnly(),
			Container:   "mp3",
			Source:      SourceQuick,
		},
	}
}

func audioOption(entry Entry) Option {
	format := entry.Format
	bitrate := "Unknown bitrate"
	if format.AudioBitrate > 0 {
		bitrate = fmt.Sprintf("%gkbps", format.AudioBitrate)
	}
	description := fmt.Sprintf("%s - %s (%s) [%s]",
		strings.ToUpper(format.Ext),
		bitrate,
		format.AudioCodecDisplay(),
		media.FormatSize(format.Filesize),
	)

	f := format
	return Option{
		Description: description,
		Selector:    format.ID,
		Container:   format.Ext,
		Size:        format.Filesize,
		Source:      SourceAudio,
		Format:      &f,
	}
}

func videoOption(entry Entry) Option {
	format := entry.Format

	sel := format.ID
	container := format.Ext
	videoOnly := !entry.Muxed
	if videoOnly {
		sel = selector.WithBestAudio(format.ID)
		container = mergeContainer(format.Ext)
	}

	f := format
	return Option{
		Description: videoDescription(entry),
		Selector:    sel,
		Container:   container,
		Tags:        entry.Tags,
		Size:        format.Filesize,
		Source:      SourceVideo,
		Format:      &f,
		VideoOnly:   videoOnly,
	}
}

// mergeContainer picks the output container for video-only downloads that
// need an audio merge: webm/mkv sources stay mkv, everything else mp4.
func mergeContainer(ext string) string {
	switch ext {
	case "webm", "mkv":
		return "mkv"
	default:
		return "mp4"
	}
}

func videoDescription(entry Entry) string {
	format := entry.Format

	var b strings.Builder
	fmt.Fprintf(&b, "%s - %s", strings.ToUpper(format.Ext), format.ResolutionDisplay())

	if format.FPS > 0 {
		fmt.Fprintf(&b, " @%gfps", format.FPS)
	}
	if tags := entry.Tags.Join(); tags != "" {
		b.WriteString(" ")
		b.WriteString(tags)
	}

	vcodec := format.VideoCodecDisplay()
	if len(vcodec) > 12 {
		vcodec = vcodec[:12]
	}
	if entry.Muxed {
		acodec := format.AudioCodecDisplay()
		if len(acodec) > 8 {
			acodec = acodec[:8]
		}
		fmt.Fprintf(&b, " (V:%s/A:%s)", vcodec, acodec)
	} else {
		fmt.Fprintf(&b, " (V:%s/Video Only)", vcodec)
	}

	if note := strings.TrimSpace(format.Note); note != "" && len(note) < 30 {
		fmt.Fprintf(&b, " [%s]", note)
	}
	fmt.Fprintf(&b, " [%s]", media.FormatSize(format.Filesize))
	return b.String()
}
