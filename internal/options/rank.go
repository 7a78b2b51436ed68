package options

import (
	"fmt"
	"sort"

	"github.com/ababiyaworku/Pandora-Box/internal/classify"
)

// DefaultVideoLimit caps the deduplicated video list. Entries beyond the
// limit are discarded in sorted order, keeping the highest-priority ones.
const DefaultVideoLimit = 20

// specialPriority scores a tag set for ranking. The first matching rule
// wins; the constants are long-standing heuristics kept verbatim for
// behavioral parity.
func specialPriority(tags classify.TagSet) int {
	switch {
	case tags.Contains(classify.TagSBS3D) && tags.Contains(classify.TagVR180):
		return 2000
	case tags.Contains(classify.TagCombined3D180VR):
		return 1800
	case tags.Contains(classify.TagSBS3D):
		return 1500
	case tags.Contains(classify.TagHDR):
		return 1000
	case tags.Contains(classify.TagVR360) || tags.Contains(classify.TagVR360EQR):
		return 500
	case tags.HasStereoscopic():
		return 300
	case tags.Contains(classify.TagVR180):
		return 200
	default:
		return 0
	}
}

// RankAudio orders audio entries by bitrate descending (missing bitrate
// sorts as zero, ties keep their original order) and collapses duplicates
// on (extension, bitrate), keeping the first survivor. The audio list is
// not capped.
func RankAudio(entries []Entry) []Entry {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Format.AudioBitrate > sorted[j].Format.AudioBitrate
	})

	seen := make(map[string]struct{}, len(sorted))
	result := make([]Entry, 0, len(sorted))
	for _, entry := range sorted {
		key := fmt.Sprintf("%s_%g", entry.Format.Ext, entry.Format.AudioBitrate)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, entry)
	}
	return result
}

// RankVideo orders video entries by the composite key (special priority,
// height, fps, video bitrate), all descending with missing values as zero,
// then collapses duplicates on (extension, height, fps, codec prefix, tag
// set) and caps the survivors at limit. A non-positive limit uses
// DefaultVideoLimit.
func RankVideo(entries []Entry, limit int) []Entry {
	if limit <= 0 {
		limit = DefaultVideoLimit
	}

	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		ap, bp := specialPriority(a.Tags), specialPriority(b.Tags)
		if ap != bp {
			return ap > bp
		}
		if a.Format.Height != b.Format.Height {
			return a.Format.Height > b.Format.Height
		}
		if a.Format.FPS != b.Format.FPS {
			return a.Format.FPS > b.Format.FPS
		}
		return a.Format.VideoBitrate > b.Format.VideoBitrate
	})

	seen := make(map[string]struct{}, limit)
	result := make([]Entry, 0, limit)
	for _, entry := range sorted {
		if len(result) >= limit {
			break
		}
		key := videoDedupKey(entry)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, entry)
	}
	return result
}

func videoDedupKey(entry Entry) string {
	codec := entry.Format.VideoCodecDisplay()
	if len(codec) > 10 {
		codec = codec[:10]
	}
	return fmt.Sprintf("%s_%d_%g_%s_%s", entry.Format.Ext, entry.Format.Height, entry.Format.FPS, codec, entry.Tags.Join())
}
