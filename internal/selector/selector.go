package selector

import "strings"

// Builtin stream names understood by the download backend.
const (
	Best      = "best"
	BestVideo = "bestvideo"
	BestAudio = "bestaudio"
)

// Combine joins stream expressions with "+" so the backend downloads and
// merges each of them.
func Combine(streams ...string) string {
	return strings.Join(streams, "+")
}

// Fallback joins alternatives with "/"; the backend uses the first one that
// yields a stream.
func Fallback(alternatives ...string) string {
	return strings.Join(alternatives, "/")
}

// Filter restricts a stream expression by an attribute, e.g.
// Filter(BestVideo, "ext", "mp4") -> "bestvideo[ext=mp4]".
func Filter(stream, attr, value string) string {
	return stream + "[" + attr + "=" + value + "]"
}

// BestMux is the generic best-video-plus-best-audio expression used by the
// quick and VR-special options.
func BestMux() string {
	return Fallback(Combine(BestVideo, BestAudio), Best)
}

// BestCompatible prefers an mp4/m4a pairing and degrades gracefully to any
// mp4, then to whatever the backend considers best.
func BestCompatible() string {
	return Fallback(
		Combine(Filter(BestVideo, "ext", "mp4"), Filter(BestAudio, "ext", "m4a")),
		Filter(Best, "ext", "mp4"),
		Best,
	)
}

// BestAudioOnly is the quick audio expression.
func BestAudioOnly() string {
	return Fallback(BestAudio, Best)
}

// WithBestAudio pairs a video-only format id with the best audio stream,
// falling back to the backend's overall best pick.
func WithBestAudio(formatID string) string {
	return Fallback(Combine(formatID, BestAudio), Best)
}
