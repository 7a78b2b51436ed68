package media

import "strings"

// CodecNone is the sentinel the extraction backend emits when a stream
// carries no video or audio track.
const CodecNone = "none"

// CodecUnknown is the display fallback for descriptors that omit a codec id.
const CodecUnknown = "unknown"

// Format is one raw media descriptor from the extraction backend. The ID is
// opaque to the classification pipeline and is only echoed back into
// format-selector expressions.
type Format struct {
	ID           string
	Ext          string
	Height       int
	Width        int
	FPS          float64
	VideoBitrate float64
	AudioBitrate float64
	VideoCodec   string
	AudioCodec   string
	Filesize     int64
	Resolution   string
	Note         string
}

// HasVideo reports whether the descriptor carries a video stream. Only the
// explicit "none" sentinel marks absence; an empty or unknown codec id still
// counts as a stream.
func (f Format) HasVideo() bool {
	return f.VideoCodec != CodecNone
}

// HasAudio reports whether the descriptor carries an audio stream.
func (f Format) HasAudio() bool {
	return f.AudioCodec != CodecNone
}

// VideoCodecDisplay returns the video codec id for presentation.
func (f Format) VideoCodecDisplay() string {
	return codecDisplay(f.VideoCodec)
}

// AudioCodecDisplay returns the audio codec id for presentation.
func (f Format) AudioCodecDisplay() string {
	return codecDisplay(f.AudioCodec)
}

func codecDisplay(codec string) string {
	codec = strings.TrimSpace(codec)
	if codec == "" || codec == CodecNone {
		return CodecUnknown
	}
	return codec
}

// VideoInfo is the video-level metadata record attached to a descriptor
// list. All fields are optional; zero values mean unknown.
type VideoInfo struct {
	ID          string
	URL         string
	Title       string
	Description string
	Uploader    string
	Duration    int64
	ViewCount   int64
	UploadDate  string
}
