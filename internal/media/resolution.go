package media

import "fmt"

// UnknownResolution is the display fallback when a descriptor reports
// neither dimensions nor a backend-supplied resolution string.
const UnknownResolution = "Unknown resolution"

// Tier maps a pixel height to its resolution tier label. Thresholds are
// checked descending; heights below 720 fall through to a literal "{h}p".
func Tier(height int) string {
	switch {
	case height >= 4320:
		return "8K"
	case height >= 2160:
		return "4K"
	case height >= 1440:
		return "2K"
	case height >= 1080:
		return "1080p"
	case height >= 720:
		return "720p"
	default:
		return fmt.Sprintf("%dp", height)
	}
}

// ResolutionDisplay renders the tier with the literal dimensions, e.g.
// "4K (3840x2160)". When either dimension is missing it falls back to the
// resolution string the backend supplied with the descriptor.
func (f Format) ResolutionDisplay() string {
	if f.Height > 0 && f.Width > 0 {
		return fmt.Sprintf("%s (%dx%d)", Tier(f.Height), f.Width, f.Height)
	}
	if f.Resolution != "" {
		return f.Resolution
	}
	return UnknownResolution
}
