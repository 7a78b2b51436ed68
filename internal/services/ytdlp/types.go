package ytdlp

import (
	"net/url"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ababiyaworku/Pandora-Box/internal/media"
)

// infoPayload mirrors the subset of yt-dlp's -J output the pipeline needs.
type infoPayload struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Uploader    string          `json:"uploader"`
	Duration    float64         `json:"duration"`
	ViewCount   int64           `json:"view_count"`
	UploadDate  string          `json:"upload_date"`
	WebpageURL  string          `json:"webpage_url"`
	Formats     []formatPayload `json:"formats"`
}

type formatPayload struct {
	FormatID       string  `json:"format_id"`
	Ext            string  `json:"ext"`
	Height         int     `json:"height"`
	Width          int     `json:"width"`
	FPS            float64 `json:"fps"`
	VBR            float64 `json:"vbr"`
	ABR            float64 `json:"abr"`
	VCodec         string  `json:"vcodec"`
	ACodec         string  `json:"acodec"`
	Filesize       int64   `json:"filesize"`
	FilesizeApprox int64   `json:"filesize_approx"`
	Resolution     string  `json:"resolution"`
	FormatNote     string  `json:"format_note"`
}

func (p infoPayload) toVideoInfo(sourceURL string) *media.VideoInfo {
	info := &media.VideoInfo{
		ID:          p.ID,
		URL:         p.WebpageURL,
		Title:       strings.TrimSpace(p.Title),
		Description: p.Description,
		Uploader:    p.Uploader,
		Duration:    int64(p.Duration),
		ViewCount:   p.ViewCount,
		UploadDate:  p.UploadDate,
	}
	if info.URL == "" {
		info.URL = sourceURL
	}
	if info.Title == "" {
		info.Title = inferTitleFromURL(info.URL)
	}
	return info
}

func (p infoPayload) toFormats() []media.Format {
	formats := make([]media.Format, 0, len(p.Formats))
	for _, f := range p.Formats {
		size := f.Filesize
		if size <= 0 {
			size = f.FilesizeApprox
		}
		formats = append(formats, media.Format{
			ID:           f.FormatID,
			Ext:          f.Ext,
			Height:       f.Height,
			Width:        f.Width,
			FPS:          f.FPS,
			VideoBitrate: f.VBR,
			AudioBitrate: f.ABR,
			VideoCodec:   f.VCodec,
			AudioCodec:   f.ACodec,
			Filesize:     size,
			Resolution:   f.Resolution,
			Note:         f.FormatNote,
		})
	}
	return formats
}

var titleCaser = cases.Title(language.English)

// inferTitleFromURL derives a presentable title from the last URL path
// segment when the backend returns none.
func inferTitleFromURL(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Path == "" {
		return "Untitled"
	}
	segments := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	last := segments[len(segments)-1]
	if last == "" {
		return "Untitled"
	}
	replacer := strings.NewReplacer("-", " ", "_", " ", ".", " ")
	cleaned := strings.Join(strings.Fields(replacer.Replace(last)), " ")
	if cleaned == "" {
		return "Untitled"
	}
	return titleCaser.String(cleaned)
}
