package options_test

import (
	"strings"
	"testing"

	"github.com/ababiyaworku/Pandora-Box/internal/classify"
	"github.com/ababiyaworku/Pandora-Box/internal/media"
	"github.com/ababiyaworku/Pandora-Box/internal/options"
)

func TestBuildOrdinalsContiguousAndSectionsOrdered(t *testing.T) {
	info := media.VideoInfo{Title: "Epic 360 VR rollercoaster"}
	formats := []media.Format{
		{ID: "22", Ext: "mp4", Height: 720, Width: 1280, VideoCodec: "avc1", AudioCodec: "mp4a"},
		{ID: "140", Ext: "m4a", AudioBitrate: 128, VideoCodec: media.CodecNone, AudioCodec: "mp4a"},
	}
	list := options.Build(info, options.Aggregate(formats, info), 0)

	if len(list) == 0 {
		t.Fatal("expected options")
	}
	for i, opt := range list {
		if opt.Ordinal != i+1 {
			t.Fatalf("ordinal gap at index %d: %d", i, opt.Ordinal)
		}
	}

	rank := map[options.Source]int{
		options.SourceVRSpecial: 0,
		options.SourceQuick:     1,
		options.SourceAudio:     2,
		options.SourceVideo:     3,
	}
	last := -1
	for _, opt := range list {
		r := rank[opt.Source]
		if r < last {
			t.Fatalf("section order violated at ordinal %d (%s)", opt.Ordinal, opt.Source)
		}
		last = r
	}

	if list[0].Source != options.SourceVRSpecial {
		t.Fatalf("expected VR-special first for VR content, got %s", list[0].Source)
	}
}

func TestBuildQuickOptionsAlwaysPresent(t *testing.T) {
	info := media.VideoInfo{Title: "Plain cooking tutorial"}
	list := options.Build(info, options.Buckets{}, 0)

	if len(list) != 3 {
		t.Fatalf("expected exactly the quick options, got %d", len(list))
	}
	if list[0].Selector != "bestvideo+bestaudio/best" || list[0].Container != "mkv" {
		t.Fatalf("unexpected quick mkv option: %+v", list[0])
	}
	if list[1].Selector != "bestvideo[ext=mp4]+bestaudio[ext=m4a]/best[ext=mp4]/best" || list[1].Container != "mp4" {
		t.Fatalf("unexpected quick mp4 option: %+v", list[1])
	}
	if list[2].Selector != "bestaudio/best" || list[2].Container != "mp3" {
		t.Fatalf("unexpected quick audio option: %+v", list[2])
	}
	if !list[2].WantsAudioExtract() {
		t.Fatal("quick audio option should extract to mp3")
	}
}

func TestBuildNoVRSectionForPlainContent(t *testing.T) {
	info := media.VideoInfo{Title: "Plain cooking tutorial"}
	list := options.Build(info, options.Buckets{}, 0)
	for _, opt := range list {
		if opt.Source == options.SourceVRSpecial {
			t.Fatalf("unexpected VR-special option: %+v", opt)
		}
	}
}

func TestBuildVRSpecialVariants(t *testing.T) {
	// 3D+180 evidence in the title adds the side-by-side entry ahead of
	// the generic VR entries.
	info := media.VideoInfo{Title: "Epic 3D 180 VR Tour"}
	list := options.Build(info, options.Buckets{}, 0)

	var specials []string
	for _, opt := range list {
		if opt.Source == options.SourceVRSpecial {
			specials = append(specials, opt.Description)
		}
	}
	want := []string{
		"Best 3D 180° VR (Side-by-Side MKV)",
		"Best 360° VR Video (MKV)",
		"Best 180° VR Video (MKV)",
		"Best 3D Stereoscopic Video (MKV)",
	}
	if len(specials) != len(want) {
		t.Fatalf("expected %d VR-special options, got %v", len(want), specials)
	}
	for i := range want {
		if specials[i] != want[i] {
			t.Fatalf("VR-special order mismatch: got %v", specials)
		}
	}
	for _, opt := range list[:len(want)] {
		if !opt.WantsInfoJSON() {
			t.Fatalf("VR-special picks keep the metadata sidecar: %+v", opt)
		}
	}

	// Generic VR content without 3D/SBS evidence drops the first entry.
	info = media.VideoInfo{Title: "Relaxing 360 beach"}
	list = options.Build(info, options.Buckets{}, 0)
	specials = specials[:0]
	for _, opt := range list {
		if opt.Source == options.SourceVRSpecial {
			specials = append(specials, opt.Description)
		}
	}
	if len(specials) != 3 || specials[0] != "Best 360° VR Video (MKV)" {
		t.Fatalf("unexpected VR-special set: %v", specials)
	}
}

func TestBuildVideoOnlySelectorComposition(t *testing.T) {
	info := media.VideoInfo{Title: "Plain title"}
	formats := []media.Format{
		{ID: "313", Ext: "webm", Height: 2160, Width: 3840, VideoCodec: "vp9", AudioCodec: media.CodecNone},
		{ID: "137", Ext: "mp4", Height: 1080, Width: 1920, VideoCodec: "avc1", AudioCodec: media.CodecNone},
	}
	list := options.Build(info, options.Aggregate(formats, info), 0)

	byID := map[string]options.Option{}
	for _, opt := range list {
		if opt.Source == options.SourceVideo {
			byID[opt.Format.ID] = opt
		}
	}
	webm, ok := byID["313"]
	if !ok {
		t.Fatalf("missing webm option in %+v", byID)
	}
	if webm.Selector != "313+bestaudio/best" || webm.Container != "mkv" || !webm.VideoOnly {
		t.Fatalf("unexpected webm option: %+v", webm)
	}
	mp4, ok := byID["137"]
	if !ok {
		t.Fatalf("missing mp4 option in %+v", byID)
	}
	if mp4.Selector != "137+bestaudio/best" || mp4.Container != "mp4" {
		t.Fatalf("unexpected mp4 option: %+v", mp4)
	}
}

func TestBuildMuxedSelectorIsFormatID(t *testing.T) {
	info := media.VideoInfo{Title: "Plain title"}
	formats := []media.Format{
		{ID: "22", Ext: "mp4", Height: 720, Width: 1280, VideoCodec: "avc1", AudioCodec: "mp4a"},
	}
	list := options.Build(info, options.Aggregate(formats, info), 0)
	for _, opt := range list {
		if opt.Source != options.SourceVideo {
			continue
		}
		if opt.Selector != "22" || opt.Container != "mp4" || opt.VideoOnly {
			t.Fatalf("unexpected muxed option: %+v", opt)
		}
		return
	}
	t.Fatal("no ranked video option produced")
}

func TestBuildEndToEnd3D180Scenario(t *testing.T) {
	info := media.VideoInfo{Title: "Epic 3D 180 VR Tour"}
	formats := []media.Format{
		{ID: "616", Ext: "webm", Height: 2160, Width: 3840, FPS: 60, VideoCodec: "vp9", AudioCodec: "opus"},
	}

	buckets := options.Aggregate(formats, info)
	if len(buckets.Video) != 1 || len(buckets.Audio) != 0 {
		t.Fatalf("unexpected buckets: %+v", buckets)
	}
	if !buckets.Video[0].Tags.Contains(classify.TagCombined3D180VR) {
		t.Fatalf("expected combined tag, got %v", buckets.Video[0].Tags)
	}

	list := options.Build(info, buckets, 0)
	if list[0].Source != options.SourceVRSpecial || !strings.Contains(list[0].Description, "3D 180°") {
		t.Fatalf("expected 3D 180° VR-special entry first, got %+v", list[0])
	}

	var ranked *options.Option
	for i := range list {
		if list[i].Source == options.SourceVideo {
			ranked = &list[i]
			break
		}
	}
	if ranked == nil {
		t.Fatal("expected a ranked video option")
	}
	if !strings.Contains(ranked.Description, "4K (3840x2160)") {
		t.Fatalf("expected 4K display, got %q", ranked.Description)
	}
	if !strings.Contains(ranked.Description, string(classify.TagCombined3D180VR)) {
		t.Fatalf("expected combined tag display, got %q", ranked.Description)
	}
	if ranked.Selector != "616" {
		t.Fatalf("muxed descriptor selects its own id, got %q", ranked.Selector)
	}
}

func TestBuildAudioDescriptions(t *testing.T) {
	info := media.VideoInfo{}
	formats := []media.Format{
		{ID: "140", Ext: "m4a", AudioBitrate: 128, AudioCodec: "mp4a.40.2", VideoCodec: media.CodecNone, Filesize: 3 << 20},
		{ID: "600", Ext: "webm", AudioCodec: "opus", VideoCodec: media.CodecNone},
	}
	list := options.Build(info, options.Aggregate(formats, info), 0)

	var audio []options.Option
	for _, opt := range list {
		if opt.Source == options.SourceAudio {
			audio = append(audio, opt)
		}
	}
	if len(audio) != 2 {
		t.Fatalf("expected 2 audio options, got %d", len(audio))
	}
	if !strings.Contains(audio[0].Description, "M4A - 128kbps (mp4a.40.2)") {
		t.Fatalf("unexpected audio description: %q", audio[0].Description)
	}
	if !strings.Contains(audio[1].Description, "Unknown bitrate") {
		t.Fatalf("expected unknown-bitrate display: %q", audio[1].Description)
	}
	if audio[0].Selector != "140" {
		t.Fatalf("audio selector must be the format id, got %q", audio[0].Selector)
	}
}
