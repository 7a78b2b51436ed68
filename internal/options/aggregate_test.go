package options_test

import (
	"testing"

	"github.com/ababiyaworku/Pandora-Box/internal/classify"
	"github.com/ababiyaworku/Pandora-Box/internal/media"
	"github.com/ababiyaworku/Pandora-Box/internal/options"
)

func TestAggregateBucketsByStreamClass(t *testing.T) {
	formats := []media.Format{
		{ID: "22", Ext: "mp4", VideoCodec: "avc1", AudioCodec: "mp4a"},
		{ID: "137", Ext: "mp4", VideoCodec: "avc1", AudioCodec: media.CodecNone},
		{ID: "140", Ext: "m4a", VideoCodec: media.CodecNone, AudioCodec: "mp4a"},
		{ID: "sb0", Ext: "mhtml", VideoCodec: media.CodecNone, AudioCodec: media.CodecNone},
	}

	buckets := options.Aggregate(formats, media.VideoInfo{})

	if len(buckets.Video) != 2 {
		t.Fatalf("expected 2 video entries, got %d", len(buckets.Video))
	}
	if len(buckets.Audio) != 1 {
		t.Fatalf("expected 1 audio entry, got %d", len(buckets.Audio))
	}
	if !buckets.Video[0].Muxed {
		t.Fatal("expected first video entry to be muxed")
	}
	if buckets.Video[1].Muxed {
		t.Fatal("expected second video entry to be video-only")
	}
	if buckets.Audio[0].Format.ID != "140" {
		t.Fatalf("unexpected audio entry: %+v", buckets.Audio[0])
	}
}

func TestAggregateDropsStreamlessDescriptorsSilently(t *testing.T) {
	formats := []media.Format{
		{ID: "sb0", VideoCodec: media.CodecNone, AudioCodec: media.CodecNone},
		{ID: "sb1", VideoCodec: media.CodecNone, AudioCodec: media.CodecNone},
	}
	buckets := options.Aggregate(formats, media.VideoInfo{})
	if len(buckets.Video) != 0 || len(buckets.Audio) != 0 {
		t.Fatalf("expected empty buckets, got %+v", buckets)
	}
}

func TestAggregateAnnotatesTags(t *testing.T) {
	formats := []media.Format{
		{ID: "313", Ext: "webm", VideoCodec: "vp9", AudioCodec: media.CodecNone, Note: "hdr"},
	}
	buckets := options.Aggregate(formats, media.VideoInfo{Title: "Plain title"})
	if len(buckets.Video) != 1 {
		t.Fatalf("expected 1 video entry, got %d", len(buckets.Video))
	}
	if !buckets.Video[0].Tags.Contains(classify.TagHDR) {
		t.Fatalf("expected HDR tag, got %v", buckets.Video[0].Tags)
	}
}
