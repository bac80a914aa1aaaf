package pixels

import (
	"testing"

	"github.com/gogpu/gputypes"
)

func TestTextureFormat(t *testing.T) {
	tests := []struct {
		format Format
		want   gputypes.TextureFormat
		ok     bool
	}{
		{FormatGray8, gputypes.TextureFormatR8Unorm, true},
		{FormatAlpha8, gputypes.TextureFormatR8Unorm, true},
		{FormatRGBA8, gputypes.TextureFormatRGBA8Unorm, true},
		{FormatBGRA8, gputypes.TextureFormatBGRA8Unorm, true},
		{FormatRGB8, gputypes.TextureFormatUndefined, false},
		{FormatRGBAF32, gputypes.TextureFormatUndefined, false},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			got, ok := tt.format.TextureFormat()
			if got != tt.want || ok != tt.ok {
				t.Errorf("TextureFormat() = (%v, %v), want (%v, %v)", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestFormatFromTexture(t *testing.T) {
	for _, f := range []Format{FormatRGBA8, FormatBGRA8} {
		tf, ok := f.TextureFormat()
		if !ok {
			t.Fatalf("%v has no texture format", f)
		}
		back, ok := FormatFromTexture(tf)
		if !ok || back != f {
			t.Errorf("round trip %v → %v → %v", f, tf, back)
		}
	}

	if _, ok := FormatFromTexture(gputypes.TextureFormatUndefined); ok {
		t.Error("undefined texture format should not map")
	}
}
