package pixels

import "testing"

func TestFormatInfo(t *testing.T) {
	tests := []struct {
		format   Format
		bpp      int
		channels int
		hasAlpha bool
	}{
		{FormatGray8, 1, 1, false},
		{FormatAlpha8, 1, 1, true},
		{FormatRGB8, 3, 3, false},
		{FormatRGBA8, 4, 4, true},
		{FormatBGRA8, 4, 4, true},
		{FormatRGBAF32, 16, 4, true},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			info := tt.format.Info()
			if info.BytesPerPixel != tt.bpp {
				t.Errorf("BytesPerPixel = %d, want %d", info.BytesPerPixel, tt.bpp)
			}
			if info.Channels != tt.channels {
				t.Errorf("Channels = %d, want %d", info.Channels, tt.channels)
			}
			if info.HasAlpha != tt.hasAlpha {
				t.Errorf("HasAlpha = %v, want %v", info.HasAlpha, tt.hasAlpha)
			}
		})
	}
}

func TestFormatRowBytes(t *testing.T) {
	if got := FormatRGBA8.RowBytes(10); got != 40 {
		t.Errorf("RGBA8 RowBytes(10) = %d, want 40", got)
	}
	if got := FormatRGB8.ImageBytes(4, 4); got != 48 {
		t.Errorf("RGB8 ImageBytes(4, 4) = %d, want 48", got)
	}
}

func TestFormatValidity(t *testing.T) {
	if !FormatRGBA8.IsValid() {
		t.Error("FormatRGBA8 should be valid")
	}
	if Format(200).IsValid() {
		t.Error("Format(200) should be invalid")
	}
	if got := Format(200).String(); got != "Unknown" {
		t.Errorf("Format(200).String() = %q, want Unknown", got)
	}
	if got := Format(200).BytesPerPixel(); got != 0 {
		t.Errorf("invalid format BytesPerPixel = %d, want 0", got)
	}
}

func TestInfoOpaque(t *testing.T) {
	tests := []struct {
		name string
		info Info
		want bool
	}{
		{"rgb8 unpremul", Info{Width: 1, Height: 1, Format: FormatRGB8, Alpha: AlphaUnpremul}, true},
		{"gray8", Info{Width: 1, Height: 1, Format: FormatGray8, Alpha: AlphaPremul}, true},
		{"rgba8 opaque", Info{Width: 1, Height: 1, Format: FormatRGBA8, Alpha: AlphaOpaque}, true},
		{"rgba8 premul", Info{Width: 1, Height: 1, Format: FormatRGBA8, Alpha: AlphaPremul}, false},
		{"alpha8 unpremul", Info{Width: 1, Height: 1, Format: FormatAlpha8, Alpha: AlphaUnpremul}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.info.Opaque(); got != tt.want {
				t.Errorf("Opaque() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInfoIsValid(t *testing.T) {
	good := Info{Width: 2, Height: 2, Format: FormatRGBA8, Alpha: AlphaPremul, Gamma: GammaSRGB}
	if !good.IsValid() {
		t.Error("valid info reported invalid")
	}

	tests := []struct {
		name string
		info Info
	}{
		{"zero width", Info{Width: 0, Height: 2, Format: FormatRGBA8}},
		{"negative height", Info{Width: 2, Height: -1, Format: FormatRGBA8}},
		{"bad format", Info{Width: 2, Height: 2, Format: Format(99)}},
		{"bad alpha", Info{Width: 2, Height: 2, Format: FormatRGBA8, Alpha: AlphaType(9)}},
		{"bad gamma", Info{Width: 2, Height: 2, Format: FormatRGBA8, Gamma: GammaType(9)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.info.IsValid() {
				t.Error("invalid info reported valid")
			}
		})
	}
}
