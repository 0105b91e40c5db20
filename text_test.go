package pulse

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestLoadTTFFont(t *testing.T) {
	f, err := LoadTTFFont(goregular.TTF, 20)
	if err != nil {
		t.Fatal(err)
	}
	if f.Face() == nil || f.Face().Size != 20 {
		t.Errorf("Face() = %+v", f.Face())
	}
	if f.LineHeight() <= 0 {
		t.Errorf("LineHeight() = %v, want > 0", f.LineHeight())
	}

	w1, h1 := f.MeasureString("1")
	w8, _ := f.MeasureString("12345678")
	if w1 <= 0 || h1 <= 0 {
		t.Errorf("MeasureString(\"1\") = %v x %v", w1, h1)
	}
	if w8 <= w1 {
		t.Errorf("longer label not wider: %v <= %v", w8, w1)
	}
	if w, _ := f.MeasureString(""); w != 0 {
		t.Errorf("empty string width = %v", w)
	}
}

func TestLoadTTFFont_Invalid(t *testing.T) {
	if _, err := LoadTTFFont([]byte("not a font"), 12); err == nil {
		t.Error("expected error for invalid font data")
	}
}

func TestLoadDefaultFonts(t *testing.T) {
	header, label, err := loadDefaultFonts()
	if err != nil {
		t.Fatal(err)
	}
	if header.LineHeight() <= label.LineHeight() {
		t.Errorf("header line height %v not larger than label %v", header.LineHeight(), label.LineHeight())
	}
}
