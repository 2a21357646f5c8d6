package renderer

import (
	"image"
	"testing"
)

func TestDrawLabel_MarksPixels(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 20))
	DrawLabel(img, 2, 14, "spp=50")

	marked := 0
	for y := 0; y < 20; y++ {
		for x := 0; x < 100; x++ {
			if r, _, _, _ := img.At(x, y).RGBA(); r > 0 {
				marked++
			}
		}
	}
	if marked == 0 {
		t.Error("Expected the label to mark pixels")
	}
}

func TestDrawLabel_EmptyString(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	DrawLabel(img, 0, 8, "")

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if r, g, b, _ := img.At(x, y).RGBA(); r|g|b != 0 {
				t.Fatal("Empty label should not mark pixels")
			}
		}
	}
}

func TestLabelHeight(t *testing.T) {
	if LabelHeight() <= 0 {
		t.Errorf("Expected positive label height, got %d", LabelHeight())
	}
}
