package export

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

func TestPreview_KeepsAspectRatio(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 400, 200))

	preview := Preview(img, 100)

	bounds := preview.Bounds()
	if bounds.Dx() != 100 {
		t.Errorf("Expected preview width 100, got %d", bounds.Dx())
	}
	if bounds.Dy() != 50 {
		t.Errorf("Expected preview height 50, got %d", bounds.Dy())
	}
}

func TestSavePNG_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "render.png")
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))

	if err := SavePNG(path, img); err != nil {
		t.Fatalf("SavePNG failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Expected file at %s: %v", path, err)
	}
	if info.Size() == 0 {
		t.Error("Expected non-empty PNG file")
	}
}

func TestSavePPM_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "render.ppm")
	fb := renderer.NewFramebuffer(2, 1)
	fb.Set(0, 0, core.NewVec3(1, 0, 0))

	if err := SavePPM(path, fb); err != nil {
		t.Fatalf("SavePPM failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Expected file at %s: %v", path, err)
	}
	expected := append([]byte("P6\n2 1\n255\n"), 255, 0, 0, 0, 0, 0)
	if string(data) != string(expected) {
		t.Errorf("Expected PPM bytes %v, got %v", expected, data)
	}
}

func TestLoadUploadConfig_Defaults(t *testing.T) {
	t.Setenv("S3_BUCKET", "")
	t.Setenv("S3_REGION", "placeholder") // register cleanup, then clear
	os.Unsetenv("S3_REGION")

	cfg := LoadUploadConfig(filepath.Join(t.TempDir(), ".env"))

	if cfg.Enabled() {
		t.Error("Expected upload to be disabled without a bucket")
	}
	if cfg.Region != "us-east-1" {
		t.Errorf("Expected default region us-east-1, got %s", cfg.Region)
	}
}

func TestNewUploader_RequiresBucket(t *testing.T) {
	if _, err := NewUploader(UploadConfig{}); err == nil {
		t.Error("Expected error creating uploader without a bucket")
	}
}
