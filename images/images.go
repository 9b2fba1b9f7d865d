// Package images prepares gallery photographs: every source image is resized
// to a maximum width and written twice, once in colour and once in greyscale
// for the black-and-white hover effect.
package images

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"

	"github.com/ivoiuliano/bottega/content"
)

const (
	DefaultMaxWidth = 1600
	JPEGQuality     = 80
	GreySuffix      = "-bw"
)

// Image describes one written variant.
type Image struct {
	Filename     string
	OriginalName string
	Width        int
	Height       int
	Size         int
	Grey         bool
}

// Variant is an encoded image ready to be written.
type Variant struct {
	Image
	Data []byte
}

// Process decodes src, shrinks it to maxWidth when wider, and returns the
// colour variant followed by the greyscale one, both JPEG encoded.
func Process(src io.Reader, originalName string, maxWidth int) ([]Variant, error) {
	if maxWidth <= 0 {
		maxWidth = DefaultMaxWidth
	}
	img, _, err := image.Decode(src)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w > maxWidth {
		newH := h * maxWidth / w
		dst := image.NewRGBA(image.Rect(0, 0, maxWidth, newH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
		w, h = maxWidth, newH
	}

	grey := image.NewGray(image.Rect(0, 0, w, h))
	draw.Draw(grey, grey.Bounds(), img, img.Bounds().Min, draw.Src)

	base := slugifyFilename(originalName)
	colourV, err := encode(img, base+".jpg", originalName, false)
	if err != nil {
		return nil, err
	}
	greyV, err := encode(grey, base+GreySuffix+".jpg", originalName, true)
	if err != nil {
		return nil, err
	}
	return []Variant{colourV, greyV}, nil
}

func encode(img image.Image, filename, originalName string, grey bool) (Variant, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return Variant{}, fmt.Errorf("encode jpeg: %w", err)
	}
	b := img.Bounds()
	return Variant{
		Image: Image{
			Filename:     filename,
			OriginalName: originalName,
			Width:        b.Dx(),
			Height:       b.Dy(),
			Size:         buf.Len(),
			Grey:         grey,
		},
		Data: buf.Bytes(),
	}, nil
}

// slugifyFilename converts a filename (without extension) to a URL-safe slug.
func slugifyFilename(name string) string {
	ext := filepath.Ext(name)
	base := content.Slugify(strings.TrimSuffix(filepath.Base(name), ext))
	if base == "" {
		base = "image"
	}
	return base
}

var sourceExts = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".gif": true}

// ProcessDir runs Process over every image directly inside srcDir and writes
// the variants into dstDir, replacing earlier outputs of the same name.
func ProcessDir(srcDir, dstDir string, maxWidth int) ([]Image, error) {
	entries, err := os.ReadDir(srcDir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", dstDir, err)
	}

	var written []Image
	for _, e := range entries {
		if e.IsDir() || !sourceExts[strings.ToLower(filepath.Ext(e.Name()))] {
			continue
		}
		variants, err := processFile(filepath.Join(srcDir, e.Name()), maxWidth)
		if err != nil {
			return written, fmt.Errorf("%s: %w", e.Name(), err)
		}
		for _, v := range variants {
			if err := os.WriteFile(filepath.Join(dstDir, v.Filename), v.Data, 0o644); err != nil {
				return written, fmt.Errorf("write image: %w", err)
			}
			written = append(written, v.Image)
		}
	}
	return written, nil
}

func processFile(path string, maxWidth int) ([]Variant, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Process(f, filepath.Base(path), maxWidth)
}
