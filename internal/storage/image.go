package storage

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

const (
	MaxImageWidth  = 1600
	MaxImageHeight = 1600
	webpQuality    = 82
	// Batas ukuran upload mentah.
	MaxUploadBytes = 8 << 20
)

// ProcessImage men-decode jpeg/png/webp, memperkecil gambar agar muat di
// 1600x1600 (rasio dipertahankan, tidak pernah diperbesar), lalu meng-encode ke webp.
func ProcessImage(r io.Reader) ([]byte, error) {
	raw, err := io.ReadAll(io.LimitReader(r, MaxUploadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("gagal membaca gambar: %w", err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("file gambar kosong")
	}
	if len(raw) > MaxUploadBytes {
		return nil, fmt.Errorf("ukuran gambar melebihi %d MB", MaxUploadBytes>>20)
	}

	img, err := decode(raw)
	if err != nil {
		return nil, fmt.Errorf("format gambar tidak didukung: %w", err)
	}

	b := img.Bounds()
	if b.Dx() > MaxImageWidth || b.Dy() > MaxImageHeight {
		img = imaging.Fit(img, MaxImageWidth, MaxImageHeight, imaging.Lanczos)
	}

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: webpQuality}); err != nil {
		return nil, fmt.Errorf("gagal encode webp: %w", err)
	}
	return buf.Bytes(), nil
}

func decode(raw []byte) (image.Image, error) {
	// imaging.Decode menangani jpeg/png sekaligus orientasi EXIF.
	img, err := imaging.Decode(bytes.NewReader(raw), imaging.AutoOrientation(true))
	if err == nil {
		return img, nil
	}
	if wimg, werr := webp.Decode(bytes.NewReader(raw)); werr == nil {
		return wimg, nil
	}
	return nil, err
}
