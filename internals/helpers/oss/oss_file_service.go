package helper

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"mime/multipart"
	"path"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/google/uuid"
	"golang.org/x/image/draw"
)

const (
	maxUploadSize = int64(2 * 1024 * 1024) // mirror the SPA's 2MB photo limit
	maxPhotoDim   = 1024
	webpQuality   = 85
)

// UploadProfilePhoto converts an uploaded image to WebP, resizes it to at most
// maxPhotoDim on the longer side, stores it under dir/ and returns the public
// URL.
func UploadProfilePhoto(fh *multipart.FileHeader, dir string) (string, error) {
	if fh.Size > maxUploadSize {
		return "", fmt.Errorf("file too large: max %d bytes", maxUploadSize)
	}
	ct := fh.Header.Get("Content-Type")
	if !strings.HasPrefix(ct, "image/") {
		return "", fmt.Errorf("invalid file type %q: image required", ct)
	}

	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	img = shrinkToFit(img, maxPhotoDim, maxPhotoDim)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return "", fmt.Errorf("webp encode: %w", err)
	}

	key := path.Join(dir, fmt.Sprintf("%d-%s.webp", time.Now().Unix(), uuid.NewString()))
	bucket, err := GetOSSBucket()
	if err != nil {
		return "", err
	}
	if err := bucket.PutObject(key, bytes.NewReader(buf.Bytes())); err != nil {
		return "", fmt.Errorf("oss put: %w", err)
	}
	return PublicURL(key), nil
}

func shrinkToFit(src image.Image, maxW, maxH int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxW && h <= maxH {
		return src
	}
	ratio := float64(w) / float64(h)
	nw, nh := maxW, maxH
	if ratio > 1 {
		nh = int(float64(maxW) / ratio)
	} else {
		nw = int(float64(maxH) * ratio)
	}
	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
