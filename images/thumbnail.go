package images

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"log"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/image/draw"
)

const (
	jpegQuality = 85

	maxSourceBytes  = 10 << 20
	maxSourcePixels = 40_000_000
)

var placeholderColor = color.RGBA{R: 0xf3, G: 0xe5, B: 0xd0, A: 0xff}

// Thumbnailer fetches product images and scales them to one fixed display
// size. Results are cached per key and size.
type Thumbnailer struct {
	client *resty.Client
	cache  Cache
	width  int
	height int
	// maxPixels bounds the decoded size of a source image.
	maxPixels int

	placeholderOnce sync.Once
	placeholder     []byte
}

func NewThumbnailer(cache Cache, width, height int, timeout time.Duration) *Thumbnailer {
	return &Thumbnailer{
		client: resty.New().
			SetTimeout(timeout).
			SetResponseBodyLimit(maxSourceBytes),
		cache:     cache,
		width:     width,
		height:    height,
		maxPixels: maxSourcePixels,
	}
}

func (t *Thumbnailer) cacheKey(key string) string {
	return fmt.Sprintf("%s-%dx%d.jpg", key, t.width, t.height)
}

func (t *Thumbnailer) Thumbnail(ctx context.Context, key, sourceURL string) ([]byte, error) {
	cacheKey := t.cacheKey(key)
	data, ok, err := t.cache.Get(ctx, cacheKey)
	if err != nil {
		log.Printf("Thumbnail cache read failed for %s: %v", cacheKey, err)
	}
	if ok {
		return data, nil
	}

	resp, err := t.client.R().SetContext(ctx).Get(sourceURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch image: %w", err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("image source returned status %d", resp.StatusCode())
	}

	body := resp.Body()
	cfg, _, err := image.DecodeConfig(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || cfg.Width > t.maxPixels/cfg.Height {
		return nil, fmt.Errorf("image is %dx%d, larger than %d pixels", cfg.Width, cfg.Height, t.maxPixels)
	}

	src, _, err := image.Decode(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	data, err = t.encode(t.scale(src))
	if err != nil {
		return nil, err
	}

	if err := t.cache.Put(ctx, cacheKey, data); err != nil {
		log.Printf("Thumbnail cache write failed for %s: %v", cacheKey, err)
	}
	return data, nil
}

// Placeholder is served in place of images that cannot be fetched.
func (t *Thumbnailer) Placeholder() []byte {
	t.placeholderOnce.Do(func() {
		dst := image.NewRGBA(image.Rect(0, 0, t.width, t.height))
		draw.Draw(dst, dst.Bounds(), image.NewUniform(placeholderColor), image.Point{}, draw.Src)
		data, err := t.encode(dst)
		if err != nil {
			log.Println("Failed to encode placeholder:", err)
			return
		}
		t.placeholder = data
	})
	return t.placeholder
}

func (t *Thumbnailer) scale(src image.Image) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, t.width, t.height))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}

func (t *Thumbnailer) encode(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("failed to encode thumbnail: %w", err)
	}
	return buf.Bytes(), nil
}
