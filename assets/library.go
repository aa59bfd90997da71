// Package assets resolves the image and audio keys the game uses to files
// under an asset root laid out as images/<key>.png, sounds/<name>.wav|ogg and
// music/<name>.ogg|wav. Missing images become coloured placeholder tiles so a
// partial asset tree still plays.
package assets

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"io/fs"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

const placeholderSize = 64

// Library loads assets lazily from fsys and caches them by key.
type Library struct {
	fsys   fs.FS
	logger *log.Logger

	mu      sync.Mutex
	images  map[string]*ebiten.Image
	missing map[string]bool
	warned  map[string]bool
}

func New(fsys fs.FS, logger *log.Logger) *Library {
	return &Library{
		fsys:    fsys,
		logger:  logger,
		images:  make(map[string]*ebiten.Image),
		missing: make(map[string]bool),
		warned:  make(map[string]bool),
	}
}

// Image returns the image for key, or a placeholder tile when the file is
// missing or cannot be decoded.
func (l *Library) Image(key string) *ebiten.Image {
	l.mu.Lock()
	defer l.mu.Unlock()

	if img, ok := l.images[key]; ok {
		return img
	}

	img, err := l.loadImage(key)
	if err != nil {
		l.warnOnce(key, "image", err)
		img = ebiten.NewImage(placeholderSize, placeholderSize)
		img.Fill(PlaceholderColor(key))
		l.missing[key] = true
	}
	l.images[key] = img
	return img
}

// ImageSize reports the natural size of key. ok is false for placeholders.
func (l *Library) ImageSize(key string) (w, h float64, ok bool) {
	img := l.Image(key)

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.missing[key] {
		return 0, 0, false
	}
	b := img.Bounds()
	return float64(b.Dx()), float64(b.Dy()), true
}

func (l *Library) loadImage(key string) (*ebiten.Image, error) {
	data, err := l.ReadFile(ImagePath(key))
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", key, err)
	}
	return ebiten.NewImageFromImage(img), nil
}

// ReadFile reads an asset-root relative path.
func (l *Library) ReadFile(name string) ([]byte, error) {
	if l.fsys == nil {
		return nil, fmt.Errorf("assets: read %s: %w", name, fs.ErrNotExist)
	}
	data, err := fs.ReadFile(l.fsys, cleanAssetPath(name))
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", name, err)
	}
	return data, nil
}

// firstExisting returns the first candidate that exists under the root.
func (l *Library) firstExisting(candidates ...string) (string, []byte, error) {
	var lastErr error
	for _, c := range candidates {
		data, err := l.ReadFile(c)
		if err == nil {
			return c, data, nil
		}
		lastErr = err
	}
	return "", nil, lastErr
}

// warnOnce logs a missing asset the first time it is asked for. Callers hold mu.
func (l *Library) warnOnce(key, kind string, err error) {
	id := kind + ":" + key
	if l.logger == nil || l.warned[id] {
		return
	}
	l.warned[id] = true
	l.logger.Debug("asset missing", "kind", kind, "key", key, "err", err)
}

// ImagePath maps an image key to its file. Keys may already carry .png.
func ImagePath(key string) string {
	key = cleanAssetPath(key)
	if strings.EqualFold(path.Ext(key), ".png") {
		return path.Join("images", key)
	}
	return path.Join("images", key+".png")
}

// PlaceholderColor derives a stable opaque colour from key so that distinct
// missing images stay distinguishable on screen.
func PlaceholderColor(key string) color.RGBA {
	h := xxhash.Sum64String(key)
	return color.RGBA{R: uint8(h >> 16), G: uint8(h >> 8), B: uint8(h), A: 255}
}

func cleanAssetPath(p string) string {
	if p == "" {
		return ""
	}
	s := filepath.ToSlash(p)
	if after, ok := strings.CutPrefix(s, "assets/"); ok {
		s = after
	}
	return strings.TrimPrefix(path.Clean(s), "/")
}
