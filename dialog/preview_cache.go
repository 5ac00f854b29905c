package dialog

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"sort"
	"time"

	"go.uber.org/zap"
)

var (
	MaxCacheSize  int64 = 200 * 1024 * 1024 // 200MB
	MaxCacheFiles int   = 10000
)

const previewCacheExt = ".png"

// previewCache keeps decoded thumbnails on disk between sessions.
type previewCache struct {
	dir string
	log *zap.Logger
}

// DefaultPreviewCacheDir is where thumbnails are kept unless WithPreviewCache says otherwise.
func DefaultPreviewCacheDir() string {
	userCache, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(userCache, "xfiledialog", "previews")
}

func newPreviewCache(dir string, log *zap.Logger) *previewCache {
	if dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Debug("preview cache disabled", zap.String("dir", dir), zap.Error(err))
		return nil
	}
	return &previewCache{dir: dir, log: log}
}

func (c *previewCache) load(path string) (image.Image, bool) {
	key, err := c.generateCacheKey(path)
	if err != nil {
		return nil, false
	}

	f, err := os.Open(filepath.Join(c.dir, key+previewCacheExt))
	if err != nil {
		return nil, false
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, false
	}
	return img, true
}

// store writes into a temp file and renames it over the cache entry, so
// other processes never read a partial PNG.
func (c *previewCache) store(path string, img image.Image) {
	key, err := c.generateCacheKey(path)
	if err != nil {
		return
	}

	f, err := os.CreateTemp(c.dir, key+"-*.tmp")
	if err != nil {
		c.log.Debug("could not write preview", zap.String("path", path), zap.Error(err))
		return
	}
	tmp := f.Name()

	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	err = enc.Encode(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Rename(tmp, filepath.Join(c.dir, key+previewCacheExt))
	}
	if err != nil {
		c.log.Debug("could not store preview", zap.String("path", path), zap.Error(err))
		os.Remove(tmp)
	}
}

// generateCacheKey hashes the path, modification time, size and the first
// 32KB of content.
func (c *previewCache) generateCacheKey(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return "", err
	}

	h := sha256.New()
	h.Write([]byte(absPath))
	h.Write([]byte(info.ModTime().String()))
	h.Write([]byte(fmt.Sprintf("%d", info.Size())))

	f, err := os.Open(absPath)
	if err == nil {
		defer f.Close()
		buf := make([]byte, 32*1024)
		n, _ := f.Read(buf)
		h.Write(buf[:n])
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// cleanupCache evicts the least recently written thumbnails once either
// limit is exceeded, down to 80% of the limits.
func (c *previewCache) cleanupCache() {
	files, err := os.ReadDir(c.dir)
	if err != nil {
		return
	}

	type fileInfo struct {
		name string
		size int64
		time time.Time
	}

	var cachedFiles []fileInfo
	var totalSize int64

	for _, f := range files {
		if f.IsDir() || filepath.Ext(f.Name()) != previewCacheExt {
			continue
		}
		info, err := f.Info()
		if err != nil {
			continue
		}
		cachedFiles = append(cachedFiles, fileInfo{
			name: f.Name(),
			size: info.Size(),
			time: info.ModTime(),
		})
		totalSize += info.Size()
	}

	if totalSize <= MaxCacheSize && len(cachedFiles) <= MaxCacheFiles {
		return
	}

	sort.Slice(cachedFiles, func(i, j int) bool {
		return cachedFiles[i].time.Before(cachedFiles[j].time)
	})

	for len(cachedFiles) > 0 {
		if totalSize <= int64(float64(MaxCacheSize)*0.8) && len(cachedFiles) <= int(float64(MaxCacheFiles)*0.8) {
			break
		}
		_ = os.Remove(filepath.Join(c.dir, cachedFiles[0].name))
		totalSize -= cachedFiles[0].size
		cachedFiles = cachedFiles[1:]
	}
}
