//go:build !windows

package dialog

import (
	"os"
	"path/filepath"

	"github.com/shirou/gopsutil/v4/disk"
	"go.uber.org/zap"
)

// computerPlaces lists the directories below / followed by mount points
// that live deeper in the tree.
func computerPlaces(log *zap.Logger) []string {
	var places []string
	seen := map[string]bool{}

	items, err := os.ReadDir("/")
	if err != nil {
		log.Debug("could not list /", zap.Error(err))
	}
	for _, item := range items {
		p := filepath.Join("/", item.Name())
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			places = append(places, p)
			seen[p] = true
		}
	}

	parts, err := disk.Partitions(false)
	if err != nil {
		log.Debug("could not list partitions", zap.Error(err))
		return places
	}
	for _, part := range parts {
		p := filepath.Clean(part.Mountpoint)
		if p == "/" || seen[p] || !exists(p) {
			continue
		}
		places = append(places, p)
		seen[p] = true
	}
	return places
}

func extraRoots() []*TreeNode {
	return nil
}
