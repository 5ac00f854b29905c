//go:build windows

package dialog

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/sys/windows"
)

func listDrives(log *zap.Logger) []string {
	mask, err := windows.GetLogicalDrives()
	if err != nil {
		log.Debug("GetLogicalDrives failed", zap.Error(err))
		return nil
	}

	var drives []string
	for i := 0; i < 26; i++ {
		if mask&1 == 1 {
			drives = append(drives, string(rune('A'+i))+":")
		}
		mask >>= 1
	}
	return drives
}

// computerPlaces lists the user folders followed by the drive letters.
func computerPlaces(log *zap.Logger) []string {
	var places []string
	if home, err := os.UserHomeDir(); err == nil {
		for _, name := range []string{"3D Objects", "Desktop", "Documents", "Downloads", "Music", "Pictures", "Videos"} {
			if p := filepath.Join(home, name); exists(p) {
				places = append(places, p)
			}
		}
	}
	return append(places, listDrives(log)...)
}

// extraRoots adds the consumer OneDrive folder when it is configured.
func extraRoots() []*TreeNode {
	p := os.Getenv("OneDriveConsumer")
	if p == "" {
		return nil
	}
	return []*TreeNode{{Path: p}}
}
