//go:build (!linux || android) && !windows && (!darwin || !cgo)

package dialog

import "go.uber.org/zap"

func newPlatformIconSource(*zap.Logger) IconSource {
	return nil
}
