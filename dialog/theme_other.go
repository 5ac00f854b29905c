//go:build !linux || android

package dialog

func systemPrefersDark() bool {
	return false
}
