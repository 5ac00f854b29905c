package dialog

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"go.uber.org/zap"
)

// TreeNode is an entry of the sidebar. Children are read lazily by ExpandNode.
type TreeNode struct {
	Path     string
	Read     bool
	Children []*TreeNode
}

// Name is the label shown for the node.
func (n *TreeNode) Name() string {
	return displayName(n.Path)
}

// displayName is the last path element, or the whole path for roots
// and pseudo directories.
func displayName(path string) string {
	if path == QuickAccess || path == ThisPC || filepath.Dir(path) == path {
		return path
	}
	name := filepath.Base(path)
	if name == "." {
		return path
	}
	return name
}

// Tree returns the sidebar roots.
func (d *Dialog) Tree() []*TreeNode {
	return d.tree
}

// ExpandNode reads the sub directories of a node the first time it is expanded.
func (d *Dialog) ExpandNode(n *TreeNode) []*TreeNode {
	if n == nil || n.Read {
		return childrenOf(n)
	}
	n.Read = true

	items, err := os.ReadDir(n.Path)
	if err != nil {
		d.log.Debug("could not expand sidebar node", zap.String("path", n.Path), zap.Error(err))
	}
	for _, item := range items {
		p := filepath.Join(n.Path, item.Name())
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			n.Children = append(n.Children, &TreeNode{Path: p})
		}
	}
	return n.Children
}

func childrenOf(n *TreeNode) []*TreeNode {
	if n == nil {
		return nil
	}
	return n.Children
}

// root returns the pseudo directory node for path, or nil for real directories.
func (d *Dialog) root(path string) *TreeNode {
	if path != QuickAccess && path != ThisPC {
		return nil
	}
	for _, n := range d.tree {
		if n.Path == path {
			return n
		}
	}
	return nil
}

func (d *Dialog) buildTree() {
	quick := &TreeNode{Path: QuickAccess, Read: true}
	for _, p := range quickAccessPlaces() {
		quick.Children = append(quick.Children, &TreeNode{Path: p})
	}
	for _, p := range d.favorites {
		quick.Children = append(quick.Children, &TreeNode{Path: p})
	}

	pc := &TreeNode{Path: ThisPC, Read: true}
	for _, p := range computerPlaces(d.log) {
		pc.Children = append(pc.Children, &TreeNode{Path: p})
	}

	d.tree = []*TreeNode{quick}
	d.tree = append(d.tree, extraRoots()...)
	d.tree = append(d.tree, pc)
}

// resetTree forgets everything read below the top level nodes.
func (d *Dialog) resetTree() {
	for _, root := range d.tree {
		for _, c := range root.Children {
			c.Children = nil
			c.Read = false
		}
	}
}

func quickAccessPlaces() []string {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}

	var places []string
	if exists(home) {
		places = append(places, home)
	}

	order := []string{"Desktop", "Documents", "Downloads", "Pictures"}
	for _, name := range order {
		p := getFavoriteLocation(home, name)
		if p != home && exists(p) {
			places = append(places, p)
		}
	}
	return places
}

func getFavoriteLocation(home, name string) string {
	if runtime.GOOS != "linux" && runtime.GOOS != "openbsd" && runtime.GOOS != "freebsd" && runtime.GOOS != "netbsd" {
		return filepath.Join(home, name)
	}

	const cmdName = "xdg-user-dir"
	if _, err := exec.LookPath(cmdName); err != nil {
		return filepath.Join(home, name)
	}

	loc, err := exec.Command(cmdName, strings.ToUpper(name)).Output()
	if err != nil {
		return filepath.Join(home, name)
	}

	clean := filepath.Clean(strings.TrimSpace(string(loc)))
	if clean == filepath.Clean(home) {
		// Unset XDG entries point at home.
		child := filepath.Join(home, name)
		if resolved, err := filepath.EvalSymlinks(child); err == nil {
			return resolved
		}
		return child
	}
	return clean
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
