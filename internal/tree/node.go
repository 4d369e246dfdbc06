package tree

import "sort"

// SizedFile is a single input record: a slash-delimited path and its size in bytes.
type SizedFile struct {
	Path string
	Size int64
}

// Node is either a *File or a *Dir.
type Node interface {
	node()
}

// File is a leaf holding the size reported for it.
type File struct {
	Size int64
}

// Dir maps child segment names to nodes. Directories have no size of their own.
type Dir struct {
	Children map[string]Node
}

func (*File) node() {}
func (*Dir) node()  {}

func newDir() *Dir {
	return &Dir{Children: make(map[string]Node)}
}

// Names returns the child names in ascending byte order.
func (d *Dir) Names() []string {
	names := make([]string, 0, len(d.Children))
	for name := range d.Children {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Tree is a directory tree built from SizedFile records.
type Tree struct {
	Root *Dir
}

// Walk visits every node below the root in pre-order, children in name
// order. The path passed to fn is slash-joined from the root.
func (t *Tree) Walk(fn func(path string, n Node)) {
	walk(t.Root, "", true, fn)
}

func walk(d *Dir, prefix string, top bool, fn func(string, Node)) {
	for _, name := range d.Names() {
		child := d.Children[name]
		p := name
		if !top {
			p = prefix + "/" + name
		}
		fn(p, child)
		if sub, ok := child.(*Dir); ok {
			walk(sub, p, false, fn)
		}
	}
}
