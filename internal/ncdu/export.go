// Package ncdu builds ncdu's JSON export format from a tree.
//
// Format reference: https://dev.yorhel.nl/ncdu/jsonfmt
//
// The document is a four-element array: major version, minor version,
// metadata, root entry. A directory entry is an array whose first element
// is the directory's own info block, followed by its children. A file entry
// is a bare info block. Exports produced here load with `ncdu -f`.
package ncdu

import (
	"encoding/json"

	"ncdu-import/internal/tree"
)

const (
	MajorVersion = 1
	MinorVersion = 2

	ProgName = "ncdu-import"
	ProgVer  = "1.0"
	// Timestamp is fixed so the output depends only on the input.
	Timestamp = 1699656086

	RootName = "ROOT"
)

// Metadata is the third element of the export.
type Metadata struct {
	ProgName  string `json:"progname"`
	ProgVer   string `json:"progver"`
	Timestamp int64  `json:"timestamp"`
}

// InfoBlock describes a single entry.
type InfoBlock struct {
	Name  string `json:"name"`
	DSize int64  `json:"dsize"`
}

// Entry is a file or a directory in the export. Children is nil for files;
// a directory always has a non-nil Children, possibly empty.
type Entry struct {
	Info     InfoBlock
	Children []Entry
}

// IsDir reports whether e serializes as a directory array.
func (e Entry) IsDir() bool {
	return e.Children != nil
}

func (e Entry) MarshalJSON() ([]byte, error) {
	if !e.IsDir() {
		return json.Marshal(e.Info)
	}
	elems := make([]any, 0, len(e.Children)+1)
	elems = append(elems, e.Info)
	for _, child := range e.Children {
		elems = append(elems, child)
	}
	return json.Marshal(elems)
}

// Export is a complete ncdu document.
type Export struct {
	Major    int
	Minor    int
	Metadata Metadata
	Root     Entry
}

func (e Export) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{e.Major, e.Minor, e.Metadata, e.Root})
}

// FromTree converts t into an export rooted at "ROOT".
func FromTree(t *tree.Tree) Export {
	return Export{
		Major: MajorVersion,
		Minor: MinorVersion,
		Metadata: Metadata{
			ProgName:  ProgName,
			ProgVer:   ProgVer,
			Timestamp: Timestamp,
		},
		Root: dirEntry(RootName, t.Root),
	}
}

func dirEntry(name string, d *tree.Dir) Entry {
	children := make([]Entry, 0, len(d.Children))
	for _, childName := range d.Names() {
		switch n := d.Children[childName].(type) {
		case *tree.File:
			children = append(children, Entry{Info: InfoBlock{Name: childName, DSize: n.Size}})
		case *tree.Dir:
			children = append(children, dirEntry(childName, n))
		}
	}
	return Entry{Info: InfoBlock{Name: name}, Children: children}
}
