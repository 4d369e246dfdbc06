package tree

import "strings"

// Progress receives one call per record folded into the tree.
type Progress interface {
	SetDirectory(dir string)
	Increment()
}

// BuildStats counts records whose leaf lost a file/directory conflict.
type BuildStats struct {
	Records  int
	Dropped  int // leaf records discarded because a directory already held the name
	Replaced int // earlier leaves replaced by a directory
}

// Builder folds SizedFile records into a Tree.
//
// A name that is used both as a file and as a directory prefix always ends
// up a directory, whichever record arrives first.
type Builder struct {
	root     *Dir
	stats    BuildStats
	progress Progress
}

// NewBuilder returns a builder rooted at an empty directory.
func NewBuilder() *Builder {
	return &Builder{root: newDir()}
}

// WithProgress sets an observer notified for every added record.
func (b *Builder) WithProgress(p Progress) *Builder {
	b.progress = p
	return b
}

// Add inserts one record.
func (b *Builder) Add(f SizedFile) {
	segments := strings.Split(f.Path, "/")
	b.stats.Records++

	cur := b.root
	for len(segments) > 1 {
		name := segments[0]
		next, ok := cur.Children[name].(*Dir)
		if !ok {
			if _, isFile := cur.Children[name].(*File); isFile {
				b.stats.Replaced++
			}
			next = newDir()
			cur.Children[name] = next
		}
		cur = next
		segments = segments[1:]
	}

	name := segments[0]
	if _, isDir := cur.Children[name].(*Dir); isDir {
		b.stats.Dropped++
	} else {
		cur.Children[name] = &File{Size: f.Size}
	}

	if b.progress != nil {
		top, _, _ := strings.Cut(f.Path, "/")
		b.progress.SetDirectory(top)
		b.progress.Increment()
	}
}

// Stats reports conflict counters for the records added so far.
func (b *Builder) Stats() BuildStats {
	return b.stats
}

// Tree returns the tree built so far. The builder must not be used afterwards.
func (b *Builder) Tree() *Tree {
	return &Tree{Root: b.root}
}

// Build folds files, in order, into a new Tree.
func Build(files []SizedFile) *Tree {
	b := NewBuilder()
	for _, f := range files {
		b.Add(f)
	}
	return b.Tree()
}
