package tree

import "fmt"

// Stats summarizes a built tree.
type Stats struct {
	Files       int
	Directories int // excluding the root
	TotalSize   int64
}

// Stats counts the files and directories below the root.
func (t *Tree) Stats() Stats {
	var s Stats
	t.Walk(func(_ string, n Node) {
		switch n := n.(type) {
		case *File:
			s.Files++
			s.TotalSize += n.Size
		case *Dir:
			s.Directories++
		}
	})
	return s
}

// FormatSize renders a byte count in B, KB, MB or GB (powers of 1024).
func FormatSize(bytes int64) string {
	const (
		KB = 1024
		MB = KB * 1024
		GB = MB * 1024
	)

	switch {
	case bytes >= GB:
		return fmt.Sprintf("%.2f GB", float64(bytes)/float64(GB))
	case bytes >= MB:
		return fmt.Sprintf("%.2f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.2f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
