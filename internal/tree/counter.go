package tree

import "fmt"

// Counter tallies the entries printed during one listing.
type Counter struct {
	dirs  int
	files int
}

// Tally records one printed entry.
func (c *Counter) Tally(isDir bool) {
	if isDir {
		c.dirs++
	} else {
		c.files++
	}
}

// Summary returns the directory and file counts.
func (c Counter) Summary() (dirs, files int) {
	return c.dirs, c.files
}

// Report formats the trailing summary line, including its leading blank line.
func (c Counter) Report() string {
	return fmt.Sprintf("\n%d directories, %d files\n", c.dirs, c.files)
}
