package fs

import (
	"os"
	"time"
)

// Metadata is a snapshot of an entry's attributes taken at call time.
type Metadata struct {
	Mode       os.FileMode
	UID        uint32
	GID        uint32
	Size       int64
	ModTime    time.Time
	ChangeTime time.Time
	Inode      uint64
	Device     uint64
}

// IsExecutable reports whether any execute bit is set on a regular file.
func (m Metadata) IsExecutable() bool {
	return m.Mode.IsRegular() && m.Mode.Perm()&0o111 != 0
}

// Metadata re-reads the entry's attributes from the filesystem. The result is
// never cached, so repeated calls observe concurrent changes.
func (e *Entry) Metadata() (Metadata, error) {
	if e.placeholder {
		return Metadata{}, &os.PathError{Op: "lstat", Path: e.FullPath, Err: os.ErrNotExist}
	}
	return lstat(e.FullPath)
}

// ModTime returns the modification time, or now when it cannot be read.
func (e *Entry) ModTime() time.Time {
	md, err := e.Metadata()
	if err != nil {
		return time.Now()
	}
	return md.ModTime
}

// ChangeTime returns the status change time, or now when it cannot be read.
func (e *Entry) ChangeTime() time.Time {
	md, err := e.Metadata()
	if err != nil {
		return time.Now()
	}
	return md.ChangeTime
}
