//go:build !linux

package fs

import "os"

// lstat falls back to the portable FileInfo view; ownership, inode, device and
// change time are left zero where the platform does not expose them here.
func lstat(path string) (Metadata, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return Metadata{}, err
	}
	return Metadata{
		Mode:       info.Mode(),
		Size:       info.Size(),
		ModTime:    info.ModTime(),
		ChangeTime: info.ModTime(),
	}, nil
}
