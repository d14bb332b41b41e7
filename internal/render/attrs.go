package render

import (
	"fmt"
	"os"
	"os/user"
	"strconv"
	"strings"

	"github.com/kk-code-lab/rtree/internal/config"
	"github.com/kk-code-lab/rtree/internal/fs"
	"github.com/kk-code-lab/rtree/internal/textutil"
)

const (
	inodeWidth  = 8
	deviceWidth = 4
	ownerWidth  = 8
	bytesWidth  = 11
	humanWidth  = 4
	dateLayout  = "Jan _2 15:04"
)

// attributes formats the bracketed metadata block without its brackets.
// A failed stat prints "?" in every requested column.
func (r *Renderer) attributes(md fs.Metadata, mdErr error) string {
	attrs := r.cfg.Attrs
	fields := make([]string, 0, 7)
	field := func(width int, alignRight bool, value func() string) {
		text := "?"
		if mdErr == nil {
			text = value()
		}
		if alignRight {
			fields = append(fields, textutil.PadLeft(text, width))
			return
		}
		fields = append(fields, textutil.PadRight(text, width))
	}

	if attrs.Inode {
		field(inodeWidth, true, func() string { return strconv.FormatUint(md.Inode, 10) })
	}
	if attrs.Device {
		field(deviceWidth, true, func() string { return strconv.FormatUint(md.Device, 10) })
	}
	if attrs.Permissions {
		field(10, false, func() string { return permissions(md.Mode) })
	}
	if attrs.UID {
		field(ownerWidth, false, func() string { return r.owners.user(md.UID) })
	}
	if attrs.GID {
		field(ownerWidth, false, func() string { return r.owners.group(md.GID) })
	}
	switch attrs.Size {
	case config.SizeBytes:
		field(bytesWidth, true, func() string { return strconv.FormatInt(md.Size, 10) })
	case config.SizeBinary:
		field(humanWidth, true, func() string { return humanSize(md.Size, 1024) })
	case config.SizeSI:
		field(humanWidth, true, func() string { return humanSize(md.Size, 1000) })
	}
	if attrs.Date {
		field(len(dateLayout), false, func() string {
			if r.cfg.SortChangeTime {
				return md.ChangeTime.Format(dateLayout)
			}
			return md.ModTime.Format(dateLayout)
		})
	}

	return strings.Join(fields, " ")
}

// permissions renders mode the way ls -l does, e.g. "drwxr-sr-x".
func permissions(mode os.FileMode) string {
	var b [10]byte
	switch {
	case mode.IsDir():
		b[0] = 'd'
	case mode&os.ModeSymlink != 0:
		b[0] = 'l'
	case mode&os.ModeNamedPipe != 0:
		b[0] = 'p'
	case mode&os.ModeSocket != 0:
		b[0] = 's'
	case mode&os.ModeCharDevice != 0:
		b[0] = 'c'
	case mode&os.ModeDevice != 0:
		b[0] = 'b'
	default:
		b[0] = '-'
	}

	const rwx = "rwxrwxrwx"
	perm := mode.Perm()
	for i := 0; i < 9; i++ {
		if perm&(1<<uint(8-i)) != 0 {
			b[i+1] = rwx[i]
		} else {
			b[i+1] = '-'
		}
	}

	special := func(pos int, set bool, lower, upper byte) {
		if !set {
			return
		}
		if b[pos] == '-' {
			b[pos] = upper
		} else {
			b[pos] = lower
		}
	}
	special(3, mode&os.ModeSetuid != 0, 's', 'S')
	special(6, mode&os.ModeSetgid != 0, 's', 'S')
	special(9, mode&os.ModeSticky != 0, 't', 'T')

	return string(b[:])
}

// humanSize formats size in at most four columns: "123", "4.0K", "12M".
func humanSize(size int64, base float64) string {
	const units = "KMGTPE"
	if float64(size) < base {
		return strconv.FormatInt(size, 10)
	}

	value := float64(size)
	unit := -1
	for value >= base && unit < len(units)-1 {
		value /= base
		unit++
	}
	if value >= 9.95 {
		return fmt.Sprintf("%.0f%c", value, units[unit])
	}
	return fmt.Sprintf("%.1f%c", value, units[unit])
}

// ownerCache resolves uid/gid to names once per id.
type ownerCache struct {
	users  map[uint32]string
	groups map[uint32]string
}

func newOwnerCache() *ownerCache {
	return &ownerCache{users: map[uint32]string{}, groups: map[uint32]string{}}
}

func (c *ownerCache) user(id uint32) string {
	if name, ok := c.users[id]; ok {
		return name
	}
	name := strconv.FormatUint(uint64(id), 10)
	if u, err := user.LookupId(name); err == nil {
		name = u.Username
	}
	c.users[id] = name
	return name
}

func (c *ownerCache) group(id uint32) string {
	if name, ok := c.groups[id]; ok {
		return name
	}
	name := strconv.FormatUint(uint64(id), 10)
	if g, err := user.LookupGroupId(name); err == nil {
		name = g.Name
	}
	c.groups[id] = name
	return name
}
