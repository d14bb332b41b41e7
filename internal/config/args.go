package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/kk-code-lab/rtree/internal/textutil"
)

type parser struct {
	cfg   *Config
	args  []string
	pos   int
	root  string
	color colorMode
}

func (p *parser) parse() error {
	onlyPositional := false
	for p.pos < len(p.args) {
		arg := p.args[p.pos]
		p.pos++

		switch {
		case onlyPositional || arg == "-" || !strings.HasPrefix(arg, "-"):
			if err := p.positional(arg); err != nil {
				return err
			}
		case arg == "--":
			onlyPositional = true
		case strings.HasPrefix(arg, "--"):
			if err := p.long(arg[2:]); err != nil {
				return err
			}
		default:
			if err := p.shorts(arg[1:]); err != nil {
				return err
			}
		}
	}
	return nil
}

func (p *parser) positional(arg string) error {
	if p.root != "" {
		return &UsageError{Msg: fmt.Sprintf("only one directory may be listed, got %q and %q", p.root, arg)}
	}
	p.root = arg
	return nil
}

// shorts handles a cluster such as "-adL2". A flag that takes a value consumes
// the rest of the cluster, or the next argument when the cluster ends.
func (p *parser) shorts(cluster string) error {
	for i := 0; i < len(cluster); i++ {
		flag := cluster[i]
		if takesValue(flag) {
			value := cluster[i+1:]
			if value == "" {
				var err error
				if value, err = p.value("-" + string(flag)); err != nil {
					return err
				}
			}
			return p.shortValue(flag, value)
		}
		if err := p.shortBool(flag); err != nil {
			return err
		}
	}
	return nil
}

func takesValue(flag byte) bool {
	switch flag {
	case 'L', 'P', 'I', 'o':
		return true
	}
	return false
}

func (p *parser) shortBool(flag byte) error {
	cfg := p.cfg
	switch flag {
	case 'a':
		cfg.ShowAll = true
	case 'd':
		cfg.DirsOnly = true
	case 'f':
		cfg.FullPath = true
	case 'i':
		cfg.NoIndent = true
	case 'q':
		cfg.NameMode = textutil.NameQuestionMarks
	case 'N':
		cfg.NameMode = textutil.NameVerbatim
	case 'Q':
		cfg.Quote = true
	case 'F':
		cfg.Classify = true
	case 'p':
		cfg.Attrs.Permissions = true
	case 'u':
		cfg.Attrs.UID = true
	case 'g':
		cfg.Attrs.GID = true
	case 's':
		cfg.Attrs.Size = SizeBytes
	case 'h':
		cfg.Attrs.Size = SizeBinary
	case 'D':
		cfg.Attrs.Date = true
	case 'v':
		cfg.SortName = true
	case 't':
		cfg.SortModTime = true
	case 'c':
		cfg.SortChangeTime = true
	case 'U':
		cfg.Unsorted = true
	case 'r':
		cfg.Reverse = true
	case 'C':
		p.color = colorAlways
	case 'n':
		p.color = colorNever
	default:
		return &UsageError{Msg: fmt.Sprintf("invalid argument: -%c", flag)}
	}
	return nil
}

func (p *parser) shortValue(flag byte, value string) error {
	cfg := p.cfg
	switch flag {
	case 'L':
		level, err := strconv.Atoi(value)
		if err != nil || level < 1 {
			return &UsageError{Msg: fmt.Sprintf("invalid level %q, must be greater than 0", value)}
		}
		cfg.Level = level
	case 'P':
		cfg.Pattern = value
		cfg.PatternMode = PatternInclude
	case 'I':
		cfg.Pattern = value
		cfg.PatternMode = PatternExclude
	case 'o':
		cfg.OutputPath = value
	}
	return nil
}

func (p *parser) long(arg string) error {
	name, value, hasValue := strings.Cut(arg, "=")
	cfg := p.cfg

	switch name {
	case "help":
		return ErrHelp
	case "version":
		return ErrVersion
	case "dirsfirst":
		cfg.DirsFirst = true
	case "noreport":
		cfg.Report = false
	case "ignore-case":
		cfg.IgnoreCase = true
	case "gitignore":
		cfg.GitIgnore = true
	case "si":
		cfg.Attrs.Size = SizeSI
	case "inodes":
		cfg.Attrs.Inode = true
	case "device":
		cfg.Attrs.Device = true
	case "verbose":
		cfg.LogLevel = "warn"
	case "charset":
		if !hasValue {
			var err error
			if value, err = p.value("--charset"); err != nil {
				return err
			}
		}
		charset, err := parseCharset(value)
		if err != nil {
			return err
		}
		cfg.Charset = charset
	default:
		return &UsageError{Msg: "invalid argument: --" + name}
	}

	if hasValue && name != "charset" {
		return &UsageError{Msg: fmt.Sprintf("option --%s takes no value", name)}
	}
	return nil
}

func (p *parser) value(flag string) (string, error) {
	if p.pos >= len(p.args) {
		return "", &UsageError{Msg: fmt.Sprintf("missing argument to %s option", flag)}
	}
	value := p.args[p.pos]
	p.pos++
	return value, nil
}

func parseCharset(name string) (Charset, error) {
	switch strings.ToLower(name) {
	case "", "utf-8", "utf8":
		return CharsetUTF8, nil
	case "ascii", "us-ascii":
		return CharsetASCII, nil
	default:
		return CharsetUTF8, &UsageError{Msg: fmt.Sprintf("unsupported charset %q", name)}
	}
}

// resolveRoot canonicalises the listing root; an empty path means the
// current directory.
func resolveRoot(path string) (string, error) {
	if path == "" {
		path = "."
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", path, err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", &UsageError{Msg: fmt.Sprintf("%s [error opening dir]", path)}
	}

	info, err := os.Stat(resolved)
	if err != nil || !info.IsDir() {
		return "", &UsageError{Msg: fmt.Sprintf("%s is not a directory", path)}
	}
	return resolved, nil
}
