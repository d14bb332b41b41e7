// Package config resolves command-line flags and user defaults into the
// immutable settings a listing runs with.
package config

import (
	"errors"
	"os"

	"github.com/kk-code-lab/rtree/internal/textutil"
	"golang.org/x/term"
)

// Unlimited is the depth budget used when -L is not given.
const Unlimited = -1

var (
	// ErrHelp is returned by Load when --help was requested.
	ErrHelp = errors.New("help requested")
	// ErrVersion is returned by Load when --version was requested.
	ErrVersion = errors.New("version requested")
)

// UsageError reports a malformed command line.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string {
	return e.Msg
}

// SizeMode selects how file sizes are printed in the attribute block.
type SizeMode int

const (
	SizeOff SizeMode = iota
	SizeBytes
	SizeBinary
	SizeSI
)

// PatternMode tells whether Pattern selects or rejects names.
type PatternMode int

const (
	PatternNone PatternMode = iota
	PatternInclude
	PatternExclude
)

// Charset selects the glyphs used for indentation lines.
type Charset int

const (
	CharsetUTF8 Charset = iota
	CharsetASCII
)

type colorMode int

const (
	colorAuto colorMode = iota
	colorAlways
	colorNever
)

// Palette holds colour names understood by tcell.GetColor.
type Palette struct {
	Dir  string
	Exec string
	Link string
}

// Attributes lists the per-entry metadata fields to print.
type Attributes struct {
	Permissions bool
	UID         bool
	GID         bool
	Size        SizeMode
	Date        bool
	Inode       bool
	Device      bool
}

// Any reports whether at least one attribute is requested.
func (a Attributes) Any() bool {
	return a.Permissions || a.UID || a.GID || a.Size != SizeOff || a.Date || a.Inode || a.Device
}

// Config is resolved once at startup and never modified afterwards.
type Config struct {
	Root string

	// Listing
	ShowAll    bool
	DirsOnly   bool
	NoIndent   bool
	FullPath   bool
	Level      int
	Report     bool
	OutputPath string

	// Patterns
	Pattern     string
	PatternMode PatternMode
	IgnoreCase  bool
	GitIgnore   bool

	// Sorting
	SortName       bool
	SortModTime    bool
	SortChangeTime bool
	Unsorted       bool
	Reverse        bool
	DirsFirst      bool

	// Names
	Quote    bool
	Classify bool
	NameMode textutil.NameMode

	// Attributes
	Attrs Attributes

	// Graphics
	Color   bool
	Palette Palette
	Charset Charset

	// Logging
	LogLevel  string
	LogFormat string
}

// Environment carries the process facts Load depends on.
type Environment struct {
	// ConfigDir is searched for config.yaml; empty skips the file.
	ConfigDir        string
	StdoutIsTerminal func() bool
}

// DefaultEnvironment describes the running process.
func DefaultEnvironment() Environment {
	return Environment{
		ConfigDir: userConfigDir(),
		StdoutIsTerminal: func() bool {
			return term.IsTerminal(int(os.Stdout.Fd()))
		},
	}
}

// Load parses args (without the program name) on top of the user defaults.
func Load(args []string, env Environment) (*Config, error) {
	defaults, err := loadDefaults(env.ConfigDir)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Level:     Unlimited,
		Report:    true,
		SortName:  true,
		LogLevel:  defaults.GetString(keyLogLevel),
		LogFormat: defaults.GetString(keyLogFormat),
		Palette: Palette{
			Dir:  defaults.GetString(keyColorDir),
			Exec: defaults.GetString(keyColorExec),
			Link: defaults.GetString(keyColorLink),
		},
	}
	if cfg.Charset, err = parseCharset(defaults.GetString(keyCharset)); err != nil {
		return nil, err
	}

	p := &parser{cfg: cfg, args: args}
	if err := p.parse(); err != nil {
		return nil, err
	}

	if cfg.Root, err = resolveRoot(p.root); err != nil {
		return nil, err
	}

	switch p.color {
	case colorAlways:
		cfg.Color = true
	case colorNever:
		cfg.Color = false
	default:
		cfg.Color = cfg.OutputPath == "" &&
			defaults.GetString(keyNoColor) == "" &&
			env.StdoutIsTerminal != nil && env.StdoutIsTerminal()
	}

	return cfg, nil
}
