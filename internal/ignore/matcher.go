// Package ignore decides which paths a .gitignore hierarchy excludes.
package ignore

import (
	"path"
	"path/filepath"
	"slices"
	"strings"
)

// Matcher holds gitignore rules in file order. The last matching rule wins.
//
// A Matcher is not modified once it is shared; Clone before adding rules for
// a subdirectory.
type Matcher struct {
	rules []rule
}

type rule struct {
	segments []string // pattern split on '/'
	negate   bool     // "!pattern"
	dirOnly  bool     // "pattern/"
	rooted   bool     // leading or inner '/': match from base, not by name
	base     string   // slash path of the directory the rule came from; "" is the root
	literal  string   // unrooted pattern without glob characters
}

// New returns an empty matcher that ignores nothing.
func New() *Matcher {
	return &Matcher{}
}

// Clone returns a copy that can be extended without touching m.
func (m *Matcher) Clone() *Matcher {
	if m == nil {
		return New()
	}
	return &Matcher{rules: slices.Clone(m.rules)}
}

// Len reports the number of parsed rules.
func (m *Matcher) Len() int {
	if m == nil {
		return 0
	}
	return len(m.rules)
}

// AddPatterns parses gitignore content whose rules are relative to base, a
// slash-separated directory below the listing root ("" or "." for the root).
func (m *Matcher) AddPatterns(content, base string) {
	base = cleanBase(base)
	for _, line := range strings.Split(content, "\n") {
		if r, ok := parseRule(strings.TrimSuffix(line, "\r"), base); ok {
			m.rules = append(m.rules, r)
		}
	}
}

// Match reports whether relPath, relative to the listing root, is ignored.
func (m *Matcher) Match(relPath string, isDir bool) bool {
	if m == nil || len(m.rules) == 0 {
		return false
	}
	relPath = path.Clean(filepath.ToSlash(relPath))

	ignored := false
	for i := range m.rules {
		if m.rules[i].matches(relPath, isDir) {
			ignored = !m.rules[i].negate
		}
	}
	return ignored
}

func cleanBase(base string) string {
	base = path.Clean(filepath.ToSlash(base))
	if base == "." || base == "/" {
		return ""
	}
	return strings.TrimPrefix(base, "./")
}

func parseRule(line, base string) (rule, bool) {
	line = trimTrailingSpaces(line)
	if line == "" || line[0] == '#' {
		return rule{}, false
	}

	r := rule{base: base}
	if line[0] == '!' {
		r.negate = true
		line = line[1:]
	}
	if strings.HasSuffix(line, "/") {
		r.dirOnly = true
		line = strings.TrimRight(line, "/")
	}
	if strings.HasPrefix(line, "/") {
		r.rooted = true
		line = line[1:]
	}
	if line == "" {
		return rule{}, false
	}
	if strings.Contains(line, "/") {
		r.rooted = true
	}

	r.segments = strings.Split(line, "/")
	if !r.rooted && !strings.ContainsAny(line, `*?[\`) {
		r.literal = line
	}
	return r, true
}

// trimTrailingSpaces drops unescaped trailing blanks.
func trimTrailingSpaces(line string) string {
	end := len(line)
	for end > 0 && line[end-1] == ' ' {
		backslashes := 0
		for j := end - 2; j >= 0 && line[j] == '\\'; j-- {
			backslashes++
		}
		if backslashes%2 == 1 {
			break
		}
		end--
	}
	return line[:end]
}

func (r *rule) matches(relPath string, isDir bool) bool {
	if r.dirOnly && !isDir {
		return false
	}

	rel := relPath
	if r.base != "" {
		var ok bool
		if rel, ok = strings.CutPrefix(relPath, r.base+"/"); !ok {
			return false
		}
	}

	if !r.rooted {
		name := path.Base(rel)
		if r.literal != "" {
			return name == r.literal
		}
		return globMatch(r.segments[0], name)
	}
	return matchSegments(r.segments, strings.Split(rel, "/"))
}

// matchSegments matches pattern segments against path segments. "**" spans
// any number of segments; a trailing "**" needs at least one.
func matchSegments(pattern, parts []string) bool {
	for len(pattern) > 0 {
		if pattern[0] == "**" {
			rest := pattern[1:]
			if len(rest) == 0 {
				return len(parts) > 0
			}
			for i := 0; i <= len(parts); i++ {
				if matchSegments(rest, parts[i:]) {
					return true
				}
			}
			return false
		}
		if len(parts) == 0 || !globMatch(pattern[0], parts[0]) {
			return false
		}
		pattern, parts = pattern[1:], parts[1:]
	}
	return len(parts) == 0
}

// globMatch matches one path segment. gitignore negates classes with '!',
// path.Match with '^'.
func globMatch(pattern, name string) bool {
	pattern = strings.ReplaceAll(pattern, "[!", "[^")
	ok, err := path.Match(pattern, name)
	return err == nil && ok
}
