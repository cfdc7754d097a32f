// Package ignore implements glob-like exclude patterns for directory
// trees.
//
// A pattern is a slash separated list of segments. A segment is either
// a literal name, a single-segment wildcard expression (`*`, `?` and
// character classes, matching within one path segment only) or the
// special segment `**` that spans any number of segments, including
// zero. A leading slash anchors the pattern to the walk root;
// otherwise the pattern may match at any depth. A trailing slash is
// accepted and ignored.
package ignore

import (
	"bufio"
	"fmt"
	"os"
	"path"
	"strings"
)

// PatternError describes a malformed exclude pattern. It is reported
// by Compile before any filesystem work starts.
type PatternError struct {
	// Pattern is the offending pattern as the user wrote it.
	Pattern string
	// Reason explains what is wrong with it.
	Reason string
}

// Error returns error message.
func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %s", e.Pattern, e.Reason)
}

type segmentKind int

const (
	segLiteral segmentKind = iota
	segGlob
	segAnyDirs
)

// segment is one compiled path segment of a pattern.
type segment struct {
	kind segmentKind
	text string
}

// rule is one compiled pattern.
type rule struct {
	raw      string
	anchored bool
	segments []segment
}

// Matcher is a compiled, reusable set of exclude patterns.
type Matcher struct {
	rules []rule
}

// Compile validates the patterns and builds a matcher from them.
// Malformed patterns are reported as *PatternError. Duplicate
// patterns are collapsed. An empty set is valid and matches nothing.
func Compile(patterns []string) (*Matcher, error) {
	matcher := &Matcher{}
	seen := make(map[string]bool)

	for _, pattern := range patterns {
		if seen[pattern] {
			continue
		}
		seen[pattern] = true

		compiled, err := compileRule(pattern)
		if err != nil {
			return nil, err
		}
		matcher.rules = append(matcher.rules, compiled)
	}

	return matcher, nil
}

func compileRule(pattern string) (rule, error) {
	compiled := rule{raw: pattern}

	trimmed := pattern
	if strings.HasPrefix(trimmed, "/") {
		compiled.anchored = true
		trimmed = strings.TrimPrefix(trimmed, "/")
	}
	trimmed = strings.TrimSuffix(trimmed, "/")

	if strings.TrimSpace(trimmed) == "" {
		return compiled, &PatternError{Pattern: pattern, Reason: "pattern is empty"}
	}

	for _, part := range strings.Split(trimmed, "/") {
		if part == "" {
			return compiled, &PatternError{
				Pattern: pattern,
				Reason:  "empty path segment",
			}
		}

		switch {
		case part == "**":
			compiled.segments = append(compiled.segments, segment{kind: segAnyDirs})
		case strings.Contains(part, "**"):
			return compiled, &PatternError{
				Pattern: pattern,
				Reason:  "`**` must be a whole path segment",
			}
		case strings.ContainsAny(part, `*?[\`):
			if reason := validateGlobSegment(part); reason != "" {
				return compiled, &PatternError{Pattern: pattern, Reason: reason}
			}
			compiled.segments = append(compiled.segments, segment{kind: segGlob, text: part})
		default:
			compiled.segments = append(compiled.segments,
				segment{kind: segLiteral, text: part})
		}
	}

	return compiled, nil
}

// validateGlobSegment checks that a wildcard segment is well formed,
// so that matching can never fail later. Returns a reason string for
// malformed segments and "" for valid ones.
func validateGlobSegment(part string) string {
	for i := 0; i < len(part); i++ {
		switch part[i] {
		case '\\':
			i++
			if i >= len(part) {
				return "trailing backslash"
			}
		case '[':
			i++
			if i < len(part) && part[i] == '^' {
				i++
			}
			closed := false
			rangeChars := 0
			for ; i < len(part); i++ {
				if part[i] == '\\' {
					i++
					if i >= len(part) {
						return "trailing backslash"
					}
					rangeChars++
					continue
				}
				if part[i] == ']' && rangeChars > 0 {
					closed = true
					break
				}
				rangeChars++
			}
			if !closed {
				return "unterminated character class"
			}
		}
	}
	return ""
}

// Empty reports whether the matcher has no patterns.
func (m *Matcher) Empty() bool {
	return m == nil || len(m.rules) == 0
}

// Patterns returns the source patterns of the matcher.
func (m *Matcher) Patterns() []string {
	if m == nil {
		return nil
	}
	patterns := make([]string, 0, len(m.rules))
	for _, r := range m.rules {
		patterns = append(patterns, r.raw)
	}
	return patterns
}

// Match reports whether relPath is excluded by any pattern. The path
// must be slash separated and relative to the walk root. Match tests
// the path itself only; excluding a directory prunes its subtree at
// the walking side.
func (m *Matcher) Match(relPath string) bool {
	if m.Empty() {
		return false
	}

	relPath = strings.Trim(path.Clean(relPath), "/")
	if relPath == "." || relPath == "" {
		return false
	}
	parts := strings.Split(relPath, "/")

	for _, r := range m.rules {
		if r.match(parts) {
			return true
		}
	}
	return false
}

func (r *rule) match(parts []string) bool {
	if r.anchored {
		return matchSegments(r.segments, parts)
	}
	// An unanchored pattern may start at any depth.
	for i := range parts {
		if matchSegments(r.segments, parts[i:]) {
			return true
		}
	}
	return false
}

func matchSegments(segments []segment, parts []string) bool {
	if len(segments) == 0 {
		return len(parts) == 0
	}

	if segments[0].kind == segAnyDirs {
		for i := 0; i <= len(parts); i++ {
			if matchSegments(segments[1:], parts[i:]) {
				return true
			}
		}
		return false
	}

	if len(parts) == 0 || !matchSegment(segments[0], parts[0]) {
		return false
	}
	return matchSegments(segments[1:], parts[1:])
}

func matchSegment(s segment, name string) bool {
	if s.kind == segLiteral {
		return s.text == name
	}
	// The expression was validated at compile time.
	matched, _ := path.Match(s.text, name)
	return matched
}

// ReadPatternFile reads patterns from a file, one per line. Blank
// lines and lines starting with '#' are skipped.
func ReadPatternFile(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var patterns []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %q: %s", filePath, err)
	}

	return patterns, nil
}
