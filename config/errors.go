package config

import (
	"fmt"
	"strings"
)

// NotAFileError is returned when a path given on the command line is not a regular file.
type NotAFileError struct {
	Path string
}

func (e *NotAFileError) Error() string {
	return fmt.Sprintf("failed to load the specified file %s as it does not exist", e.Path)
}

// NotInSearchPathError is returned when no search directory holds the file.
type NotInSearchPathError struct {
	Name string
	Dirs []string
}

func (e *NotInSearchPathError) Error() string {
	return fmt.Sprintf("failed to find %s in the search path (%s)", e.Name, strings.Join(e.Dirs, ", "))
}

// IOError wraps a failed read.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("an error occurred while reading %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// ParseError reports a file that could not be decoded. Line and Column are 1-based; zero means the
// decoder did not report a position.
type ParseError struct {
	Path   string
	Line   int
	Column int
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parsing %s failed at %d:%d: %v", e.Path, e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("parsing %s failed: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Snippet renders the offending line with a caret under the failing column.
func (e *ParseError) Snippet() string {
	if e.Line <= 0 {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if e.Line > len(lines) {
		return ""
	}
	line := strings.TrimRight(lines[e.Line-1], "\r")
	prefix := fmt.Sprintf("%4d | ", e.Line)
	caret := strings.Repeat(" ", len(prefix)+max(e.Column-1, 0)) + "^ the parser failed here"
	return prefix + line + "\n" + caret
}

// lineColumn converts the byte offset reported by encoding/json (the number of bytes read,
// including the failing one) into a 1-based line and column.
func lineColumn(src string, offset int64) (int, int) {
	offset = min(offset, int64(len(src)))
	if offset <= 0 {
		return 1, 1
	}
	before := src[:offset]
	line := strings.Count(before[:len(before)-1], "\n") + 1
	column := len(before) - 1 - strings.LastIndex(before[:len(before)-1], "\n")
	return line, column
}
