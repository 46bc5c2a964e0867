package tree

import "github.com/pkg/errors"

// Build errors. Partial trees are meaningless for validity comparison, so any
// malformed input aborts the whole build.
var (
	// ErrMalformedLine indicates a path line that does not tokenize into
	// integers.
	ErrMalformedLine = errors.New("malformed path line")

	// ErrRootMismatch indicates a line whose first token disagrees with the
	// already-established root value, or a valid-paths tree whose root does
	// not match the primary root.
	ErrRootMismatch = errors.New("root mismatch")
)

// IsMalformedLine reports whether err was caused by a malformed path line.
func IsMalformedLine(err error) bool {
	return errors.Is(err, ErrMalformedLine)
}

// IsRootMismatch reports whether err was caused by conflicting root values.
func IsRootMismatch(err error) bool {
	return errors.Is(err, ErrRootMismatch)
}
