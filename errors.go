package embed

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidOptions is returned by New when an option can't produce a
	// well-formed output file.
	ErrInvalidOptions = errors.New("invalid options")

	// ErrMalformed is returned by Extract when the data wasn't produced by an
	// Embedder.
	ErrMalformed = errors.New("malformed generated file")
)

// Kind classifies the failures of an Embed call.
type Kind int

const (
	// KindRead means the input file was missing, unreadable, or not text.
	KindRead Kind = iota + 1
	// KindWrite means the output file couldn't be created or written.
	KindWrite
)

func (k Kind) String() string {
	switch k {
	case KindRead:
		return "read"
	case KindWrite:
		return "write"
	default:
		return "unknown"
	}
}

// Error is returned by Embed. Its message is the message of the underlying
// error, usually an *os.PathError, so it reads the same as the operating
// system diagnostic.
type Error struct {
	Kind Kind
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e == nil || e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

// Cause allows errors.Cause to reach the underlying error.
func (e *Error) Cause() error { return e.Err }

func (e *Error) Unwrap() error { return e.Err }

// IsRead reports whether err is a failure to read the input file.
func IsRead(err error) bool {
	return isKind(err, KindRead)
}

// IsWrite reports whether err is a failure to write the output file.
func IsWrite(err error) bool {
	return isKind(err, KindWrite)
}

func isKind(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}

func readError(path string, err error) error {
	return &Error{Kind: KindRead, Path: path, Err: err}
}

func writeError(path string, err error) error {
	return &Error{Kind: KindWrite, Path: path, Err: err}
}
