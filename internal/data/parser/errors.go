package parser

import "fmt"

// ErrorKind classifies why a session file was rejected. Every kind is fatal
// to the file but never to a directory-wide scan.
type ErrorKind int

const (
	ErrNotFound ErrorKind = iota
	ErrPermissionDenied
	ErrEmptyFile
	ErrMalformedJSON
	ErrSchemaViolation
)

func (k ErrorKind) String() string {
	switch k {
	case ErrNotFound:
		return "NotFound"
	case ErrPermissionDenied:
		return "PermissionDenied"
	case ErrEmptyFile:
		return "EmptyFile"
	case ErrMalformedJSON:
		return "MalformedJson"
	case ErrSchemaViolation:
		return "SchemaViolation"
	default:
		return "Unknown"
	}
}

// Error is a per-file parse failure.
type Error struct {
	Kind   ErrorKind
	Path   string
	Reason string
	Err    error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Kind, e.Path)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the error kind when err is a parser error, and false
// otherwise.
func KindOf(err error) (ErrorKind, bool) {
	if perr, ok := err.(*Error); ok {
		return perr.Kind, true
	}
	return 0, false
}
