package model

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	KindArgument ErrorKind = iota + 1
	KindNotFound
	KindIO
)

func (k ErrorKind) String() string {
	switch k {
	case KindArgument:
		return "argument"
	case KindNotFound:
		return "not found"
	case KindIO:
		return "io"
	default:
		return "unknown"
	}
}

// Error is the only error type a run reports. Subject is the argument text,
// the unresolved input, or the file path, depending on Kind.
type Error struct {
	Kind    ErrorKind
	Subject string
	Err     error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindArgument:
		if e.Err != nil {
			return e.Err.Error()
		}
		return e.Subject
	case KindNotFound:
		return fmt.Sprintf("file '%s' does not exist", e.Subject)
	case KindIO:
		if e.Err == nil {
			return fmt.Sprintf("read %s", e.Subject)
		}
		return fmt.Sprintf("read %s: %v", e.Subject, e.Err)
	default:
		if e.Err != nil {
			return e.Err.Error()
		}
		return e.Subject
	}
}

func (e *Error) Unwrap() error { return e.Err }

func ArgumentError(err error) *Error {
	if err == nil {
		err = errors.New("invalid arguments")
	}
	return &Error{Kind: KindArgument, Subject: err.Error(), Err: err}
}

func NotFoundError(input string) *Error {
	return &Error{Kind: KindNotFound, Subject: input}
}

func IOError(path string, err error) *Error {
	return &Error{Kind: KindIO, Subject: path, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain, or 0.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
