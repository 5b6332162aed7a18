package reader

import (
	"errors"
	"fmt"
	"strings"
)

// Kind identifies which rule a failing operation broke.
type Kind uint8

const (
	OutOfRange Kind = iota + 1
	UnexpectedChar
	MalformedArray
	NumericParseFailure
)

var (
	ErrOutOfRange     = errors.New("position out of range")
	ErrUnexpectedChar = errors.New("unexpected character")
	ErrMalformedArray = errors.New("malformed array")
	ErrNumericParse   = errors.New("invalid integer")
)

func (k Kind) String() string {
	switch k {
	case OutOfRange:
		return "OutOfRange"
	case UnexpectedChar:
		return "UnexpectedChar"
	case MalformedArray:
		return "MalformedArray"
	case NumericParseFailure:
		return "NumericParseFailure"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

func (k Kind) sentinel() error {
	switch k {
	case OutOfRange:
		return ErrOutOfRange
	case UnexpectedChar:
		return ErrUnexpectedChar
	case MalformedArray:
		return ErrMalformedArray
	case NumericParseFailure:
		return ErrNumericParse
	default:
		return nil
	}
}

// Error is returned by every failing Reader operation.
//
// errors.Is matches the Kind's sentinel (ErrOutOfRange, ...). When Err is set,
// errors.Is and errors.As also reach it, e.g. a *strconv.NumError.
type Error struct {
	Kind Kind
	// Pos is the cursor position when the failure was detected.
	Pos int
	Msg string
	// State is Reader.String() captured at detection time.
	State string
	Err   error
}

func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString("reader: ")
	if s := e.Kind.sentinel(); s != nil {
		sb.WriteString(s.Error())
	} else {
		sb.WriteString(e.Kind.String())
	}
	if e.Msg != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Msg)
	}
	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}
	if e.State != "" {
		sb.WriteString(" (")
		sb.WriteString(e.State)
		sb.WriteString(")")
	}
	return sb.String()
}

func (e *Error) Unwrap() []error {
	out := make([]error, 0, 2)
	if s := e.Kind.sentinel(); s != nil {
		out = append(out, s)
	}
	if e.Err != nil {
		out = append(out, e.Err)
	}
	return out
}

func (r *Reader) fail(kind Kind, cause error, format string, args ...any) *Error {
	return &Error{
		Kind:  kind,
		Pos:   r.pos,
		Msg:   fmt.Sprintf(format, args...),
		State: r.String(),
		Err:   cause,
	}
}
