package charclass

import "unicode"

// Kind is the single class a rune falls into. See Class.
type Kind uint8

const (
	Other Kind = iota
	Whitespace
	Numeric
	UpperAlpha
	LowerAlpha
)

func (k Kind) String() string {
	switch k {
	case Whitespace:
		return "Whitespace"
	case Numeric:
		return "Numeric"
	case UpperAlpha:
		return "UpperAlpha"
	case LowerAlpha:
		return "LowerAlpha"
	default:
		return "Other"
	}
}

func IsNumeric(r rune) bool {
	return r >= '0' && r <= '9'
}

func IsUpperAlpha(r rune) bool {
	if r >= 'A' && r <= 'Z' {
		return true
	}
	switch r {
	case 'Ä', 'Ö', 'Ü', '_':
		return true
	}
	return false
}

func IsLowerAlpha(r rune) bool {
	if r >= 'a' && r <= 'z' {
		return true
	}
	switch r {
	case 'ä', 'ö', 'ü', '_':
		return true
	}
	return false
}

func IsAlpha(r rune) bool {
	return IsUpperAlpha(r) || IsLowerAlpha(r)
}

func IsAlphanumeric(r rune) bool {
	return IsAlpha(r) || IsNumeric(r)
}

// IsWhitespace reports whether r is Unicode white space.
func IsWhitespace(r rune) bool {
	return unicode.IsSpace(r)
}

// Class returns the first class whose predicate accepts r, checked in the order
// whitespace, numeric, upper, lower. Underscore is therefore UpperAlpha.
func Class(r rune) Kind {
	switch {
	case IsWhitespace(r):
		return Whitespace
	case IsNumeric(r):
		return Numeric
	case IsUpperAlpha(r):
		return UpperAlpha
	case IsLowerAlpha(r):
		return LowerAlpha
	default:
		return Other
	}
}
