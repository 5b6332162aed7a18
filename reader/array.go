package reader

import "strconv"

// Array grammar: '(' item (',' item)* ')'. There is no empty form: "()" reads
// ')' as the first item and then fails on the missing closer.
const (
	arrayOpen  = '('
	arrayClose = ')'
	arraySep   = ','
)

// ParseCharArray reads a parenthesized list of single runes, e.g. (a,b,c).
// Items are taken verbatim with Next: no trimming, no escapes.
func (r *Reader) ParseCharArray() ([]rune, error) {
	if r.Next() != arrayOpen {
		return nil, r.fail(MalformedArray, nil, "array not starting with %q", arrayOpen)
	}

	var items []rune
	for {
		items = append(items, r.Next())
		if r.Peek() != arraySep {
			break
		}
		r.Next()
	}

	if r.Next() != arrayClose {
		return nil, r.fail(MalformedArray, nil, "array not ending with %q", arrayClose)
	}
	return items, nil
}

// ParseIntArray reads a parenthesized list of unsigned decimal integers, e.g.
// (1,2,3). Signs and whitespace are not accepted inside the list. Items are Go
// ints, so on 64-bit platforms values up to math.MaxInt64 parse; larger ones
// fail with NumericParseFailure wrapping strconv.ErrRange.
func (r *Reader) ParseIntArray() ([]int, error) {
	if r.Next() != arrayOpen {
		return nil, r.fail(MalformedArray, nil, "array not starting with %q", arrayOpen)
	}

	var items []int
	for {
		n, err := strconv.Atoi(r.ReadNumericString())
		if err != nil {
			return nil, r.fail(NumericParseFailure, err, "array item %d", len(items))
		}
		items = append(items, n)
		if r.Peek() != arraySep {
			break
		}
		r.Next()
	}

	if r.Next() != arrayClose {
		return nil, r.fail(MalformedArray, nil, "array not ending with %q", arrayClose)
	}
	return items, nil
}
