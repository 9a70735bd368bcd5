package rcut

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Range list syntax
const (
	// Separates the range tokens of a range list.
	RangeSep = ","
	// Separates the bounds of an interval.
	RangeDash = "-"
	// Selects all tokens in reverse order.
	AllReversed = "~"
)

var (
	errEmptyToken   = errors.New("empty range")
	errNotNumeric   = errors.New("position is not a number")
	errZeroPosition = errors.New("positions start at 1")
)

// Range is an inclusive interval of 1-based token positions. A zero Start
// means "from the first token", a zero End means "through the last token".
// Start <= End holds whenever both are set. Inverting ranges emit their
// tokens in descending position order.
type Range struct {
	Start, End int
	Inverting  bool
}

// ParseRange parses a single range token, i.e. one of N, A-B, A-, -B, - or ~.
// A descending interval A-B with A > B is normalized to B-A with Inverting
// set.
func ParseRange(tok string) (Range, error) {
	if tok == AllReversed {
		return Range{Inverting: true}, nil
	}
	left, right, isIntv := strings.Cut(tok, RangeDash)
	if !isIntv {
		if tok == "" {
			return Range{}, &RangeError{Token: tok, err: errEmptyToken}
		}
		v, err := parsePosition(tok)
		if err != nil {
			return Range{}, &RangeError{Token: tok, err: err}
		}
		return Range{Start: v, End: v}, nil
	}
	lo, err := parseBound(left)
	if err != nil {
		return Range{}, &RangeError{Token: tok, err: err}
	}
	hi, err := parseBound(right)
	if err != nil {
		return Range{}, &RangeError{Token: tok, err: err}
	}
	if lo == 0 || hi == 0 || lo <= hi {
		return Range{Start: lo, End: hi}, nil
	}
	return Range{Start: hi, End: lo, Inverting: true}, nil
}

// parseBound returns 0 for an absent bound
func parseBound(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return parsePosition(s)
}

func parsePosition(s string) (int, error) {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("%w: '%s'", errNotNumeric, s)
		}
	}
	v, err := strconv.Atoi(s)
	switch {
	case err != nil:
		return 0, err
	case v == 0:
		return 0, errZeroPosition
	}
	return v, nil
}

// All reports whether r is the "all, reversed" range ~.
func (r Range) All() bool { return r.Start == 0 && r.End == 0 && r.Inverting }

func (r Range) String() string {
	if r.All() {
		return AllReversed
	}
	if r.Start > 0 && r.Start == r.End {
		return strconv.Itoa(r.Start)
	}
	lo, hi := r.Start, r.End
	if r.Inverting {
		lo, hi = hi, lo
	}
	var sb strings.Builder
	if lo > 0 {
		sb.WriteString(strconv.Itoa(lo))
	}
	sb.WriteString(RangeDash)
	if hi > 0 {
		sb.WriteString(strconv.Itoa(hi))
	}
	return sb.String()
}

// bounds clamps r to n tokens. The result is 1-based and inclusive, lo > hi
// means r selects nothing.
func (r Range) bounds(n int) (lo, hi int) {
	lo, hi = 1, n
	if r.Start > 0 {
		lo = r.Start
	}
	if r.End > 0 && r.End < n {
		hi = r.End
	}
	return lo, hi
}

// AppendSelected appends the tokens selected by r to dst. Positions beyond
// len(tokens) are clamped, never an error.
func (r Range) AppendSelected(dst, tokens [][]byte) [][]byte {
	lo, hi := r.bounds(len(tokens))
	if lo > hi {
		return dst
	}
	if r.Inverting {
		for i := hi; i >= lo; i-- {
			dst = append(dst, tokens[i-1])
		}
		return dst
	}
	return append(dst, tokens[lo-1:hi]...)
}

// Unmark clears the positions covered by r in keep. Inverting has no effect
// here.
func (r Range) Unmark(keep []bool) {
	lo, hi := r.bounds(len(keep))
	for i := lo; i <= hi; i++ {
		keep[i-1] = false
	}
}

// RangeList is an ordered list of ranges. Order determines output order for
// normal selection, duplicates select tokens repeatedly.
type RangeList []Range

// ParseRangeList parses a comma-separated list of range tokens.
func ParseRangeList(list string) (RangeList, error) {
	toks := strings.Split(list, RangeSep)
	res := make(RangeList, 0, len(toks))
	for _, tok := range toks {
		r, err := ParseRange(tok)
		if err != nil {
			return nil, err
		}
		res = append(res, r)
	}
	return res, nil
}

func (rl RangeList) String() string {
	strs := make([]string, len(rl))
	for i, r := range rl {
		strs[i] = r.String()
	}
	return strings.Join(strs, RangeSep)
}
