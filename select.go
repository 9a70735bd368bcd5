package rcut

// Select joins the tokens selected by each range of rl, in list order.
func Select(rl RangeList, tokens [][]byte, joiner []byte) []byte {
	s := Selector{Ranges: rl, Joiner: joiner}
	return s.Append(nil, tokens)
}

// SelectComplement joins the tokens not selected by any range of rl, in
// record order.
func SelectComplement(rl RangeList, tokens [][]byte, joiner []byte) []byte {
	s := Selector{Ranges: rl, Joiner: joiner, Complement: true}
	return s.Append(nil, tokens)
}

// Selector applies a range list to token sequences. The zero value selects
// nothing. A Selector keeps buffers between calls and must not be used
// concurrently.
type Selector struct {
	Ranges     RangeList
	Complement bool
	Joiner     []byte

	sel  [][]byte
	keep []bool
}

// Append appends the joined selection from tokens to dst.
func (s *Selector) Append(dst []byte, tokens [][]byte) []byte {
	if s.Complement {
		s.sel = s.complement(s.sel[:0], tokens)
	} else {
		s.sel = s.selection(s.sel[:0], tokens)
	}
	dst = appendJoin(dst, s.sel, s.Joiner)
	clear(s.sel)
	return dst
}

func (s *Selector) selection(dst, tokens [][]byte) [][]byte {
	for _, r := range s.Ranges {
		dst = r.AppendSelected(dst, tokens)
	}
	return dst
}

func (s *Selector) complement(dst, tokens [][]byte) [][]byte {
	if cap(s.keep) < len(tokens) {
		s.keep = make([]bool, len(tokens))
	}
	keep := s.keep[:len(tokens)]
	for i := range keep {
		keep[i] = true
	}
	for _, r := range s.Ranges {
		r.Unmark(keep)
	}
	for i, k := range keep {
		if k {
			dst = append(dst, tokens[i])
		}
	}
	return dst
}

func appendJoin(dst []byte, tokens [][]byte, joiner []byte) []byte {
	for i, t := range tokens {
		if i > 0 {
			dst = append(dst, joiner...)
		}
		dst = append(dst, t...)
	}
	return dst
}
