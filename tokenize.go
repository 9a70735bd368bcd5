package rcut

import (
	"bytes"
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Mode selects the kind of token a record is split into.
type Mode int

const (
	Fields Mode = iota + 1
	Bytes
	Characters
)

func (m Mode) String() string {
	switch m {
	case Fields:
		return "fields"
	case Bytes:
		return "bytes"
	case Characters:
		return "characters"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

func (m Mode) splitName() string {
	switch m {
	case Fields:
		return "whitespace"
	case Characters:
		return "character"
	}
	return m.String()
}

// Tokenizer splits one record into tokens. Tokens are sub-slices of the
// record and must not outlive it.
type Tokenizer interface {
	// Tokenize appends the tokens of rec to dst.
	Tokenize(dst [][]byte, rec []byte) ([][]byte, error)
}

// DelimSplit splits fields at each non-overlapping, leftmost occurrence of
// the delimiter. A record without delimiter is one field, a trailing
// delimiter closes an empty last field.
type DelimSplit []byte

func (d DelimSplit) Tokenize(dst [][]byte, rec []byte) ([][]byte, error) {
	if len(d) == 0 {
		return append(dst, rec), nil
	}
	for {
		i := bytes.Index(rec, d)
		if i < 0 {
			break
		}
		dst = append(dst, rec[:i:i])
		rec = rec[i+len(d):]
	}
	return append(dst, rec), nil
}

// WhitespaceSplit splits text fields at runs of Unicode white space. Leading
// and trailing white space does not produce empty fields.
type WhitespaceSplit struct{}

func (WhitespaceSplit) Tokenize(dst [][]byte, rec []byte) ([][]byte, error) {
	if !utf8.Valid(rec) {
		return dst, ErrInvalidUTF8
	}
	start := -1
	for i := 0; i < len(rec); {
		r, sz := utf8.DecodeRune(rec[i:])
		if unicode.IsSpace(r) {
			if start >= 0 {
				dst = append(dst, rec[start:i:i])
				start = -1
			}
		} else if start < 0 {
			start = i
		}
		i += sz
	}
	if start >= 0 {
		dst = append(dst, rec[start:])
	}
	return dst, nil
}

// ByteSplit makes each byte a token.
type ByteSplit struct{}

func (ByteSplit) Tokenize(dst [][]byte, rec []byte) ([][]byte, error) {
	for i := range rec {
		dst = append(dst, rec[i:i+1:i+1])
	}
	return dst, nil
}

// RuneSplit makes each Unicode code point a token.
type RuneSplit struct{}

func (RuneSplit) Tokenize(dst [][]byte, rec []byte) ([][]byte, error) {
	if !utf8.Valid(rec) {
		return dst, ErrInvalidUTF8
	}
	for len(rec) > 0 {
		_, sz := utf8.DecodeRune(rec)
		dst = append(dst, rec[:sz:sz])
		rec = rec[sz:]
	}
	return dst, nil
}

// GraphemeSplit makes each extended grapheme cluster a token.
type GraphemeSplit struct{}

func (GraphemeSplit) Tokenize(dst [][]byte, rec []byte) ([][]byte, error) {
	if !utf8.Valid(rec) {
		return dst, ErrInvalidUTF8
	}
	var cluster []byte
	state := -1
	for len(rec) > 0 {
		cluster, rec, _, state = uniseg.FirstGraphemeCluster(rec, state)
		dst = append(dst, cluster[:len(cluster):len(cluster)])
	}
	return dst, nil
}
