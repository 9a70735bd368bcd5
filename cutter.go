package rcut

import (
	"errors"
	"fmt"
	"io"
)

// Config holds the options of a Cutter. It is read once by NewCutter.
type Config struct {
	Mode Mode
	// Comma-separated range list, see package documentation
	Ranges string
	// Field delimiter. Nil splits fields at white space.
	Delimiter []byte
	// Nil joins with the delimiter if set, otherwise with TAB for fields and
	// with nothing for bytes and characters.
	Joiner *string

	Complement bool
	// Drop records without any delimiter. Fields mode only.
	OnlyDelimited bool
	// Use NUL instead of newline as record terminator for input and output.
	ZeroTerminated bool
	// Split characters into grapheme clusters instead of code points.
	// Characters mode only.
	Graphemes bool
	// Maximum record length in bytes, <= 0 is unlimited
	MaxRecord int
}

// SkipFunc is called for each record that is skipped because it cannot be
// split.
type SkipFunc func(recNo int, rec []byte, err error)

// Cutter selects parts of records according to a Config. A Cutter keeps
// buffers between records and must not be used concurrently.
type Cutter struct {
	// OnSkip, if set, is called for records skipped with an *EncodingError
	OnSkip SkipFunc

	mode      Mode
	tokenizer Tokenizer
	sel       Selector
	onlyDelim bool
	term      byte
	maxRecord int

	toks [][]byte
	out  []byte
}

// Stats counts the records processed by Cutter.Cut.
type Stats struct {
	Records  int
	Written  int
	Filtered int
	Skipped  int
}

func NewCutter(cfg Config) (*Cutter, error) {
	switch cfg.Mode {
	case Fields, Bytes, Characters:
	case 0:
		return nil, configErrorf("",
			"must specify precisely one of %s, %s or %s", Fields, Bytes, Characters)
	default:
		return nil, configErrorf("mode", "unknown %s", cfg.Mode)
	}
	ranges, err := ParseRangeList(cfg.Ranges)
	if err != nil {
		return nil, &ConfigError{Option: cfg.Mode.String(), err: err}
	}
	switch {
	case cfg.Delimiter != nil && len(cfg.Delimiter) == 0:
		return nil, configErrorf("delimiter", "must not be empty")
	case cfg.OnlyDelimited && cfg.Mode != Fields:
		return nil, configErrorf("only-delimited",
			"suppressing undelimited records makes sense only for %s", Fields)
	case cfg.Graphemes && cfg.Mode != Characters:
		return nil, configErrorf("graphemes", "applies only to %s", Characters)
	}
	c := &Cutter{
		mode:      cfg.Mode,
		onlyDelim: cfg.OnlyDelimited,
		term:      NewlineTerm,
		maxRecord: cfg.MaxRecord,
		sel: Selector{
			Ranges:     ranges,
			Complement: cfg.Complement,
		},
	}
	if cfg.ZeroTerminated {
		c.term = ZeroTerm
	}
	switch cfg.Mode {
	case Fields:
		if cfg.Delimiter == nil {
			c.tokenizer = WhitespaceSplit{}
		} else {
			c.tokenizer = DelimSplit(cfg.Delimiter)
		}
	case Bytes:
		c.tokenizer = ByteSplit{}
	case Characters:
		if cfg.Graphemes {
			c.tokenizer = GraphemeSplit{}
		} else {
			c.tokenizer = RuneSplit{}
		}
	}
	switch {
	case cfg.Joiner != nil:
		c.sel.Joiner = []byte(*cfg.Joiner)
	case cfg.Delimiter != nil:
		c.sel.Joiner = cfg.Delimiter
	case cfg.Mode == Fields:
		c.sel.Joiner = []byte{'\t'}
	}
	return c, nil
}

func (c *Cutter) Mode() Mode { return c.mode }

func (c *Cutter) Ranges() RangeList { return c.sel.Ranges }

func (c *Cutter) Joiner() []byte { return c.sel.Joiner }

func (c *Cutter) Terminator() byte { return c.term }

// Record appends the selection from rec to dst. If keep is false, rec was
// filtered or skipped and produces no output record. Skipped records return
// an *EncodingError.
func (c *Cutter) Record(dst, rec []byte) (out []byte, keep bool, err error) {
	c.toks, err = c.tokenizer.Tokenize(c.toks[:0], rec)
	defer clear(c.toks)
	if err != nil {
		return dst, false, &EncodingError{Mode: c.mode, err: err}
	}
	if c.onlyDelim && len(c.toks) <= 1 {
		return dst, false, nil
	}
	return c.sel.Append(dst, c.toks), true, nil
}

// Cut reads all records from r and writes the selections to w. Only I/O
// errors are returned, skipped records are reported to OnSkip.
func (c *Cutter) Cut(w io.Writer, r io.Reader) (stats Stats, err error) {
	rr := NewRecordReader(r, c.term, c.maxRecord)
	rw := NewRecordWriter(w, c.term)
	for {
		rec, err := rr.Next()
		switch {
		case errors.Is(err, io.EOF):
			return stats, rw.Flush()
		case err != nil:
			rw.Flush()
			return stats, fmt.Errorf("read record %d: %w", rr.Count()+1, err)
		}
		stats.Records++
		var keep bool
		c.out, keep, err = c.Record(c.out[:0], rec)
		switch {
		case err != nil:
			stats.Skipped++
			var encErr *EncodingError
			if errors.As(err, &encErr) {
				encErr.Record = rr.Count()
			}
			if c.OnSkip != nil {
				c.OnSkip(rr.Count(), rec, err)
			}
			continue
		case !keep:
			stats.Filtered++
			continue
		}
		if err = rw.Write(c.out); err != nil {
			return stats, fmt.Errorf("write record %d: %w", rr.Count(), err)
		}
		stats.Written++
	}
}
