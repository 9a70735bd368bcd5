package rcut

import (
	"bufio"
	"bytes"
	"io"
	"math"
)

// Record terminators
const (
	NewlineTerm = '\n'
	ZeroTerm    = 0
)

const startRecordBuf = 4096

// RecordReader reads terminator separated records. The record returned by
// Next is only valid up to the next call to Next.
type RecordReader struct {
	scn  *bufio.Scanner
	term byte
	n    int
}

// NewRecordReader creates a reader for records terminated by term. Records
// longer than maxRecord bytes fail with bufio.ErrTooLong. If maxRecord <= 0
// record length is not limited.
func NewRecordReader(r io.Reader, term byte, maxRecord int) *RecordReader {
	limit := math.MaxInt
	if maxRecord > 0 {
		limit = maxRecord + 1 // room for the terminator
	}
	rr := &RecordReader{
		scn:  bufio.NewScanner(r),
		term: term,
	}
	rr.scn.Buffer(make([]byte, 0, min(startRecordBuf, limit)), limit)
	rr.scn.Split(rr.scanRecords)
	return rr
}

// Next returns the next record without its terminator. At the end of input
// Next returns io.EOF.
func (rr *RecordReader) Next() ([]byte, error) {
	if !rr.scn.Scan() {
		if err := rr.scn.Err(); err != nil {
			return nil, err
		}
		return nil, io.EOF
	}
	rr.n++
	return rr.scn.Bytes(), nil
}

// Count returns the number of records read so far.
func (rr *RecordReader) Count() int { return rr.n }

func (rr *RecordReader) scanRecords(data []byte, atEOF bool) (advance int, token []byte, err error) {
	// modificated version of bufio.ScanLines
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, rr.term); i >= 0 {
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// RecordWriter writes records followed by a terminator. A record is never
// split across flushes of the underlying buffer unless it is larger than the
// buffer itself.
type RecordWriter struct {
	w    *bufio.Writer
	term byte
}

func NewRecordWriter(w io.Writer, term byte) *RecordWriter {
	return &RecordWriter{w: bufio.NewWriter(w), term: term}
}

// Write writes rec and the terminator.
func (rw *RecordWriter) Write(rec []byte) error {
	if len(rec)+1 > rw.w.Available() && rw.w.Buffered() > 0 {
		if err := rw.w.Flush(); err != nil {
			return err
		}
	}
	if _, err := rw.w.Write(rec); err != nil {
		return err
	}
	return rw.w.WriteByte(rw.term)
}

func (rw *RecordWriter) Flush() error { return rw.w.Flush() }
