package vector

import (
	"bufio"
	"encoding/json"
	"io"
	"strconv"
	"strings"
)

// String renders the elements as "[1, 2, 3]".
func (v *Vector) String() string {
	var b strings.Builder
	v.WriteTo(&b)
	return b.String()
}

func (v *Vector) WriteTo(w io.Writer) (int64, error) {
	buf := make([]byte, 0, 2+4*v.n)
	buf = append(buf, '[')
	for i, x := range v.buf[:v.n] {
		if i > 0 {
			buf = append(buf, ", "...)
		}
		buf = strconv.AppendInt(buf, int64(x), 10)
	}
	buf = append(buf, ']')
	n, err := w.Write(buf)
	return int64(n), err
}

// ReadInts appends whitespace separated integers read from r until EOF
// or the first token that is not an integer. Existing elements are
// kept. It returns how many values were appended; values read before a
// bad token stay in v and the error is a *SyntaxError.
func (v *Vector) ReadInts(r io.Reader) (int, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	count := 0
	for sc.Scan() {
		tok := sc.Text()
		x, err := strconv.Atoi(tok)
		if err != nil {
			return count, &SyntaxError{Token: tok, Err: err}
		}
		if err := v.Insert(v.n, x); err != nil {
			return count, err
		}
		count++
	}
	return count, sc.Err()
}

// Parse reads a new vector from r. See ReadInts.
func Parse(r io.Reader) (*Vector, error) {
	v := New()
	_, err := v.ReadInts(r)
	return v, err
}

func (v *Vector) MarshalJSON() ([]byte, error) {
	if v.n == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal(v.buf[:v.n])
}

// UnmarshalJSON replaces the contents of v with a JSON array of ints.
func (v *Vector) UnmarshalJSON(data []byte) error {
	var values []int
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	v.buf = values
	v.n = len(values)
	return nil
}
