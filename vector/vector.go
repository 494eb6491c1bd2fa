// Package vector implements a growable array of ints with explicit
// capacity management.
package vector

import (
	"cmp"

	"golang.org/x/exp/slices"
)

// NotFound is returned by IndexOf and LastIndexOf when no element matches.
const NotFound = -1

// Vector is a growable array of ints. len(buf) is the capacity and only
// buf[:n] holds elements. The zero value is an empty vector ready to use.
type Vector struct {
	buf []int
	n   int
}

func New() *Vector {
	return &Vector{}
}

// NewWithCapacity returns an empty vector with room for capacity
// elements. It panics if capacity is negative, like make.
func NewWithCapacity(capacity int) *Vector {
	return &Vector{buf: make([]int, capacity)}
}

// Of returns a vector holding a copy of values.
func Of(values ...int) *Vector {
	return &Vector{buf: slices.Clone(values), n: len(values)}
}

func (v *Vector) Len() int {
	return v.n
}

func (v *Vector) Cap() int {
	return len(v.buf)
}

// Clone returns a deep copy of v with the same capacity.
func (v *Vector) Clone() *Vector {
	c := &Vector{buf: make([]int, len(v.buf)), n: v.n}
	copy(c.buf, v.buf[:v.n])
	return c
}

// Assign replaces the contents of v with a copy of src.
func (v *Vector) Assign(src *Vector) {
	if v == src {
		return
	}
	v.buf = make([]int, len(src.buf))
	v.n = src.n
	copy(v.buf, src.buf[:src.n])
}

// Values returns a copy of the logical elements. It is never nil.
func (v *Vector) Values() []int {
	return append(make([]int, 0, v.n), v.buf[:v.n]...)
}

func (v *Vector) ensureCapacity(capacity int) {
	if capacity <= len(v.buf) {
		return
	}
	buf := make([]int, capacity)
	copy(buf, v.buf[:v.n])
	v.buf = buf
}

// Reserve grows the capacity to at least capacity. It never shrinks.
func (v *Vector) Reserve(capacity int) {
	v.ensureCapacity(capacity)
}

// TrimToSize reallocates the buffer so that Cap() == Len().
func (v *Vector) TrimToSize() {
	if len(v.buf) == v.n {
		return
	}
	buf := make([]int, v.n)
	copy(buf, v.buf[:v.n])
	v.buf = buf
}

func (v *Vector) grow() {
	if v.n < len(v.buf) {
		return
	}
	v.ensureCapacity(max(v.n+1, 2*len(v.buf)))
}

// Insert places value at index, shifting later elements right.
// index == Len() appends.
func (v *Vector) Insert(index, value int) error {
	if index < 0 || index > v.n {
		return &IndexError{Op: "insert", Index: index, Bound: v.n + 1}
	}
	v.grow()
	copy(v.buf[index+1:v.n+1], v.buf[index:v.n])
	v.buf[index] = value
	v.n++
	return nil
}

func (v *Vector) Append(values ...int) {
	v.ensureCapacity(v.n + len(values))
	for _, x := range values {
		v.buf[v.n] = x
		v.n++
	}
}

// RemoveAt deletes the element at index, shifting later elements left.
func (v *Vector) RemoveAt(index int) error {
	if index < 0 || index >= v.n {
		return &IndexError{Op: "remove", Index: index, Bound: v.n}
	}
	copy(v.buf[index:v.n-1], v.buf[index+1:v.n])
	v.n--
	return nil
}

// RemoveByValue deletes elements equal to value scanning left to right.
// Unless removeAll is set it stops after the first match. It returns the
// number of elements removed.
func (v *Vector) RemoveByValue(value int, removeAll bool) int {
	removed := 0
	for i := 0; i < v.n; {
		if v.buf[i] != value {
			i++
			continue
		}
		copy(v.buf[i:v.n-1], v.buf[i+1:v.n])
		v.n--
		removed++
		if !removeAll {
			break
		}
	}
	return removed
}

// PopFront removes and returns the first element.
func (v *Vector) PopFront() (int, error) {
	if v.n == 0 {
		return 0, &IndexError{Op: "pop front", Index: 0, Bound: 0}
	}
	x := v.buf[0]
	return x, v.RemoveAt(0)
}

// PopBack removes and returns the last element.
func (v *Vector) PopBack() (int, error) {
	if v.n == 0 {
		return 0, &IndexError{Op: "pop back", Index: 0, Bound: 0}
	}
	v.n--
	return v.buf[v.n], nil
}

// Clear drops all elements and keeps the capacity.
func (v *Vector) Clear() {
	v.n = 0
}

func (v *Vector) At(index int) (int, error) {
	if index < 0 || index >= v.n {
		return 0, &IndexError{Op: "at", Index: index, Bound: v.n}
	}
	return v.buf[index], nil
}

func (v *Vector) Set(index, value int) error {
	if index < 0 || index >= v.n {
		return &IndexError{Op: "set", Index: index, Bound: v.n}
	}
	v.buf[index] = value
	return nil
}

func (v *Vector) IndexOf(value int) int {
	return slices.Index(v.buf[:v.n], value)
}

func (v *Vector) LastIndexOf(value int) int {
	for i := v.n - 1; i >= 0; i-- {
		if v.buf[i] == value {
			return i
		}
	}
	return NotFound
}

func (v *Vector) Contains(value int) bool {
	return v.IndexOf(value) != NotFound
}

func (v *Vector) Reverse() {
	slices.Reverse(v.buf[:v.n])
}

func (v *Vector) SortAsc() {
	slices.Sort(v.buf[:v.n])
}

func (v *Vector) SortDesc() {
	slices.SortFunc(v.buf[:v.n], func(a, b int) int {
		return -cmp.Compare(a, b)
	})
}

// Equal reports whether both vectors hold the same elements in the same
// order. Capacity is ignored and a nil vector equals an empty one.
func (v *Vector) Equal(other *Vector) bool {
	return slices.Equal(v.elems(), other.elems())
}

func (v *Vector) elems() []int {
	if v == nil {
		return nil
	}
	return v.buf[:v.n]
}
