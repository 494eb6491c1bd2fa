package main

import (
	"fmt"
	"io"

	"github.com/aarrwnh/intvec/vector"
)

// demo fills v with five values in [1,10] and prints it after each step.
func demo(w io.Writer, v *vector.Vector, src vector.Source) error {
	if err := v.RandomFill(src, 5, 1, 10); err != nil {
		return err
	}
	fmt.Fprintf(w, "Initial vector: %v\n", v)

	if err := v.Insert(2, 42); err != nil {
		return err
	}
	fmt.Fprintf(w, "After Insert: %v\n", v)

	if err := v.RemoveAt(3); err != nil {
		return err
	}
	fmt.Fprintf(w, "After RemoveAt: %v\n", v)

	v.Reverse()
	fmt.Fprintf(w, "After Reverse: %v\n", v)

	v.SortAsc()
	fmt.Fprintf(w, "After SortAsc: %v\n", v)
	return nil
}
