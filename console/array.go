package console

type Arr[T any] []T

func (s Arr[T]) Length() int {
	return len(s)
}

func (s *Arr[T]) Append(u ...T) {
	*s = append(*s, u...)
}

func (s *Arr[T]) Remove(i int) {
	*s = append((*s)[:i], (*s)[i+1:]...)
}

// Rotate moves the last item to the front and returns it; with
// back set it moves the first item to the end instead.
func (s *Arr[T]) Rotate(back bool) (item T) {
	size := len(*s)
	if size == 0 {
		return
	}
	if back {
		item = (*s)[0]
		*s = append((*s)[1:], item)
		return
	}
	item = (*s)[size-1]
	*s = append(Arr[T]{item}, (*s)[:size-1]...)
	return
}
