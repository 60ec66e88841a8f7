package adalex

import "errors"

type Stack[T any] struct {
	data []T
}

func NewStack[T any](size int) *Stack[T] {
	return &Stack[T]{data: make([]T, 0, size)}
}

var (
	EmptyStack = errors.New("empty stack")
)

func (s *Stack[T]) Len() int {
	return len(s.data)
}

func (s *Stack[T]) Pop() (T, error) {
	if len(s.data) == 0 {
		return *new(T), EmptyStack
	}
	last := s.data[len(s.data)-1]
	s.data = s.data[:len(s.data)-1]
	return last, nil
}

func (s *Stack[T]) Top() (T, error) {
	if len(s.data) == 0 {
		return *new(T), EmptyStack
	}
	return s.data[len(s.data)-1], nil
}

func (s *Stack[T]) Push(e T) {
	s.data = append(s.data, e)
}

// Drain pops every element, top first.
func (s *Stack[T]) Drain() []T {
	var out []T
	for len(s.data) > 0 {
		e, _ := s.Pop()
		out = append(out, e)
	}
	return out
}
