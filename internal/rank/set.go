package rank

import (
	"container/heap"
	"fmt"
	"math"

	"xorcrack/internal/domain"
)

// Entry is a value with its score.
type Entry[T any] struct {
	Score float64
	Value T
}

// Set is a max-heap of entries keyed on Score.
type Set[T any] struct {
	h entries[T]
}

// New returns an empty set. less orders values with equal scores; the value
// for which less reports true ranks first. A nil less leaves ties unordered.
func New[T any](less func(a, b T) bool) *Set[T] {
	return &Set[T]{h: entries[T]{less: less}}
}

// Push inserts v with the given score in O(log n).
func (s *Set[T]) Push(score float64, v T) error {
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return fmt.Errorf("%w: %v", domain.ErrDegenerateScore, score)
	}
	heap.Push(&s.h, Entry[T]{Score: score, Value: v})
	return nil
}

// Peek returns the best entry without removing it.
func (s *Set[T]) Peek() (Entry[T], bool) {
	if len(s.h.items) == 0 {
		return Entry[T]{}, false
	}
	return s.h.items[0], true
}

// Pop removes and returns the best entry.
func (s *Set[T]) Pop() (Entry[T], bool) {
	if len(s.h.items) == 0 {
		return Entry[T]{}, false
	}
	return heap.Pop(&s.h).(Entry[T]), true
}

// Len returns the number of entries.
func (s *Set[T]) Len() int { return len(s.h.items) }

// Top returns up to n best entries, best first, leaving s unchanged.
// n <= 0 returns every entry.
func (s *Set[T]) Top(n int) []Entry[T] {
	if n <= 0 || n > s.Len() {
		n = s.Len()
	}
	cp := entries[T]{
		items: append([]Entry[T](nil), s.h.items...),
		less:  s.h.less,
	}
	out := make([]Entry[T], 0, n)
	for len(out) < n {
		out = append(out, heap.Pop(&cp).(Entry[T]))
	}
	return out
}

// entries implements heap.Interface with the best entry at index 0.
type entries[T any] struct {
	items []Entry[T]
	less  func(a, b T) bool
}

func (h entries[T]) Len() int { return len(h.items) }

func (h entries[T]) Less(i, j int) bool {
	a, b := h.items[i], h.items[j]
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	if h.less == nil {
		return false
	}
	return h.less(a.Value, b.Value)
}

func (h entries[T]) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *entries[T]) Push(x any) { h.items = append(h.items, x.(Entry[T])) }

func (h *entries[T]) Pop() any {
	old := h.items
	n := len(old)
	it := old[n-1]
	var zero Entry[T]
	old[n-1] = zero
	h.items = old[:n-1]
	return it
}
