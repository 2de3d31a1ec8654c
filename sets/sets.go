// Package sets provides an insertion-ordered set whose equality is defined by a key function.
package sets

// Keyed is a set of T where two elements are equal when their keys are equal.
// The first occurrence of a key wins; order of first insertion is kept.
type Keyed[T any, K comparable] struct {
	key   func(T) K
	index map[K]int
	items []T
}

// New builds a set from items, dropping later duplicates.
func New[T any, K comparable](key func(T) K, items ...T) *Keyed[T, K] {
	s := &Keyed[T, K]{key: key, index: make(map[K]int, len(items))}
	for _, it := range items {
		s.Add(it)
	}
	return s
}

// Of is New for element types that are their own key.
func Of[T comparable](items ...T) *Keyed[T, T] {
	return New(func(v T) T { return v }, items...)
}

// Add inserts it unless an element with the same key is present. Reports whether it was added.
func (s *Keyed[T, K]) Add(it T) bool {
	k := s.key(it)
	if _, ok := s.index[k]; ok {
		return false
	}
	s.index[k] = len(s.items)
	s.items = append(s.items, it)
	return true
}

// Remove deletes the element keyed k. Reports whether something was removed.
func (s *Keyed[T, K]) Remove(k K) bool {
	i, ok := s.index[k]
	if !ok {
		return false
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	delete(s.index, k)
	for j := i; j < len(s.items); j++ {
		s.index[s.key(s.items[j])] = j
	}
	return true
}

// Items returns a copy of the elements; never nil.
func (s *Keyed[T, K]) Items() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}
