package domain

import "sort"

// Selection is a set of entity ids.
type Selection map[uint64]struct{}

func NewSelection(ids ...uint64) Selection {
	s := make(Selection, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s Selection) Has(id uint64) bool {
	_, ok := s[id]
	return ok
}

func (s Selection) Add(id uint64)    { s[id] = struct{}{} }
func (s Selection) Remove(id uint64) { delete(s, id) }

// Toggle flips membership and reports whether id is now selected.
func (s Selection) Toggle(id uint64) bool {
	if s.Has(id) {
		delete(s, id)
		return false
	}
	s[id] = struct{}{}
	return true
}

func (s Selection) Len() int { return len(s) }

// IDs returns the members in ascending order.
func (s Selection) IDs() []uint64 {
	ids := make([]uint64, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (s Selection) Clear() {
	for id := range s {
		delete(s, id)
	}
}

// Clone returns an independent copy.
func (s Selection) Clone() Selection {
	return NewSelection(s.IDs()...)
}
