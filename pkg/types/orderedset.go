package types

// OrderedSet is a sequence of strings that preserves first-insertion order
// while rejecting duplicates. It backs the list fields of RouteDoc, where the
// same value may arrive from both key spellings of a metadata file.
type OrderedSet struct {
	values []string
	seen   map[string]struct{}
}

// NewOrderedSet creates an OrderedSet seeded with the given values.
func NewOrderedSet(values ...string) *OrderedSet {
	s := &OrderedSet{seen: make(map[string]struct{}, len(values))}
	s.AddAll(values)
	return s
}

// Add appends v unless it is already present. Returns true if v was added.
func (s *OrderedSet) Add(v string) bool {
	if s.seen == nil {
		s.seen = make(map[string]struct{})
	}
	if _, ok := s.seen[v]; ok {
		return false
	}
	s.seen[v] = struct{}{}
	s.values = append(s.values, v)
	return true
}

// AddAll appends every value in order, skipping duplicates.
func (s *OrderedSet) AddAll(values []string) {
	for _, v := range values {
		s.Add(v)
	}
}

// Contains reports whether v is in the set.
func (s *OrderedSet) Contains(v string) bool {
	_, ok := s.seen[v]
	return ok
}

// Len returns the number of distinct values.
func (s *OrderedSet) Len() int {
	return len(s.values)
}

// Values returns the distinct values in insertion order.
// Returns nil for an empty set so callers can distinguish "absent" from
// "present but empty" when re-encoding documents.
func (s *OrderedSet) Values() []string {
	if len(s.values) == 0 {
		return nil
	}
	out := make([]string, len(s.values))
	copy(out, s.values)
	return out
}
