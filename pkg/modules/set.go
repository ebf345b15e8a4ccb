package modules

// OrderedSet holds unique module names in insertion order.
// The zero value is ready to use.
type OrderedSet struct {
	index map[string]struct{}
	items []string
}

// NewOrderedSet creates a set holding items, keeping the first occurrence of each.
func NewOrderedSet(items ...string) *OrderedSet {
	s := &OrderedSet{}
	for _, item := range items {
		s.Add(item)
	}
	return s
}

// Add appends item unless it is already present. It reports whether the item was added.
func (s *OrderedSet) Add(item string) bool {
	if s.index == nil {
		s.index = make(map[string]struct{})
	}
	if _, ok := s.index[item]; ok {
		return false
	}
	s.index[item] = struct{}{}
	s.items = append(s.items, item)
	return true
}

// Items returns a copy of the items in insertion order. It is never nil.
func (s *OrderedSet) Items() []string {
	items := make([]string, len(s.items))
	copy(items, s.items)
	return items
}
