package stage

// Selection is the single slot recording the most recently chosen item. It
// holds a weak reference: if the item is removed, Get reports no selection.
//
// Selection is not safe for concurrent use. It is written only while the
// orbit view is active and read by the detail view.
type Selection struct {
	item Item
	set  bool
}

// Set overwrites the selection. Zero items are rejected.
func (s *Selection) Set(it Item) bool {
	if it.st == nil {
		return false
	}
	s.item, s.set = it, true
	return true
}

// Get returns the selected item, or false when nothing is selected or the
// item no longer exists.
func (s *Selection) Get() (Item, bool) {
	if !s.set || !s.item.Valid() {
		return Item{}, false
	}
	return s.item, true
}

// Clear forgets the selection.
func (s *Selection) Clear() {
	s.item, s.set = Item{}, false
}
