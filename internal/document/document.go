package document

// Document owns the live element collection and the selection set.
// Iteration order is insertion order, which is also z-order: later
// elements render and hit-test on top of earlier ones.
type Document struct {
	elements []*Element
	byID     map[string]*Element
	selected map[string]struct{}
}

// New creates an empty document.
func New() *Document {
	return &Document{
		byID:     make(map[string]*Element),
		selected: make(map[string]struct{}),
	}
}

// Add appends a copy of e on top of the z-order. Elements with fewer than
// two points or a duplicate id are ignored. It returns the stored element.
func (d *Document) Add(e Element) *Element {
	if len(e.Points) < 2 || e.ID == "" {
		return nil
	}
	if _, exists := d.byID[e.ID]; exists {
		return nil
	}
	stored := e.Clone()
	d.elements = append(d.elements, &stored)
	d.byID[stored.ID] = &stored
	return &stored
}

// Get returns the live element with the given id, or nil.
func (d *Document) Get(id string) *Element {
	return d.byID[id]
}

// Update merges patch into the element with the given id. Unknown ids are a no-op.
func (d *Document) Update(id string, patch Patch) bool {
	e, ok := d.byID[id]
	if !ok {
		return false
	}
	patch.Apply(e)
	return true
}

// Delete removes the element with the given id and drops it from the selection.
func (d *Document) Delete(id string) bool {
	if _, ok := d.byID[id]; !ok {
		return false
	}
	delete(d.byID, id)
	delete(d.selected, id)
	for i, e := range d.elements {
		if e.ID == id {
			d.elements = append(d.elements[:i], d.elements[i+1:]...)
			break
		}
	}
	return true
}

// Clear empties the collection and the selection together.
func (d *Document) Clear() {
	d.elements = nil
	d.byID = make(map[string]*Element)
	d.selected = make(map[string]struct{})
}

// Len returns the number of elements.
func (d *Document) Len() int {
	return len(d.elements)
}

// Elements returns the live elements in z-order. The slice is a copy but the
// pointers are not; callers outside the engine should treat them as read-only.
func (d *Document) Elements() []*Element {
	out := make([]*Element, len(d.elements))
	copy(out, d.elements)
	return out
}

// Snapshot returns an independent deep copy of every element in z-order.
func (d *Document) Snapshot() []Element {
	out := make([]Element, len(d.elements))
	for i, e := range d.elements {
		out[i] = e.Clone()
	}
	return out
}

// Restore replaces the collection with deep copies of elems. Entries that
// Add would reject, or that carry an unknown type, are skipped. Selection
// ids that no longer exist are pruned.
func (d *Document) Restore(elems []Element) {
	d.elements = make([]*Element, 0, len(elems))
	d.byID = make(map[string]*Element, len(elems))
	for _, e := range elems {
		if !e.Type.Valid() {
			continue
		}
		d.Add(e)
	}
	for id := range d.selected {
		if _, ok := d.byID[id]; !ok {
			delete(d.selected, id)
		}
	}
}

// --- Selection ---

// Select replaces the selection with ids. Unknown ids are skipped.
func (d *Document) Select(ids ...string) {
	d.selected = make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := d.byID[id]; ok {
			d.selected[id] = struct{}{}
		}
	}
}

// ClearSelection empties the selection set.
func (d *Document) ClearSelection() {
	d.selected = make(map[string]struct{})
}

// IsSelected reports whether id is part of the selection.
func (d *Document) IsSelected(id string) bool {
	_, ok := d.selected[id]
	return ok
}

// SelectionLen returns the number of selected elements.
func (d *Document) SelectionLen() int {
	return len(d.selected)
}

// Selection returns the selected ids in z-order.
func (d *Document) Selection() []string {
	ids := make([]string, 0, len(d.selected))
	for _, e := range d.elements {
		if _, ok := d.selected[e.ID]; ok {
			ids = append(ids, e.ID)
		}
	}
	return ids
}

// SingleSelected returns the selected element when exactly one is selected.
func (d *Document) SingleSelected() *Element {
	if len(d.selected) != 1 {
		return nil
	}
	for id := range d.selected {
		return d.byID[id]
	}
	return nil
}
