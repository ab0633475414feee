package field

// State is the live form state a widget maintains while its dialog is open,
// keyed by descriptor ID. It replaces document lookups so validation and
// aggregation stay pure and unit-testable.
type State struct {
	values map[string]string
	order  []string
}

// NewState builds a state seeded with each descriptor's initial value.
// Disabled fields keep their declared value; widgets simply never overwrite
// them.
func NewState(descriptors []Descriptor) *State {
	s := &State{values: make(map[string]string, len(descriptors))}
	for _, d := range descriptors {
		if !d.Valid() {
			continue
		}
		s.Set(d.ID, d.Value)
	}
	return s
}

// Get returns the raw value for a field ID and whether the field exists.
func (s *State) Get(id string) (string, bool) {
	if s == nil || s.values == nil {
		return "", false
	}
	value, ok := s.values[id]
	return value, ok
}

// Set stores the raw value for a field ID, registering the ID on first use.
func (s *State) Set(id, value string) {
	if s == nil {
		return
	}
	if s.values == nil {
		s.values = make(map[string]string)
	}
	if _, ok := s.values[id]; !ok {
		s.order = append(s.order, id)
	}
	s.values[id] = value
}

// Delete removes a field from the state. Used by tests to simulate a
// declared rule whose control never rendered.
func (s *State) Delete(id string) {
	if s == nil || s.values == nil {
		return
	}
	if _, ok := s.values[id]; !ok {
		return
	}
	delete(s.values, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// IDs returns the field IDs in registration order.
func (s *State) IDs() []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s.order...)
}

// Len reports the number of fields tracked by the state.
func (s *State) Len() int {
	if s == nil {
		return 0
	}
	return len(s.values)
}
