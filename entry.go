package ldif

// Entry holds the attributes of one LDIF record as an insertion-ordered
// multi-map: each attribute name maps to one or more values, attribute
// names keep the order in which they were first added, and values keep
// the order in which they were added to their attribute.
//
// Attribute names are case-preserved and compared exactly; "cn" and "CN"
// are distinct keys. Normalizing names is the caller's concern.
type Entry struct {
	names []string
	attrs map[string][]Value
}

// NewEntry creates an empty Entry.
func NewEntry() *Entry {
	return &Entry{attrs: make(map[string][]Value)}
}

// Add appends values to the named attribute, creating it at the end of
// the attribute order on first use.
func (e *Entry) Add(name string, values ...Value) {
	if e.attrs == nil {
		e.attrs = make(map[string][]Value)
	}
	if _, ok := e.attrs[name]; !ok {
		e.names = append(e.names, name)
	}
	e.attrs[name] = append(e.attrs[name], values...)
}

// Set replaces the values of the named attribute. The attribute keeps
// its position in the attribute order if it already exists.
func (e *Entry) Set(name string, values ...Value) {
	if e.attrs == nil {
		e.attrs = make(map[string][]Value)
	}
	if _, ok := e.attrs[name]; !ok {
		e.names = append(e.names, name)
	}
	e.attrs[name] = append([]Value(nil), values...)
}

// Get returns the values of the named attribute, or nil if absent.
// The returned slice is owned by the entry.
func (e *Entry) Get(name string) []Value {
	if e == nil || e.attrs == nil {
		return nil
	}
	return e.attrs[name]
}

// First returns the first value of the named attribute.
func (e *Entry) First(name string) (Value, bool) {
	values := e.Get(name)
	if len(values) == 0 {
		return Value{}, false
	}
	return values[0], true
}

// Has reports whether the entry has the named attribute.
func (e *Entry) Has(name string) bool {
	return len(e.Get(name)) > 0
}

// Names returns the attribute names in insertion order. The returned
// slice is a copy.
func (e *Entry) Names() []string {
	if e == nil {
		return nil
	}
	names := make([]string, len(e.names))
	copy(names, e.names)
	return names
}

// Len returns the number of distinct attribute names.
func (e *Entry) Len() int {
	if e == nil {
		return 0
	}
	return len(e.names)
}

// Delete removes an attribute and its values.
func (e *Entry) Delete(name string) {
	if e == nil || e.attrs == nil {
		return
	}
	if _, ok := e.attrs[name]; !ok {
		return
	}
	delete(e.attrs, name)
	for i, n := range e.names {
		if n == name {
			e.names = append(e.names[:i], e.names[i+1:]...)
			break
		}
	}
}

// Clone creates a deep copy of the entry.
func (e *Entry) Clone() *Entry {
	if e == nil {
		return nil
	}
	clone := &Entry{
		names: make([]string, len(e.names)),
		attrs: make(map[string][]Value, len(e.attrs)),
	}
	copy(clone.names, e.names)
	for name, values := range e.attrs {
		cloned := make([]Value, len(values))
		for i, v := range values {
			cloned[i] = v.clone()
		}
		clone.attrs[name] = cloned
	}
	return clone
}

// Equal reports whether two entries have the same attributes in the same
// order with equal values in the same order.
func (e *Entry) Equal(o *Entry) bool {
	if e == nil || o == nil {
		return e.Len() == 0 && o.Len() == 0
	}
	if len(e.names) != len(o.names) {
		return false
	}
	for i, name := range e.names {
		if o.names[i] != name {
			return false
		}
		a, b := e.attrs[name], o.attrs[name]
		if len(a) != len(b) {
			return false
		}
		for j := range a {
			if !a[j].Equal(b[j]) {
				return false
			}
		}
	}
	return true
}

// Record is one parsed LDIF entry record: a distinguished name plus its
// attributes.
type Record struct {
	// DN is the distinguished name of the entry.
	DN string
	// Entry contains the entry's attribute values.
	Entry *Entry
}
