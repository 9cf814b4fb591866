package ais

// Record is a mapping from field name to typed value, with
// insertion-order equal to the owning class's field-descriptor order
// (spec §3 "Decoded record"). Every field present in the class
// descriptor is present in a Record returned by Decode; a TCommState
// field appears as its three state_* keys rather than under its own
// name.
type Record struct {
	names  []string
	values map[string]any
}

// NewRecord returns an empty Record.
func NewRecord() *Record {
	return &Record{values: make(map[string]any)}
}

// Set assigns a value to name, appending it to the insertion order the
// first time it's seen.
func (r *Record) Set(name string, value any) {
	if _, ok := r.values[name]; !ok {
		r.names = append(r.names, name)
	}
	r.values[name] = value
}

// Get returns the value for name, and whether it was present.
func (r *Record) Get(name string) (any, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Names returns the field names in insertion order.
func (r *Record) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Equal reports whether r and other carry the same field names and
// values. Decimal fields compare with WithinLSB rather than strict
// equality, matching spec I2's round-trip tolerance.
func (r *Record) Equal(other *Record) bool {
	if len(r.names) != len(other.names) {
		return false
	}
	for _, name := range r.names {
		a, ok := r.Get(name)
		if !ok {
			return false
		}
		b, ok := other.Get(name)
		if !ok {
			return false
		}
		if !valuesEqual(a, b) {
			return false
		}
	}
	return true
}

func valuesEqual(a, b any) bool {
	switch av := a.(type) {
	case Decimal:
		bv, ok := b.(Decimal)
		return ok && av.WithinLSB(bv)
	default:
		return a == b
	}
}
