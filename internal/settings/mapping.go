// Package settings provides the ordered key/value mapping shared by the
// migration pipeline.
package settings

// Mapping is an ordered string-to-string map. Keys are case-sensitive and unique.
// Insertion order only affects iteration and output formatting.
// The zero value is not usable; construct with New.
type Mapping struct {
	values map[string]string
	order  []string
}

// New returns an empty Mapping.
func New() *Mapping {
	return &Mapping{values: make(map[string]string)}
}

// Get returns the value for key and whether it is present.
func (m *Mapping) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Value returns the value for key, or "" when absent.
func (m *Mapping) Value(key string) string {
	return m.values[key]
}

// Has reports whether key is present, even with an empty value.
func (m *Mapping) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

// Set stores value under key. Existing keys keep their position.
func (m *Mapping) Set(key string, value string) {
	if _, ok := m.values[key]; !ok {
		m.order = append(m.order, key)
	}
	m.values[key] = value
}

// SetIfUnset stores value only when key is absent and reports whether it did.
func (m *Mapping) SetIfUnset(key string, value string) bool {
	if m.Has(key) {
		return false
	}
	m.Set(key, value)
	return true
}

// Delete removes key and reports whether it was present.
func (m *Mapping) Delete(key string) bool {
	if _, ok := m.values[key]; !ok {
		return false
	}
	delete(m.values, key)
	for i, k := range m.order {
		if k == key {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of keys.
func (m *Mapping) Len() int {
	return len(m.order)
}

// Keys returns the keys in insertion order.
func (m *Mapping) Keys() []string {
	return append([]string(nil), m.order...)
}

// Each calls fn for every key/value pair in insertion order.
func (m *Mapping) Each(fn func(key string, value string)) {
	for _, k := range m.order {
		fn(k, m.values[k])
	}
}
