package scenegraph

// Properties is an insertion-ordered string->string map, the ordered
// counterpart to the teacher's plain map[string]string dictionaries built by
// vox.go's parseDICT — ordering matters here because properties round-trip
// through codecs that must reproduce source order.
type Properties struct {
	keys   []string
	values map[string]string
}

// NewProperties returns an empty, ready-to-use Properties.
func NewProperties() *Properties {
	return &Properties{values: make(map[string]string)}
}

// Set inserts or updates key, appending it to the iteration order the first
// time it is seen.
func (p *Properties) Set(key, value string) {
	if p.values == nil {
		p.values = make(map[string]string)
	}
	if _, exists := p.values[key]; !exists {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
}

// Get returns the value for key and whether it was present.
func (p *Properties) Get(key string) (string, bool) {
	v, ok := p.values[key]
	return v, ok
}

// Keys returns the property keys in insertion order.
func (p *Properties) Keys() []string {
	return append([]string(nil), p.keys...)
}

// Len returns the number of properties.
func (p *Properties) Len() int { return len(p.keys) }

// Clone value-copies the properties in their original order.
func (p *Properties) Clone() *Properties {
	cp := NewProperties()
	if p == nil {
		return cp
	}
	for _, k := range p.keys {
		cp.Set(k, p.values[k])
	}
	return cp
}

// Merge appends all of other's properties into p, in other's order,
// overwriting any existing keys but preserving p's own ordering for keys
// already present.
func (p *Properties) Merge(other *Properties) {
	if other == nil {
		return
	}
	for _, k := range other.keys {
		p.Set(k, other.values[k])
	}
}
