package jproperties

// Properties is a flat string-keyed, string-valued configuration map.
// It is the input to every typed accessor in this package. Accessors never
// mutate it.
type Properties map[string]string

// Lookup retrieves the raw value for a key.
func (p Properties) Lookup(key string) (string, bool) {
	val, found := p[key]
	return val, found
}

// Name identifies the map when used as a Source.
func (p Properties) Name() string {
	return "Properties"
}
