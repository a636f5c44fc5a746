package jproperties

import (
	"fmt"

	"github.com/magiconair/properties"
)

// loader reads the standard properties text format: one key=value assignment
// per line, ISO-8859-1 with \uXXXX escapes, '#' and '!' comment lines,
// whitespace around separators trimmed. Value expansion is disabled so that
// "${...}" sequences pass through verbatim.
var loader = &properties.Loader{
	Encoding:         properties.ISO_8859_1,
	DisableExpansion: true,
}

// Load reads properties from the file at the given path.
func Load(path string) (Properties, error) {
	p, err := loader.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load properties file: %w", err)
	}
	return Properties(p.Map()), nil
}

// LoadBytes reads properties from the given raw file content.
func LoadBytes(b []byte) (Properties, error) {
	p, err := loader.LoadBytes(b)
	if err != nil {
		return nil, fmt.Errorf("failed to load properties: %w", err)
	}
	return Properties(p.Map()), nil
}
