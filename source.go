package jproperties

import (
	"os"
	"strings"
)

// Source is any data source that can be used to look up configuration
// values by key. Properties itself implements Source.
type Source interface {
	// Lookup retrieves a value by key, reporting whether it was found.
	Lookup(key string) (value string, found bool)

	// Name returns a human-readable name of the source for debugging.
	Name() string
}

// EnvSource implements Source over the process environment. A non-empty
// Prefix is prepended to every looked-up key.
type EnvSource struct {
	Prefix string
}

// Lookup retrieves an environment variable by key.
func (s EnvSource) Lookup(key string) (string, bool) {
	return os.LookupEnv(s.Prefix + key)
}

// Name returns the source name.
func (s EnvSource) Name() string {
	if s.Prefix == "" {
		return "Environment"
	}
	return "Environment[" + s.Prefix + "]"
}

// Chain looks up keys from multiple sources sequentially; the first source
// containing the key wins.
type Chain struct {
	sources []Source
}

// NewChain creates a Chain over the given sources, queried in the order
// they are provided.
func NewChain(sources ...Source) *Chain {
	return &Chain{sources: sources}
}

// AddSource appends a source to the end of the chain (lowest priority).
func (c *Chain) AddSource(src Source) {
	c.sources = append(c.sources, src)
}

// Lookup retrieves a value by key from the first source that has it.
func (c *Chain) Lookup(key string) (string, bool) {
	for _, src := range c.sources {
		if val, found := src.Lookup(key); found {
			return val, found
		}
	}
	return "", false
}

// Name returns the chain name including the names of its sources.
func (c *Chain) Name() string {
	names := make([]string, len(c.sources))
	for i, src := range c.sources {
		names[i] = src.Name()
	}
	return "Chain[" + strings.Join(names, ",") + "]"
}

// Flatten materializes the chain as a Properties map usable with the typed
// accessors. Only Properties sources contribute keys; sources with
// unenumerable key sets (such as EnvSource) cannot be flattened and are
// skipped.
func (c *Chain) Flatten() Properties {
	merged := Properties{}
	for i := len(c.sources) - 1; i >= 0; i-- {
		if p, ok := c.sources[i].(Properties); ok {
			for k, v := range p {
				merged[k] = v
			}
		}
	}
	return merged
}

// Merge combines several Properties maps into one; earlier maps take
// priority over later ones, matching Chain lookup order.
func Merge(sources ...Properties) Properties {
	merged := Properties{}
	for i := len(sources) - 1; i >= 0; i-- {
		for k, v := range sources[i] {
			merged[k] = v
		}
	}
	return merged
}
