package codebook

import (
	"fmt"

	"github.com/dnv-opensource/vista-sdk-sub000/visversion"
)

// Codebooks is the per-VisVersion collection of all eleven codebooks,
// loaded once from the "codebooks" resource and shared
// read-only thereafter.
type Codebooks struct {
	version visversion.VisVersion
	byName  map[Name]*Codebook
}

// NewCodebooks builds a Codebooks collection from {name -> {group -> values}}.
func NewCodebooks(v visversion.VisVersion, raw map[string]map[string][]string) (*Codebooks, error) {
	cbs := &Codebooks{version: v, byName: make(map[Name]*Codebook, len(raw))}
	for nameStr, valuesByGroup := range raw {
		name, err := ParseName(nameStr)
		if err != nil {
			return nil, fmt.Errorf("codebooks: VIS %s: %w", v, err)
		}
		cbs.byName[name] = New(name, valuesByGroup)
	}
	return cbs, nil
}

// VisVersion returns the release this collection was loaded for.
func (c *Codebooks) VisVersion() visversion.VisVersion { return c.version }

// Get returns the codebook for name.
func (c *Codebooks) Get(name Name) (*Codebook, bool) {
	cb, ok := c.byName[name]
	return cb, ok
}

// TryCreateTag validates value against the named codebook.
func (c *Codebooks) TryCreateTag(name Name, value string) (Tag, error) {
	cb, ok := c.byName[name]
	if !ok {
		return Tag{}, fmt.Errorf("codebooks: VIS %s has no %s codebook loaded", c.version, name)
	}
	return cb.TryCreateTag(value)
}
