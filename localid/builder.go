// Package localid implements the LocalId grammar: an immutable builder,
// a frozen view, and the nine-segment state-machine parser.
package localid

import (
	"fmt"

	"github.com/dnv-opensource/vista-sdk-sub000/codebook"
	"github.com/dnv-opensource/vista-sdk-sub000/gmodpath"
	"github.com/dnv-opensource/vista-sdk-sub000/visversion"
)

// metaOrder is the mandated order of metadata tag prefixes inside "meta"
//: qty, cnt, calc, state, cmd, type, pos, detail.
var metaOrder = []codebook.Name{
	codebook.Quantity, codebook.Content, codebook.Calculation, codebook.State,
	codebook.Command, codebook.Type, codebook.Position, codebook.Detail,
}

// Builder is an immutable record of the fields that make up a LocalId.
// Every With*/Without* method returns a new Builder; the receiver is
// never mutated.
type Builder struct {
	vis           visversion.VisVersion
	verbose       bool
	primaryItem   *gmodpath.GmodPath
	secondaryItem *gmodpath.GmodPath
	description   string
	tags          map[codebook.Name]codebook.Tag
}

// NewBuilder returns an empty Builder for vis.
func NewBuilder(vis visversion.VisVersion) *Builder {
	return &Builder{vis: vis, tags: make(map[codebook.Name]codebook.Tag)}
}

func (b *Builder) clone() *Builder {
	cp := *b
	cp.tags = make(map[codebook.Name]codebook.Tag, len(b.tags))
	for k, v := range b.tags {
		cp.tags[k] = v
	}
	return &cp
}

// WithVisVersion returns a copy of b for a different release. Comparing
// builders across releases is a programmer error; callers
// must go through the versioning engine to change release instead.
func (b *Builder) WithVisVersion(vis visversion.VisVersion) *Builder {
	cp := b.clone()
	cp.vis = vis
	return cp
}

// WithVerboseMode toggles verbose rendering of the primary/secondary item.
func (b *Builder) WithVerboseMode(v bool) *Builder {
	cp := b.clone()
	cp.verbose = v
	return cp
}

// WithPrimaryItem sets the primary GmodPath.
func (b *Builder) WithPrimaryItem(p *gmodpath.GmodPath) *Builder {
	cp := b.clone()
	cp.primaryItem = p
	return cp
}

// WithoutPrimaryItem clears the primary GmodPath.
func (b *Builder) WithoutPrimaryItem() *Builder {
	cp := b.clone()
	cp.primaryItem = nil
	return cp
}

// WithSecondaryItem sets the secondary GmodPath.
func (b *Builder) WithSecondaryItem(p *gmodpath.GmodPath) *Builder {
	cp := b.clone()
	cp.secondaryItem = p
	return cp
}

// WithoutSecondaryItem clears the secondary GmodPath.
func (b *Builder) WithoutSecondaryItem() *Builder {
	cp := b.clone()
	cp.secondaryItem = nil
	return cp
}

// WithDescription sets the free-text "~description" block.
func (b *Builder) WithDescription(s string) *Builder {
	cp := b.clone()
	cp.description = s
	return cp
}

// WithMetadataTag sets one of the eight metadata slots.
func (b *Builder) WithMetadataTag(tag codebook.Tag) *Builder {
	cp := b.clone()
	cp.tags[tag.Name] = tag
	return cp
}

// WithoutMetadataTag clears the named slot.
func (b *Builder) WithoutMetadataTag(name codebook.Name) *Builder {
	cp := b.clone()
	delete(cp.tags, name)
	return cp
}

// IsValid reports whether b has everything Build requires: a VIS version,
// a primary item, and at least one metadata tag.
func (b *Builder) IsValid() bool {
	return b.vis.IsValid() && b.primaryItem != nil && len(b.tags) > 0
}

// IsEmpty reports whether b has nothing set beyond the version.
func (b *Builder) IsEmpty() bool {
	return !b.verbose && b.primaryItem == nil && b.secondaryItem == nil &&
		b.description == "" && len(b.tags) == 0
}

// HasCustomTag reports whether any populated metadata slot is custom.
// Detail is always custom, so a builder with only a Detail
// tag set also reports true here — preserved as observed rather than
// special-cased, per the source's asymmetric has_custom_tag behaviour
// (open question).
func (b *Builder) HasCustomTag() bool {
	for _, t := range b.tags {
		if t.IsCustom {
			return true
		}
	}
	return false
}

// Build freezes b into a LocalId, or fails if IsValid() is false.
func (b *Builder) Build() (*LocalId, error) {
	if !b.IsValid() {
		return nil, fmt.Errorf("localid: builder is not valid (need vis_version, primary_item, and >=1 metadata tag)")
	}
	return &LocalId{b: b.clone()}, nil
}
