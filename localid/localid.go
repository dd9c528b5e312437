package localid

import (
	"strings"

	"github.com/dnv-opensource/vista-sdk-sub000/codebook"
	"github.com/dnv-opensource/vista-sdk-sub000/gmodpath"
	"github.com/dnv-opensource/vista-sdk-sub000/visversion"
)

// LocalId is a frozen view over a valid, non-empty Builder.
type LocalId struct {
	b *Builder
}

// VisVersion returns the release this identifier was built for.
func (l *LocalId) VisVersion() visversion.VisVersion { return l.b.vis }

// Verbose reports whether the primary/secondary item renders verbosely.
func (l *LocalId) Verbose() bool { return l.b.verbose }

// PrimaryItem returns the primary GmodPath.
func (l *LocalId) PrimaryItem() *gmodpath.GmodPath { return l.b.primaryItem }

// SecondaryItem returns the secondary GmodPath, or nil.
func (l *LocalId) SecondaryItem() *gmodpath.GmodPath { return l.b.secondaryItem }

// Description returns the free-text descriptor block, or "".
func (l *LocalId) Description() string { return l.b.description }

// MetadataTag returns the tag for name, if set.
func (l *LocalId) MetadataTag(name codebook.Name) (codebook.Tag, bool) {
	t, ok := l.b.tags[name]
	return t, ok
}

// Tags returns every populated metadata slot. Tags are VIS-agnostic
// strings, so the versioning engine copies them verbatim across releases.
func (l *LocalId) Tags() map[codebook.Name]codebook.Tag {
	out := make(map[codebook.Name]codebook.Tag, len(l.b.tags))
	for k, v := range l.b.tags {
		out[k] = v
	}
	return out
}

// Builder returns a Builder seeded with l's fields, for deriving a
// modified LocalId via With*/Without* + Build.
func (l *LocalId) Builder() *Builder { return l.b.clone() }

// Equal compares two LocalIds structurally via their canonical string
// form.
func (l *LocalId) Equal(other *LocalId) bool {
	return l.String() == other.String()
}

// String renders the bit-exact textual form:
// "/dnv-v2/vis-{release}/{primary}[/sec/{secondary}][{descriptor}]/meta{/tag}…",
// with a trimmed trailing slash.
func (l *LocalId) String() string {
	var sb strings.Builder
	sb.WriteString("/dnv-v2/vis-")
	sb.WriteString(l.b.vis.String())
	sb.WriteString("/")
	sb.WriteString(itemString(l.b.primaryItem, l.b.verbose))

	if l.b.secondaryItem != nil {
		sb.WriteString("/sec/")
		sb.WriteString(itemString(l.b.secondaryItem, l.b.verbose))
	}
	if l.b.description != "" {
		sb.WriteString("/~")
		sb.WriteString(l.b.description)
	}

	sb.WriteString("/meta")
	for _, name := range metaOrder {
		tag, ok := l.b.tags[name]
		if !ok {
			continue
		}
		prefix, _ := name.TagPrefix()
		sb.WriteString("/")
		sb.WriteString(prefix)
		sb.WriteString(string(tag.Prefix()))
		sb.WriteString(tag.Value)
	}
	return sb.String()
}

func itemString(p *gmodpath.GmodPath, verbose bool) string {
	if verbose {
		return p.ToVerboseString("_", "")
	}
	return p.String()
}
