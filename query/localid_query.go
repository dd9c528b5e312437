package query

import (
	"github.com/dnv-opensource/vista-sdk-sub000/codebook"
	"github.com/dnv-opensource/vista-sdk-sub000/localid"
	"github.com/dnv-opensource/vista-sdk-sub000/versioning"
)

// SecondaryMode is the tri-state presence requirement LocalIdQuery places
// on a candidate's secondary item.
type SecondaryMode int

const (
	SecondaryAny SecondaryMode = iota
	SecondaryRequire
	SecondaryForbid
)

// LocalIdQuery composes a primary path query, an optional secondary path
// query with a presence mode, and a tag query.
type LocalIdQuery struct {
	primary       *GmodPathQuery
	secondary     *GmodPathQuery
	secondaryMode SecondaryMode
	tags          *MetadataTagsQuery
}

// New builds a LocalIdQuery from its component queries.
func New(primary *GmodPathQuery, secondary *GmodPathQuery, mode SecondaryMode, tags *MetadataTagsQuery) *LocalIdQuery {
	return &LocalIdQuery{primary: primary, secondary: secondary, secondaryMode: mode, tags: tags}
}

// FromLocalId builds a query that matches exactly l: its primary (and, if
// present, secondary) path via FromPath, and every one of its tags exactly
// ("query self-match" testable property).
func FromLocalId(l *localid.LocalId) *LocalIdQuery {
	primary := FromPath(l.PrimaryItem())
	var secondary *GmodPathQuery
	mode := SecondaryForbid
	if sec := l.SecondaryItem(); sec != nil {
		secondary = FromPath(sec)
		mode = SecondaryRequire
	}

	required := make(map[codebook.Name]string)
	for name, tag := range l.Tags() {
		required[name] = tag.Value
	}
	tags := NewMetadataTagsQuery(required).Exact()

	return New(primary, secondary, mode, tags)
}

// Match reports whether l satisfies q: its primary item matches, its
// secondary item presence (and match, if present) satisfies secondaryMode,
// and its tags match.
func (q *LocalIdQuery) Match(l *localid.LocalId, engine *versioning.Engine) bool {
	if q.primary != nil && !q.primary.Match(l.PrimaryItem(), engine) {
		return false
	}

	switch q.secondaryMode {
	case SecondaryRequire:
		if l.SecondaryItem() == nil {
			return false
		}
		if q.secondary != nil && !q.secondary.Match(l.SecondaryItem(), engine) {
			return false
		}
	case SecondaryForbid:
		if l.SecondaryItem() != nil {
			return false
		}
	case SecondaryAny:
		if l.SecondaryItem() != nil && q.secondary != nil && !q.secondary.Match(l.SecondaryItem(), engine) {
			return false
		}
	}

	if q.tags != nil && !q.tags.Match(l) {
		return false
	}
	return true
}
