package query

import (
	"github.com/dnv-opensource/vista-sdk-sub000/codebook"
	"github.com/dnv-opensource/vista-sdk-sub000/localid"
)

// MetadataTagsQuery matches a LocalId's metadata tags against a set of
// required (CodebookName, value) pairs.
type MetadataTagsQuery struct {
	required       map[codebook.Name]string
	allowOtherTags bool
}

// NewMetadataTagsQuery builds a query requiring exactly the given
// (name, value) pairs to be present; by default additional tags on the
// candidate are allowed.
func NewMetadataTagsQuery(required map[codebook.Name]string) *MetadataTagsQuery {
	cp := make(map[codebook.Name]string, len(required))
	for k, v := range required {
		cp[k] = v
	}
	return &MetadataTagsQuery{required: cp, allowOtherTags: true}
}

// Exact forbids tags on the candidate beyond the ones required.
func (q *MetadataTagsQuery) Exact() *MetadataTagsQuery {
	cp := *q
	cp.allowOtherTags = false
	return &cp
}

// Match reports whether l's tags satisfy q.
func (q *MetadataTagsQuery) Match(l *localid.LocalId) bool {
	tags := l.Tags()
	for name, value := range q.required {
		tag, ok := tags[name]
		if !ok || tag.Value != value {
			return false
		}
	}
	if !q.allowOtherTags {
		for name := range tags {
			if _, required := q.required[name]; !required {
				return false
			}
		}
	}
	return true
}
