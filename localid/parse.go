package localid

import (
	"strings"

	"github.com/dnv-opensource/vista-sdk-sub000/codebook"
	"github.com/dnv-opensource/vista-sdk-sub000/gmod"
	"github.com/dnv-opensource/vista-sdk-sub000/gmodpath"
	"github.com/dnv-opensource/vista-sdk-sub000/location"
	"github.com/dnv-opensource/vista-sdk-sub000/visversion"
)

// metaStates parallels metaOrder: the state tag for each mandated
// metadata prefix, used to report where an ordering error occurred.
var metaStates = []State{
	StateMetaQuantity, StateMetaContent, StateMetaCalculation, StateMetaState,
	StateMetaCommand, StateMetaType, StateMetaPosition, StateMetaDetail,
}

func splitSegments(s string) []string {
	trimmed := strings.TrimSpace(s)
	trimmed = strings.TrimPrefix(trimmed, "/")
	trimmed = strings.TrimSuffix(trimmed, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

// Parse implements the single-pass state machine over
// NAMING_RULE -> VIS_VERSION -> PRIMARY_ITEM -> SECONDARY_ITEM? ->
// ITEM_DESCRIPTION? -> eight META_* states. It does not abort on the
// first recoverable error: unknown nodes, bad locations, out-of-order
// metadata prefixes, and invalid tag values are each recorded individually
// and parsing continues to the next state marker.
func Parse(s string, g *gmod.Gmod, locs *location.Locations, cbs *codebook.Codebooks) (*LocalId, []ParseError, bool) {
	segs := splitSegments(s)
	var errs []ParseError

	i := 0
	if i >= len(segs) || segs[i] != "dnv-v2" {
		errs = append(errs, newParseError(StateNamingRule, "expected naming rule \"dnv-v2\""))
		return nil, errs, false
	}
	i++

	if i >= len(segs) || !strings.HasPrefix(segs[i], "vis-") {
		errs = append(errs, newParseError(StateVisVersion, "expected \"vis-<release>\" segment"))
		return nil, errs, false
	}
	vis, err := visversion.Parse(strings.TrimPrefix(segs[i], "vis-"))
	if err != nil {
		errs = append(errs, newParseError(StateVisVersion, "%s", err))
		return nil, errs, false
	}
	i++

	b := NewBuilder(vis)

	isMarker := func(seg string) bool {
		return seg == "sec" || seg == "meta" || strings.HasPrefix(seg, "~")
	}

	primaryStart := i
	for i < len(segs) && !isMarker(segs[i]) {
		i++
	}
	if i == primaryStart {
		errs = append(errs, newParseError(StatePrimaryItem, "no primary item segments found"))
	} else {
		primary, perr := gmodpath.Parse(strings.Join(segs[primaryStart:i], "/"), g, locs)
		if perr != nil {
			errs = append(errs, newParseError(StatePrimaryItem, "%s", perr))
		} else {
			b = b.WithPrimaryItem(primary)
		}
	}

	if i < len(segs) && segs[i] == "sec" {
		i++
		secStart := i
		for i < len(segs) && !isMarker(segs[i]) {
			i++
		}
		if i == secStart {
			errs = append(errs, newParseError(StateSecondaryItem, "\"sec\" marker with no item segments"))
		} else {
			secondary, serr := gmodpath.Parse(strings.Join(segs[secStart:i], "/"), g, locs)
			if serr != nil {
				errs = append(errs, newParseError(StateSecondaryItem, "%s", serr))
			} else {
				b = b.WithSecondaryItem(secondary)
			}
		}
	}

	if i < len(segs) && strings.HasPrefix(segs[i], "~") {
		b = b.WithDescription(strings.TrimPrefix(segs[i], "~"))
		i++
	}

	if i >= len(segs) || segs[i] != "meta" {
		errs = append(errs, newParseError(StateCompleteness, "missing \"meta\" segment"))
		built, berr := b.Build()
		if berr != nil {
			return nil, errs, false
		}
		return built, errs, len(errs) == 0
	}
	i++

	lastIdx := -1
	tagCount := 0
	for ; i < len(segs); i++ {
		name, tag, perr, ok := parseTag(segs[i], cbs)
		if !ok {
			errs = append(errs, perr)
			continue
		}
		idx := metaIndex(name)
		state := metaStates[idx]
		if idx == lastIdx {
			errs = append(errs, newParseError(state, "metadata prefix %q is repeated", segs[i]))
			continue
		}
		if idx < lastIdx {
			errs = append(errs, newParseError(state, "metadata prefix %q appears out of order", segs[i]))
			continue
		}
		lastIdx = idx
		b = b.WithMetadataTag(tag)
		tagCount++
	}

	if tagCount == 0 {
		errs = append(errs, newParseError(StateCompleteness, "No metadata tags specified in a valid LocalId string"))
	}

	built, berr := b.Build()
	if berr != nil {
		return nil, errs, false
	}
	return built, errs, len(errs) == 0
}

func metaIndex(name codebook.Name) int {
	for i, n := range metaOrder {
		if n == name {
			return i
		}
	}
	return -1
}

// parseTag splits a "prefix-value" or "prefix~value" meta segment,
// resolves the codebook it belongs to, and validates the value.
func parseTag(seg string, cbs *codebook.Codebooks) (codebook.Name, codebook.Tag, ParseError, bool) {
	dash := strings.IndexByte(seg, '-')
	tilde := strings.IndexByte(seg, '~')
	sep := dash
	sepChar := byte('-')
	if sep == -1 || (tilde != -1 && tilde < sep) {
		sep = tilde
		sepChar = '~'
	}
	if sep <= 0 {
		return 0, codebook.Tag{}, newParseError(StateCompleteness, "malformed metadata segment %q", seg), false
	}

	prefix, value := seg[:sep], seg[sep+1:]
	name, ok := prefixToName(prefix)
	if !ok {
		return 0, codebook.Tag{}, newParseError(StateCompleteness, "unrecognized metadata prefix %q", prefix), false
	}
	state := metaStates[metaIndex(name)]

	tag, err := cbs.TryCreateTag(name, value)
	if err != nil {
		return 0, codebook.Tag{}, newParseError(state, "%s", err), false
	}
	if tag.IsCustom && sepChar == '-' {
		return 0, codebook.Tag{}, newParseError(state, "value %q is custom and requires the '~' separator, got '-'", value), false
	}
	return name, tag, ParseError{}, true
}

func prefixToName(prefix string) (codebook.Name, bool) {
	for _, name := range metaOrder {
		if p, ok := name.TagPrefix(); ok && p == prefix {
			return name, true
		}
	}
	return 0, false
}
