package versioning

import (
	"github.com/dnv-opensource/vista-sdk-sub000/localid"
	"github.com/dnv-opensource/vista-sdk-sub000/visversion"
)

// ConvertLocalId converts l's primary (and, if present, secondary) path to
// vtgt, copies metadata tags verbatim (they're VIS-agnostic strings), and
// preserves verbose mode.
func (e *Engine) ConvertLocalId(l *localid.LocalId, vtgt visversion.VisVersion) (*localid.LocalId, bool, error) {
	vsrc := l.VisVersion()
	if vsrc == vtgt {
		return l, true, nil
	}

	primary, ok, err := e.ConvertPath(vsrc, l.PrimaryItem(), vtgt)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}

	b := localid.NewBuilder(vtgt).WithVerboseMode(l.Verbose()).WithPrimaryItem(primary)

	if sec := l.SecondaryItem(); sec != nil {
		convertedSec, ok, err := e.ConvertPath(vsrc, sec, vtgt)
		if err != nil {
			return nil, false, err
		}
		if ok {
			b = b.WithSecondaryItem(convertedSec)
		}
	}

	if l.Description() != "" {
		b = b.WithDescription(l.Description())
	}

	for _, tag := range l.Tags() {
		b = b.WithMetadataTag(tag)
	}

	converted, err := b.Build()
	if err != nil {
		return nil, false, err
	}
	return converted, true, nil
}
