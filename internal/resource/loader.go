// Package resource defines the inward boundary for loading VIS resource
// documents: the core asks a collaborator for gzipped JSON bytes of a
// named resource kind, keyed by VisVersion. The core does not own I/O —
// archive readers, HTTP clients, and embedded-asset loaders all live
// outside this module and satisfy this interface.
package resource

import (
	"compress/gzip"
	"fmt"
	"io"

	"github.com/dnv-opensource/vista-sdk-sub000/visversion"
)

// Kind names one of the resource shapes a Loader can produce.
type Kind string

const (
	KindGmod           Kind = "gmod"
	KindCodebooks      Kind = "codebooks"
	KindLocations      Kind = "locations"
	KindGmodVersioning Kind = "gmod-versioning"
)

// DataChannelKind builds the "iso19848-<v>-data-channel-type-names" kind
// name for a given VIS version.
func DataChannelKind(v visversion.VisVersion) Kind {
	return Kind(fmt.Sprintf("iso19848-%s-data-channel-type-names", v))
}

// FormatDataTypesKind builds the "iso19848-<v>-format-data-types" kind name.
func FormatDataTypesKind(v visversion.VisVersion) Kind {
	return Kind(fmt.Sprintf("iso19848-%s-format-data-types", v))
}

// Loader is the sole inward interface the core requires. Open is a
// synchronous blocking call from the core's perspective; the core
// never spawns a goroutine to call it and never retries on its own.
type Loader interface {
	Open(v visversion.VisVersion, kind Kind) (io.ReadCloser, error)
}

// ReadAll opens kind for v and returns the decompressed JSON bytes, gunzip
// applied here since every resource kind is defined as gzipped JSON and
// nothing past this function should need to know that.
func ReadAll(l Loader, v visversion.VisVersion, kind Kind) ([]byte, error) {
	rc, err := l.Open(v, kind)
	if err != nil {
		return nil, fmt.Errorf("resource: opening %s for %s: %w", kind, v, err)
	}
	defer rc.Close()

	gz, err := gzip.NewReader(rc)
	if err != nil {
		return nil, fmt.Errorf("resource: %s for %s is not gzip: %w", kind, v, err)
	}
	defer gz.Close()

	raw, err := io.ReadAll(gz)
	if err != nil {
		return nil, fmt.Errorf("resource: reading %s for %s: %w", kind, v, err)
	}
	return raw, nil
}
