// Package canon computes deterministic digests of canonical forms in two
// passes: build a canonical, placeholder-free intermediate value, CBOR-encode it
// (CBOR's deterministic/"canonical" encoding mode gives a stable byte
// sequence for equal values regardless of map insertion order), then
// SHA-256 it.
//
// Used by the query layer to key its version-lift cache on a path's
// version/code/location shape, so that equal shapes share one entry.
package canon

import (
	"crypto/sha256"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

var encMode = func() cbor.EncMode {
	opts := cbor.CanonicalEncOptions()
	mode, err := opts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("canon: building canonical CBOR encoder: %v", err))
	}
	return mode
}()

// Digest is a SHA-256 digest of a value's canonical CBOR encoding.
type Digest [32]byte

func (d Digest) String() string {
	return fmt.Sprintf("%x", d[:])
}

// Of computes the Digest of v's canonical encoding. v must be
// CBOR-encodable (plain structs/slices/maps/strings/ints, such as the
// query layer's path shape).
func Of(v interface{}) (Digest, error) {
	b, err := encMode.Marshal(v)
	if err != nil {
		return Digest{}, fmt.Errorf("canon: encoding value: %w", err)
	}
	return Digest(sha256.Sum256(b)), nil
}

// Equal reports whether a and b canonicalize to the same digest.
func Equal(a, b interface{}) (bool, error) {
	da, err := Of(a)
	if err != nil {
		return false, err
	}
	db, err := Of(b)
	if err != nil {
		return false, err
	}
	return da == db, nil
}
