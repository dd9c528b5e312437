// Package chd implements a Compress-Hash-Displace (CHD) minimal perfect hash
// dictionary: O(1) lookup from a fixed key set known entirely at construction
// time, with no per-lookup allocation.
//
// The shape generalizes a precomputed, hash-indexed lookup table (built
// once in an init-style pass) from a 128-entry ASCII table to an arbitrary
// string key set.
package chd

import "math/bits"

// seed is the per-slot CHD displacement. A negative seed v means the entry
// was placed directly at table index -v-1 (a "direct" slot consumed by a
// bucket of size one); a non-negative seed is fed through mix() to find the
// slot for every key that hashed into that bucket.
type bucket struct {
	index int
	keys  []int // indices into the original key slice
}

// Dictionary is a frozen code -> value lookup built by Build.
type Dictionary[V any] struct {
	seeds  []int32
	keys   []string
	values []V
	mask   uint32 // table size - 1 (table size is always a power of two)
}

// Build constructs a Dictionary over the given keys, duplicate-free by
// construction invariant: a correct CHD build always terminates for a
// duplicate-free key set, so Build has no error return. Callers must not
// pass duplicate keys; Build does not check for them. gmod.Build, the
// caller in this module, rejects duplicate codes before it calls Build.
func Build[V any](keys []string, values []V) *Dictionary[V] {
	n := len(keys)
	if n == 0 {
		return &Dictionary[V]{mask: 0}
	}

	size := nextPow2(2 * n)
	mask := uint32(size - 1)

	hashes := make([]uint32, n)
	for i, k := range keys {
		hashes[i] = fnv1a(k)
	}

	buckets := make(map[uint32]*bucket)
	for i, h := range hashes {
		slot := h & mask
		b, ok := buckets[slot]
		if !ok {
			b = &bucket{index: int(slot)}
			buckets[slot] = b
		}
		b.keys = append(b.keys, i)
	}

	ordered := make([]*bucket, 0, len(buckets))
	for _, b := range buckets {
		ordered = append(ordered, b)
	}
	sortBucketsDesc(ordered)

	seeds := make([]int32, size)
	for i := range seeds {
		seeds[i] = 0
	}
	occupied := make([]bool, size)

	var singles []*bucket
	for _, b := range ordered {
		if len(b.keys) == 1 {
			singles = append(singles, b)
			continue
		}
		placeBucket(b, hashes, mask, occupied, seeds)
	}

	freeSlot := 0
	for _, b := range singles {
		for occupied[freeSlot] {
			freeSlot++
		}
		occupied[freeSlot] = true
		seeds[b.index] = int32(-(freeSlot + 1))
		freeSlot++
	}

	orderedKeys := make([]string, size)
	orderedValues := make([]V, size)
	present := make([]bool, size)
	for i, h := range hashes {
		slot := h & mask
		seed := seeds[slot]
		var at uint32
		if seed < 0 {
			at = uint32(-seed - 1)
		} else {
			at = mix(uint32(seed), h) & mask
		}
		orderedKeys[at] = keys[i]
		orderedValues[at] = values[i]
		present[at] = true
	}

	return &Dictionary[V]{
		seeds:  seeds,
		keys:   orderedKeys,
		values: orderedValues,
		mask:   mask,
	}
}

// Get returns the value for code and whether it was found.
func (d *Dictionary[V]) Get(code string) (V, bool) {
	var zero V
	if len(d.seeds) == 0 {
		return zero, false
	}
	h := fnv1a(code)
	slot := h & d.mask
	seed := d.seeds[slot]

	var at uint32
	if seed < 0 {
		at = uint32(-seed - 1)
	} else {
		at = mix(uint32(seed), h) & d.mask
	}

	if int(at) >= len(d.keys) || d.keys[at] != code {
		return zero, false
	}
	return d.values[at], true
}

// Len returns the number of keys stored.
func (d *Dictionary[V]) Len() int {
	n := 0
	for _, k := range d.keys {
		if k != "" {
			n++
		}
	}
	return n
}

// Keys returns every stored key, in no particular order. Intended for
// cold-path uses (e.g. building a suggestion list on a lookup miss), not
// for anything performance-sensitive.
func (d *Dictionary[V]) Keys() []string {
	out := make([]string, 0, d.Len())
	for _, k := range d.keys {
		if k != "" {
			out = append(out, k)
		}
	}
	return out
}

func placeBucket(b *bucket, hashes []uint32, mask uint32, occupied []bool, seeds []int32) {
	for seed := uint32(1); ; seed++ {
		slots := make([]uint32, len(b.keys))
		ok := true
		seen := make(map[uint32]bool, len(b.keys))
		for i, ki := range b.keys {
			s := mix(seed, hashes[ki]) & mask
			if occupied[s] || seen[s] {
				ok = false
				break
			}
			seen[s] = true
			slots[i] = s
		}
		if !ok {
			continue
		}
		for _, s := range slots {
			occupied[s] = true
		}
		seeds[b.index] = int32(seed)
		return
	}
}

// mix is the xorshift displacement mixer used to turn a bucket's seed and a
// key's hash into a candidate table slot.
func mix(seed, h uint32) uint32 {
	x := uint64(seed) + uint64(h)
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	x *= 0x2545F4914F6CDD1D
	return uint32(x >> 32)
}

func fnv1a(s string) uint32 {
	const offset32 = 2166136261
	const prime32 = 16777619
	h := uint32(offset32)
	for i := 0; i < len(s); i++ {
		h ^= uint32(s[i])
		h *= prime32
	}
	return h
}

func nextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

func sortBucketsDesc(b []*bucket) {
	// Insertion sort: bucket counts are small (GMOD/codebook key sets),
	// and determinism (stable tie-break on index) matters more than
	// asymptotic sort performance here.
	for i := 1; i < len(b); i++ {
		for j := i; j > 0 && less(b[j-1], b[j]); j-- {
			b[j-1], b[j] = b[j], b[j-1]
		}
	}
}

func less(a, b *bucket) bool {
	if len(a.keys) != len(b.keys) {
		return len(a.keys) < len(b.keys)
	}
	return a.index < b.index
}
