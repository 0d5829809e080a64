package minhash

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"

	"github.com/spaolacci/murmur3"
	"github.com/zeebo/xxh3"
)

// ErrEmptySet is returned by MinHash when the token set is empty.
var ErrEmptySet = errors.New("minhash of an empty set")

// Hasher selects the avalanche function behind a Family.
type Hasher uint8

const (
	// Jenkins is lookup3 hashlittle (default).
	Jenkins Hasher = iota
	// Murmur3 is MurmurHash3 x86_32.
	Murmur3
	// XXH3 is xxh3-64 folded to 32 bits.
	XXH3
)

func (h Hasher) String() string {
	switch h {
	case Jenkins:
		return "jenkins"
	case Murmur3:
		return "murmur3"
	case XXH3:
		return "xxh3"
	default:
		return fmt.Sprintf("Unknown(%d)", h)
	}
}

// ParseHasher parses a Hasher name as returned by String.
func ParseHasher(s string) (Hasher, error) {
	switch s {
	case "", "jenkins":
		return Jenkins, nil
	case "murmur3":
		return Murmur3, nil
	case "xxh3":
		return XXH3, nil
	default:
		return 0, fmt.Errorf("unknown hasher %q", s)
	}
}

// HashFunc maps bytes to a 32-bit hash.
type HashFunc func(data []byte) uint32

// Option configures a Family.
type Option func(*Family)

// WithHasher selects the avalanche function.
func WithHasher(h Hasher) Option {
	return func(f *Family) {
		f.hasher = h
	}
}

// Family is a seed-derived family of hash functions memoized by index.
type Family struct {
	mu       sync.Mutex
	seed     uint32
	hasher   Hasher
	subSeeds map[uint32]uint32
}

// New creates a Family for the given seed.
func New(seed uint32, opts ...Option) *Family {
	f := &Family{hasher: Jenkins}
	for _, opt := range opts {
		opt(f)
	}
	f.Reset(seed)
	return f
}

// Seed returns the current global seed.
func (f *Family) Seed() uint32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seed
}

// Reset switches to a new seed and drops every memoized function.
func (f *Family) Reset(seed uint32) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seed = seed
	f.subSeeds = make(map[uint32]uint32)
}

// subSeed returns the memoized per-index sub-seed.
func (f *Family) subSeed(index uint32) uint32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s, ok := f.subSeeds[index]; ok {
		return s
	}
	r := rand.New(rand.NewSource(int64(index ^ f.seed)))
	s := r.Uint32() ^ f.seed
	f.subSeeds[index] = s
	return s
}

// Derive returns the hash function identified by index.
// The same index always yields the same function until Reset.
func (f *Family) Derive(index uint32) HashFunc {
	seed := f.subSeed(index)
	switch f.hasher {
	case Murmur3:
		return func(data []byte) uint32 {
			return murmur3.Sum32WithSeed(data, seed)
		}
	case XXH3:
		return func(data []byte) uint32 {
			h := xxh3.HashSeed(data, uint64(seed))
			return uint32(h) ^ uint32(h>>32)
		}
	default:
		return func(data []byte) uint32 {
			return HashLittle(data, seed)
		}
	}
}

// MinHash hashes every token with Derive(index), masks each hash and returns
// the minimum. The result does not depend on token order or duplicates.
func (f *Family) MinHash(tokens []string, index, mask uint32) (uint32, error) {
	if len(tokens) == 0 {
		return 0, ErrEmptySet
	}
	fn := f.Derive(index)
	best := ^uint32(0)
	for _, tok := range tokens {
		if h := fn([]byte(tok)) & mask; h < best {
			best = h
		}
	}
	return best, nil
}

// Signature returns MinHash values for indices 0..n-1.
func (f *Family) Signature(tokens []string, n int, mask uint32) ([]uint32, error) {
	sig := make([]uint32, n)
	for i := range sig {
		v, err := f.MinHash(tokens, uint32(i), mask)
		if err != nil {
			return nil, err
		}
		sig[i] = v
	}
	return sig, nil
}
