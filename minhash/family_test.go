package minhash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashLittle(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		initval uint32
		want    uint32
	}{
		{"Empty", "", 0, 0xdeadbeef},
		{"FourScore", "Four score and seven years ago", 0, 0x17770551},
		{"FourScoreSeeded", "Four score and seven years ago", 1, 0xcd628161},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HashLittle([]byte(tt.data), tt.initval))
		})
	}
}

func TestHashLittleTailLengths(t *testing.T) {
	// Every tail length must be distinct and stable.
	data := []byte("abcdefghijklmnopqrstuvwxyz")
	seen := make(map[uint32]int)
	for n := 0; n <= len(data); n++ {
		h := HashLittle(data[:n], 7)
		assert.Equal(t, h, HashLittle(data[:n], 7))
		prev, dup := seen[h]
		assert.False(t, dup, "length %d collides with %d", n, prev)
		seen[h] = n
	}
}

func TestMinHashOrderIndependent(t *testing.T) {
	for _, h := range []Hasher{Jenkins, Murmur3, XXH3} {
		t.Run(h.String(), func(t *testing.T) {
			fam := New(1234, WithHasher(h))
			a, err := fam.MinHash([]string{"a", "b"}, 3, 0xffffffff)
			require.NoError(t, err)
			b, err := fam.MinHash([]string{"b", "a"}, 3, 0xffffffff)
			require.NoError(t, err)
			c, err := fam.MinHash([]string{"b", "a", "a"}, 3, 0xffffffff)
			require.NoError(t, err)
			assert.Equal(t, a, b)
			assert.Equal(t, a, c)

			again, err := fam.MinHash([]string{"a", "b"}, 3, 0xffffffff)
			require.NoError(t, err)
			assert.Equal(t, a, again)
		})
	}
}

func TestMinHashMask(t *testing.T) {
	fam := New(99)
	for i := uint32(0); i < 32; i++ {
		v, err := fam.MinHash([]string{"x", "y", "z"}, i, 0b111)
		require.NoError(t, err)
		assert.LessOrEqual(t, v, uint32(0b111))
	}
}

func TestMinHashSeedSensitivity(t *testing.T) {
	tokens := []string{"alpha", "beta", "gamma", "delta"}
	base := New(1)
	ref, err := base.Signature(tokens, 8, 0xffffffff)
	require.NoError(t, err)

	other := New(2)
	sig, err := other.Signature(tokens, 8, 0xffffffff)
	require.NoError(t, err)
	assert.NotEqual(t, ref, sig)

	// Reset to the original seed reproduces the original signature.
	other.Reset(1)
	sig, err = other.Signature(tokens, 8, 0xffffffff)
	require.NoError(t, err)
	assert.Equal(t, ref, sig)
}

func TestMinHashEmpty(t *testing.T) {
	_, err := New(0).MinHash(nil, 0, 0xff)
	assert.ErrorIs(t, err, ErrEmptySet)
}

func TestDeriveMemoized(t *testing.T) {
	fam := New(5)
	f1 := fam.Derive(10)
	f2 := fam.Derive(10)
	assert.Equal(t, f1([]byte("token")), f2([]byte("token")))
	assert.NotEqual(t, fam.Derive(10)([]byte("token")), fam.Derive(11)([]byte("token")))
	assert.Equal(t, uint32(5), fam.Seed())
}

func TestParseHasher(t *testing.T) {
	h, err := ParseHasher("murmur3")
	require.NoError(t, err)
	assert.Equal(t, Murmur3, h)

	h, err = ParseHasher("")
	require.NoError(t, err)
	assert.Equal(t, Jenkins, h)

	_, err = ParseHasher("md5")
	assert.Error(t, err)
}
