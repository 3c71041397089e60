// Package digests is a registry of named hash algorithms whose output can be
// rendered as hashmoji.
package digests

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"errors"
	"fmt"
	"hash"
	"hash/adler32"
	"hash/crc32"
	"hash/fnv"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/md4"
	"golang.org/x/crypto/ripemd160"
	"golang.org/x/crypto/sha3"
)

// Default is the name of the algorithm used when none is specified.
const Default = "sha1"

// ErrUnknownAlgorithm is reported by Lookup for an unrecognized name.
var ErrUnknownAlgorithm = errors.New("unknown hash algorithm")

// An Algorithm is a named hash constructor.
type Algorithm struct {
	Name string           // canonical name, e.g., "sha3_256"
	Size int              // digest size in bytes
	New  func() hash.Hash // construct a new empty hash state
}

// Compatible reports whether the digest size of a can be rendered as
// hashmoji, which requires a multiple of 4 bytes.
func (a Algorithm) Compatible() bool { return a.Size > 0 && a.Size%4 == 0 }

// Sum returns the digest of data under a.
func (a Algorithm) Sum(data []byte) []byte {
	h := a.New()
	h.Write(data)
	return h.Sum(nil)
}

func (a Algorithm) String() string { return a.Name }

var registry = map[string]Algorithm{}

func init() {
	for _, a := range []Algorithm{
		{"md4", md4.Size, md4.New},
		{"md5", md5.Size, md5.New},
		{"sha1", sha1.Size, sha1.New},
		{"sha224", sha256.Size224, sha256.New224},
		{"sha256", sha256.Size, sha256.New},
		{"sha384", sha512.Size384, sha512.New384},
		{"sha512", sha512.Size, sha512.New},
		{"sha512_224", sha512.Size224, sha512.New512_224},
		{"sha512_256", sha512.Size256, sha512.New512_256},
		{"sha3_224", 28, sha3.New224},
		{"sha3_256", 32, sha3.New256},
		{"sha3_384", 48, sha3.New384},
		{"sha3_512", 64, sha3.New512},
		{"keccak256", 32, sha3.NewLegacyKeccak256},
		{"blake2b", blake2b.Size, mustBLAKE2b(blake2b.Size)},
		{"blake2b_256", blake2b.Size256, mustBLAKE2b(blake2b.Size256)},
		{"blake2b_384", blake2b.Size384, mustBLAKE2b(blake2b.Size384)},
		{"blake2s", blake2s.Size, func() hash.Hash { return must(blake2s.New256(nil)) }},
		{"ripemd160", ripemd160.Size, ripemd160.New},
		{"crc32", crc32.Size, func() hash.Hash { return crc32.NewIEEE() }},
		{"adler32", adler32.Size, func() hash.Hash { return adler32.New() }},
		{"fnv32", 4, func() hash.Hash { return fnv.New32() }},
		{"fnv32a", 4, func() hash.Hash { return fnv.New32a() }},
		{"fnv64", 8, func() hash.Hash { return fnv.New64() }},
		{"fnv64a", 8, func() hash.Hash { return fnv.New64a() }},
		{"fnv128", 16, fnv.New128},
		{"fnv128a", 16, fnv.New128a},
		{"xxh64", 8, func() hash.Hash { return xxhash.New() }},
	} {
		registry[a.Name] = a
	}
}

// Names returns the canonical names of the registered algorithms in order.
func Names() []string { return slices.Sorted(maps.Keys(registry)) }

// All returns the registered algorithms ordered by name.
func All() []Algorithm {
	out := make([]Algorithm, 0, len(registry))
	for _, name := range Names() {
		out = append(out, registry[name])
	}
	return out
}

// Lookup returns the algorithm with the given name. Names are not case
// sensitive, and "-" and "_" are interchangeable, so "SHA3-256" and
// "sha3_256" name the same algorithm.
//
// In addition to the registered names, "blake2b:n" names BLAKE2b with an
// n-byte digest, for 1 ≤ n ≤ 64.
func Lookup(name string) (Algorithm, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	if a, ok := registry[key]; ok {
		return a, nil
	}
	if tail, ok := strings.CutPrefix(key, "blake2b:"); ok {
		n, err := strconv.Atoi(tail)
		if err != nil || n < 1 || n > blake2b.Size {
			return Algorithm{}, fmt.Errorf("%w %q (digest size must be 1..%d)", ErrUnknownAlgorithm, name, blake2b.Size)
		}
		return Algorithm{Name: key, Size: n, New: mustBLAKE2b(n)}, nil
	}
	return Algorithm{}, fmt.Errorf("%w %q", ErrUnknownAlgorithm, name)
}

// New returns a new hash state for the named algorithm.
func New(name string) (hash.Hash, error) {
	a, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return a.New(), nil
}

func mustBLAKE2b(size int) func() hash.Hash {
	return func() hash.Hash { return must(blake2b.New(size, nil)) }
}

// must panics if err != nil. The constructors it wraps fail only for invalid
// key or size arguments, which are fixed here.
func must(h hash.Hash, err error) hash.Hash {
	if err != nil {
		panic(err)
	}
	return h
}
