package interpreter

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/crypto/sha3"
)

// hashCacheSize bounds the number of distinct SHA3 preimages memoized per
// interpreter process. Contracts frequently hash a small, repeated set of
// keys (mapping slots, selectors); caching those avoids re-running Keccak
// on the hot path of a loop.
const hashCacheSize = 4096

var hashCache = newHashCache()

type hashCacheEntry [32]byte

func newHashCache() *lru.Cache[string, hashCacheEntry] {
	c, err := lru.New[string, hashCacheEntry](hashCacheSize)
	if err != nil {
		panic(err)
	}
	return c
}

var hashCacheMu sync.Mutex

// keccak256 hashes data with pure-Go Keccak-256, consulting and populating
// the shared LRU cache. The cache is keyed on the preimage bytes
// themselves, so it only pays off for callers that re-hash identical
// inputs; a unique random input costs one cache miss plus one insert.
func keccak256(data []byte) [32]byte {
	key := string(data)

	hashCacheMu.Lock()
	if v, ok := hashCache.Get(key); ok {
		hashCacheMu.Unlock()
		return v
	}
	hashCacheMu.Unlock()

	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	var out [32]byte
	h.Sum(out[:0])

	hashCacheMu.Lock()
	hashCache.Add(key, out)
	hashCacheMu.Unlock()

	return out
}
