package cache

import (
	"fmt"

	"github.com/cespare/xxhash"
)

// Key is a fingerprint over the parameters that produced a cache
// entry; two calls to Fingerprint with equal-valued opts produce equal
// Keys.
type Key uint64

// Fingerprint hashes opts' formatted representation into a Key. opts
// should be a plain value (not a pointer into mutable state) so the
// fingerprint reflects the parameters at the time of the call.
func Fingerprint(opts interface{}) Key {
	return Key(xxhash.Sum64([]byte(fmt.Sprintf("%#v", opts))))
}
