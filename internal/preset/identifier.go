package preset

import (
	"encoding/json"
	"fmt"
	"math/bits"
)

var (
	idSeeds       = [4]uint32{0x811C9DC5, 0x6A09E667, 0xBB67AE85, 0x3C6EF372}
	idMultipliers = [4]uint32{0x9E3779B1, 0x85EBCA77, 0xC2B2AE3D, 0x27D4EB2F}
	idRotations   = [4]int{5, 11, 17, 23}
)

// StableID returns a 32-hex-digit identifier derived from the JSON encoding
// of a followed by name. Equal inputs always give equal identifiers. It is a
// tag for the XMP UUID attribute, not a cryptographic hash.
func StableID(a Adjustments, name string) string {
	payload, err := json.Marshal(a)
	if err != nil {
		// Only non-finite values fail to encode.
		payload = fmt.Appendf(nil, "%+v", a)
	}
	return hashIdentity(string(payload) + name)
}

func hashIdentity(s string) string {
	h := idSeeds
	for _, r := range s {
		c := uint32(r)
		for i := range h {
			h[i] = bits.RotateLeft32(h[i]^c, idRotations[i]) * idMultipliers[i]
		}
	}
	for i := range h {
		h[i] ^= h[i] >> 16
		h[i] *= 0x85EBCA6B
		h[i] ^= h[i] >> 13
	}
	return fmt.Sprintf("%08X%08X%08X%08X", h[0], h[1], h[2], h[3])
}
