package pipeline

import (
	"crypto/sha1"
	"encoding/hex"
)

// IdentityKey computes the content-derived fingerprint used to detect
// the same auction announced across portals. Both parts are normalized
// and lower-cased before hashing, so the key is stable across re-runs
// and across portals that differ only in formatting.
//
// The key deliberately excludes the source URL: the same auction
// mirrored on two portals carries portal-specific URLs, and including
// them would defeat cross-source deduplication entirely.
func IdentityKey(title, dateText string) string {
	joined := normLower(title) + "|" + normLower(dateText)
	sum := sha1.Sum([]byte(joined))
	return hex.EncodeToString(sum[:])
}
