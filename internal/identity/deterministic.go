// Package identity derives stable UUIDs from catalog keys so re-seeding the
// SQL source always produces the same primary keys.
package identity

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

const pageKeyPrefix = "go-pagemeta:page:"

// UUID maps a stable key to a deterministic UUID. Keys must carry a
// domain/type prefix so different entity kinds cannot collide. Empty keys
// map to uuid.Nil.
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		// SHA1 name-based UUID keeps determinism when hashid rejects the key.
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// PageUUID derives the primary key for a catalog row. The page id is the
// stable identity across languages and sources, so case and surrounding
// whitespace are ignored.
func PageUUID(pageID string) uuid.UUID {
	return UUID(pageKeyPrefix + strings.ToLower(strings.TrimSpace(pageID)))
}
