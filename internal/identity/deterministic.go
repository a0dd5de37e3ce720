package identity

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// UUID derives a deterministic UUID from a stable key using go-hashid.
//
// Callers must prefix keys by entity kind to avoid cross-entity collisions.
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// HeroSectionUUID identifies a hero section by its code.
func HeroSectionUUID(code string) uuid.UUID {
	return UUID("go-showcase:hero_section:" + strings.ToLower(strings.TrimSpace(code)))
}

// EntityUUID identifies a fixture entity of kind by its fixture key.
func EntityUUID(kind, key string) uuid.UUID {
	return UUID("go-showcase:" + strings.ToLower(strings.TrimSpace(kind)) + ":" + strings.TrimSpace(key))
}

// SlideUUID identifies a slide by its owner and position within it.
func SlideUUID(ownerID uuid.UUID, key string) uuid.UUID {
	return UUID("go-showcase:slide:" + ownerID.String() + ":" + strings.TrimSpace(key))
}
