package lexiloc

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashText computes the SHA-256 hash of the trimmed text. Page hashes decide
// whether a language's output must be regenerated.
func HashText(text string) string {
	trimmed := strings.TrimSpace(text)
	hash := sha256.Sum256([]byte(trimmed))
	return hex.EncodeToString(hash[:])
}

// CacheKey generates a cache key from a content hash and target language.
func CacheKey(hash, targetLang string) string {
	return hash + ":" + targetLang
}

// PageKey generates the per-language cache key under which the source page's
// content hash is stored.
func PageKey(targetLang string) string {
	return "page:" + targetLang
}
