package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
)

type jobsCacheKeyInput struct {
	SearchTerm string `json:"search_term"`
	Location   string `json:"location"`
	Pages      int    `json:"pages"`
}

func normalizeCacheValue(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(s))), " ")
}

func JobsCacheKey(searchTerm, location string, pages int) string {
	in := jobsCacheKeyInput{
		SearchTerm: normalizeCacheValue(searchTerm),
		Location:   normalizeCacheValue(location),
		Pages:      pages,
	}
	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return "jobs:search:" + hex.EncodeToString(sum[:])
}

func JobsLockKey(cacheKey string) string {
	if strings.HasPrefix(cacheKey, "jobs:search:") {
		return "jobs:lock:" + strings.TrimPrefix(cacheKey, "jobs:search:")
	}
	return "jobs:lock:" + cacheKey
}
