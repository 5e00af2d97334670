package aggregator

import (
	"crypto/sha1"
	"encoding/hex"
	"strings"

	"jobradar/internal/domain/job"
)

// Fingerprint identifies a listing across sources by normalized
// title+company+location only. Deliberately coarse: distinct postings that
// share all three collapse to one representative record.
func Fingerprint(j job.Job) string {
	key := normalizeField(j.Title) + "|" + normalizeField(j.Company) + "|" + normalizeField(j.Location)
	sum := sha1.Sum([]byte(key))
	return hex.EncodeToString(sum[:])
}

func normalizeField(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Dedupe removes records with duplicate fingerprints, keeping the first
// occurrence in input order. The seen set lives only for this call.
func Dedupe(records []job.Job) []job.Job {
	seen := make(map[string]struct{}, len(records))
	out := make([]job.Job, 0, len(records))
	for _, r := range records {
		fp := Fingerprint(r)
		if _, ok := seen[fp]; ok {
			continue
		}
		seen[fp] = struct{}{}
		out = append(out, r)
	}
	return out
}
