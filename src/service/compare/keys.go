package compare

import (
	"fmt"
	"strings"

	"quality-trends/src/model"
)

// keySeparator joins repository and branch into an identity key. It never
// occurs in exported repository names, so keys stay unambiguous.
const keySeparator = "___"

// IdentityKey builds the composite repository+branch key for a record.
// Records with a blank repository or branch have no identity and are
// rejected.
func IdentityKey(record model.MetricRecord) (string, error) {
	repo := strings.TrimSpace(record.Repository)
	branch := strings.TrimSpace(record.Branch)
	if repo == "" {
		return "", fmt.Errorf("record has no repository name")
	}
	if branch == "" {
		return "", fmt.Errorf("record for %s has no branch", repo)
	}
	return repo + keySeparator + branch, nil
}

// index maps records by identity key, dropping records without one.
// Later duplicates of a key are ignored; keys are unique within a period.
func index(records []model.MetricRecord) map[string]model.MetricRecord {
	byKey := make(map[string]model.MetricRecord, len(records))
	for _, r := range records {
		key, err := IdentityKey(r)
		if err != nil {
			continue
		}
		if _, ok := byKey[key]; !ok {
			byKey[key] = r
		}
	}
	return byKey
}
