package service

import "brnaccounts/internal/model"

// applyMergePolicy prepares an update submission against the stored record.
// The submission replaces the stored document wholesale, with two protected
// fields: a missing profilePic keeps the stored upload reference, and an
// absent or empty password keeps the stored hash. skipHash reports that the
// password carried over is already hashed and must not be hashed again.
// Concurrent updates to the same email are last-write-wins.
func applyMergePolicy(fields map[string]string, existing *model.User) (map[string]string, bool) {
	merged := make(map[string]string, len(fields))
	for k, v := range fields {
		merged[k] = v
	}

	if _, ok := merged["profilePic"]; !ok {
		merged["profilePic"] = existing.ProfilePic
	}

	skipHash := false
	if merged["password"] == "" {
		merged["password"] = existing.Password
		skipHash = true
	}

	return merged, skipHash
}
