// Package entities defines the dynamic sub-records a quote session can
// accumulate (claims, drivers, vehicles, household members), their JSON
// codecs, and the composed-key convention that associates per-entity values
// with store fields outside the canonical list blob.
package entities

import "strings"

// ComposeKey builds the store key for a per-entity value, e.g.
// ComposeKey("collision", vehicleID) for one cell of the coverage matrix.
func ComposeKey(base, entityID string) string {
	return base + "_" + entityID
}

// ParseKey splits a composed key back into its base and entity id. Keys
// without a separator report ok=false.
func ParseKey(key string) (base, entityID string, ok bool) {
	idx := strings.LastIndex(key, "_")
	if idx <= 0 || idx == len(key)-1 {
		return "", "", false
	}
	return key[:idx], key[idx+1:], true
}
