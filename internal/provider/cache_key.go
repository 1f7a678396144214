package provider

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
)

type cacheKeyInput struct {
	Provider  string   `json:"provider"`
	Operation string   `json:"operation"`
	Params    []string `json:"params"`
}

func normalizeParam(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.Join(strings.Fields(s), " ")
	return s
}

// cacheKey is deterministic over (provider, operation, normalized params), so
// the same semantic query always maps to the same cache entry.
func cacheKey(providerName, operation string, params ...string) string {
	norm := make([]string, 0, len(params))
	for _, p := range params {
		norm = append(norm, normalizeParam(p))
	}

	in := cacheKeyInput{
		Provider:  normalizeParam(providerName),
		Operation: normalizeParam(operation),
		Params:    norm,
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return "providers:" + in.Provider + ":" + in.Operation + ":" + hex.EncodeToString(sum[:])
}
