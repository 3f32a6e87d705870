package domain

import (
	"encoding/json"

	"github.com/ethereum/go-ethereum/crypto"
)

// PoolKey derives a stable pool key for an ABI supplied out of band (no
// address to key it by): Keccak-256 over the compact JSON of the normalized
// ABI. Normalizing first makes the key independent of entry ordering in the
// source document, so the same ABI always lands on the same pool entry
// across runs.
func PoolKey(a ABI) (string, error) {
	normalized, err := a.Normalize()
	if err != nil {
		return "", err
	}
	data, err := json.Marshal(normalized)
	if err != nil {
		return "", err
	}
	return crypto.Keccak256Hash(data).Hex(), nil
}
