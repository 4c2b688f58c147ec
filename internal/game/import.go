package game

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// decodeImport validates that data is a JSON array of entity records
// and decodes it. Field-level cleanup is not import's job; missing
// fields fall back to schema defaults on later reads and mutations.
func decodeImport[T any](data []byte) ([]T, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, ErrInvalidImport
	}

	var out []T
	if err := json.Unmarshal(trimmed, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImport, err)
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}
