package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSONMap is a free-form JSON object stored in a JSON/JSONB column.
// A nil map is stored as SQL NULL.
type JSONMap map[string]any

func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	b, err := json.Marshal(map[string]any(m))
	if err != nil {
		return nil, fmt.Errorf("marshal json column: %w", err)
	}
	return b, nil
}

func (m *JSONMap) Scan(src any) error {
	data, err := jsonBytes(src)
	if err != nil || data == nil {
		*m = nil
		return err
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return fmt.Errorf("unmarshal json column: %w", err)
	}
	*m = out
	return nil
}

// ProviderIDs maps a provider name to the player's id in that provider,
// e.g. {"espn": "123", "sleeper": "456"}.
type ProviderIDs map[string]string

func (p ProviderIDs) Value() (driver.Value, error) {
	if p == nil {
		return nil, nil
	}
	b, err := json.Marshal(map[string]string(p))
	if err != nil {
		return nil, fmt.Errorf("marshal provider ids: %w", err)
	}
	return b, nil
}

func (p *ProviderIDs) Scan(src any) error {
	data, err := jsonBytes(src)
	if err != nil || data == nil {
		*p = nil
		return err
	}
	var out map[string]string
	if err := json.Unmarshal(data, &out); err != nil {
		return fmt.Errorf("unmarshal provider ids: %w", err)
	}
	*p = out
	return nil
}

func jsonBytes(src any) ([]byte, error) {
	switch v := src.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("unsupported json column type %T", src)
	}
}
