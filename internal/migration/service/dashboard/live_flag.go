package dashboard

import (
	"encoding/json"
	"fmt"

	"github.com/goodnatureofminers/l2-migration-dashboard/internal/migration/store"
)

// DecodeLiveFlag interprets a live flag value. Precedence:
//  1. a boolean is taken as is;
//  2. an object with a boolean "value" member uses that member;
//  3. an object with a boolean "is_live" member uses that member;
//  4. any other non-null, non-zero, non-empty value is true;
//  5. a missing value is false.
func DecodeLiveFlag(s store.Snapshot) (bool, error) {
	if !s.Exists() {
		return false, nil
	}
	var value any
	if err := json.Unmarshal(s.Raw, &value); err != nil {
		return false, fmt.Errorf("decode live flag %s: %w", s.Path, err)
	}
	switch v := value.(type) {
	case bool:
		return v, nil
	case map[string]any:
		if b, ok := v["value"].(bool); ok {
			return b, nil
		}
		if b, ok := v["is_live"].(bool); ok {
			return b, nil
		}
		return len(v) > 0, nil
	case []any:
		return len(v) > 0, nil
	case string:
		return v != "", nil
	case float64:
		return v != 0, nil
	default:
		return false, nil
	}
}
