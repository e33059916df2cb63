package tracker

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ImportEntry is one task in a bulk import. Count follows the add command:
// empty for no limit, otherwise the total number of occurrences.
type ImportEntry struct {
	Name    string `json:"name"`
	Cadence string `json:"cadence"`
	Count   Count  `json:"count,omitempty"`
}

// Count accepts a JSON number or string.
type Count string

func (c *Count) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*c = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = Count(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("count must be a number or string: %w", err)
	}
	*c = Count(n.String())
	return nil
}
