package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ID is a resource identifier. The backend emits object ids as strings but
// some deployments and fixtures use integers, so both forms are accepted.
type ID string

func (i *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if bytes.Equal(data, []byte("null")) {
		*i = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*i = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid id %s: %w", string(data), err)
	}
	*i = ID(n.String())
	return nil
}

func (i ID) String() string {
	return string(i)
}

func (i ID) IsZero() bool {
	return len(i) == 0
}
