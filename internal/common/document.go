package common

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"unicode"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var ErrEmptyDocument = errors.New("no data provided")

func looksLikeJSON(data []byte) bool {
	return len(data) > 0 && (data[0] == '{' || data[0] == '[')
}

// DecodeDocument reads a JSON or YAML document into a T. YAML goes through
// a JSON round trip first so only the json tags of T matter.
func DecodeDocument[T any](data []byte) (*T, error) {

	data = bytes.TrimLeftFunc(data, unicode.IsSpace)
	if len(data) == 0 {
		return nil, ErrEmptyDocument
	}

	if !looksLikeJSON(data) {
		var tree any
		if err := yaml.Unmarshal(data, &tree); err != nil {
			return nil, fmt.Errorf("invalid YAML: %w", err)
		}

		converted, err := json.Marshal(tree)
		if err != nil {
			return nil, fmt.Errorf("YAML cannot be represented as JSON: %w", err)
		}

		logrus.WithField("bytes", len(converted)).Debugln("Converted YAML document to JSON")
		data = converted
	}

	var item T
	if err := json.Unmarshal(data, &item); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}

	return &item, nil
}
