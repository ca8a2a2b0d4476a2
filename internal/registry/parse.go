package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/jsonc"
)

// ErrInvalid is returned when a registry document does not match the schema.
var ErrInvalid = errors.New("invalid template registry")

// Parse decodes a registry document. Comments and trailing commas are
// tolerated. Entry order follows the document.
func Parse(data []byte) (*Registry, error) {
	data = jsonc.ToJSON(data)

	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if !result.Valid {
		msgs := make([]string, len(result.Issues))
		for i, issue := range result.Issues {
			msgs[i] = issue.String()
		}
		return nil, fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
	}

	reg := &Registry{}
	var decodeErr error
	gjson.ParseBytes(data).ForEach(func(key, value gjson.Result) bool {
		var t Template
		if err := json.Unmarshal([]byte(value.Raw), &t); err != nil {
			decodeErr = fmt.Errorf("%w: entry %q: %v", ErrInvalid, key.String(), err)
			return false
		}
		t.ID = key.String()
		reg.Templates = append(reg.Templates, t)
		return true
	})
	if decodeErr != nil {
		return nil, decodeErr
	}
	return reg, nil
}
