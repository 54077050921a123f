package dto

import (
	"encoding/json"
	"errors"
	"strings"
)

var ErrInvalidBoolean = errors.New("value must be true or false")

// FlexBool accepts the boolean spellings HTML forms and JSON clients send:
// true/false, 1/0 and their string forms.
type FlexBool bool

func (b *FlexBool) UnmarshalParam(param string) error {
	switch strings.ToLower(strings.TrimSpace(param)) {
	case "1", "true", "on":
		*b = true
	case "0", "false", "off":
		*b = false
	default:
		return ErrInvalidBoolean
	}
	return nil
}

func (b *FlexBool) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return ErrInvalidBoolean
	}

	switch v := raw.(type) {
	case bool:
		*b = FlexBool(v)
		return nil
	case float64:
		if v == 0 || v == 1 {
			*b = v == 1
			return nil
		}
	case string:
		return b.UnmarshalParam(v)
	}
	return ErrInvalidBoolean
}

// Ptr converts to the service input form; nil means the field was absent.
func (b *FlexBool) Ptr() *bool {
	if b == nil {
		return nil
	}
	v := bool(*b)
	return &v
}
