package weatherstack

import (
	"bytes"
	"encoding/json"
)

type ErrorDetail struct {
	Code int    `json:"code"`
	Type string `json:"type"`
	Info string `json:"info"`
}

// ErrorEnvelope is the body Weatherstack sends when a request is rejected.
// Raw holds the envelope bytes exactly as received.
type ErrorEnvelope struct {
	Success bool            `json:"success"`
	Error   ErrorDetail     `json:"error"`
	Raw     json.RawMessage `json:"-"`
}

// DecodeErrorEnvelope reports whether body is an error envelope: a JSON object
// whose "success" member is literally false and whose "error" member is an object.
func DecodeErrorEnvelope(body []byte) (*ErrorEnvelope, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, false
	}

	success, ok := fields["success"]
	if !ok || !bytes.Equal(bytes.TrimSpace(success), []byte("false")) {
		return nil, false
	}

	detail, ok := fields["error"]
	if !ok {
		return nil, false
	}
	detail = bytes.TrimSpace(detail)
	if len(detail) == 0 || detail[0] != '{' {
		return nil, false
	}

	env := &ErrorEnvelope{Raw: json.RawMessage(body)}
	// Fields with unexpected types are left zero; the envelope is still an error.
	_ = json.Unmarshal(detail, &env.Error)

	return env, true
}
