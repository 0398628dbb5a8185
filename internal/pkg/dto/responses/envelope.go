package responses

import (
	"strings"

	"github.com/goccy/go-json"
)

// Envelope is the records backend's response wrapper. Some endpoints
// capitalize the field names and some do not; both forms decode to the
// same struct and are treated as equivalent.
type Envelope struct {
	Success bool
	Message string
	Data    json.RawMessage
}

type envelopeWire struct {
	Success  *bool           `json:"success"`
	SuccessC *bool           `json:"Success"`
	Message  *string         `json:"message"`
	MessageC *string         `json:"Message"`
	Data     json.RawMessage `json:"data"`
	DataC    json.RawMessage `json:"Data"`
}

func (e *Envelope) UnmarshalJSON(b []byte) error {
	var wire envelopeWire
	if err := json.Unmarshal(b, &wire); err != nil {
		return err
	}
	switch {
	case wire.Success != nil:
		e.Success = *wire.Success
	case wire.SuccessC != nil:
		e.Success = *wire.SuccessC
	}
	switch {
	case wire.Message != nil:
		e.Message = *wire.Message
	case wire.MessageC != nil:
		e.Message = *wire.MessageC
	}
	if wire.Data != nil {
		e.Data = wire.Data
	} else {
		e.Data = wire.DataC
	}
	return nil
}

// DecodeData unmarshals the payload into v. An absent or null payload
// leaves v untouched.
func (e *Envelope) DecodeData(v interface{}) error {
	if len(e.Data) == 0 || string(e.Data) == "null" {
		return nil
	}
	return json.Unmarshal(e.Data, v)
}

// NoRecords reports whether the backend answered with its "no records
// found" sentinel, which is a valid empty result rather than a failure.
func (e *Envelope) NoRecords() bool {
	return !e.Success && strings.Contains(strings.ToLower(e.Message), "no record")
}
