package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// OpaqueID is a server identifier that may arrive as a JSON number or string.
type OpaqueID string

func (id *OpaqueID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = OpaqueID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("opaque id: %w", err)
	}
	*id = OpaqueID(n.String())
	return nil
}

// MarshalJSON writes canonical integers as numbers and everything else,
// including "007" and "+5", as strings.
func (id OpaqueID) MarshalJSON() ([]byte, error) {
	if n, err := strconv.ParseInt(string(id), 10, 64); err == nil && strconv.FormatInt(n, 10) == string(id) {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

// HistoryRecord is one message as returned by the history endpoint.
type HistoryRecord struct {
	MessageID   OpaqueID    `json:"messageId"`
	Sender      string      `json:"sender"`
	MessageType MessageType `json:"messageType"`
	Content     string      `json:"content"`
	CreatedAt   string      `json:"createdAt"`
}

// SendRequest is the body of a message post.
type SendRequest struct {
	Message     string      `json:"message"`
	MessageType MessageType `json:"messageType"`
}

// Validate checks that the request carries text and a known type.
func (r SendRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Message, validation.Required),
		validation.Field(&r.MessageType, validation.Required, validation.By(func(v any) error {
			if t, _ := v.(MessageType); !t.Valid() {
				return validation.NewError("validation_message_type", "unknown message type")
			}
			return nil
		})),
	)
}

// SendResponse echoes the accepted message. The coach reply itself only
// shows up in a later history fetch.
type SendResponse struct {
	Message     string      `json:"message"`
	MessageType MessageType `json:"messageType"`
}

// ModeStart is the payload returned when a guided mode starts.
type ModeStart struct {
	Message     string      `json:"message"`
	MessageType MessageType `json:"messageType"`
}
