package ws

import (
	"encoding/json"
)

// Envelope wraps all WebSocket messages with a type discriminator. ID is
// chosen by the client and echoed on the matching response.
type Envelope struct {
	Type    string          `json:"type"`
	ID      string          `json:"id,omitempty"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Message type constants
const (
	// Client -> Server
	TypeSimRun          = "sim:run"
	TypeScenarioCompute = "scenario:compute"
	TypeFundingMatch    = "funding:match"

	// Server -> Client
	TypeSimResult      = "sim:result"
	TypeScenarioResult = "scenario:result"
	TypeFundingResult  = "funding:result"
	TypeCatalogUpdated = "catalog:updated"
	TypeError          = "error"
)

type ErrorPayload struct {
	Message string `json:"message"`
}

type CatalogUpdatedPayload struct {
	User string `json:"user"`
}

func NewEnvelope(msgType string, payload any) ([]byte, error) {
	return NewReply(msgType, "", payload)
}

// NewReply builds an envelope answering the request with the given ID.
func NewReply(msgType, id string, payload any) ([]byte, error) {
	var raw json.RawMessage
	if payload != nil {
		var err error
		raw, err = json.Marshal(payload)
		if err != nil {
			return nil, err
		}
	}
	return json.Marshal(Envelope{Type: msgType, ID: id, Payload: raw})
}
