package websocket

import (
	"encoding/json"

	"github.com/zhuoyaazh/my-pixel-world/internal/entity"
)

const (
	actionNewGame   = "game:new"
	actionGameState = "game:state"
	actionGameTurn  = "game:turn"
	actionGameReset = "game:reset"
	actionError     = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type GameRef struct {
	ID string `json:"id"`
}

type RequestPayload struct {
	Game       *GameRef `json:"game,omitempty"`
	Token      string   `json:"token,omitempty"`
	Cell       *int     `json:"cell,omitempty"`
	Difficulty string   `json:"difficulty,omitempty"`
	Lang       string   `json:"lang,omitempty"`
}

type ResponsePayload struct {
	Session *entity.Session `json:"session,omitempty"`
	Token   string          `json:"token,omitempty"`
	Status  string          `json:"status,omitempty"`
	Error   string          `json:"error,omitempty"`
}
