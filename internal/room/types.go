package room

import (
	"encoding/json"

	"drawguess/logger"
)

type Role string

const (
	RoleDrawer  Role = "drawer"
	RoleGuesser Role = "guesser"
)

// Inbound is the flat wire envelope for client messages. Required
// fields are pointers so the router can tell "absent" from "zero".
type Inbound struct {
	Type      string   `json:"type"`
	SessionID *string  `json:"session_id"`
	Name      *string  `json:"name"`
	Role      *string  `json:"role"`
	X         *float64 `json:"x"`
	Y         *float64 `json:"y"`
	Message   *string  `json:"message"`
	Guess     *string  `json:"guess"`
}

type roleMsg struct {
	Type     string `json:"type"`
	IsDrawer bool   `json:"is_drawer"`
	Word     string `json:"word,omitempty"`
}

type errorMsg struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type drawMsg struct {
	Type string  `json:"type"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

type chatMsg struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type winMsg struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

type resetMsg struct {
	Type string `json:"type"`
}

func marshal(v any) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		logger.Error("marshal outbound: %v", err)
		return nil
	}
	return b
}
