package session

import (
	"encoding/json"

	"github.com/inamate/sketchpad/internal/document"
	"github.com/inamate/sketchpad/internal/engine"
)

type Message struct {
	Type      string          `json:"type"`
	SessionID string          `json:"sessionId,omitempty"`
	ClientID  string          `json:"clientId,omitempty"`
	Seq       int64           `json:"seq,omitempty"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}

const (
	// Connection
	TypeWelcome = "welcome"
	TypeError   = "error"

	// Input events (client -> server)
	TypePointerDown = "pointer.down"
	TypePointerMove = "pointer.move"
	TypePointerUp   = "pointer.up"
	TypeDoubleClick = "dblclick"
	TypeKey         = "key"
	TypeTextCommit  = "text.commit"
	TypeTextCancel  = "text.cancel"

	// Toolbar and document commands (client -> server)
	TypeToolSet   = "tool.set"
	TypeStyleSet  = "style.set"
	TypeUndo      = "undo"
	TypeRedo      = "redo"
	TypeClear     = "clear"
	TypeDelete    = "delete"
	TypeSelectAll = "select.all"
	TypeLoad      = "load"
	TypeSync      = "sync"

	// Surface updates (server -> client)
	TypeRender    = "render"
	TypeTextOpen  = "text.open"
	TypeTextClose = "text.close"
)

type PointerPayload struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type TextPayload struct {
	Text string `json:"text"`
}

type ToolPayload struct {
	Tool engine.Tool `json:"tool"`
}

// StylePayload sets the current style. When ApplyToSelection is set the
// change is also applied to the selected elements as one undo step.
type StylePayload struct {
	Color            *string  `json:"color,omitempty"`
	StrokeWidth      *float64 `json:"strokeWidth,omitempty"`
	ApplyToSelection bool     `json:"applyToSelection,omitempty"`
}

type LoadPayload struct {
	Elements []document.Element `json:"elements"`
}

type WelcomePayload struct {
	SessionID string             `json:"sessionId"`
	ClientID  string             `json:"clientId"`
	Elements  []document.Element `json:"elements"`
}

type RenderPayload struct {
	Commands  []engine.DrawCommand `json:"commands"`
	Selection []string             `json:"selection"`
	State     engine.State         `json:"state"`
	Tool      engine.Tool          `json:"tool"`
	Color     string               `json:"color"`
	CanUndo   bool                 `json:"canUndo"`
	CanRedo   bool                 `json:"canRedo"`
}

type TextClosePayload struct {
	ElementID string `json:"elementId"`
}

type ErrorPayload struct {
	Type    string `json:"type,omitempty"`
	Message string `json:"message"`
}
