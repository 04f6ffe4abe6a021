package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/inamate/sketchpad/internal/document"
	"github.com/inamate/sketchpad/internal/engine"
)

var (
	ErrUnknownMessage = errors.New("unknown message type")
	ErrInvalidPayload = errors.New("invalid payload")
)

// Session owns one engine and forwards its surface and text-overlay
// callbacks as messages. Handle serializes events from the connection with
// reads from HTTP handlers.
type Session struct {
	ID string

	mu     sync.Mutex
	engine *engine.Engine
	seq    int64
	send   func(*Message)
	log    *slog.Logger
}

// New creates a session whose outgoing messages go to send.
func New(id string, send func(*Message), opts ...engine.Option) *Session {
	s := &Session{
		ID:   id,
		send: send,
		log:  slog.Default().With("session", id),
	}
	base := []engine.Option{
		engine.WithLogger(s.log),
		engine.WithSurface(s),
		engine.WithTextEditor(s),
	}
	s.engine = engine.New(append(base, opts...)...)
	return s
}

// Draw implements engine.Surface.
func (s *Session) Draw(commands []engine.DrawCommand) {
	s.emit(TypeRender, s.renderPayload(commands))
}

// OpenText implements engine.TextEditor.
func (s *Session) OpenText(overlay engine.TextOverlay) {
	s.emit(TypeTextOpen, overlay)
}

// CloseText implements engine.TextEditor.
func (s *Session) CloseText(elementID string) {
	s.emit(TypeTextClose, TextClosePayload{ElementID: elementID})
}

func (s *Session) renderPayload(commands []engine.DrawCommand) RenderPayload {
	if commands == nil {
		commands = []engine.DrawCommand{}
	}
	return RenderPayload{
		Commands:  commands,
		Selection: s.engine.Selection(),
		State:     s.engine.State(),
		Tool:      s.engine.Tool(),
		Color:     s.engine.Color(),
		CanUndo:   s.engine.CanUndo(),
		CanRedo:   s.engine.CanRedo(),
	}
}

// emit must be called with mu held or from inside an engine callback.
func (s *Session) emit(msgType string, payload any) {
	if s.send == nil {
		return
	}
	data, err := json.Marshal(payload)
	if err != nil {
		s.log.Error("marshal payload", "type", msgType, "error", err)
		return
	}
	s.seq++
	s.send(&Message{
		Type:      msgType,
		SessionID: s.ID,
		Seq:       s.seq,
		Payload:   data,
	})
}

// Welcome sends the greeting for a newly connected client, followed by the
// first render.
func (s *Session) Welcome(clientID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.emit(TypeWelcome, WelcomePayload{
		SessionID: s.ID,
		ClientID:  clientID,
		Elements:  s.engine.Elements(),
	})
	s.Draw(s.engine.Render())
}

// Handle applies one inbound message to the engine.
func (s *Session) Handle(msg *Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch msg.Type {
	case TypePointerDown, TypePointerMove, TypePointerUp, TypeDoubleClick:
		var p PointerPayload
		if err := decode(msg, &p); err != nil {
			return err
		}
		pt := document.Point{X: p.X, Y: p.Y}
		switch msg.Type {
		case TypePointerDown:
			s.engine.PointerDown(pt)
		case TypePointerMove:
			s.engine.PointerMove(pt)
		case TypePointerUp:
			s.engine.PointerUp(pt)
		default:
			s.engine.DoubleClick(pt)
		}

	case TypeKey:
		var k engine.KeyEvent
		if err := decode(msg, &k); err != nil {
			return err
		}
		s.engine.KeyDown(k)

	case TypeTextCommit:
		var t TextPayload
		if err := decode(msg, &t); err != nil {
			return err
		}
		s.engine.CommitText(t.Text)

	case TypeTextCancel:
		s.engine.CancelText()

	case TypeToolSet:
		var t ToolPayload
		if err := decode(msg, &t); err != nil {
			return err
		}
		if !t.Tool.Valid() {
			return fmt.Errorf("tool %q: %w", t.Tool, ErrInvalidPayload)
		}
		s.engine.SetTool(t.Tool)
		s.Draw(s.engine.Render())

	case TypeStyleSet:
		var st StylePayload
		if err := decode(msg, &st); err != nil {
			return err
		}
		s.applyStyle(st)

	case TypeUndo:
		s.engine.Undo()
	case TypeRedo:
		s.engine.Redo()
	case TypeClear:
		s.engine.Clear()
	case TypeDelete:
		s.engine.DeleteSelection()
	case TypeSelectAll:
		s.engine.SelectAll()

	case TypeLoad:
		var l LoadPayload
		if err := decode(msg, &l); err != nil {
			return err
		}
		s.engine.LoadElements(l.Elements)

	case TypeSync:
		s.Draw(s.engine.Render())

	default:
		return fmt.Errorf("%q: %w", msg.Type, ErrUnknownMessage)
	}
	return nil
}

func (s *Session) applyStyle(st StylePayload) {
	if st.Color != nil {
		if st.ApplyToSelection {
			s.engine.SetSelectionColor(*st.Color)
		} else {
			s.engine.SetColor(*st.Color)
		}
	}
	if st.StrokeWidth != nil {
		if st.ApplyToSelection {
			s.engine.SetSelectionStrokeWidth(*st.StrokeWidth)
		} else {
			s.engine.SetStrokeWidth(*st.StrokeWidth)
		}
	}
}

func decode(msg *Message, v any) error {
	if len(msg.Payload) == 0 {
		return fmt.Errorf("%s: missing payload: %w", msg.Type, ErrInvalidPayload)
	}
	if err := json.Unmarshal(msg.Payload, v); err != nil {
		return fmt.Errorf("%s: %w: %w", msg.Type, ErrInvalidPayload, err)
	}
	return nil
}

// Elements returns a copy of the session's canvas.
func (s *Session) Elements() []document.Element {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Elements()
}

// Render returns the current draw command buffer without notifying the client.
func (s *Session) Render() []engine.DrawCommand {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Render()
}

// ErrorMessage builds the error reply for a rejected inbound message.
func ErrorMessage(msgType string, err error) *Message {
	payload, _ := json.Marshal(ErrorPayload{Type: msgType, Message: err.Error()})
	return &Message{Type: TypeError, Payload: payload}
}
