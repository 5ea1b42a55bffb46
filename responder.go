package profilersdk

import "context"

// ──────────────────────────────────────────────
// Conversational responder boundary
// ──────────────────────────────────────────────

// Message is one turn of the chat history.
type Message struct {
	Role    string `json:"role"` // "user" | "assistant" | "system"
	Content string `json:"content"`
}

// RespondMeta annotates a responder call. Plan, when present, steers the
// style of the reply; the pipeline never inspects the reply itself.
type RespondMeta struct {
	Plan *CommunicationPlan
}

// Reply is the responder's answer.
type Reply struct {
	Content string `json:"content"`
}

// Responder is the opaque conversational collaborator. Implementations live
// outside the compute core (see the responder package); tests use
// EchoResponder.
type Responder interface {
	Respond(ctx context.Context, history []Message, meta RespondMeta) (*Reply, error)
}

// EchoResponder is a trivial Responder for tests and offline runs: it echoes
// the last user message, prefixed with the plan tone when a plan is attached.
type EchoResponder struct{}

func (EchoResponder) Respond(_ context.Context, history []Message, meta RespondMeta) (*Reply, error) {
	last := ""
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role == "user" {
			last = history[i].Content
			break
		}
	}
	if meta.Plan != nil {
		return &Reply{Content: "[" + meta.Plan.Tone + "] " + last}, nil
	}
	return &Reply{Content: last}, nil
}

var _ Responder = EchoResponder{}
