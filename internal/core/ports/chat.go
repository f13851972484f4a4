package ports

import "context"

// ChatClient is the external assistant boundary. Initialize must be
// idempotent; callers invoke it before every first use in a session.
type ChatClient interface {
	Initialize(ctx context.Context) error
	SendMessage(ctx context.Context, text string) (string, error)
}

// ChatReply is what a dispatcher worker hands back for one job.
type ChatReply struct {
	Text string
	Err  error
}

// ChatJob is one message waiting for the collaborator. Reply must have
// capacity for one value so a worker never blocks on an absent requester.
type ChatJob struct {
	SessionID string
	Text      string
	Reply     chan<- ChatReply
}

// ChatAsker turns a message into assistant text, never failing.
type ChatAsker interface {
	Ask(ctx context.Context, sessionID, text string) string
}
