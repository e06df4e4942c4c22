package interfaces

import "context"

// ITokenProvider supplies the bearer token for the collections backend.
// Session management is owned by an external collaborator; the queue only
// consumes the token.
type ITokenProvider interface {
	Token(ctx context.Context) (string, error)
}
