package session

import (
	"context"
	"errors"
	"os"
	"strings"

	"cobranza_campo/internal/usecase/interfaces"
)

var ErrMissingAccessToken = errors.New("missing COLLECTIONS_ACCESS_TOKEN")

// EnvTokenProvider reads the bearer token from the environment. The real
// session lifecycle (login, refresh, logout) belongs to the session
// collaborator; this provider only hands the current token to the submitter.

type EnvTokenProvider struct{}

var _ interfaces.ITokenProvider = (*EnvTokenProvider)(nil)

func NewEnvTokenProvider() *EnvTokenProvider {
	return &EnvTokenProvider{}
}

func (p *EnvTokenProvider) Token(_ context.Context) (string, error) {
	token := strings.TrimSpace(os.Getenv("COLLECTIONS_ACCESS_TOKEN"))
	if token == "" {
		return "", ErrMissingAccessToken
	}
	return token, nil
}
