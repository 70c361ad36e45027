package google

import (
	"context"

	"golang.org/x/oauth2"

	"github.com/mkbabb/sheetrange/internal/core/ports/driven"
)

// tokenSource bridges the TokenProvider port into oauth2.TokenSource, so a
// Sheets service can authenticate with an application-managed access token
// instead of credentials JSON.
type tokenSource struct {
	provider driven.TokenProvider
	ctx      context.Context
}

// NewTokenSource wraps a TokenProvider for use with NewSheetsService. The
// context is captured for the provider's refresh calls, which oauth2 makes
// without one.
func NewTokenSource(ctx context.Context, provider driven.TokenProvider) oauth2.TokenSource {
	return &tokenSource{provider: provider, ctx: ctx}
}

func (s *tokenSource) Token() (*oauth2.Token, error) {
	accessToken, err := s.provider.GetToken(s.ctx)
	if err != nil {
		return nil, err
	}
	return &oauth2.Token{AccessToken: accessToken, TokenType: "Bearer"}, nil
}
