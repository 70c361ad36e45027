// Package token provides a TokenProvider backed by a pre-issued access
// token, for environments where OAuth is handled externally (gcloud,
// CI secret stores).
package token

import (
	"context"
	"errors"

	"github.com/mkbabb/sheetrange/internal/core/ports/driven"
)

// Static hands out a fixed access token. It never refreshes; callers own
// the token's lifetime.
type Static struct {
	token string
}

var _ driven.TokenProvider = (*Static)(nil)

func NewStatic(accessToken string) *Static {
	return &Static{token: accessToken}
}

func (s *Static) GetToken(_ context.Context) (string, error) {
	if s.token == "" {
		return "", errors.New("token: empty access token")
	}
	return s.token, nil
}
