package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/NangRotha/Cloths-Frontend-User/internal/kvstore"
)

// tokenKey is the fixed key the bearer token lives under in local storage.
const tokenKey = "token"

// TokenStore persists the bearer token in the local key-value store. It
// also serves as the api client's TokenSource, so the token is read back
// on every outgoing request.
type TokenStore struct {
	kv kvstore.Store
}

func NewTokenStore(kv kvstore.Store) *TokenStore {
	return &TokenStore{kv: kv}
}

func (s *TokenStore) Token(ctx context.Context) (string, bool) {
	token, err := s.kv.Get(ctx, tokenKey)
	if err != nil {
		return "", false
	}
	return token, token != ""
}

func (s *TokenStore) Save(ctx context.Context, token string) error {
	if err := s.kv.Set(ctx, tokenKey, token); err != nil {
		return fmt.Errorf("store token: %w", err)
	}
	return nil
}

func (s *TokenStore) Clear(ctx context.Context) error {
	err := s.kv.Delete(ctx, tokenKey)
	if err != nil && !errors.Is(err, kvstore.ErrKeyNotFound) {
		return fmt.Errorf("clear token: %w", err)
	}
	return nil
}
