// Package session is the single source of truth for who is logged in. The
// authenticated identity lives in durable storage under two product-prefixed
// keys: the opaque bearer token and the serialized user record.
package session

import (
	"encoding/json"
	"fmt"

	"talentia/internal/domain/user"
)

const (
	tokenKey = "talentia_token"
	userKey  = "talentia_user"
)

type Session struct {
	Token string
	User  user.User
}

type Store struct {
	storage Storage
}

func NewStore(storage Storage) *Store {
	return &Store{storage: storage}
}

// Load returns the stored session, or nil when no session exists. A missing
// key or a user record that fails to parse both read as "not logged in";
// neither is an error.
func (s *Store) Load() *Session {
	token, ok := s.storage.Get(tokenKey)
	if !ok || token == "" {
		return nil
	}
	raw, ok := s.storage.Get(userKey)
	if !ok {
		return nil
	}
	var u user.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return nil
	}
	return &Session{Token: token, User: u}
}

// Save persists both keys. The token is stored as-is; no shape validation
// happens client-side.
func (s *Store) Save(token string, u user.User) error {
	raw, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	if err := s.storage.Set(tokenKey, token); err != nil {
		return fmt.Errorf("store token: %w", err)
	}
	if err := s.storage.Set(userKey, string(raw)); err != nil {
		return fmt.Errorf("store user: %w", err)
	}
	return nil
}

// Clear removes both keys, signing the user out.
func (s *Store) Clear() error {
	if err := s.storage.Delete(tokenKey); err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	if err := s.storage.Delete(userKey); err != nil {
		return fmt.Errorf("clear user: %w", err)
	}
	return nil
}
