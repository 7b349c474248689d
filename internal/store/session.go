// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "sync"

// Session holds the mutable authentication state of one signed-in user for
// the lifetime of the process: the request token being exchanged, the
// session id issued for it and the account id the session belongs to.
//
// A Session is created empty and is only mutated by the login handshake and
// by logout. Setters perform no validation: the API client is the only
// writer. The zero value is ready to use.
//
// Invariant: SessionID() is non-empty if and only if the user is
// authenticated.
type Session struct {
	mu sync.RWMutex

	accountID    int64
	requestToken string
	sessionID    string
}

// SessionState is a point-in-time copy of a [Session].
type SessionState struct {
	AccountID    int64
	RequestToken string
	SessionID    string
}

// NewSession returns an empty session.
func NewSession() *Session {
	return &Session{}
}

func (s *Session) AccountID() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accountID
}

func (s *Session) SetAccountID(id int64) {
	s.mu.Lock()
	s.accountID = id
	s.mu.Unlock()
}

func (s *Session) RequestToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.requestToken
}

func (s *Session) SetRequestToken(token string) {
	s.mu.Lock()
	s.requestToken = token
	s.mu.Unlock()
}

func (s *Session) SessionID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessionID
}

func (s *Session) SetSessionID(id string) {
	s.mu.Lock()
	s.sessionID = id
	s.mu.Unlock()
}

// IsAuthenticated reports whether a session id is held.
func (s *Session) IsAuthenticated() bool {
	return s.SessionID() != ""
}

// Clear resets every field to its initial empty value.
func (s *Session) Clear() {
	s.mu.Lock()
	s.accountID = 0
	s.requestToken = ""
	s.sessionID = ""
	s.mu.Unlock()
}

// Snapshot returns a consistent copy of all fields.
func (s *Session) Snapshot() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return SessionState{
		AccountID:    s.accountID,
		RequestToken: s.requestToken,
		SessionID:    s.sessionID,
	}
}
