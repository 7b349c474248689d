// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSession_Empty(t *testing.T) {
	s := NewSession()

	assert.Equal(t, SessionState{}, s.Snapshot())
	assert.False(t, s.IsAuthenticated())
}

func TestSession_ZeroValueUsable(t *testing.T) {
	var s Session

	s.SetRequestToken("token")
	assert.Equal(t, "token", s.RequestToken())
}

func TestSession_SettersAndGetters(t *testing.T) {
	s := NewSession()

	s.SetAccountID(42)
	s.SetRequestToken("req-token")
	s.SetSessionID("session-id")

	assert.Equal(t, int64(42), s.AccountID())
	assert.Equal(t, "req-token", s.RequestToken())
	assert.Equal(t, "session-id", s.SessionID())
	assert.Equal(t, SessionState{AccountID: 42, RequestToken: "req-token", SessionID: "session-id"}, s.Snapshot())
}

func TestSession_IsAuthenticated_FollowsSessionID(t *testing.T) {
	s := NewSession()

	s.SetRequestToken("req-token")
	assert.False(t, s.IsAuthenticated(), "a request token alone is not a session")

	s.SetSessionID("session-id")
	assert.True(t, s.IsAuthenticated())

	s.SetSessionID("")
	assert.False(t, s.IsAuthenticated())
}

func TestSession_SetterDoesNotValidate(t *testing.T) {
	s := NewSession()

	s.SetAccountID(-1)
	s.SetRequestToken("  ")

	assert.Equal(t, int64(-1), s.AccountID())
	assert.Equal(t, "  ", s.RequestToken())
}

func TestSession_Clear(t *testing.T) {
	s := NewSession()
	s.SetAccountID(1)
	s.SetRequestToken("t")
	s.SetSessionID("s")

	s.Clear()

	assert.Equal(t, SessionState{}, s.Snapshot())
	assert.False(t, s.IsAuthenticated())
}

func TestSession_ConcurrentAccess(t *testing.T) {
	s := NewSession()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.SetSessionID("s")
		}()
		go func() {
			defer wg.Done()
			_ = s.Snapshot()
		}()
	}
	wg.Wait()

	assert.Equal(t, "s", s.SessionID())
}
