package auth

import (
	"testing"
	"time"
)

func TestSessionStore_CreateAndGet(t *testing.T) {
	store := NewSessionStore(0)
	defer store.Close()

	session := store.Create("stu-1", "ada")
	if len(session.Token) != 64 {
		t.Errorf("token length = %d, want 64 hex chars", len(session.Token))
	}
	if session.StudentID != "stu-1" || session.Name != "ada" {
		t.Errorf("session = %+v", session)
	}
	if !session.ExpiresAt.After(session.CreatedAt) {
		t.Error("expected expiry after creation")
	}

	got, ok := store.Get(session.Token)
	if !ok || got.Token != session.Token {
		t.Fatal("expected to get the session back")
	}

	other := store.Create("stu-1", "ada")
	if other.Token == session.Token {
		t.Error("expected distinct tokens per session")
	}
}

func TestSessionStore_UnknownToken(t *testing.T) {
	store := NewSessionStore(0)
	defer store.Close()

	if _, ok := store.Get("deadbeef"); ok {
		t.Error("expected unknown token to miss")
	}
}

func TestSessionStore_Expiry(t *testing.T) {
	store := NewSessionStore(10 * time.Millisecond)
	defer store.Close()

	session := store.Create("stu-1", "ada")
	time.Sleep(30 * time.Millisecond)

	if _, ok := store.Get(session.Token); ok {
		t.Error("expected expired session to miss")
	}
}

func TestSessionStore_Delete(t *testing.T) {
	store := NewSessionStore(0)
	defer store.Close()

	session := store.Create("stu-1", "ada")
	store.Delete(session.Token)

	if _, ok := store.Get(session.Token); ok {
		t.Error("expected deleted session to miss")
	}
}

func TestSessionStore_DeleteStudentSessions(t *testing.T) {
	store := NewSessionStore(0)
	defer store.Close()

	first := store.Create("stu-1", "ada")
	second := store.Create("stu-1", "ada")
	other := store.Create("stu-2", "grace")

	store.DeleteStudentSessions("stu-1")

	if _, ok := store.Get(first.Token); ok {
		t.Error("expected stu-1 session gone")
	}
	if _, ok := store.Get(second.Token); ok {
		t.Error("expected stu-1 session gone")
	}
	if _, ok := store.Get(other.Token); !ok {
		t.Error("expected stu-2 session to survive")
	}
}
