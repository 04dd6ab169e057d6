package session

import (
	"testing"
	"time"
)

func TestMergeSlots(t *testing.T) {
	t.Run("Merges Non Empty Values", func(t *testing.T) {
		s := New("user1")
		s.MergeSlots(map[string]string{"source": "Delhi", "destination": "Mumbai"})

		if s.FilledSlots["source"] != "Delhi" || s.FilledSlots["destination"] != "Mumbai" {
			t.Errorf("Unexpected slots: %v", s.FilledSlots)
		}
	})

	t.Run("Skips Empty And Null", func(t *testing.T) {
		s := New("user1")
		s.MergeSlots(map[string]string{"source": "Delhi"})
		s.MergeSlots(map[string]string{"source": "", "date": "null"})

		if s.FilledSlots["source"] != "Delhi" {
			t.Errorf("Expected source preserved, got %q", s.FilledSlots["source"])
		}
		if _, ok := s.FilledSlots["date"]; ok {
			t.Error("Expected null value not stored")
		}
	})

	t.Run("Later Non Empty Value Wins", func(t *testing.T) {
		s := New("user1")
		s.MergeSlots(map[string]string{"date": "tomorrow"})
		s.MergeSlots(map[string]string{"date": "2025-03-11"})

		if s.FilledSlots["date"] != "2025-03-11" {
			t.Errorf("Expected corrected date, got %q", s.FilledSlots["date"])
		}
	})

	t.Run("Nil Map Initialized", func(t *testing.T) {
		s := &Session{UserID: "user1"}
		s.MergeSlots(map[string]string{"source": "Delhi"})
		if s.FilledSlots["source"] != "Delhi" {
			t.Error("Expected merge into nil map to work")
		}
	})
}

func TestLRUStore(t *testing.T) {
	t.Run("Put Get Delete", func(t *testing.T) {
		store := NewLRUStore(10, time.Minute)

		if store.Has("user1") {
			t.Error("Expected empty store")
		}

		store.Put("user1", New("user1"))
		sess, ok := store.Get("user1")
		if !ok || sess.UserID != "user1" {
			t.Fatalf("Expected stored session, got %v %v", sess, ok)
		}

		store.Delete("user1")
		if store.Has("user1") {
			t.Error("Expected session deleted")
		}
	})

	t.Run("TTL Expiry", func(t *testing.T) {
		store := NewLRUStore(10, 20*time.Millisecond)
		store.Put("user1", New("user1"))

		time.Sleep(60 * time.Millisecond)

		if _, ok := store.Get("user1"); ok {
			t.Error("Expected session expired after TTL")
		}
	})

	t.Run("Capacity Eviction", func(t *testing.T) {
		store := NewLRUStore(2, time.Minute)
		store.Put("user1", New("user1"))
		store.Put("user2", New("user2"))
		store.Put("user3", New("user3"))

		if store.Has("user1") {
			t.Error("Expected oldest session evicted at capacity")
		}
		if !store.Has("user3") {
			t.Error("Expected newest session present")
		}
	})
}
