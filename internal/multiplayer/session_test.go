package multiplayer

import "testing"

func TestModeForPlayers(t *testing.T) {
	if got := ModeForPlayers(1); got != MatchModeSolo {
		t.Errorf("ModeForPlayers(1) = %v, expected Solo", got)
	}
	if got := ModeForPlayers(2); got != MatchModeLocalDuo {
		t.Errorf("ModeForPlayers(2) = %v, expected Local Duo", got)
	}
}

func TestMatchModeString(t *testing.T) {
	tests := []struct {
		mode MatchMode
		want string
	}{
		{MatchModeSolo, "Solo"},
		{MatchModeLocalDuo, "Local Duo"},
		{MatchModeOnlineDuo, "Online Duo"},
		{MatchMode(99), "Unknown"},
	}
	for _, tc := range tests {
		if got := tc.mode.String(); got != tc.want {
			t.Errorf("String() = %q, expected %q", got, tc.want)
		}
	}
}

func TestChannelSessionSendAndReceive(t *testing.T) {
	s := NewChannelSession("sess-1", 4)

	s.Send(MatchStartedEvent{MatchID: "m1", Mode: MatchModeLocalDuo})

	select {
	case evt := <-s.Events():
		started, ok := evt.(MatchStartedEvent)
		if !ok {
			t.Fatalf("expected MatchStartedEvent, got %T", evt)
		}
		if started.MatchID != "m1" {
			t.Errorf("MatchID = %q, expected m1", started.MatchID)
		}
	default:
		t.Fatal("expected a buffered event")
	}
}

func TestChannelSessionDropsOldestWhenFull(t *testing.T) {
	s := NewChannelSession("sess-1", 2)

	s.Send(MatchStartedEvent{MatchID: "m1"})
	s.Send(MatchStartedEvent{MatchID: "m2"})
	s.Send(MatchStartedEvent{MatchID: "m3"}) // Buffer full, m1 is dropped

	first := <-s.Events()
	if first.(MatchStartedEvent).MatchID != "m2" {
		t.Errorf("first event = %v, expected m2 after oldest dropped", first)
	}
	second := <-s.Events()
	if second.(MatchStartedEvent).MatchID != "m3" {
		t.Errorf("second event = %v, expected m3", second)
	}
}

func TestChannelSessionClose(t *testing.T) {
	s := NewChannelSession("sess-1", 4)

	s.Close()
	s.Close() // Safe to call twice

	select {
	case <-s.Done():
	default:
		t.Fatal("Done() should be closed after Close()")
	}

	// Sends after close are discarded
	s.Send(MatchStartedEvent{MatchID: "late"})
	select {
	case evt := <-s.Events():
		t.Errorf("expected no events after close, got %v", evt)
	default:
	}
}

func TestSessionRegistry(t *testing.T) {
	r := NewSessionRegistry()

	s1 := NewChannelSession("a", 1)
	s2 := NewChannelSession("b", 1)
	r.Register(s1)
	r.Register(s2)

	if r.Count() != 2 {
		t.Errorf("Count() = %d, expected 2", r.Count())
	}

	got, ok := r.Get("a")
	if !ok || got.ID() != "a" {
		t.Errorf("Get(a) = %v, %v", got, ok)
	}

	r.Unregister("a")
	if _, ok := r.Get("a"); ok {
		t.Error("session should be gone after Unregister")
	}
	if r.Count() != 1 {
		t.Errorf("Count() = %d, expected 1", r.Count())
	}
}
