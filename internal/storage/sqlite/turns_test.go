package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rcondori/horabot/internal/core"
)

func testRepo(t *testing.T) *TurnsRepo {
	t.Helper()
	db, err := NewDB(context.Background(), filepath.Join(t.TempDir(), "horabot.db"))
	if err != nil {
		t.Fatalf("NewDB: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewTurnsRepo(db)
}

func TestTurns_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := testRepo(t)

	turns := []core.ConversationTurn{
		{Question: "primera", Answer: "uno"},
		{Question: "segunda", Answer: "dos"},
		{Question: "tercera", Answer: "tres"},
	}
	for _, turn := range turns {
		if err := repo.AddTurn(ctx, "cli-local", turn); err != nil {
			t.Fatalf("AddTurn: %v", err)
		}
	}

	got, err := repo.GetTurns(ctx, "cli-local", 10)
	if err != nil {
		t.Fatalf("GetTurns: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 turns, got %d", len(got))
	}
	for i := range turns {
		if got[i] != turns[i] {
			t.Errorf("turn %d = %+v, want %+v", i, got[i], turns[i])
		}
	}
}

func TestTurns_LimitKeepsNewest(t *testing.T) {
	ctx := context.Background()
	repo := testRepo(t)

	for _, q := range []string{"a", "b", "c"} {
		if err := repo.AddTurn(ctx, "s", core.ConversationTurn{Question: q, Answer: q}); err != nil {
			t.Fatalf("AddTurn: %v", err)
		}
	}

	got, err := repo.GetTurns(ctx, "s", 2)
	if err != nil {
		t.Fatalf("GetTurns: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 turns, got %d", len(got))
	}
	if got[0].Question != "b" || got[1].Question != "c" {
		t.Errorf("expected the newest turns oldest-first, got %+v", got)
	}
}

func TestTurns_SessionsIsolated(t *testing.T) {
	ctx := context.Background()
	repo := testRepo(t)

	if err := repo.AddTurn(ctx, "uno", core.ConversationTurn{Question: "q", Answer: "a"}); err != nil {
		t.Fatalf("AddTurn: %v", err)
	}

	got, err := repo.GetTurns(ctx, "otro", 10)
	if err != nil {
		t.Fatalf("GetTurns: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no turns for a different session, got %d", len(got))
	}
}
