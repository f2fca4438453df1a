package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rcondori/horabot/internal/core"
	"github.com/rcondori/horabot/pkg/log"
)

// TurnsRepo persists conversation turns per session so memory survives
// restarts. The in-process log stays authoritative while running.
type TurnsRepo struct {
	db *sql.DB
}

func NewTurnsRepo(db *sql.DB) *TurnsRepo {
	return &TurnsRepo{db: db}
}

func (r *TurnsRepo) AddTurn(ctx context.Context, sessionID string, turn core.ConversationTurn) error {
	query := `INSERT INTO turns (session_id, question, answer) VALUES (?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, sessionID, turn.Question, turn.Answer); err != nil {
		return fmt.Errorf("failed to insert turn: %w", err)
	}
	return nil
}

func (r *TurnsRepo) GetTurns(ctx context.Context, sessionID string, limit int) ([]core.ConversationTurn, error) {
	// Fetch the LAST 'limit' turns by ordering DESC
	query := `SELECT question, answer FROM turns WHERE session_id = ? ORDER BY id DESC LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query turns: %w", err)
	}
	defer rows.Close()

	var turns []core.ConversationTurn
	for rows.Next() {
		var turn core.ConversationTurn
		if err := rows.Scan(&turn.Question, &turn.Answer); err != nil {
			return nil, fmt.Errorf("failed to scan turn: %w", err)
		}
		turns = append(turns, turn)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Flip back to chronological order, oldest first.
	for i, j := 0, len(turns)-1; i < j; i, j = i+1, j-1 {
		turns[i], turns[j] = turns[j], turns[i]
	}

	log.FromCtx(ctx).Debug().Int("count", len(turns)).Msg("loaded conversation turns")
	return turns, nil
}
