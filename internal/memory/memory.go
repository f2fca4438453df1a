package memory

import "github.com/rcondori/horabot/internal/core"

// Memory is the append-only log of generative conversation turns for one
// session. Rule-based answers never land here. There is no eviction; bounding
// is the caller's concern. Not safe for concurrent use, callers serialize.
type Memory struct {
	turns []core.ConversationTurn
}

func New() *Memory {
	return &Memory{}
}

// Seed preloads previously persisted turns, oldest first.
func Seed(turns []core.ConversationTurn) *Memory {
	m := &Memory{turns: make([]core.ConversationTurn, len(turns))}
	copy(m.turns, turns)
	return m
}

// Record appends one turn. Turns are never mutated or deleted afterwards.
func (m *Memory) Record(question, answer string) {
	m.turns = append(m.turns, core.ConversationTurn{Question: question, Answer: answer})
}

// History returns the turns oldest first. The slice is a copy; callers cannot
// alter the log through it.
func (m *Memory) History() []core.ConversationTurn {
	out := make([]core.ConversationTurn, len(m.turns))
	copy(out, m.turns)
	return out
}

func (m *Memory) Len() int {
	return len(m.turns)
}
