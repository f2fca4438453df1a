package core

const (
	AppName    = "HoraBot"
	AppVersion = "0.1.0"
)

// Row is one parsed line of the input table, keyed by raw column header.
// Header names may be localized; the repository canonicalizes them.
type Row map[string]string

// ScheduleRecord is a normalized row of the class schedule. Canonical text
// fields are accent-free, trimmed and title-cased; columns outside the
// canonical set pass through in Extra.
type ScheduleRecord struct {
	Teacher  string
	Course   string
	Location string
	Facility string
	Day      string
	Extra    map[string]string
}

// ConversationTurn is one question/answer exchange with the generative
// answerer. Turns are append-only for the lifetime of a session.
type ConversationTurn struct {
	Question string
	Answer   string
}
