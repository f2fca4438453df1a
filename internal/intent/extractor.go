package intent

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rcondori/horabot/internal/core"
	"github.com/rcondori/horabot/internal/dates"
	"github.com/rcondori/horabot/internal/schedule"
)

// Kind tags the outcome of rule extraction. NoMatch is a normal, signaled
// outcome that sends the question to the generative fallback; it is never
// inferred from the answer text.
type Kind int

const (
	NoMatch Kind = iota
	DayMatch
	TeacherMatch
)

func (k Kind) String() string {
	switch k {
	case DayMatch:
		return "day"
	case TeacherMatch:
		return "teacher"
	default:
		return "none"
	}
}

// Result is the tagged outcome of Extract. Answer is always set, even for
// NoMatch, where it holds the canonical deferral message.
type Result struct {
	Kind   Kind
	Answer string
}

// NoMatchAnswer is the canonical message when neither rule family applies.
const NoMatchAnswer = "Lo siento, no entendí tu pregunta. Por favor, sé más específico."

// relativeDays is scanned in order; the first phrase found in the question
// wins. "pasado manana" comes before "manana" because the shorter phrase is a
// substring of the longer one and would otherwise shadow the two-day offset.
var relativeDays = []struct {
	phrase string
	offset int
}{
	{"hoy", dates.OffsetToday},
	{"pasado manana", dates.OffsetDayAfterTomorrow},
	{"manana", dates.OffsetTomorrow},
	{"ayer", dates.OffsetYesterday},
}

// Teacher-name capture: the first lowercase word right after the keyword.
// Questions are already accent-stripped, so [a-z]+ covers ñ and vowels with
// tildes too. Multi-word names are a known limitation of this pattern.
var (
	afterDocente = regexp.MustCompile(`docente\s+([a-z]+)`)
	afterDicta   = regexp.MustCompile(`dicta\s+([a-z]+)`)
)

// Extractor is the deterministic rule set over the schedule. It recognizes
// exactly two intent families, day-based and teacher-based, and defers
// everything else.
type Extractor struct {
	dates *dates.Resolver
}

func New(d *dates.Resolver) *Extractor {
	return &Extractor{dates: d}
}

// Extract applies the ordered rules to the question. Day intents take
// precedence over teacher intents: a question naming both only triggers the
// day branch.
func (e *Extractor) Extract(repo *schedule.Repository, question string) Result {
	q := schedule.Normalize(question)

	if day, ok := e.requestedDay(q); ok {
		return answerByDay(repo, day)
	}

	if strings.Contains(q, "dicta") || strings.Contains(q, "docente") {
		if name, ok := teacherToken(q); ok {
			return answerByTeacher(repo, q, name)
		}
	}

	return Result{Kind: NoMatch, Answer: NoMatchAnswer}
}

// requestedDay resolves the weekday a question refers to, first through the
// relative-day vocabulary, then by scanning for literal weekday names in
// Monday-to-Sunday order. Both scans are raw substring checks; a weekday
// embedded inside an unrelated word still matches.
func (e *Extractor) requestedDay(q string) (string, bool) {
	for _, rd := range relativeDays {
		if strings.Contains(q, rd.phrase) {
			return e.dates.WeekdayAt(rd.offset), true
		}
	}
	for _, day := range dates.WeekdayNames() {
		if strings.Contains(q, schedule.Normalize(day)) {
			return day, true
		}
	}
	return "", false
}

func answerByDay(repo *schedule.Repository, day string) Result {
	recs := repo.FindByDay(day)
	if len(recs) == 0 {
		return Result{Kind: DayMatch, Answer: fmt.Sprintf("No cursos programados para %s.", day)}
	}

	courses := distinct(recs, func(r core.ScheduleRecord) string { return r.Course })
	return Result{
		Kind:   DayMatch,
		Answer: fmt.Sprintf("Los cursos programados para %s son: %s.", day, strings.Join(courses, ", ")),
	}
}

// teacherToken extracts the name following "docente" or "dicta"; the docente
// pattern is tried first.
func teacherToken(q string) (string, bool) {
	for _, re := range []*regexp.Regexp{afterDocente, afterDicta} {
		if m := re.FindStringSubmatch(q); m != nil {
			return capitalize(m[1]), true
		}
	}
	return "", false
}

func answerByTeacher(repo *schedule.Repository, q, name string) Result {
	recs := repo.FindByTeacherSubstring(name)
	if len(recs) == 0 {
		return Result{
			Kind:   TeacherMatch,
			Answer: fmt.Sprintf("No se encontraron cursos dictados por el docente %s.", name),
		}
	}

	if strings.Contains(q, "que dias") {
		days := distinct(recs, func(r core.ScheduleRecord) string { return r.Day })
		return Result{
			Kind:   TeacherMatch,
			Answer: fmt.Sprintf("El docente %s dicta cursos los días: %s.", name, strings.Join(days, ", ")),
		}
	}

	courses := distinct(recs, func(r core.ScheduleRecord) string { return r.Course })
	return Result{
		Kind:   TeacherMatch,
		Answer: fmt.Sprintf("Los cursos dictados por %s son: %s.", name, strings.Join(courses, ", ")),
	}
}

// distinct collects unique non-empty values in first-occurrence order.
func distinct(recs []core.ScheduleRecord, field func(core.ScheduleRecord) string) []string {
	seen := make(map[string]bool, len(recs))
	var out []string
	for _, rec := range recs {
		v := field(rec)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

func capitalize(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	if r == utf8.RuneError {
		return word
	}
	return string(unicode.ToUpper(r)) + word[size:]
}
