package intent

import (
	"testing"
	"time"

	"github.com/rcondori/horabot/internal/core"
	"github.com/rcondori/horabot/internal/dates"
	"github.com/rcondori/horabot/internal/schedule"
)

// testRepo has classes on Lunes (Algebra, Fisica) and Martes (Quimica).
func testRepo(t *testing.T) *schedule.Repository {
	t.Helper()
	repo, err := schedule.Build([]core.Row{
		{"DOCENTE": "juan pérez", "CURSO": "álgebra", "UBICACIÓN": "aula 101", "INSTALACIÓN": "A-1", "DÍA": "lunes"},
		{"DOCENTE": "maría rojas", "CURSO": "física", "UBICACIÓN": "aula 102", "INSTALACIÓN": "A-1", "DÍA": "lunes"},
		{"DOCENTE": "juan pérez", "CURSO": "química", "UBICACIÓN": "lab 1", "INSTALACIÓN": "C", "DÍA": "martes"},
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return repo
}

// testExtractor pins the clock to Wednesday 2025-06-11 in Lima.
func testExtractor(t *testing.T) *Extractor {
	t.Helper()
	instant := time.Date(2025, 6, 11, 17, 0, 0, 0, time.UTC)
	r, err := dates.NewResolverAt(dates.DefaultTimezone, func() time.Time { return instant })
	if err != nil {
		t.Fatalf("NewResolverAt: %v", err)
	}
	return New(r)
}

func TestExtract(t *testing.T) {
	repo := testRepo(t)
	e := testExtractor(t)

	tests := []struct {
		name       string
		question   string
		wantKind   Kind
		wantAnswer string
	}{
		{
			name:       "weekday literal with courses",
			question:   "¿Qué cursos hay el lunes?",
			wantKind:   DayMatch,
			wantAnswer: "Los cursos programados para Lunes son: Algebra, Fisica.",
		},
		{
			name:       "weekday literal without courses",
			question:   "¿qué hay el miércoles?",
			wantKind:   DayMatch,
			wantAnswer: "No cursos programados para Miercoles.",
		},
		{
			name:       "stray accent behaves identically",
			question:   "¿qué cursos hay el lúnes?",
			wantKind:   DayMatch,
			wantAnswer: "Los cursos programados para Lunes son: Algebra, Fisica.",
		},
		{
			name:       "hoy resolves through the clock",
			question:   "¿qué cursos hay hoy?",
			wantKind:   DayMatch,
			wantAnswer: "No cursos programados para Miercoles.",
		},
		{
			name:       "manana is tomorrow",
			question:   "¿qué hay mañana?",
			wantKind:   DayMatch,
			wantAnswer: "No cursos programados para Jueves.",
		},
		{
			name:       "pasado manana wins over manana",
			question:   "¿qué cursos hay pasado mañana?",
			wantKind:   DayMatch,
			wantAnswer: "No cursos programados para Viernes.",
		},
		{
			name:       "ayer is yesterday",
			question:   "¿qué cursos hubo ayer?",
			wantKind:   DayMatch,
			wantAnswer: "Los cursos programados para Martes son: Quimica.",
		},
		{
			name:       "teacher courses via dicta",
			question:   "¿qué dicta juan?",
			wantKind:   TeacherMatch,
			wantAnswer: "Los cursos dictados por Juan son: Algebra, Quimica.",
		},
		{
			name:       "teacher days via que dias",
			question:   "¿qué días dicta juan?",
			wantKind:   TeacherMatch,
			wantAnswer: "El docente Juan dicta cursos los días: Lunes, Martes.",
		},
		{
			name:       "docente pattern checked before dicta",
			question:   "¿qué cursos dicta el docente maria?",
			wantKind:   TeacherMatch,
			wantAnswer: "Los cursos dictados por Maria son: Fisica.",
		},
		{
			name:       "unknown teacher still tagged",
			question:   "¿qué dicta pedro?",
			wantKind:   TeacherMatch,
			wantAnswer: "No se encontraron cursos dictados por el docente Pedro.",
		},
		{
			name:       "day intent outranks teacher intent",
			question:   "¿qué cursos dicta juan el lunes?",
			wantKind:   DayMatch,
			wantAnswer: "Los cursos programados para Lunes son: Algebra, Fisica.",
		},
		{
			name:       "keyword without extractable name defers",
			question:   "¿quién es el docente?",
			wantKind:   NoMatch,
			wantAnswer: NoMatchAnswer,
		},
		{
			name:       "small talk defers",
			question:   "hola cómo estás",
			wantKind:   NoMatch,
			wantAnswer: NoMatchAnswer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Extract(repo, tt.question)
			if got.Kind != tt.wantKind {
				t.Errorf("Extract(%q).Kind = %v, want %v", tt.question, got.Kind, tt.wantKind)
			}
			if got.Answer != tt.wantAnswer {
				t.Errorf("Extract(%q).Answer = %q, want %q", tt.question, got.Answer, tt.wantAnswer)
			}
		})
	}
}

func TestExtract_Deterministic(t *testing.T) {
	repo := testRepo(t)
	e := testExtractor(t)

	first := e.Extract(repo, "¿qué días dicta juan?")
	for i := 0; i < 10; i++ {
		if got := e.Extract(repo, "¿qué días dicta juan?"); got != first {
			t.Fatalf("extraction is not deterministic: %+v vs %+v", got, first)
		}
	}
}
