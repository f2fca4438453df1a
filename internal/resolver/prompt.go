package resolver

import (
	"fmt"
	"strings"

	"github.com/rcondori/horabot/internal/core"
)

// promptTemplate carries exactly four slots, filled in this fixed order:
// data excerpt, current time, question, formatted history.
const promptTemplate = `Tienes acceso a los siguientes datos de cursos:
%s

La hora actual en Perú es %s.

Con base en estos datos y el historial de la conversación, responde con precisión a la siguiente pregunta:
Pregunta: %s

Historial de la conversación:
%s`

func buildPrompt(excerpt, currentTime, question string, history []core.ConversationTurn) string {
	return fmt.Sprintf(promptTemplate, excerpt, currentTime, question, formatHistory(history))
}

func formatHistory(turns []core.ConversationTurn) string {
	if len(turns) == 0 {
		return "(sin historial)"
	}
	var sb strings.Builder
	for _, turn := range turns {
		sb.WriteString("Usuario: ")
		sb.WriteString(turn.Question)
		sb.WriteString("\nAsistente: ")
		sb.WriteString(turn.Answer)
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}
