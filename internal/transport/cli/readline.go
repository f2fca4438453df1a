package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/rcondori/horabot/internal/config"
	"github.com/rcondori/horabot/internal/resolver"
	"github.com/rcondori/horabot/pkg/log"
)

// SessionID keys the persisted conversation turns of the local console.
const SessionID = "cli-local"

type ReadLine struct {
	cfg      *config.AppConfig
	resolver *resolver.Resolver
	rl       *readline.Instance
}

func NewReadLine(res *resolver.Resolver, cfg *config.AppConfig) (*ReadLine, error) {
	// Ensure runtime directory exists
	if err := os.MkdirAll(cfg.RuntimePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create runtime directory: %w", err)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          ">>> ",
		HistoryFile:     filepath.Join(cfg.RuntimePath, "input_history"),
		InterruptPrompt: "^C",
		EOFPrompt:       "salir",
	})
	if err != nil {
		return nil, err
	}

	return &ReadLine{
		cfg:      cfg,
		resolver: res,
		rl:       rl,
	}, nil
}

func (r *ReadLine) Start(ctx context.Context) error {
	logger := log.FromCtx(ctx)
	logger.Info().Msg("console chat started, type 'salir' to quit")
	fmt.Fprintln(r.rl.Stdout(), "Hola, ¿sobre qué desea saber de su horario?")

	for {
		// Stop quietly once shutdown began
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		line, err := r.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				if len(line) == 0 {
					return nil
				}
				continue
			} else if err == io.EOF {
				return nil
			}
			return err
		}

		line = strings.TrimSpace(line)
		if line == "salir" || line == "exit" {
			return nil
		}
		if line == "" {
			continue
		}

		answer, err := r.resolver.Answer(ctx, line)
		if err != nil {
			logger.Error().Err(err).Msg("failed to answer question")
			fmt.Fprintf(r.rl.Stdout(), "Error: %v\n", err)
			continue
		}
		fmt.Fprintf(r.rl.Stdout(), "%s\n", answer)
	}
}

func (r *ReadLine) Shutdown(ctx context.Context) error {
	if r.rl != nil {
		return r.rl.Close()
	}
	return nil
}
