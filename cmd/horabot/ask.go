package main

import (
	"fmt"
	"strings"

	"github.com/rcondori/horabot/internal/memory"
	"github.com/rcondori/horabot/internal/resolver"
	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask [pregunta]",
	Short: "Ask a single question and exit",
	Long:  `Answers one schedule question without starting any transport. The exchange is not recorded.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.db.Close()

		// One-shot: fresh memory, no persistence
		res := resolver.New(
			a.repo,
			a.extractor,
			a.dates,
			a.answerer,
			memory.New(),
			a.cfg.ExcerptMaxRows,
			a.cfg.ExcerptMaxCols,
		)

		answer, err := res.Answer(ctx, strings.Join(args, " "))
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), answer)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(askCmd)
}
