package main

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/padezh/internal/nouns"
	"github.com/heartmarshall/padezh/internal/service/declension"
	"github.com/heartmarshall/padezh/internal/validate"
)

type warmReport struct {
	Words    int              `json:"words"`
	Valid    int              `json:"valid"`
	Fallback []string         `json:"fallback"`
	Duration string           `json:"duration"`
	Stats    declension.Stats `json:"stats"`
}

func newWarmCmd(c *cli) *cobra.Command {
	var difficulty string
	var concurrency int

	cmd := &cobra.Command{
		Use:   "warm",
		Short: "Resolve the built-in noun list and report which sources answered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tier, err := nouns.ParseDifficulty(difficulty)
			if err != nil {
				return err
			}
			if concurrency <= 0 {
				concurrency = c.cfg.Resolver.Concurrency
			}

			list := nouns.ByDifficulty(tier)
			reqs := make([]declension.Request, len(list))
			for i, n := range list {
				reqs[i] = declension.Request{Word: n.Word, Meta: n.Metadata()}
			}

			svc := c.resolver()
			start := time.Now()
			c.logger.Info("warming declension cache",
				slog.String("difficulty", string(tier)),
				slog.Int("words", len(reqs)),
				slog.Int("concurrency", concurrency),
			)

			results, err := svc.ResolveMany(cmd.Context(), reqs, concurrency)
			if err != nil {
				return err
			}

			report := warmReport{
				Words:    len(results),
				Fallback: []string{},
				Duration: time.Since(start).Round(time.Millisecond).String(),
				Stats:    svc.Stats(),
			}
			for _, d := range results {
				if validate.IsValidDeclension(d) {
					report.Valid++
				}
				if d.IsFallback {
					report.Fallback = append(report.Fallback, d.Word)
				}
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			enc.SetEscapeHTML(false)
			return enc.Encode(report)
		},
	}

	cmd.Flags().StringVar(&difficulty, "difficulty", string(nouns.DifficultyCommon), "highest tier to include (common, intermediate, advanced)")
	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "words resolved in parallel (default from config)")
	return cmd
}
