package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/padezh/internal/domain"
	"github.com/heartmarshall/padezh/internal/nouns"
	"github.com/heartmarshall/padezh/internal/validate"
)

type resolveOutput struct {
	Declension *domain.Declension `json:"declension"`
	Valid      bool               `json:"valid"`
}

func newResolveCmd(c *cli) *cobra.Command {
	var gender, animacy, translation string

	cmd := &cobra.Command{
		Use:   "resolve <word>...",
		Short: "Resolve words and print their declensions as JSON",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := c.resolver()

			out := make([]resolveOutput, 0, len(args))
			for _, word := range args {
				meta := domain.Metadata{
					Gender:      domain.ParseGender(gender),
					Animacy:     domain.ParseAnimacy(animacy),
					Translation: translation,
				}
				if n, ok := nouns.Find(word); ok {
					meta = meta.WithDefaults(n.Metadata())
				}

				d, err := svc.Resolve(cmd.Context(), word, meta)
				if err != nil {
					return err
				}
				out = append(out, resolveOutput{Declension: d, Valid: validate.IsValidDeclension(d)})
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			enc.SetEscapeHTML(false)
			return enc.Encode(out)
		},
	}

	cmd.Flags().StringVar(&gender, "gender", "", "grammatical gender hint (m, f, n)")
	cmd.Flags().StringVar(&animacy, "animacy", "", "animacy hint (animate, inanimate)")
	cmd.Flags().StringVar(&translation, "translation", "", "English translation to attach")
	return cmd
}

