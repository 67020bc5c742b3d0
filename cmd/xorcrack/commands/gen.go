package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"xorcrack/internal/fixture"
	"xorcrack/internal/store"
)

// gen: write a challenge batch with one hidden line.
func genCmd() *cobra.Command {
	var (
		seed  string
		lines int
		text  string
		key   uint8
		out   string
	)
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a reproducible batch of hex lines hiding one encrypted text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := fixture.Generate(fixture.Options{
				Seed:      seed,
				Lines:     lines,
				Plaintext: []byte(text),
				Key:       key,
				Index:     -1,
			})
			if err != nil {
				return err
			}
			logger.Info("batch generated",
				zap.String("seed", seed),
				zap.Int("lines", len(b.Lines)),
				zap.Int("hidden_line", b.Index+1),
				zap.Uint8("key", b.Key),
			)
			if out == "" || out == "-" {
				w := cmd.OutOrStdout()
				for _, l := range b.Lines {
					if _, err := fmt.Fprintf(w, "%s\n", l); err != nil {
						return err
					}
				}
				return nil
			}
			return store.WriteLines(out, b.Lines, 0o644)
		},
	}
	cmd.Flags().StringVar(&seed, "seed", "xorcrack", "seed for the decoy keystream")
	cmd.Flags().IntVar(&lines, "lines", 327, "number of lines")
	cmd.Flags().StringVar(&text, "text", "Now that the party is jumping\n", "plaintext to hide")
	cmd.Flags().Uint8Var(&key, "key", 0, "XOR key for the hidden line (0 = derive from seed)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	return cmd
}
