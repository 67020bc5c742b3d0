package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"xorcrack/internal/codec"
	"xorcrack/internal/score"
)

func scoreCmd() *cobra.Command {
	var isHex bool
	cmd := &cobra.Command{
		Use:   "score <text>",
		Short: "Print the English plausibility score of text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b := []byte(args[0])
			if isHex {
				var err error
				if b, err = codec.DecodeHex(b); err != nil {
					return err
				}
			}
			s := appCtx.Breaker.Scorer
			fmt.Fprintf(cmd.OutOrStdout(), "score=%.6f controls=%d bytes=%d\n",
				s.Score(b), score.ControlCount(b), len(b))
			return nil
		},
	}
	cmd.Flags().BoolVar(&isHex, "hex", false, "treat the argument as hex")
	return cmd
}
