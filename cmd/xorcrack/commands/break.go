package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"xorcrack/internal/codec"
	"xorcrack/internal/crack"
	"xorcrack/internal/domain"
)

// break <hex>: rank keys for one ciphertext.
func breakCmd() *cobra.Command {
	var top int
	cmd := &cobra.Command{
		Use:   "break <hex>",
		Short: "Rank single-byte XOR keys for a hex ciphertext",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if appCtx.Remote != nil {
				resp, err := appCtx.Remote.Break(cmd.Context(), domain.BreakRequest{Ciphertext: args[0], Top: top})
				if err != nil {
					return err
				}
				for i, c := range resp.Candidates {
					pt, err := codec.DecodeHexString(c.PlaintextHex)
					if err != nil {
						return fmt.Errorf("candidate %d: %w", i+1, err)
					}
					printCandidate(out, i, c.Key, c.Score, pt)
				}
				return nil
			}

			ct, err := codec.DecodeHexString(args[0])
			if err != nil {
				return err
			}
			cands, err := appCtx.Crack.Break(ct, top)
			if err != nil {
				return err
			}
			for i, c := range cands {
				printCandidate(out, i, c.Key, c.Score, crack.Decrypt(ct, c.Key))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&top, "top", "n", 0, "number of candidates to print (default from config)")
	return cmd
}

func printCandidate(w io.Writer, rank int, key byte, score float64, plaintext []byte) {
	fmt.Fprintf(w, "%2d. key=0x%02x score=%.6f plaintext=%q\n", rank+1, key, score, plaintext)
}
