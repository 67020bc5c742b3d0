package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"xorcrack/internal/codec"
	"xorcrack/internal/domain"
	"xorcrack/internal/store"
)

// detect <file|->: find the encrypted line in a file of hex lines.
func detectCmd() *cobra.Command {
	var reportPath string
	cmd := &cobra.Command{
		Use:   "detect <file|->",
		Short: "Find the single-byte XOR encrypted line in a file of hex lines",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var src domain.LineSource = store.FileSource{Path: args[0], Stdin: cmd.InOrStdin()}
			lines, err := src.Lines()
			if err != nil {
				return err
			}

			var resp domain.DetectResponse
			if appCtx.Remote != nil {
				req := domain.DetectRequest{Lines: make([]string, len(lines))}
				for i, l := range lines {
					req.Lines[i] = string(l)
				}
				if resp, err = appCtx.Remote.Detect(cmd.Context(), req); err != nil {
					return err
				}
			} else {
				res, err := appCtx.Crack.DetectHex(cmd.Context(), lines)
				if err != nil {
					return err
				}
				resp = domain.DetectResponse{
					Index:        res.Index,
					Key:          res.Key,
					Score:        res.Score,
					Plaintext:    string(res.Plaintext),
					PlaintextHex: codec.EncodeHexString(res.Plaintext),
				}
			}

			pt, err := codec.DecodeHexString(resp.PlaintextHex)
			if err != nil {
				return fmt.Errorf("plaintext: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "line=%d key=0x%02x score=%.6f plaintext=%q\n",
				resp.Index+1, resp.Key, resp.Score, pt)
			if reportPath != "" {
				return store.WriteJSON(reportPath, resp, 0o644)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&reportPath, "out", "o", "", "write a JSON report to this path")
	return cmd
}
