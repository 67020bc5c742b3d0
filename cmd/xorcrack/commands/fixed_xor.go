package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"xorcrack/internal/codec"
	"xorcrack/internal/xor"
)

// fixed-xor <hexA> <hexB>: XOR two equal-length buffers.
func fixedXorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fixed-xor <hexA> <hexB>",
		Short: "XOR two equal-length hex buffers",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := codec.DecodeHexString(args[0])
			if err != nil {
				return fmt.Errorf("first operand: %w", err)
			}
			b, err := codec.DecodeHexString(args[1])
			if err != nil {
				return fmt.Errorf("second operand: %w", err)
			}
			out, err := xor.Fixed(a, b)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), codec.EncodeHexString(out))
			return nil
		},
	}
}
