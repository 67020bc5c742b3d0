package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"xorcrack/internal/codec"
)

func hexCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hex",
		Short: "Encode or decode hex",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "encode <text>",
			Short: "Print the lowercase hex encoding of text",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				fmt.Fprintln(cmd.OutOrStdout(), codec.EncodeHexString([]byte(args[0])))
				return nil
			},
		},
		&cobra.Command{
			Use:   "decode <hex>",
			Short: "Print the bytes a hex string decodes to",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				b, err := codec.DecodeHexString(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\n", b)
				return nil
			},
		},
	)
	return cmd
}
