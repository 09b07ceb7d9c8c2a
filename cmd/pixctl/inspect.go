package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/akashipov/brcode/internal/pix"
	"github.com/spf13/cobra"
)

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [payload]",
		Short: "Check the CRC of a payload",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := strings.TrimSpace(args[0])
			if !pix.IsValid(payload) {
				return pix.ErrInvalidChecksum
			}
			fmt.Fprintln(cmd.OutOrStdout(), "valid")
			return nil
		},
	}
}

func parseCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "parse [payload]",
		Short: "Print the fields of a valid payload",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := pix.Parse(strings.TrimSpace(args[0]))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "    ")
				return enc.Encode(d)
			}
			printFields(out, d.Fields, "")
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the known fields as JSON")
	return cmd
}

// printFields prints one field per line, descending into the nested groups.
func printFields(out io.Writer, fields pix.Fields, indent string) {
	for _, f := range fields {
		if f.Tag == pix.TagMerchantAccount || f.Tag == pix.TagAdditionalData {
			if sub, err := pix.Scan(f.Value); err == nil && indent == "" {
				fmt.Fprintf(out, "%s%s %02d\n", indent, f.Tag, f.Len())
				printFields(out, sub, indent+"  ")
				continue
			}
		}
		fmt.Fprintf(out, "%s%s %02d %s\n", indent, f.Tag, f.Len(), f.Value)
	}
}

func crcCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "crc [text]",
		Short: "Print the CRC-16/CCITT-FALSE of text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), pix.CRC16(args[0]))
			return nil
		},
	}
}
