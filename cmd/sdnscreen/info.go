package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"sdnscreen/internal/source"
)

// NewInfoCommand prints the publish header of the extracted list.
func NewInfoCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the publish date and record count of sdn.xml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info, err := source.FileOpener{Path: opts.documentPath(cmd)}.Info(cmd.Context())
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(info)
		},
	}
}
