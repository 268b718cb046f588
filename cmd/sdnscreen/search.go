package main

import (
	"encoding/json"
	"errors"

	"github.com/spf13/cobra"

	"sdnscreen/internal/screening"
	"sdnscreen/internal/screening/service"
	"sdnscreen/internal/source"
)

type searchOutput struct {
	Matches []screening.SdnRecord `json:"matches"`
	Count   int                   `json:"count"`
}

func newSearchOutput(matches []screening.SdnRecord) searchOutput {
	if matches == nil {
		matches = []screening.SdnRecord{}
	}
	return searchOutput{Matches: matches, Count: len(matches)}
}

// NewSearchCommand screens one customer and prints the matching entries.
func NewSearchCommand(opts *rootOptions) *cobra.Command {
	var q screening.Query
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Screen one customer against sdn.xml",
		Long: `Screen one customer against sdn.xml and print the matching entries as JSON.

A match needs either --id with --country, or at least one of --first-name
and --last-name.`,
		Example: `  sdnscreen search --id J287011 --country Colombia
  sdnscreen search --first-name Helmer --last-name "Herrera Buitrago"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if q.IsEmpty() {
				return errors.New("search needs --id or a name")
			}
			svc := service.New(source.FileOpener{Path: opts.documentPath(cmd)}, opts.logger(cmd.ErrOrStderr()), nil)
			result, err := svc.Search(cmd.Context(), q)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(newSearchOutput(result.Matches))
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&q.ID, "id", "", "identity document number")
	flags.StringVar(&q.IDType, "id-type", "", "identity document type (informational)")
	flags.StringVar(&q.Country, "country", "", "identity document country")
	flags.StringVar(&q.FirstName, "first-name", "", "first name")
	flags.StringVar(&q.LastName, "last-name", "", "last name")
	return cmd
}
