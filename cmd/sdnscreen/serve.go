package main

import (
	"github.com/spf13/cobra"

	"sdnscreen/internal/platform/httpserver"
	"sdnscreen/internal/platform/metrics"
	screeningMetrics "sdnscreen/internal/screening/metrics"
	"sdnscreen/internal/screening/service"
	"sdnscreen/internal/source"
	httptransport "sdnscreen/internal/transport/http"
)

// NewServeCommand runs the HTTP API, optionally fetching the list first.
func NewServeCommand(opts *rootOptions) *cobra.Command {
	var (
		addr    string
		prepare bool
		force   bool
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the screening HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			log := opts.logger(cmd.ErrOrStderr())

			path := opts.documentPath(cmd)
			if prepare {
				prepared, err := opts.fetcher(cmd.ErrOrStderr()).Prepare(ctx, source.Options{
					URL:    opts.archiveURL,
					Dir:    opts.dataDir,
					Member: source.DefaultMember,
					Force:  force,
				})
				if err != nil {
					return err
				}
				path = prepared
			}

			reg := metrics.NewRegistry()
			svc := service.New(source.FileOpener{Path: path}, log, screeningMetrics.New(reg))
			srv := httpserver.New(addr, httptransport.NewRouter(svc, log, reg))
			return httpserver.Run(ctx, srv, log)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", opts.env.Addr, "listen address")
	cmd.Flags().BoolVar(&prepare, "fetch", false, "download and extract the list before serving when missing")
	cmd.Flags().BoolVar(&force, "force", opts.env.Source.Force, "with --fetch, download and extract even when files exist")
	return cmd
}
