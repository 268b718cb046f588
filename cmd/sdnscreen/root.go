package main

import (
	"io"
	"log/slog"
	"net/http"
	"path/filepath"

	"github.com/spf13/cobra"

	"sdnscreen/internal/platform/config"
	"sdnscreen/internal/platform/logger"
	"sdnscreen/internal/source"
)

// rootOptions are shared by every subcommand. Defaults come from the
// environment; flags override them.
type rootOptions struct {
	dataDir    string
	path       string
	archiveURL string
	logLevel   string
	env        config.Server
	envErr     error
}

func (o *rootOptions) logger(w io.Writer) *slog.Logger {
	return logger.NewWithWriter(w, o.logLevel)
}

// documentPath is --file, or sdn.xml under --data-dir when only the directory
// was given.
func (o *rootOptions) documentPath(cmd *cobra.Command) string {
	flags := cmd.Flags()
	if !flags.Changed("file") && flags.Changed("data-dir") {
		return filepath.Join(o.dataDir, source.DefaultMember)
	}
	return o.path
}

func (o *rootOptions) fetcher(w io.Writer) *source.Fetcher {
	return source.NewFetcher(&http.Client{Timeout: o.env.Source.FetchTimeout}, o.logger(w))
}

// NewRootCommand assembles the sdnscreen command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}
	opts.env, opts.envErr = config.FromEnv()

	cmd := &cobra.Command{
		Use:   "sdnscreen",
		Short: "Screen customers against the OFAC SDN list",
		Long: `Screen customers against the OFAC Specially Designated Nationals list.

The list is downloaded as the published sdn_xml.zip archive, extracted to
sdn.xml and streamed entry by entry for every search.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return opts.envErr
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.dataDir, "data-dir", opts.env.Source.DataDir, "directory holding the archive and sdn.xml")
	flags.StringVar(&opts.path, "file", opts.env.Source.Path, "path of the extracted sdn.xml")
	flags.StringVar(&opts.archiveURL, "url", opts.env.Source.ArchiveURL, "URL of the published archive")
	flags.StringVar(&opts.logLevel, "log-level", opts.env.LogLevel, "log level (debug, info, warn, error)")

	cmd.AddCommand(
		NewFetchCommand(opts),
		NewExtractCommand(opts),
		NewInfoCommand(opts),
		NewSearchCommand(opts),
		NewScreenCommand(opts),
		NewServeCommand(opts),
	)
	return cmd
}
