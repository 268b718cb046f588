package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"sdnscreen/internal/source"
)

// NewFetchCommand downloads and extracts the list when it is missing.
func NewFetchCommand(opts *rootOptions) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download the SDN archive and extract sdn.xml",
		Long: `Download the published SDN archive into --data-dir and extract sdn.xml.

Existing files are kept unless --force is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := opts.fetcher(cmd.ErrOrStderr()).Prepare(cmd.Context(), source.Options{
				URL:    opts.archiveURL,
				Dir:    opts.dataDir,
				Member: source.DefaultMember,
				Force:  force,
			})
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
			return err
		},
	}
	cmd.Flags().BoolVar(&force, "force", opts.env.Source.Force, "download and extract even when files exist")
	return cmd
}

// NewExtractCommand extracts sdn.xml from an archive already on disk.
func NewExtractCommand(opts *rootOptions) *cobra.Command {
	var archive, member string
	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract sdn.xml from a downloaded archive",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if archive == "" {
				archive = filepath.Join(opts.dataDir, source.ArchiveName(opts.archiveURL))
			}
			path, err := source.Extract(archive, member, opts.dataDir)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
			return err
		},
	}
	cmd.Flags().StringVar(&archive, "archive", "", "archive to extract (default: the downloaded archive in --data-dir)")
	cmd.Flags().StringVar(&member, "member", source.DefaultMember, "archive member to extract")
	return cmd
}
