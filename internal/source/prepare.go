// Package source supplies the screening core with the SDN document: it
// downloads the OFAC archive, extracts sdn.xml, reads the publish header and
// opens the extracted file for each search.
package source

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// Options locate the archive and the extracted document.
type Options struct {
	URL    string // archive URL
	Dir    string // directory holding the archive and the document
	Member string // document name inside the archive
	Force  bool   // download and extract even when files exist
}

// Prepare makes sure the document exists locally, downloading the archive and
// extracting it only when missing (or when Force is set), and returns the
// document path.
func (f *Fetcher) Prepare(ctx context.Context, opts Options) (string, error) {
	if opts.URL == "" {
		opts.URL = DefaultURL
	}
	if opts.Member == "" {
		opts.Member = DefaultMember
	}
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return "", err
	}

	archive := filepath.Join(opts.Dir, ArchiveName(opts.URL))
	if opts.Force || !exists(archive) {
		fetched, err := f.Fetch(ctx, opts.URL, opts.Dir)
		if err != nil {
			return "", err
		}
		archive = fetched
	}

	doc := filepath.Join(opts.Dir, filepath.Base(opts.Member))
	if opts.Force || !exists(doc) {
		extracted, err := Extract(archive, opts.Member, opts.Dir)
		if err != nil {
			return "", err
		}
		f.logger.InfoContext(ctx, "sdn list extracted", "archive", archive, "path", extracted)
		doc = extracted
	}
	return doc, nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}
