package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"sdnscreen/pkg/platform/sentinel"
)

// FileOpener opens the extracted document from disk. Every Open returns a
// fresh stream positioned at the start of the file.
type FileOpener struct {
	Path string
}

// Open implements the stream opener used by the screening service.
func (o FileOpener) Open(_ context.Context) (io.ReadCloser, error) {
	f, err := os.Open(o.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("open sdn list: %w: %w", sentinel.ErrNotFound, err)
		}
		return nil, fmt.Errorf("open sdn list: %w: %w", sentinel.ErrUnavailable, err)
	}
	return f, nil
}

// Info reads the publish information of the document at o.Path.
func (o FileOpener) Info(ctx context.Context) (PublishInfo, error) {
	rc, err := o.Open(ctx)
	if err != nil {
		return PublishInfo{}, err
	}
	defer rc.Close()
	return ReadPublishInfo(rc)
}
