package source

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"sdnscreen/pkg/platform/sentinel"
)

// DefaultMember is the document inside the OFAC archive.
const DefaultMember = "sdn.xml"

// ExtractError names the archive and destination of a failed extraction.
type ExtractError struct {
	Archive string
	Dest    string
	Err     error
}

func (e *ExtractError) Error() string {
	return fmt.Sprintf("extract %s to %s: %v", e.Archive, e.Dest, e.Err)
}

func (e *ExtractError) Unwrap() error {
	return e.Err
}

// Extract copies member out of the zip archive into dir and returns the
// written path. The member is matched by full name first, then by base name.
func Extract(archive, member, dir string) (string, error) {
	dest := filepath.Join(dir, path.Base(member))
	fail := func(err error) (string, error) {
		return "", &ExtractError{Archive: archive, Dest: dest, Err: err}
	}

	zr, err := zip.OpenReader(archive)
	if err != nil {
		return fail(err)
	}
	defer zr.Close()

	zf := findMember(zr.File, member)
	if zf == nil {
		return fail(fmt.Errorf("member %q: %w", member, sentinel.ErrNotFound))
	}

	src, err := zf.Open()
	if err != nil {
		return fail(err)
	}
	defer src.Close()

	tmp, err := os.CreateTemp(dir, ".sdn-extract-*")
	if err != nil {
		return fail(err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, src); err != nil {
		tmp.Close()
		return fail(err)
	}
	if err := tmp.Close(); err != nil {
		return fail(err)
	}
	if err := os.Rename(tmp.Name(), dest); err != nil {
		return fail(err)
	}
	return dest, nil
}

func findMember(files []*zip.File, member string) *zip.File {
	for _, f := range files {
		if f.Name == member {
			return f
		}
	}
	for _, f := range files {
		if path.Base(f.Name) == path.Base(member) {
			return f
		}
	}
	return nil
}
