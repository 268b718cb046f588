package sentinel

import "errors"

// Sentinel errors for infrastructure facts. The source layer returns these
// (optionally wrapped) so services can translate them into domain errors.
//
// These represent factual states about resources, not validation failures:
// - ErrNotFound: file, archive member or document section does not exist
// - ErrUnavailable: remote source or local file temporarily unavailable
//
// For validation errors (bad input, missing fields), use pkg/domain-errors directly.
var (
	ErrNotFound    = errors.New("not found")
	ErrUnavailable = errors.New("unavailable")
)
