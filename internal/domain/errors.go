package domain

import "errors"

// Run-level error taxonomy. Every fatal error aborts the run with a non-zero
// exit; ErrRender is the one recoverable case and only skips the raster
// snapshot.
var (
	// ErrFetch covers transport failures and non-success HTTP statuses from
	// the feed endpoint.
	ErrFetch = errors.New("feed fetch failed")

	// ErrParse covers malformed feed bodies: invalid JSON, a missing
	// coordinates field, or rows that are not three numbers.
	ErrParse = errors.New("feed payload invalid")

	// ErrEmptyData means the snapshot holds zero samples, so the shared
	// color scale cannot be normalized.
	ErrEmptyData = errors.New("snapshot contains no samples")

	// ErrWrite covers filesystem failures while persisting the interactive
	// document or the GeoJSON artifact.
	ErrWrite = errors.New("artifact write failed")

	// ErrRender covers raster snapshot failures (backend, encoding, or
	// filesystem). Non-fatal: the interactive output stands on its own.
	ErrRender = errors.New("snapshot render failed")
)
