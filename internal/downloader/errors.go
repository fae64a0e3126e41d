package downloader

import "errors"

var (
	// ErrInvalidURL indicates a missing or unrecognized video URL.
	ErrInvalidURL = errors.New("invalid or unsupported video URL")

	// ErrNoSuitableFormat indicates the candidate list was empty after filtering.
	ErrNoSuitableFormat = errors.New("no suitable format found")

	// ErrVideoUnavailable indicates the provider resolved the URL but the
	// video cannot be played back (deleted, private, region-locked).
	ErrVideoUnavailable = errors.New("video unavailable")
)
