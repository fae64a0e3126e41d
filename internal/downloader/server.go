package downloader

import (
	"context"
	"io"
	"net/http"
)

// Provider resolves a video URL into metadata and streamable formats. The
// heavy lifting (manifest parsing, signature deciphering, stream URL
// resolution) lives behind this interface.
type Provider interface {
	Validate(rawURL string) bool
	FetchMetadata(ctx context.Context, rawURL string) (*Metadata, error)
	FetchFormats(ctx context.Context, rawURL string) ([]Format, error)
	OpenStream(ctx context.Context, rawURL string, f Format) (io.ReadCloser, int64, error)
}

type Server struct {
	provider Provider
}

func NewServer(p Provider) *Server {
	return &Server{
		provider: p,
	}
}

func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"service": "youtube-downloader",
	})
}
