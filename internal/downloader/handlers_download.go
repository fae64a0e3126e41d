package downloader

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"regexp"
	"strconv"
	"strings"
)

var unsafeTitleChars = regexp.MustCompile(`[^\w\s.-]`)

// sanitizeTitle strips characters that are unsafe in an attachment filename.
func sanitizeTitle(title string) string {
	safe := strings.TrimSpace(unsafeTitleChars.ReplaceAllString(title, ""))
	if safe == "" {
		return "video"
	}
	return safe
}

func (s *Server) HandleDownload(w http.ResponseWriter, r *http.Request) {
	s.serveDownload(w, r, KindVideo)
}

func (s *Server) HandleDownloadAudio(w http.ResponseWriter, r *http.Request) {
	s.serveDownload(w, r, KindAudio)
}

func (s *Server) serveDownload(w http.ResponseWriter, r *http.Request, kind Kind) {
	rawURL := strings.TrimSpace(r.URL.Query().Get("url"))
	if rawURL == "" {
		writeError(w, http.StatusBadRequest, "url is required")
		return
	}
	if !s.provider.Validate(rawURL) {
		writeError(w, http.StatusBadRequest, ErrInvalidURL.Error())
		return
	}

	ctx := r.Context()
	meta, err := s.provider.FetchMetadata(ctx, rawURL)
	if err != nil {
		writeErrorFrom(w, err)
		return
	}
	formats, err := s.provider.FetchFormats(ctx, rawURL)
	if err != nil {
		writeErrorFrom(w, err)
		return
	}

	selected, err := SelectFormat(formats, kind)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if kind == KindVideo && !selected.HasAudio {
		log.Printf("downloader: %s: no progressive format, serving video-only itag %d", meta.VideoID, selected.Itag)
	}

	stream, size, err := s.provider.OpenStream(ctx, rawURL, selected)
	if err != nil {
		writeErrorFrom(w, err)
		return
	}
	defer stream.Close()

	mimeType := selected.MimeType
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	ext := selected.Container
	if ext == "" {
		ext = "bin"
	}
	w.Header().Set("Content-Type", mimeType)
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", sanitizeTitle(meta.Title)+"."+ext))
	if size > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(size, 10))
	}

	// Headers go out with the first byte, so a later upstream error can only
	// truncate the response. The request context is threaded into the stream,
	// which aborts the upstream read when the client disconnects.
	if _, err := io.Copy(w, stream); err != nil {
		log.Printf("downloader: %s: %s stream: %v", meta.VideoID, kind, err)
	}
}
