package downloader

import (
	"fmt"
	"net/http"
	"strings"
)

const thumbnailURLTemplate = "https://img.youtube.com/vi/%s/hqdefault.jpg"

func (s *Server) HandleInfo(w http.ResponseWriter, r *http.Request) {
	rawURL := strings.TrimSpace(r.URL.Query().Get("url"))
	if rawURL == "" {
		writeError(w, http.StatusBadRequest, "url is required")
		return
	}
	if !s.provider.Validate(rawURL) {
		writeError(w, http.StatusBadRequest, ErrInvalidURL.Error())
		return
	}

	meta, err := s.provider.FetchMetadata(r.Context(), rawURL)
	if err != nil {
		writeErrorFrom(w, err)
		return
	}

	thumb := meta.ThumbnailURL
	if thumb == "" {
		thumb = fmt.Sprintf(thumbnailURLTemplate, meta.VideoID)
	}

	writeJSON(w, http.StatusOK, InfoResponse{
		Title:         meta.Title,
		VideoID:       meta.VideoID,
		LengthSeconds: meta.LengthSeconds,
		Thumbnail:     thumb,
	})
}
