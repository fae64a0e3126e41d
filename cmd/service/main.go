package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/jakecernet/YoutubeDownloader/internal/downloader"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func main() {
	port := getenv("PORT", "3000")

	yt := downloader.NewYouTubeProvider()
	srv := downloader.NewServer(yt)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", srv.HandleHealth)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(15 * time.Second))
		r.Get("/api/info", srv.HandleInfo)
	})

	r.Group(func(r chi.Router) {
		// Provider fetches and relayed streams are slow; cap how many run at
		// once. Downloads get no timeout since they legitimately run long.
		r.Use(middleware.Throttle(16))
		r.Get("/download", srv.HandleDownload)
		r.Get("/download/audio", srv.HandleDownloadAudio)
	})

	mountStatic(r)

	log.Printf("youtube-downloader listening on :%s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatalf("youtube-downloader: %v", err)
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
