package downloader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/kkdai/youtube/v2"
)

// metadataTimeout bounds provider metadata fetches. Stream reads are bounded
// by the request context instead, since downloads legitimately run long.
const metadataTimeout = 30 * time.Second

// YouTubeProvider adapts kkdai/youtube to the Provider interface. The library
// owns manifest parsing, signature deciphering and stream URL resolution.
type YouTubeProvider struct {
	client youtube.Client
}

func NewYouTubeProvider() *YouTubeProvider {
	return &YouTubeProvider{
		client: youtube.Client{},
	}
}

var videoIDPattern = regexp.MustCompile(`^[0-9A-Za-z_-]{11}$`)

// Validate reports whether the input is a recognizable YouTube URL or a bare
// video ID. Hosts are compared exactly because the library's own extractor
// happily pulls IDs out of foreign URLs.
func (p *YouTubeProvider) Validate(rawURL string) bool {
	s := strings.TrimSpace(rawURL)
	return videoIDPattern.MatchString(s) || extractWatchID(s) != ""
}

// extractWatchID pulls the video ID out of supported YouTube URL shapes,
// returning "" for anything else, look-alike hosts included.
func extractWatchID(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}

	var id string
	host := strings.TrimPrefix(strings.ToLower(u.Host), "www.")
	switch host {
	case "youtu.be":
		id, _, _ = strings.Cut(strings.TrimPrefix(u.Path, "/"), "/")
	case "youtube.com", "m.youtube.com", "music.youtube.com":
		if u.Path == "/watch" {
			id = u.Query().Get("v")
		} else {
			for _, prefix := range []string{"/shorts/", "/embed/", "/live/"} {
				if rest, ok := strings.CutPrefix(u.Path, prefix); ok {
					id, _, _ = strings.Cut(rest, "/")
					break
				}
			}
		}
	default:
		return ""
	}

	if !videoIDPattern.MatchString(id) {
		return ""
	}
	return id
}

func (p *YouTubeProvider) FetchMetadata(ctx context.Context, rawURL string) (*Metadata, error) {
	video, err := p.getVideo(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	return &Metadata{
		VideoID:       video.ID,
		Title:         video.Title,
		LengthSeconds: int(video.Duration / time.Second),
		ThumbnailURL:  bestThumbnail(video.Thumbnails),
	}, nil
}

func (p *YouTubeProvider) FetchFormats(ctx context.Context, rawURL string) ([]Format, error) {
	video, err := p.getVideo(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	out := make([]Format, 0, len(video.Formats))
	for _, f := range video.Formats {
		out = append(out, convertFormat(f))
	}
	return out, nil
}

func (p *YouTubeProvider) OpenStream(ctx context.Context, rawURL string, f Format) (io.ReadCloser, int64, error) {
	// Stream URLs are short-lived, so the video is re-resolved here rather
	// than carried over from the metadata fetch.
	video, err := p.getVideo(ctx, rawURL)
	if err != nil {
		return nil, 0, err
	}
	target := formatByItag(video.Formats, f.Itag)
	if target == nil {
		return nil, 0, ErrNoSuitableFormat
	}
	return p.client.GetStreamContext(ctx, video, target)
}

func formatByItag(list youtube.FormatList, itag int) *youtube.Format {
	matches := list.Itag(itag)
	if len(matches) == 0 {
		return nil
	}
	return &matches[0]
}

func (p *YouTubeProvider) getVideo(ctx context.Context, rawURL string) (*youtube.Video, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, metadataTimeout)
	defer cancel()
	video, err := p.client.GetVideoContext(fetchCtx, rawURL)
	if err != nil {
		return nil, classifyProviderError(err)
	}
	return video, nil
}

func classifyProviderError(err error) error {
	var playability *youtube.ErrPlayabiltyStatus
	if errors.As(err, &playability) {
		return fmt.Errorf("%w: %s", ErrVideoUnavailable, playability.Reason)
	}
	if errors.Is(err, youtube.ErrVideoPrivate) || errors.Is(err, youtube.ErrLoginRequired) {
		return fmt.Errorf("%w: %v", ErrVideoUnavailable, err)
	}
	if errors.Is(err, youtube.ErrVideoIDMinLength) ||
		errors.Is(err, youtube.ErrInvalidCharactersInVideoID) {
		return ErrInvalidURL
	}
	return fmt.Errorf("fetch video: %w", err)
}

// bestThumbnail returns the highest-resolution thumbnail URL, or "" when the
// provider supplied none.
func bestThumbnail(thumbs youtube.Thumbnails) string {
	best := ""
	var bestWidth uint
	for _, t := range thumbs {
		if t.URL == "" {
			continue
		}
		if best == "" || t.Width >= bestWidth {
			best = t.URL
			bestWidth = t.Width
		}
	}
	return best
}

func convertFormat(f youtube.Format) Format {
	mediaType := f.MimeType
	if parsed, _, err := mime.ParseMediaType(f.MimeType); err == nil {
		mediaType = parsed
	}
	kind, container, _ := strings.Cut(mediaType, "/")

	hasVideo := kind == "video"
	hasAudio := f.AudioChannels > 0 || kind == "audio"
	if !hasVideo && container == "mp4" {
		// Bare AAC tracks conventionally ship as .m4a files.
		container = "m4a"
	}

	bitrate := f.AverageBitrate
	if bitrate == 0 {
		bitrate = f.Bitrate
	}

	return Format{
		Itag:      f.ItagNo,
		MimeType:  f.MimeType,
		Container: container,
		HasVideo:  hasVideo,
		HasAudio:  hasAudio,
		Height:    f.Height,
		Bitrate:   bitrate,
	}
}
