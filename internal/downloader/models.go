package downloader

// Kind selects which track of a video the caller wants.
type Kind string

const (
	KindVideo Kind = "video"
	KindAudio Kind = "audio"
)

// Format describes one candidate encoding offered by the provider for a
// video. Progressive formats carry both tracks in one container.
type Format struct {
	Itag      int
	MimeType  string // full MIME type, e.g. `video/mp4; codecs="avc1..."`
	Container string // file extension, e.g. "mp4", "webm", "m4a"
	HasVideo  bool
	HasAudio  bool
	Height    int
	Bitrate   int
}

// Metadata is the per-request video summary used for previews and filenames.
type Metadata struct {
	VideoID       string
	Title         string
	LengthSeconds int
	ThumbnailURL  string
}

// InfoResponse is the JSON body served by /api/info.
type InfoResponse struct {
	Title         string `json:"title"`
	VideoID       string `json:"videoId"`
	LengthSeconds int    `json:"lengthSeconds"`
	Thumbnail     string `json:"thumbnail"`
}
