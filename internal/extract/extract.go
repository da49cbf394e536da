package extract

import "context"

// Options are the policy knobs passed to the engine for one extraction.
type Options struct {
	// FormatSelector is a yt-dlp format expression describing which
	// stream variant(s) to prefer when multiple are available.
	FormatSelector string

	// NoPlaylist forces a page URL to resolve to exactly one media item.
	NoPlaylist bool

	// ProxyURL routes the engine's outbound requests through another
	// egress IP. Empty means direct.
	ProxyURL string

	// CookiesFile is a Netscape-format cookie store enabling
	// authenticated extraction. Empty means anonymous.
	CookiesFile string

	// UserAgent overrides the engine's default request signature.
	UserAgent string
}

// Extractor is the extraction engine capability: parse a source site's
// page for the given URL and enumerate encoded media stream candidates.
type Extractor interface {
	Extract(ctx context.Context, url string, opts Options) (*Info, error)
}

// Info is the engine's raw result. It is untrusted and partial: any
// field may be absent, the mapping layer applies all defaults.
type Info struct {
	Title     string   `json:"title"`
	Thumbnail string   `json:"thumbnail"`
	// URL is the playable URL of the engine's chosen top-level format,
	// populated only when the format selector picks a single stream.
	URL     string   `json:"url"`
	Formats []Format `json:"formats"`
	// RequestedFormats holds the separate tracks the engine selected
	// when the format selector matched a video+audio pair to be muxed
	// client-side. Present instead of URL in that case.
	RequestedFormats []Format `json:"requested_formats"`
}

// Format is one concrete encoded rendition of the media item.
type Format struct {
	FormatID   string  `json:"format_id"`
	Ext        string  `json:"ext"`
	Resolution string  `json:"resolution"`
	Height     float64 `json:"height"`
	Filesize   float64 `json:"filesize"`
	URL        string  `json:"url"`
}
