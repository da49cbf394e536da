package resolve

// DefaultTitle is used when the engine reports no title.
const DefaultTitle = "Unknown"

// UnknownResolution marks a stream variant whose resolution could not
// be derived from the engine's output.
const UnknownResolution = "unknown"

// Stream is one playable variant of the resolved media item. URL is
// always non-empty: variants without one are dropped during mapping.
type Stream struct {
	FormatID   string `json:"format_id,omitempty"`
	Ext        string `json:"ext,omitempty"`
	Resolution string `json:"resolution"`
	Filesize   int64  `json:"filesize,omitempty"`
	URL        string `json:"url"`
}

// Result is the normalized outcome of a successful resolution. Its JSON
// encoding is the wire response body: DirectURL is populated in
// single-best mode, Formats in all-formats mode.
type Result struct {
	Title     string   `json:"title"`
	Thumbnail string   `json:"thumbnail,omitempty"`
	DirectURL string   `json:"direct_url,omitempty"`
	Formats   []Stream `json:"formats,omitempty"`
}
