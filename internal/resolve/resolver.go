package resolve

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/adeyemoadeniyi99-web/xviewerserver/internal/config"
	"github.com/adeyemoadeniyi99-web/xviewerserver/internal/extract"
)

// FormatSelector prefers a matched mp4 video track plus m4a audio
// track, falling back to the single best muxed stream when the source
// offers no such pair.
const FormatSelector = "bestvideo[ext=mp4]+bestaudio[ext=m4a]/best"

// MediaResolver turns a source page URL into a normalized result.
// Failures are always classified (*Error).
type MediaResolver interface {
	Resolve(ctx context.Context, url string) (*Result, error)
}

// Resolver is the direct-extraction strategy: the engine runs
// in-process as a subprocess of this one.
type Resolver struct {
	cfg    *config.Config
	engine extract.Extractor
}

func NewResolver(cfg *config.Config, engine extract.Extractor) *Resolver {
	return &Resolver{cfg: cfg, engine: engine}
}

func (r *Resolver) options() extract.Options {
	return extract.Options{
		FormatSelector: FormatSelector,
		NoPlaylist:     true,
		ProxyURL:       r.cfg.ProxyURL,
		CookiesFile:    r.cfg.CookiesFile,
		UserAgent:      r.cfg.UserAgent,
	}
}

func (r *Resolver) Resolve(ctx context.Context, url string) (*Result, error) {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.Timeout)
	defer cancel()

	info, err := r.engine.Extract(ctx, url, r.options())
	if err != nil {
		return nil, classify(err)
	}

	return r.mapInfo(info)
}

// classify converts extraction failures at the pipeline boundary. An
// engine-reported failure (blocked, removed, unsupported) is a normal
// outcome of the domain, not a server fault.
func classify(err error) *Error {
	var engErr *extract.EngineError
	switch {
	case errors.As(err, &engErr):
		return &Error{Kind: ExtractionFailed, Message: BlockedMessage, Detail: engErr.Message}
	case errors.Is(err, context.DeadlineExceeded):
		return &Error{Kind: ExtractionFailed, Message: BlockedMessage, Detail: "extraction timed out"}
	default:
		return &Error{Kind: Unexpected, Message: err.Error()}
	}
}

// mapInfo is the single place defaults are applied to the engine's
// partial output.
func (r *Resolver) mapInfo(info *extract.Info) (*Result, error) {
	result := &Result{
		Title:     firstNonEmpty(info.Title, DefaultTitle),
		Thumbnail: info.Thumbnail,
	}

	switch r.cfg.OutputMode {
	case config.AllFormats:
		for _, format := range info.Formats {
			if format.URL == "" {
				continue
			}

			result.Formats = append(result.Formats, Stream{
				FormatID:   format.FormatID,
				Ext:        format.Ext,
				Resolution: resolutionOf(format),
				Filesize:   int64(format.Filesize),
				URL:        format.URL,
			})
		}

		if len(result.Formats) == 0 {
			return nil, &Error{Kind: ExtractionFailed, Message: BlockedMessage, Detail: "no playable formats found"}
		}
	default:
		url := chosenURL(info)
		if url == "" {
			return nil, &Error{Kind: ExtractionFailed, Message: BlockedMessage, Detail: "no playable URL in engine output"}
		}

		result.DirectURL = url
	}

	slog.Debug("Resolved media", "title", result.Title, "formats", len(result.Formats))
	return result, nil
}

// chosenURL reads the engine's selected playable URL. A muxed selection
// carries a top-level URL; when the selector matched a separate
// video+audio pair the engine reports the chosen tracks instead, and
// the video track (listed first) is the playable target.
func chosenURL(info *extract.Info) string {
	if info.URL != "" {
		return info.URL
	}

	for _, format := range info.RequestedFormats {
		if format.URL != "" {
			return format.URL
		}
	}

	return ""
}

// resolutionOf derives a display resolution: the engine's own
// descriptor, else "{height}p", else a placeholder.
func resolutionOf(format extract.Format) string {
	if format.Resolution != "" {
		return format.Resolution
	}

	if format.Height > 0 {
		return fmt.Sprintf("%dp", int(format.Height))
	}

	return UnknownResolution
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}

	return ""
}
