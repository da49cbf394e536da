package extract

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

const DefaultBinary = "yt-dlp"

// EngineError is an extraction failure the engine itself reported: the
// process ran and exited non-zero. Its message is the engine's own
// diagnostic, suitable for surfacing to the caller.
type EngineError struct {
	Message string
	Err     error
}

func (e *EngineError) Error() string {
	return e.Message
}

func (e *EngineError) Unwrap() error {
	return e.Err
}

// YtdlpExtractor drives the yt-dlp binary in JSON dump mode. No media
// data is downloaded, only metadata and stream URLs are enumerated.
type YtdlpExtractor struct {
	binary string
}

func NewYtdlpExtractor(binary string) *YtdlpExtractor {
	if binary == "" {
		binary = DefaultBinary
	}

	return &YtdlpExtractor{binary: binary}
}

func BuildArgs(url string, opts Options) []string {
	args := []string{"--dump-single-json", "--no-warnings"}

	if opts.NoPlaylist {
		args = append(args, "--no-playlist")
	}
	if opts.FormatSelector != "" {
		args = append(args, "--format", opts.FormatSelector)
	}
	if opts.ProxyURL != "" {
		args = append(args, "--proxy", opts.ProxyURL)
	}
	if opts.CookiesFile != "" {
		args = append(args, "--cookies", opts.CookiesFile)
	}
	if opts.UserAgent != "" {
		args = append(args, "--user-agent", opts.UserAgent)
	}

	return append(args, url)
}

func (yt *YtdlpExtractor) Extract(ctx context.Context, url string, opts Options) (*Info, error) {
	cmd := exec.CommandContext(ctx, yt.binary, BuildArgs(url, opts)...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}

		msg := engineMessage(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		slog.Warn("Extraction engine failed", "url", url, "message", msg)
		return nil, &EngineError{Message: msg, Err: err}
	}

	var info Info
	if err := json.Unmarshal(stdout.Bytes(), &info); err != nil {
		return nil, fmt.Errorf("malformed engine output: %w", err)
	}

	return &info, nil
}

// engineMessage pulls the first ERROR: line out of the engine's stderr,
// falling back to the whole (trimmed) stream.
func engineMessage(stderr string) string {
	for _, line := range strings.Split(stderr, "\n") {
		line = strings.TrimSpace(line)
		if rest, ok := strings.CutPrefix(line, "ERROR:"); ok {
			return strings.TrimSpace(rest)
		}
	}

	return strings.TrimSpace(stderr)
}
