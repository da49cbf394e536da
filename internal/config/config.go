package config

import (
	"log/slog"
	"os"
	"time"
)

// OutputMode decides the shape of a successful resolution: a single
// pre-selected stream URL, or every playable variant the engine found.
type OutputMode int

const (
	SingleBest OutputMode = iota
	AllFormats
)

func (m OutputMode) String() string {
	if m == AllFormats {
		return "all"
	}

	return "single"
}

const (
	DefaultPort        = "5000"
	DefaultCookiesFile = "cookies.txt"
	DefaultTimeout     = 20 * time.Second

	// a realistic desktop browser signature, so source sites are less
	// likely to serve a bot-detection page instead of media data
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Config is read from the environment once at startup and treated as
// immutable for the process lifetime. Nothing in the request path reads
// the environment directly.
type Config struct {
	Addr         string
	ProxyURL     string
	CookiesFile  string
	UserAgent    string
	OutputMode   OutputMode
	WorkerURL    string
	Timeout      time.Duration
	EngineBinary string
}

func Load() *Config {
	cfg := &Config{
		UserAgent: DefaultUserAgent,
		Timeout:   DefaultTimeout,
	}

	port, ok := os.LookupEnv("PORT")
	if !ok {
		port = DefaultPort
		slog.Info("PORT not provided, using default '" + port + "'")
	}
	cfg.Addr = "0.0.0.0:" + port

	cfg.ProxyURL = os.Getenv("PROXY_URL")
	if cfg.ProxyURL == "" {
		slog.Info("PROXY_URL not set, extraction requests will use the default egress IP")
	}

	cookies := os.Getenv("COOKIES_FILE")
	if cookies == "" {
		cookies = DefaultCookiesFile
	}
	if _, err := os.Stat(cookies); err == nil {
		cfg.CookiesFile = cookies
		slog.Info("Using cookie store", "path", cookies)
	}

	if ua, ok := os.LookupEnv("USER_AGENT"); ok {
		cfg.UserAgent = ua
	}

	switch mode := os.Getenv("OUTPUT_MODE"); mode {
	case "", "single":
		cfg.OutputMode = SingleBest
	case "all":
		cfg.OutputMode = AllFormats
	default:
		slog.Warn("Invalid value for OUTPUT_MODE environment variable", "value", mode)
		cfg.OutputMode = SingleBest
	}

	cfg.WorkerURL = os.Getenv("WORKER_URL")
	cfg.EngineBinary = os.Getenv("YTDLP_PATH")

	if timeoutStr, ok := os.LookupEnv("RESOLVE_TIMEOUT"); ok {
		timeout, err := time.ParseDuration(timeoutStr)
		if err != nil {
			slog.Warn("Invalid value for RESOLVE_TIMEOUT environment variable", "err", err)
		} else {
			cfg.Timeout = timeout
		}
	}

	return cfg
}
