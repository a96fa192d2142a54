package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	AppName    = "EssentialFeed"
	AppVersion = "1.0.0"
)

// DefaultUserAgent identifies remote feed requests.
var DefaultUserAgent = "Mozilla/5.0 (compatible; " + AppName + "/" + AppVersion + ")"

// Chrome headers for TLS fingerprinting (must match azuretls Chrome profile version)
const (
	ChromeUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/135.0.0.0 Safari/537.36"
	ChromeSecChUa   = `"Google Chrome";v="135", "Chromium";v="135", "Not-A.Brand";v="8"`
)

const (
	StoreSQLite = "sqlite"
	StoreFile   = "file"

	FormatJSON = "json"
	FormatRSS  = "rss"

	ClientStd     = "std"
	ClientBrowser = "browser"
)

const defaultRemoteBaseURL = "https://ile-api.essentialdeveloper.com/essential-feed"

type Config struct {
	Addr             string
	DataDir          string
	DBPath           string
	Store            string
	RemoteBaseURL    string
	RemoteFormat     string
	HTTPClient       string
	ProxyURL         string
	RemoteQPS        int
	ValidateInterval time.Duration
	LogLevel         string
	NodeID           int64
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present; real environment variables win.
func Load() Config {
	_ = godotenv.Load()

	addr := getenv("FEED_ADDR", ":8080")
	dataDir := getenv("FEED_DATA_DIR", "./data")
	path := os.Getenv("FEED_DB_PATH")
	if path == "" {
		path = filepath.Join(dataDir, "feed.db")
	}

	return Config{
		Addr:             addr,
		DataDir:          filepath.Clean(dataDir),
		DBPath:           filepath.Clean(path),
		Store:            oneOf(os.Getenv("FEED_STORE"), StoreSQLite, StoreSQLite, StoreFile),
		RemoteBaseURL:    strings.TrimRight(getenv("FEED_REMOTE_BASE_URL", defaultRemoteBaseURL), "/"),
		RemoteFormat:     oneOf(os.Getenv("FEED_REMOTE_FORMAT"), FormatJSON, FormatJSON, FormatRSS),
		HTTPClient:       oneOf(os.Getenv("FEED_HTTP_CLIENT"), ClientStd, ClientStd, ClientBrowser),
		ProxyURL:         strings.TrimSpace(os.Getenv("FEED_PROXY_URL")),
		RemoteQPS:        getenvInt("FEED_REMOTE_QPS", 0),
		ValidateInterval: getenvDuration("FEED_VALIDATE_INTERVAL", 15*time.Minute),
		LogLevel:         getenv("FEED_LOG_LEVEL", "info"),
		NodeID:           int64(getenvInt("FEED_NODE_ID", 1)),
	}
}

func getenv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return fallback
	}
	return value
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	value, err := time.ParseDuration(raw)
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}

// oneOf returns value lowercased if it is one of allowed, fallback otherwise.
func oneOf(value, fallback string, allowed ...string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	for _, candidate := range allowed {
		if value == candidate {
			return value
		}
	}
	return fallback
}
