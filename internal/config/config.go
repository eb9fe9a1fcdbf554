package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const defaultFetchTimeout = 30 * time.Second

type DropboxCredentials struct {
	AccessToken string
}

type Cfg struct {
	Dropbox *DropboxCredentials

	// DownloadDir receives downloaded files. Defaults to the system temp dir.
	DownloadDir string

	// FetchTimeout bounds HTTP fetches of upload-source URLs.
	FetchTimeout time.Duration

	// HTTPAddr switches the MCP transport from stdio to streamable HTTP.
	HTTPAddr string
}

// ParseConfig reads configuration from a JSON file.
func ParseConfig(path string) (*Cfg, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open config file: %v", err)
	}
	defer f.Close()

	cfg := &Cfg{}
	decoder := json.NewDecoder(f)
	if err = decoder.Decode(cfg); err != nil {
		return nil, fmt.Errorf("unable to parse config json: %v", err)
	}

	return cfg, nil
}

// Load builds the configuration from the environment, or from a JSON config
// file when path is non-empty. A .env file in the working directory is
// honored when present.
func Load(path string) (*Cfg, error) {
	_ = godotenv.Load()

	if path != "" {
		cfg, err := ParseConfig(path)
		if err != nil {
			return nil, err
		}
		return cfg, cfg.validate()
	}

	cfg := &Cfg{
		Dropbox: &DropboxCredentials{
			AccessToken: os.Getenv("DROPBOX_ACCESS_TOKEN"),
		},
		DownloadDir: os.Getenv("DROPBOX_MCP_DOWNLOAD_DIR"),
		HTTPAddr:    os.Getenv("DROPBOX_MCP_HTTP_ADDR"),
	}

	if raw := os.Getenv("DROPBOX_MCP_FETCH_TIMEOUT"); raw != "" {
		secs, err := strconv.Atoi(raw)
		if err != nil || secs <= 0 {
			return nil, fmt.Errorf("DROPBOX_MCP_FETCH_TIMEOUT must be a positive number of seconds, got %q", raw)
		}
		cfg.FetchTimeout = time.Duration(secs) * time.Second
	}

	return cfg, cfg.validate()
}

func (c *Cfg) validate() error {
	if c.Dropbox == nil || strings.TrimSpace(c.Dropbox.AccessToken) == "" {
		return fmt.Errorf("dropbox access token is not configured: set DROPBOX_ACCESS_TOKEN")
	}
	if c.DownloadDir == "" {
		c.DownloadDir = os.TempDir()
	}
	if c.FetchTimeout <= 0 {
		c.FetchTimeout = defaultFetchTimeout
	}

	return nil
}
