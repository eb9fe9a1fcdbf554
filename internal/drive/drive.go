package drive

import (
	"context"
	"io"
	"time"
)

// Entry type tags used in listings and search results.
const (
	EntryTypeFile    = "file"
	EntryTypeFolder  = "folder"
	EntryTypeDeleted = "deleted"
)

// Entry describes a remote file or folder.
type Entry struct {
	Name     string     `json:"name"`
	Path     string     `json:"path"`
	Type     string     `json:"type"`
	Size     uint64     `json:"size,omitempty"`
	Rev      string     `json:"rev,omitempty"`
	Modified *time.Time `json:"modified,omitempty"`
}

// Revision describes one provider-tracked version of a file.
type Revision struct {
	Rev      string    `json:"rev"`
	Path     string    `json:"path"`
	Size     uint64    `json:"size"`
	Modified time.Time `json:"modified"`
}

// UploadOptions control how an upload commits on the remote side.
type UploadOptions struct {
	// Mode is "add" or "overwrite". Empty means the provider default ("add").
	Mode       string
	Autorename bool
}

// ShareOptions control shared link creation.
type ShareOptions struct {
	Password string
	// Expires is ignored when zero.
	Expires time.Time
}

// Drive is the storage gateway contract. Each call maps to exactly one
// provider operation. Implementations must be safe for concurrent use.
type Drive interface {
	ProviderName() string
	Download(ctx context.Context, path string) (*Entry, io.ReadCloser, error)
	Upload(ctx context.Context, path string, content io.Reader, opts UploadOptions) (*Entry, error)
	Delete(ctx context.Context, path string) (*Entry, error)
	Move(ctx context.Context, fromPath, toPath string, autorename bool) (*Entry, error)
	ListContents(ctx context.Context, path string, recursive bool, limit uint32) ([]Entry, bool, error)
	ListRevisions(ctx context.Context, path, mode string, limit uint64) ([]Revision, error)
	Restore(ctx context.Context, path, rev string) (*Entry, error)
	Search(ctx context.Context, query string, maxResults uint64) ([]Entry, error)
	CreateFolder(ctx context.Context, path string, autorename bool) (*Entry, error)
	CreateSharedLink(ctx context.Context, path string, opts ShareOptions) (string, error)
}
