package drive

import (
	"context"
	"fmt"
	"io"

	"github.com/dropbox/dropbox-sdk-go-unofficial/v6/dropbox"
	"github.com/dropbox/dropbox-sdk-go-unofficial/v6/dropbox/files"
	"github.com/dropbox/dropbox-sdk-go-unofficial/v6/dropbox/sharing"

	"github.com/sukeshofficial/dropbox-mcp/internal/config"
)

// Dropbox implements Drive against the Dropbox HTTP API.
type Dropbox struct {
	client  files.Client
	sharing sharing.Client
}

// NewDropboxClient creates a new Dropbox client.
func NewDropboxClient(conf *config.DropboxCredentials) *Dropbox {
	dbxConfig := dropbox.Config{
		Token:    conf.AccessToken,
		LogLevel: dropbox.LogOff,
	}

	return &Dropbox{
		client:  files.New(dbxConfig),
		sharing: sharing.New(dbxConfig),
	}
}

func (d *Dropbox) ProviderName() string {
	return "dropbox"
}

// Download fetches the content and metadata of the file at path.
func (d *Dropbox) Download(ctx context.Context, path string) (*Entry, io.ReadCloser, error) {
	args := files.NewDownloadArg(path)
	md, r, err := d.client.Download(args)
	if err != nil {
		return nil, nil, classifyProviderError(fmt.Sprintf("download %s", path), err)
	}

	return fileEntry(md), r, nil
}

// Upload writes content to path in a single request.
func (d *Dropbox) Upload(ctx context.Context, path string, content io.Reader, opts UploadOptions) (*Entry, error) {
	args := files.NewUploadArg(path)
	args.Autorename = opts.Autorename
	args.Mute = true
	if opts.Mode != "" {
		args.Mode = &files.WriteMode{Tagged: dropbox.Tagged{Tag: opts.Mode}}
	}

	md, err := d.client.Upload(args, content)
	if err != nil {
		return nil, classifyProviderError(fmt.Sprintf("upload %s", path), err)
	}

	return fileEntry(md), nil
}

// Delete removes the file or folder at path.
func (d *Dropbox) Delete(ctx context.Context, path string) (*Entry, error) {
	args := files.NewDeleteArg(path)
	res, err := d.client.DeleteV2(args)
	if err != nil {
		return nil, classifyProviderError(fmt.Sprintf("delete %s", path), err)
	}

	return entryOf(res.Metadata, path)
}

// Move relocates a file or folder to toPath.
func (d *Dropbox) Move(ctx context.Context, fromPath, toPath string, autorename bool) (*Entry, error) {
	args := files.NewRelocationArg(fromPath, toPath)
	args.Autorename = autorename

	res, err := d.client.MoveV2(args)
	if err != nil {
		return nil, classifyProviderError(fmt.Sprintf("move %s to %s", fromPath, toPath), err)
	}

	return entryOf(res.Metadata, toPath)
}

// ListContents lists the entries under path. An empty path means the root
// folder. It returns at most one page; hasMore reports whether the folder
// holds further entries beyond the requested limit.
func (d *Dropbox) ListContents(ctx context.Context, path string, recursive bool, limit uint32) ([]Entry, bool, error) {
	args := files.NewListFolderArg(path)
	args.Recursive = recursive
	if limit > 0 {
		args.Limit = limit
	}

	res, err := d.client.ListFolder(args)
	if err != nil {
		return nil, false, classifyProviderError(fmt.Sprintf("list %s", path), err)
	}

	entries := make([]Entry, 0, len(res.Entries))
	for _, md := range res.Entries {
		if e := entryFromMetadata(md); e != nil {
			entries = append(entries, *e)
		}
	}

	return entries, res.HasMore, nil
}

// ListRevisions returns the tracked revisions of the file at path.
func (d *Dropbox) ListRevisions(ctx context.Context, path, mode string, limit uint64) ([]Revision, error) {
	args := files.NewListRevisionsArg(path)
	if mode != "" {
		args.Mode = &files.ListRevisionsMode{Tagged: dropbox.Tagged{Tag: mode}}
	}
	if limit > 0 {
		args.Limit = limit
	}

	res, err := d.client.ListRevisions(args)
	if err != nil {
		return nil, classifyProviderError(fmt.Sprintf("list revisions of %s", path), err)
	}

	revs := make([]Revision, 0, len(res.Entries))
	for _, md := range res.Entries {
		revs = append(revs, Revision{
			Rev:      md.Rev,
			Path:     md.PathDisplay,
			Size:     md.Size,
			Modified: md.ServerModified,
		})
	}

	return revs, nil
}

// Restore makes the given revision the current content of the file at path.
func (d *Dropbox) Restore(ctx context.Context, path, rev string) (*Entry, error) {
	args := files.NewRestoreArg(path, rev)
	md, err := d.client.Restore(args)
	if err != nil {
		return nil, classifyProviderError(fmt.Sprintf("restore %s to revision %s", path, rev), err)
	}

	return fileEntry(md), nil
}

// Search looks up files and folders matching query, returning at most
// maxResults entries.
func (d *Dropbox) Search(ctx context.Context, query string, maxResults uint64) ([]Entry, error) {
	args := files.NewSearchV2Arg(query)
	if maxResults > 0 {
		args.Options = &files.SearchOptions{MaxResults: maxResults}
	}

	res, err := d.client.SearchV2(args)
	if err != nil {
		return nil, classifyProviderError(fmt.Sprintf("search %q", query), err)
	}

	matches := make([]Entry, 0, len(res.Matches))
	for _, match := range res.Matches {
		if match.Metadata == nil || match.Metadata.Metadata == nil {
			continue
		}
		e := entryFromMetadata(match.Metadata.Metadata)
		if e == nil {
			continue
		}
		matches = append(matches, *e)
		// the final page may exceed the requested cap
		if maxResults > 0 && uint64(len(matches)) >= maxResults {
			break
		}
	}

	return matches, nil
}

// CreateFolder creates a folder at path.
func (d *Dropbox) CreateFolder(ctx context.Context, path string, autorename bool) (*Entry, error) {
	args := files.NewCreateFolderArg(path)
	args.Autorename = autorename

	res, err := d.client.CreateFolderV2(args)
	if err != nil {
		return nil, classifyProviderError(fmt.Sprintf("create folder %s", path), err)
	}

	return entryOf(res.Metadata, path)
}

// CreateSharedLink creates a public shared link for the file or folder at
// path and returns its URL.
func (d *Dropbox) CreateSharedLink(ctx context.Context, path string, opts ShareOptions) (string, error) {
	settings := &sharing.SharedLinkSettings{
		RequestedVisibility: &sharing.RequestedVisibility{
			Tagged: dropbox.Tagged{Tag: sharing.RequestedVisibilityPublic},
		},
	}
	if opts.Password != "" {
		settings.RequirePassword = true
		settings.LinkPassword = opts.Password
	}
	if !opts.Expires.IsZero() {
		exp := opts.Expires.UTC()
		settings.Expires = &exp
	}

	args := sharing.NewCreateSharedLinkWithSettingsArg(path)
	args.Settings = settings

	res, err := d.sharing.CreateSharedLinkWithSettings(args)
	if err != nil {
		return "", classifyProviderError(fmt.Sprintf("share %s", path), err)
	}

	switch md := res.(type) {
	case *sharing.FileLinkMetadata:
		return md.Url, nil
	case *sharing.FolderLinkMetadata:
		return md.Url, nil
	default:
		return "", NewError(KindUnknown, "share %s: unexpected link metadata from provider", path)
	}
}

func fileEntry(md *files.FileMetadata) *Entry {
	modified := md.ServerModified
	return &Entry{
		Name:     md.Name,
		Path:     md.PathDisplay,
		Type:     EntryTypeFile,
		Size:     md.Size,
		Rev:      md.Rev,
		Modified: &modified,
	}
}

// entryFromMetadata maps the SDK's metadata union onto an Entry.
func entryFromMetadata(md files.IsMetadata) *Entry {
	switch m := md.(type) {
	case *files.FileMetadata:
		return fileEntry(m)
	case *files.FolderMetadata:
		return &Entry{Name: m.Name, Path: m.PathDisplay, Type: EntryTypeFolder}
	case *files.DeletedMetadata:
		return &Entry{Name: m.Name, Path: m.PathDisplay, Type: EntryTypeDeleted}
	default:
		return nil
	}
}

func entryOf(md files.IsMetadata, path string) (*Entry, error) {
	if e := entryFromMetadata(md); e != nil {
		return e, nil
	}
	return nil, NewError(KindUnknown, "%s: unexpected metadata from provider", path)
}
