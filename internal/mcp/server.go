package mcp

import (
	"fmt"

	srv "github.com/mark3labs/mcp-go/server"
	log "github.com/sirupsen/logrus"

	"github.com/sukeshofficial/dropbox-mcp/internal/config"
	"github.com/sukeshofficial/dropbox-mcp/internal/drive"
	"github.com/sukeshofficial/dropbox-mcp/internal/fetch"
	"github.com/sukeshofficial/dropbox-mcp/internal/mcp/tools"
)

const (
	serverName    = "dropbox-mcp"
	serverVersion = "1.0.0"
)

// Server wires the storage tools into an MCP server.
type Server struct {
	mcpServer *srv.MCPServer
	tools     []tools.Tool
}

// NewServer constructs an MCP server exposing the Dropbox file tools.
func NewServer(drv drive.Drive, cfg *config.Cfg) (*Server, error) {
	if drv == nil {
		return nil, fmt.Errorf("drive is required")
	}
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	registry, err := buildTools(drv, fetch.NewFetcher(cfg.FetchTimeout), cfg)
	if err != nil {
		return nil, fmt.Errorf("couldn't build tools: %v", err)
	}

	mcpServer := srv.NewMCPServer(
		serverName,
		serverVersion,
		srv.WithToolCapabilities(false),
		srv.WithRecovery(),
		srv.WithInstructions("Manage files in the connected Dropbox account: "+
			"upload, download, list, search, move, rename, restore, share and delete."),
	)

	for _, tool := range registry {
		def := tool.Definition()
		mcpServer.AddTool(def, tool.Handle)
		log.WithField("tool", def.Name).Debug("registered tool")
	}

	return &Server{mcpServer: mcpServer, tools: registry}, nil
}

// Tools returns the registered tool set in registration order.
func (s *Server) Tools() []tools.Tool {
	return s.tools
}

// ServeStdio serves MCP over stdin/stdout until the stream closes.
func (s *Server) ServeStdio() error {
	return srv.ServeStdio(s.mcpServer)
}

// ServeHTTP serves the streamable HTTP transport on addr.
func (s *Server) ServeHTTP(addr string) error {
	return srv.NewStreamableHTTPServer(s.mcpServer).Start(addr)
}

func buildTools(drv drive.Drive, fetcher tools.Fetcher, cfg *config.Cfg) ([]tools.Tool, error) {
	download, err := tools.NewDownloadTool(drv, cfg.DownloadDir)
	if err != nil {
		return nil, err
	}
	del, err := tools.NewDeleteTool(drv)
	if err != nil {
		return nil, err
	}
	listContents, err := tools.NewListContentsTool(drv)
	if err != nil {
		return nil, err
	}
	search, err := tools.NewSearchTool(drv)
	if err != nil {
		return nil, err
	}
	listRevisions, err := tools.NewListRevisionsTool(drv)
	if err != nil {
		return nil, err
	}
	restore, err := tools.NewRestoreTool(drv)
	if err != nil {
		return nil, err
	}
	rename, err := tools.NewRenameTool(drv)
	if err != nil {
		return nil, err
	}
	move, err := tools.NewMoveTool(drv)
	if err != nil {
		return nil, err
	}
	upload, err := tools.NewUploadTool(drv, fetcher)
	if err != nil {
		return nil, err
	}
	uploadBatch, err := tools.NewUploadBatchTool(drv, fetcher)
	if err != nil {
		return nil, err
	}
	createFolder, err := tools.NewCreateFolderTool(drv)
	if err != nil {
		return nil, err
	}
	writeText, err := tools.NewWriteTextTool(drv)
	if err != nil {
		return nil, err
	}
	shareLink, err := tools.NewShareLinkTool(drv)
	if err != nil {
		return nil, err
	}

	return []tools.Tool{
		download,
		del,
		listContents,
		search,
		listRevisions,
		restore,
		rename,
		move,
		upload,
		uploadBatch,
		createFolder,
		writeText,
		shareLink,
	}, nil
}
