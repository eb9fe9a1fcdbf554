package common

import (
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
)

// JoinRemote builds a remote path from an optional folder and an entry name.
func JoinRemote(folder, name string) string {
	folder = strings.TrimSuffix(strings.TrimSpace(folder), "/")
	if folder == "" {
		return "/" + name
	}
	if !strings.HasPrefix(folder, "/") {
		folder = "/" + folder
	}

	return folder + "/" + name
}

// ReplaceName swaps the last segment of a remote path with name.
func ReplaceName(remotePath, name string) string {
	dir := path.Dir(strings.TrimSuffix(remotePath, "/"))
	if dir == "/" || dir == "." {
		return "/" + name
	}

	return dir + "/" + name
}

// BaseName returns the last segment of a remote path.
func BaseName(remotePath string) string {
	return path.Base(strings.TrimSuffix(remotePath, "/"))
}

// UniqueLocalName prefixes name with a short random id so that concurrent
// downloads of the same file never collide.
func UniqueLocalName(name string) string {
	return fmt.Sprintf("%s-%s", uuid.NewString()[:8], name)
}
