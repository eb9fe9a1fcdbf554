package common

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJoinRemote(t *testing.T) {
	cases := []struct {
		folder, name, want string
	}{
		{"", "a.txt", "/a.txt"},
		{"/", "a.txt", "/a.txt"},
		{"/docs", "a.txt", "/docs/a.txt"},
		{"/docs/", "a.txt", "/docs/a.txt"},
		{"docs", "a.txt", "/docs/a.txt"},
		{"  /docs ", "a.txt", "/docs/a.txt"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, JoinRemote(tc.folder, tc.name), "folder %q", tc.folder)
	}
}

func TestReplaceName(t *testing.T) {
	cases := []struct {
		path, name, want string
	}{
		{"/docs/old.txt", "new.txt", "/docs/new.txt"},
		{"/old.txt", "new.txt", "/new.txt"},
		{"/docs/sub/", "renamed", "/docs/renamed"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, ReplaceName(tc.path, tc.name), "path %q", tc.path)
	}
}

func TestBaseName(t *testing.T) {
	require.Equal(t, "a.txt", BaseName("/docs/a.txt"))
	require.Equal(t, "sub", BaseName("/docs/sub/"))
	require.Equal(t, "a.txt", BaseName("a.txt"))
}

func TestUniqueLocalName(t *testing.T) {
	first := UniqueLocalName("report.txt")
	second := UniqueLocalName("report.txt")

	require.True(t, strings.HasSuffix(first, "-report.txt"))
	require.NotEqual(t, first, second)
}
