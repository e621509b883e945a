package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/domainscout/domainscout/internal/config"
)

func TestBuildLibsqlDSNMemory(t *testing.T) {
	dsn, err := buildLibsqlDSN(config.StoreConfig{Path: ":memory:"})
	require.NoError(t, err)
	require.Equal(t, ":memory:", dsn)
}

func TestBuildLibsqlDSNPlainPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "scout.db")

	dsn, err := buildLibsqlDSN(config.StoreConfig{Path: path})
	require.NoError(t, err)
	require.Equal(t, "file:"+filepath.Clean(path), dsn)
	require.DirExists(t, filepath.Dir(path))
}

func TestBuildLibsqlDSNFileScheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scout.db")

	dsn, err := buildLibsqlDSN(config.StoreConfig{Path: "file:" + path})
	require.NoError(t, err)
	require.Equal(t, "file:"+path, dsn)
}

func TestBuildLibsqlDSNRemote(t *testing.T) {
	dsn, err := buildLibsqlDSN(config.StoreConfig{Path: "libsql://db.example.turso.io"})
	require.NoError(t, err)
	require.Equal(t, "libsql://db.example.turso.io", dsn)
}

func TestBuildLibsqlDSNURLWithToken(t *testing.T) {
	dsn, err := buildLibsqlDSN(config.StoreConfig{
		URL:       "libsql://db.example.turso.io",
		AuthToken: "secret",
	})
	require.NoError(t, err)
	require.Equal(t, "libsql://db.example.turso.io?authToken=secret", dsn)
}

func TestBuildLibsqlDSNURLKeepsExistingToken(t *testing.T) {
	dsn, err := buildLibsqlDSN(config.StoreConfig{
		URL:       "libsql://db.example.turso.io?authToken=original",
		AuthToken: "secret",
	})
	require.NoError(t, err)
	require.Equal(t, "libsql://db.example.turso.io?authToken=original", dsn)
}

func TestBuildLibsqlDSNRequiresPath(t *testing.T) {
	_, err := buildLibsqlDSN(config.StoreConfig{})
	require.Error(t, err)
}

func TestExtractFilePath(t *testing.T) {
	path, err := extractFilePath("file:/var/lib/scout.db")
	require.NoError(t, err)
	require.Equal(t, "/var/lib/scout.db", path)

	path, err = extractFilePath("file:scout.db")
	require.NoError(t, err)
	require.Equal(t, "scout.db", path)
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), config.StoreConfig{Driver: "postgres"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported store driver")
}

func TestStoreNilReceivers(t *testing.T) {
	var s *Store
	require.NoError(t, s.Close())
	require.Equal(t, "", s.Driver())
}
