// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNopStore_DiscardsEverything(t *testing.T) {
	var s Store = NopStore{}
	require.NoError(t, s.Put(context.Background(), "any/key", []byte("data")))

	secret, ok := s.(SecretStore)
	require.True(t, ok)
	require.NoError(t, secret.PutSecret(context.Background(), "password", []byte("hunter2")))
}

func TestFSStore_PutWritesFileUnderRoot(t *testing.T) {
	root := t.TempDir()
	s := NewFSStore(root)

	require.NoError(t, s.Put(context.Background(), "acct-1/2026-07-31_ABC-123_req.xml", []byte("<epp/>")))

	got, err := os.ReadFile(filepath.Join(root, "acct-1", "2026-07-31_ABC-123_req.xml"))
	require.NoError(t, err)
	assert.Equal(t, "<epp/>", string(got))
}

func TestFSStore_PutSecretUsesRestrictivePermissions(t *testing.T) {
	root := t.TempDir()
	s := NewFSStore(root)

	require.NoError(t, s.PutSecret(context.Background(), "acct-1/password", []byte("hunter2")))

	info, err := os.Stat(filepath.Join(root, "acct-1", "password"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFSStore_PutRejectsEscapingRoot(t *testing.T) {
	root := t.TempDir()
	s := NewFSStore(root)

	require.NoError(t, s.Put(context.Background(), "../../etc/passwd", []byte("nope")))

	// The ".." segments are cleaned against a synthetic absolute root
	// before joining onto the real root, so the write lands inside root
	// (under an "etc" subdirectory) rather than escaping it.
	got, err := os.ReadFile(filepath.Join(root, "etc", "passwd"))
	require.NoError(t, err)
	assert.Equal(t, "nope", string(got))
}

func TestScoped_PrefixesKeysWithAccountID(t *testing.T) {
	root := t.TempDir()
	backing := NewFSStore(root)
	scoped := NewScoped(backing, "acct-42")

	require.NoError(t, scoped.Put(context.Background(), "frame.xml", []byte("x")))

	_, err := os.Stat(filepath.Join(root, "acct-42", "frame.xml"))
	require.NoError(t, err)
}

func TestScoped_PutSecretDelegatesToBackingSecretStore(t *testing.T) {
	root := t.TempDir()
	backing := NewFSStore(root)
	scoped := NewScoped(backing, "acct-42")

	require.NoError(t, scoped.PutSecret(context.Background(), "password", []byte("hunter2")))

	info, err := os.Stat(filepath.Join(root, "acct-42", "password"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

// nonSecretStore implements only [Store], exercising [Scoped.PutSecret]'s
// fallback to Put for backends with no permission concept.
type nonSecretStore struct {
	puts map[string][]byte
}

func (n *nonSecretStore) Put(ctx context.Context, key string, data []byte) error {
	if n.puts == nil {
		n.puts = map[string][]byte{}
	}
	n.puts[key] = data
	return nil
}

func TestScoped_PutSecretFallsBackToPutWithoutSecretStore(t *testing.T) {
	backing := &nonSecretStore{}
	scoped := NewScoped(backing, "acct-1")

	require.NoError(t, scoped.PutSecret(context.Background(), "password", []byte("hunter2")))
	assert.Equal(t, []byte("hunter2"), backing.puts["acct-1/password"])
}
