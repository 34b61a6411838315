// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FSStore is the default artifact backend: one file per key under Root,
// matching spec §6's layout
// (`<log-dir>/<account-id>/<ISO8601>_<client-TRID>_{req,resp}.xml` for
// frames, `<log-dir>/<account-id>/password` for the password file).
// Callers normally wrap it in [Scoped] per account.
type FSStore struct {
	Root string
}

var _ SecretStore = (*FSStore)(nil)

// NewFSStore returns an [*FSStore] rooted at root. root is created lazily
// on first Put, not at construction.
func NewFSStore(root string) *FSStore {
	return &FSStore{Root: root}
}

// Put implements [Store]: key is joined onto Root (after cleaning to
// prevent escaping Root via "..") and written with mode 0644, creating
// any missing parent directories.
func (f *FSStore) Put(ctx context.Context, key string, data []byte) error {
	return f.put(key, data, 0o644)
}

// PutSecret implements [SecretStore]: identical to Put but mode 0600, for
// the persisted password file (§6).
func (f *FSStore) PutSecret(ctx context.Context, key string, data []byte) error {
	return f.put(key, data, 0o600)
}

func (f *FSStore) put(key string, data []byte, mode os.FileMode) error {
	clean := filepath.Clean(filepath.Join(string(filepath.Separator), key))
	full := filepath.Join(f.Root, clean)

	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("store: creating directory for %q: %w", key, err)
	}
	if err := os.WriteFile(full, data, mode); err != nil {
		return fmt.Errorf("store: writing %q: %w", key, err)
	}
	return nil
}
