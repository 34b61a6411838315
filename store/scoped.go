// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"path"
)

// Scoped adapts a backing [Store] by prefixing every key with an account
// identifier (spec §2's "storage-scoped facade"), so one Store instance
// (one filesystem root, one Redis connection) can back every account's
// dispatcher without key collisions and without the dispatcher itself
// knowing its own account ID.
type Scoped struct {
	backing   Store
	accountID string
}

var _ Store = (*Scoped)(nil)

// NewScoped returns a [*Scoped] store that prefixes every key written
// through it with accountID.
func NewScoped(backing Store, accountID string) *Scoped {
	return &Scoped{backing: backing, accountID: accountID}
}

// Put implements [Store].
func (s *Scoped) Put(ctx context.Context, key string, data []byte) error {
	return s.backing.Put(ctx, path.Join(s.accountID, key), data)
}

// PutSecret implements [SecretStore] when the backing store does; it
// falls back to Put otherwise, since a backend with no permission concept
// (Redis) has nothing extra to do for a secret.
func (s *Scoped) PutSecret(ctx context.Context, key string, data []byte) error {
	if secret, ok := s.backing.(SecretStore); ok {
		return secret.PutSecret(ctx, path.Join(s.accountID, key), data)
	}
	return s.Put(ctx, key, data)
}
