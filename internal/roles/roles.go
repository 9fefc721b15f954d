// Package roles answers permission checks with a read-through TTL cache in
// front of the role store.
package roles

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/prepdeck/prepdeck/internal/cache"
)

// Role is a learner's access level.
type Role string

const (
	RoleLearner Role = "learner"
	RoleAdmin   Role = "admin"
)

// RoleRepository defines role lookup operations.
type RoleRepository interface {
	FindRole(ctx context.Context, identity string) (Role, error)
}

// DBRoleRepository implements RoleRepository using Postgres. Identities with
// no row default to RoleLearner.
type DBRoleRepository struct {
	db *sqlx.DB
}

// NewDBRoleRepository creates a new DBRoleRepository.
func NewDBRoleRepository(db *sqlx.DB) *DBRoleRepository {
	return &DBRoleRepository{db: db}
}

// FindRole returns the role recorded for the identity.
func (r *DBRoleRepository) FindRole(ctx context.Context, identity string) (Role, error) {
	var role Role
	err := r.db.GetContext(ctx, &role,
		"SELECT role FROM learner_roles WHERE identity = $1", identity)
	if errors.Is(err, sql.ErrNoRows) {
		return RoleLearner, nil
	}
	if err != nil {
		return "", fmt.Errorf("db.GetContext(learner_roles) > %w", err)
	}
	return role, nil
}

// Checker resolves roles through a TTL cache. The cache and its clock are
// injected so expiry behavior is deterministic in tests.
type Checker struct {
	repo  RoleRepository
	cache *cache.TTLCache[string, Role]
}

// NewChecker creates a Checker. now may be nil, in which case time.Now is
// used for cache expiry.
func NewChecker(repo RoleRepository, ttl time.Duration, now func() time.Time) *Checker {
	return &Checker{
		repo:  repo,
		cache: cache.New[string, Role](ttl, now),
	}
}

// normalizeIdentity matches the canonical form used for storage: identities
// are compared case-insensitively.
func normalizeIdentity(identity string) string {
	return strings.ToLower(strings.TrimSpace(identity))
}

// Role returns the identity's role, serving from cache when fresh.
func (c *Checker) Role(ctx context.Context, identity string) (Role, error) {
	normalized := normalizeIdentity(identity)

	if role, ok := c.cache.Get(normalized); ok {
		return role, nil
	}

	role, err := c.repo.FindRole(ctx, normalized)
	if err != nil {
		return "", fmt.Errorf("repo.FindRole(%s) > %w", normalized, err)
	}
	c.cache.Set(normalized, role)
	return role, nil
}

// IsAdmin reports whether the identity has the admin role.
func (c *Checker) IsAdmin(ctx context.Context, identity string) (bool, error) {
	role, err := c.Role(ctx, identity)
	if err != nil {
		return false, err
	}
	return role == RoleAdmin, nil
}

// Invalidate drops the cached role for the identity. Must be called after
// any role write.
func (c *Checker) Invalidate(identity string) {
	c.cache.Invalidate(normalizeIdentity(identity))
}
