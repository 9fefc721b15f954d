package roles_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_roles "github.com/prepdeck/prepdeck/internal/mocks/roles"
	"github.com/prepdeck/prepdeck/internal/roles"
	"github.com/prepdeck/prepdeck/internal/testutil"
)

func TestChecker_CachesLookups(t *testing.T) {
	ctrl := gomock.NewController(t)
	clock := testutil.NewClock(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))

	repo := mock_roles.NewMockRoleRepository(ctrl)
	repo.EXPECT().FindRole(gomock.Any(), "admin@test.com").Return(roles.RoleAdmin, nil).Times(1)

	checker := roles.NewChecker(repo, 5*time.Minute, clock.Now)

	for i := 0; i < 3; i++ {
		isAdmin, err := checker.IsAdmin(context.Background(), "Admin@Test.com")
		require.NoError(t, err)
		assert.True(t, isAdmin)
	}
}

func TestChecker_TTLExpiryRefetches(t *testing.T) {
	ctrl := gomock.NewController(t)
	clock := testutil.NewClock(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))

	repo := mock_roles.NewMockRoleRepository(ctrl)
	first := repo.EXPECT().FindRole(gomock.Any(), "user@test.com").Return(roles.RoleLearner, nil)
	repo.EXPECT().FindRole(gomock.Any(), "user@test.com").Return(roles.RoleAdmin, nil).After(first)

	checker := roles.NewChecker(repo, 5*time.Minute, clock.Now)

	role, err := checker.Role(context.Background(), "user@test.com")
	require.NoError(t, err)
	assert.Equal(t, roles.RoleLearner, role)

	clock.Advance(5 * time.Minute)

	role, err = checker.Role(context.Background(), "user@test.com")
	require.NoError(t, err)
	assert.Equal(t, roles.RoleAdmin, role)
}

func TestChecker_InvalidateForcesRefetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	clock := testutil.NewClock(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))

	repo := mock_roles.NewMockRoleRepository(ctrl)
	first := repo.EXPECT().FindRole(gomock.Any(), "user@test.com").Return(roles.RoleLearner, nil)
	repo.EXPECT().FindRole(gomock.Any(), "user@test.com").Return(roles.RoleAdmin, nil).After(first)

	checker := roles.NewChecker(repo, 5*time.Minute, clock.Now)

	role, err := checker.Role(context.Background(), "user@test.com")
	require.NoError(t, err)
	assert.Equal(t, roles.RoleLearner, role)

	// Role write happened elsewhere; the cache entry must not outlive it.
	checker.Invalidate("USER@test.com")

	role, err = checker.Role(context.Background(), "user@test.com")
	require.NoError(t, err)
	assert.Equal(t, roles.RoleAdmin, role)
}
