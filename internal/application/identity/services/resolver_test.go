package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lerms/internal/domain/identity"
	apperrors "lerms/internal/shared/errors"
	"lerms/internal/shared/logger"
	"lerms/internal/shared/query"
)

type mockUserRepository struct {
	CreateFunc      func(ctx context.Context, user *identity.User) error
	GetByEmailFunc  func(ctx context.Context, email string) (*identity.User, error)
	AssignRolesFunc func(ctx context.Context, userID uint, roleIDs []uint) error
}

func (m *mockUserRepository) Create(ctx context.Context, user *identity.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return user.SetID(1)
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*identity.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*identity.User, error) {
	return nil, nil
}

func (m *mockUserRepository) Update(ctx context.Context, user *identity.User) error { return nil }

func (m *mockUserRepository) List(ctx context.Context, filter identity.UserFilter) ([]*identity.User, int64, error) {
	return nil, 0, nil
}

func (m *mockUserRepository) AssignRoles(ctx context.Context, userID uint, roleIDs []uint) error {
	if m.AssignRolesFunc != nil {
		return m.AssignRolesFunc(ctx, userID, roleIDs)
	}
	return nil
}

type mockRoleRepository struct {
	roles map[uint]*identity.Role
	slugs map[string]*identity.Role
}

func (m *mockRoleRepository) Create(ctx context.Context, role *identity.Role) error { return nil }

func (m *mockRoleRepository) GetByID(ctx context.Context, id uint) (*identity.Role, error) {
	return m.roles[id], nil
}

func (m *mockRoleRepository) GetBySlug(ctx context.Context, slug string) (*identity.Role, error) {
	return m.slugs[slug], nil
}

func (m *mockRoleRepository) List(ctx context.Context, filter query.BaseFilter) ([]*identity.Role, int64, error) {
	return nil, 0, nil
}

func (m *mockRoleRepository) GrantPermission(ctx context.Context, roleID, permissionID uint) error {
	return nil
}

type mockMappingRepository struct {
	mappings []*identity.EmailRoleMapping
}

func (m *mockMappingRepository) Create(ctx context.Context, mapping *identity.EmailRoleMapping) error {
	return nil
}

func (m *mockMappingRepository) List(ctx context.Context) ([]*identity.EmailRoleMapping, error) {
	return m.mappings, nil
}

func (m *mockMappingRepository) Delete(ctx context.Context, id uint) error { return nil }

func quietLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func mustRole(t *testing.T, id uint, name, slug string) *identity.Role {
	t.Helper()
	role, err := identity.ReconstructRole(id, name, slug, "", false, nil, time.Now(), time.Now())
	require.NoError(t, err)
	return role
}

func testRoles(t *testing.T) *mockRoleRepository {
	t.Helper()
	adminRole := mustRole(t, 1, "Admin", "admin")
	reviewerRole := mustRole(t, 2, "Reviewer", "reviewer")
	userRole := mustRole(t, 3, "User", "user")
	return &mockRoleRepository{
		roles: map[uint]*identity.Role{1: adminRole, 2: reviewerRole, 3: userRole},
		slugs: map[string]*identity.Role{"admin": adminRole, "reviewer": reviewerRole, "user": userRole},
	}
}

func TestResolve_FirstContactWithPatternRoles(t *testing.T) {
	var assignedRoleIDs []uint
	userRepo := &mockUserRepository{
		AssignRolesFunc: func(_ context.Context, userID uint, roleIDs []uint) error {
			assignedRoleIDs = roleIDs
			return nil
		},
	}
	mappingRepo := &mockMappingRepository{mappings: []*identity.EmailRoleMapping{
		{ID: 1, Pattern: "chief@agency.gov", RoleID: 1},
		{ID: 2, Pattern: "%@agency.gov", RoleID: 2},
	}}

	svc := NewResolverService(userRepo, testRoles(t), mappingRepo, "user", quietLogger())

	// Both the exact and the wildcard mapping match: two roles granted.
	user, err := svc.Resolve(context.Background(), "Chief@Agency.GOV")
	require.NoError(t, err)
	assert.Equal(t, "chief@agency.gov", user.Email())
	assert.True(t, user.HasRole("admin"))
	assert.True(t, user.HasRole("reviewer"))
	assert.False(t, user.HasRole("user"))
	assert.ElementsMatch(t, []uint{1, 2}, assignedRoleIDs)
}

func TestResolve_FirstContactFallsBackToDefaultRole(t *testing.T) {
	userRepo := &mockUserRepository{}
	mappingRepo := &mockMappingRepository{mappings: []*identity.EmailRoleMapping{
		{ID: 1, Pattern: "%@agency.gov", RoleID: 2},
	}}

	svc := NewResolverService(userRepo, testRoles(t), mappingRepo, "user", quietLogger())

	user, err := svc.Resolve(context.Background(), "stranger@elsewhere.org")
	require.NoError(t, err)
	assert.True(t, user.HasRole("user"))
	assert.Len(t, user.Roles(), 1)
}

func TestResolve_ExistingUserSkipsMapping(t *testing.T) {
	existing, err := identity.ReconstructUser(7, "known@agency.gov", "Known", nil, true,
		[]*identity.Role{mustRole(t, 2, "Reviewer", "reviewer")}, time.Now(), time.Now())
	require.NoError(t, err)

	created := false
	userRepo := &mockUserRepository{
		GetByEmailFunc: func(_ context.Context, email string) (*identity.User, error) {
			return existing, nil
		},
		CreateFunc: func(_ context.Context, _ *identity.User) error {
			created = true
			return nil
		},
	}

	svc := NewResolverService(userRepo, testRoles(t), &mockMappingRepository{}, "user", quietLogger())

	user, err := svc.Resolve(context.Background(), "known@agency.gov")
	require.NoError(t, err)
	assert.Equal(t, uint(7), user.ID())
	assert.False(t, created)
}

func TestResolve_ConcurrentFirstContactConverges(t *testing.T) {
	winner, err := identity.ReconstructUser(11, "racer@agency.gov", "Racer", nil, true, nil, time.Now(), time.Now())
	require.NoError(t, err)

	lookups := 0
	userRepo := &mockUserRepository{
		GetByEmailFunc: func(_ context.Context, email string) (*identity.User, error) {
			lookups++
			if lookups == 1 {
				// First lookup misses; the concurrent request commits in
				// between, so the insert hits the unique index.
				return nil, nil
			}
			return winner, nil
		},
		CreateFunc: func(_ context.Context, _ *identity.User) error {
			return errors.New("UNIQUE constraint failed: users.email")
		},
	}

	svc := NewResolverService(userRepo, testRoles(t), &mockMappingRepository{}, "user", quietLogger())

	user, err := svc.Resolve(context.Background(), "racer@agency.gov")
	require.NoError(t, err)
	assert.Equal(t, uint(11), user.ID())
	assert.Equal(t, 2, lookups)
}

func TestResolve_InactiveUser(t *testing.T) {
	disabled, err := identity.ReconstructUser(5, "gone@agency.gov", "Gone", nil, false, nil, time.Now(), time.Now())
	require.NoError(t, err)

	userRepo := &mockUserRepository{
		GetByEmailFunc: func(_ context.Context, _ string) (*identity.User, error) {
			return disabled, nil
		},
	}

	svc := NewResolverService(userRepo, testRoles(t), &mockMappingRepository{}, "user", quietLogger())

	_, err = svc.Resolve(context.Background(), "gone@agency.gov")
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeInactiveUser))
}

func TestResolve_EmptyEmailYieldsGuest(t *testing.T) {
	svc := NewResolverService(&mockUserRepository{}, testRoles(t), &mockMappingRepository{}, "user", quietLogger())

	user, err := svc.Resolve(context.Background(), "")
	require.NoError(t, err)
	assert.True(t, user.IsTransient())
	assert.True(t, user.HasRole("user"))
}

func TestPermissionService_AdminBypass(t *testing.T) {
	svc := NewPermissionService()

	admin, err := identity.ReconstructUser(1, "chief@agency.gov", "Chief", nil, true,
		[]*identity.Role{mustRole(t, 1, "Admin", "admin")}, time.Now(), time.Now())
	require.NoError(t, err)
	assert.True(t, svc.HasPermission(admin, "anything:at-all"))
	assert.True(t, svc.CanSeeSuppressed(admin))

	perm, err := identity.ReconstructPermission(1, "vehicle:read", "", time.Now())
	require.NoError(t, err)
	reviewer, err := identity.ReconstructRole(2, "Reviewer", "reviewer", "", false, []*identity.Permission{perm}, time.Now(), time.Now())
	require.NoError(t, err)
	plain, err := identity.ReconstructUser(2, "officer@agency.gov", "Officer", nil, true,
		[]*identity.Role{reviewer}, time.Now(), time.Now())
	require.NoError(t, err)
	assert.True(t, svc.HasPermission(plain, "vehicle:read"))
	assert.False(t, svc.HasPermission(plain, "suppression:read"))
	assert.False(t, svc.CanSeeSuppressed(plain))

	assert.False(t, svc.HasPermission(nil, "vehicle:read"))
}
