// Package services holds the identity resolution and permission services
// shared by the HTTP middleware and the CLI.
package services

import (
	"context"

	"lerms/internal/domain/identity"
	apperrors "lerms/internal/shared/errors"
	"lerms/internal/shared/logger"
)

// ResolverService turns a caller-supplied email into a persisted principal
// with roles. Resolution is idempotent: repeated calls for the same email
// converge on one user row even under concurrent first contact.
type ResolverService struct {
	userRepo    identity.UserRepository
	roleRepo    identity.RoleRepository
	mappingRepo identity.EmailRoleMappingRepository
	defaultRole string
	logger      logger.Interface
}

func NewResolverService(
	userRepo identity.UserRepository,
	roleRepo identity.RoleRepository,
	mappingRepo identity.EmailRoleMappingRepository,
	defaultRole string,
	logger logger.Interface,
) *ResolverService {
	return &ResolverService{
		userRepo:    userRepo,
		roleRepo:    roleRepo,
		mappingRepo: mappingRepo,
		defaultRole: defaultRole,
		logger:      logger,
	}
}

// Resolve returns the principal for an email, creating and role-mapping the
// user on first contact. An empty email yields a transient guest carrying
// only the default role. A disabled account resolves to InactiveUser.
func (s *ResolverService) Resolve(ctx context.Context, email string) (*identity.User, error) {
	if email == "" {
		defaultRole, err := s.roleRepo.GetBySlug(ctx, s.defaultRole)
		if err != nil {
			// A guest with zero roles beats failing the request outright.
			s.logger.Warnw("failed to load default role for guest", "error", err, "slug", s.defaultRole)
			defaultRole = nil
		}
		return identity.NewGuestUser(defaultRole), nil
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		s.logger.Errorw("failed to look up user", "error", err, "email", email)
		return nil, apperrors.NewStorageError("get user", err)
	}

	if user == nil {
		user, err = s.createWithMappedRoles(ctx, email)
		if err != nil {
			return nil, err
		}
	}

	if !user.IsActive() {
		return nil, apperrors.NewInactiveUserError(user.Email())
	}
	return user, nil
}

// createWithMappedRoles persists a first-contact user and grants every role
// whose email pattern matches, falling back to the default role when none
// do. A duplicate-key failure means a concurrent request created the row
// first; re-fetch and use theirs.
func (s *ResolverService) createWithMappedRoles(ctx context.Context, email string) (*identity.User, error) {
	user, err := identity.NewUser(email, "")
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if apperrors.IsDuplicateKey(err) {
			existing, getErr := s.userRepo.GetByEmail(ctx, email)
			if getErr != nil {
				return nil, apperrors.NewStorageError("get user after duplicate", getErr)
			}
			if existing == nil {
				return nil, apperrors.NewStorageError("get user after duplicate", err)
			}
			s.logger.Debugw("lost first-contact race, reusing existing user", "email", email, "user_id", existing.ID())
			return existing, nil
		}
		s.logger.Errorw("failed to create user", "error", err, "email", email)
		return nil, apperrors.NewStorageError("create user", err)
	}

	roleIDs, err := s.mappedRoleIDs(ctx, user)
	if err != nil {
		return nil, err
	}

	if len(roleIDs) > 0 {
		if err := s.userRepo.AssignRoles(ctx, user.ID(), roleIDs); err != nil {
			s.logger.Errorw("failed to assign roles", "error", err, "user_id", user.ID())
			return nil, apperrors.NewStorageError("assign roles", err)
		}
	}

	s.logger.Infow("first-contact user created",
		"user_id", user.ID(),
		"email", user.Email(),
		"role_count", len(user.Roles()),
	)
	return user, nil
}

func (s *ResolverService) mappedRoleIDs(ctx context.Context, user *identity.User) ([]uint, error) {
	mappings, err := s.mappingRepo.List(ctx)
	if err != nil {
		s.logger.Errorw("failed to list email role mappings", "error", err)
		return nil, apperrors.NewStorageError("list email role mappings", err)
	}

	var roleIDs []uint
	for _, m := range mappings {
		if !m.Matches(user.Email()) {
			continue
		}
		role, err := s.roleRepo.GetByID(ctx, m.RoleID)
		if err != nil {
			s.logger.Errorw("failed to load mapped role", "error", err, "role_id", m.RoleID)
			return nil, apperrors.NewStorageError("get role", err)
		}
		if role == nil {
			s.logger.Warnw("email role mapping points at missing role", "mapping_id", m.ID, "role_id", m.RoleID)
			continue
		}
		user.GrantRole(role)
		roleIDs = append(roleIDs, role.ID())
	}

	if len(roleIDs) == 0 {
		defaultRole, err := s.roleRepo.GetBySlug(ctx, s.defaultRole)
		if err != nil {
			// Resolution still succeeds with zero roles.
			s.logger.Warnw("failed to load default role", "error", err, "slug", s.defaultRole)
			return nil, nil
		}
		if defaultRole != nil {
			user.GrantRole(defaultRole)
			roleIDs = append(roleIDs, defaultRole.ID())
		}
	}
	return roleIDs, nil
}
