package mappers

import (
	"fmt"

	"lerms/internal/domain/identity"
	"lerms/internal/infrastructure/persistence/models"
)

// IdentityMapper handles the conversion between identity aggregates (users,
// roles, permissions, email-role mappings) and their persistence models
type IdentityMapper interface {
	UserToEntity(model *models.UserModel) (*identity.User, error)
	UserToModel(entity *identity.User) (*models.UserModel, error)
	UsersToEntities(models []*models.UserModel) ([]*identity.User, error)

	RoleToEntity(model *models.RoleModel) (*identity.Role, error)
	RoleToModel(entity *identity.Role) (*models.RoleModel, error)
	RolesToEntities(models []*models.RoleModel) ([]*identity.Role, error)

	PermissionToEntity(model *models.PermissionModel) (*identity.Permission, error)
	PermissionToModel(entity *identity.Permission) *models.PermissionModel

	MappingToEntity(model *models.EmailRoleMappingModel) *identity.EmailRoleMapping
	MappingToModel(entity *identity.EmailRoleMapping) *models.EmailRoleMappingModel
}

type IdentityMapperImpl struct{}

// NewIdentityMapper creates a new identity mapper
func NewIdentityMapper() IdentityMapper {
	return &IdentityMapperImpl{}
}

// UserToEntity converts a user model, including preloaded roles and their
// permissions, to the domain aggregate
func (m *IdentityMapperImpl) UserToEntity(model *models.UserModel) (*identity.User, error) {
	if model == nil {
		return nil, nil
	}

	roles := make([]*identity.Role, 0, len(model.Roles))
	for i := range model.Roles {
		role, err := m.RoleToEntity(&model.Roles[i])
		if err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}

	entity, err := identity.ReconstructUser(
		model.ID,
		model.Email,
		model.Name,
		model.PasswordHash,
		model.IsActive,
		roles,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct user: %w", err)
	}

	return entity, nil
}

// UserToModel converts a user aggregate to its persistence model. Role
// associations are persisted separately via AssignRoles.
func (m *IdentityMapperImpl) UserToModel(entity *identity.User) (*models.UserModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.UserModel{
		ID:           entity.ID(),
		Email:        entity.Email(),
		Name:         entity.Name(),
		PasswordHash: entity.PasswordHash(),
		IsActive:     entity.IsActive(),
		CreatedAt:    entity.CreatedAt(),
		UpdatedAt:    entity.UpdatedAt(),
	}, nil
}

func (m *IdentityMapperImpl) UsersToEntities(userModels []*models.UserModel) ([]*identity.User, error) {
	entities := make([]*identity.User, 0, len(userModels))
	for _, model := range userModels {
		entity, err := m.UserToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

// RoleToEntity converts a role model, including preloaded permissions, to
// the domain aggregate
func (m *IdentityMapperImpl) RoleToEntity(model *models.RoleModel) (*identity.Role, error) {
	if model == nil {
		return nil, nil
	}

	permissions := make([]*identity.Permission, 0, len(model.Permissions))
	for i := range model.Permissions {
		permission, err := m.PermissionToEntity(&model.Permissions[i])
		if err != nil {
			return nil, err
		}
		permissions = append(permissions, permission)
	}

	entity, err := identity.ReconstructRole(
		model.ID,
		model.Name,
		model.Slug,
		model.Description,
		model.IsSystem,
		permissions,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct role: %w", err)
	}

	return entity, nil
}

// RoleToModel converts a role aggregate to its persistence model. Permission
// associations are persisted separately via GrantPermission.
func (m *IdentityMapperImpl) RoleToModel(entity *identity.Role) (*models.RoleModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.RoleModel{
		ID:          entity.ID(),
		Name:        entity.Name(),
		Slug:        entity.Slug(),
		Description: entity.Description(),
		IsSystem:    entity.IsSystem(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}, nil
}

func (m *IdentityMapperImpl) RolesToEntities(roleModels []*models.RoleModel) ([]*identity.Role, error) {
	entities := make([]*identity.Role, 0, len(roleModels))
	for _, model := range roleModels {
		entity, err := m.RoleToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

func (m *IdentityMapperImpl) PermissionToEntity(model *models.PermissionModel) (*identity.Permission, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := identity.ReconstructPermission(
		model.ID,
		model.Slug,
		model.Description,
		model.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct permission: %w", err)
	}

	return entity, nil
}

func (m *IdentityMapperImpl) PermissionToModel(entity *identity.Permission) *models.PermissionModel {
	if entity == nil {
		return nil
	}
	return &models.PermissionModel{
		ID:          entity.ID(),
		Slug:        entity.Slug(),
		Description: entity.Description(),
		CreatedAt:   entity.CreatedAt(),
	}
}

func (m *IdentityMapperImpl) MappingToEntity(model *models.EmailRoleMappingModel) *identity.EmailRoleMapping {
	if model == nil {
		return nil
	}
	return &identity.EmailRoleMapping{
		ID:        model.ID,
		Pattern:   model.Pattern,
		RoleID:    model.RoleID,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func (m *IdentityMapperImpl) MappingToModel(entity *identity.EmailRoleMapping) *models.EmailRoleMappingModel {
	if entity == nil {
		return nil
	}
	return &models.EmailRoleMappingModel{
		ID:        entity.ID,
		Pattern:   entity.Pattern,
		RoleID:    entity.RoleID,
		CreatedAt: entity.CreatedAt,
		UpdatedAt: entity.UpdatedAt,
	}
}
