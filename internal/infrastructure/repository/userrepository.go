package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"lerms/internal/domain/identity"
	"lerms/internal/infrastructure/persistence/mappers"
	"lerms/internal/infrastructure/persistence/models"
	"lerms/internal/shared/db"
	"lerms/internal/shared/logger"
)

// UserRepository implements the identity user repository interface
type UserRepository struct {
	db     *gorm.DB
	mapper mappers.IdentityMapper
	logger logger.Interface
}

// NewUserRepository creates a new user repository
func NewUserRepository(gormDB *gorm.DB, logger logger.Interface) identity.UserRepository {
	return &UserRepository{
		db:     gormDB,
		mapper: mappers.NewIdentityMapper(),
		logger: logger,
	}
}

// Create creates a new user. A duplicate email surfaces as the driver's
// unique-constraint error so the resolver can re-fetch instead of failing.
func (r *UserRepository) Create(ctx context.Context, userEntity *identity.User) error {
	model, err := r.mapper.UserToModel(userEntity)
	if err != nil {
		r.logger.Errorw("failed to map user to model", "error", err)
		return fmt.Errorf("failed to map user: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	if err := userEntity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set user ID: %w", err)
	}

	r.logger.Infow("user created", "id", model.ID, "email", model.Email)
	return nil
}

// GetByEmail retrieves a user by email with roles and permissions preloaded.
// Matching is case-insensitive; returns nil when absent.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*identity.User, error) {
	var model models.UserModel

	err := db.GetTxFromContext(ctx, r.db).
		Preload("Roles.Permissions").
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get user by email", "email", email, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return r.mapper.UserToEntity(&model)
}

// GetByID retrieves a user by ID with roles and permissions preloaded,
// returning nil when absent
func (r *UserRepository) GetByID(ctx context.Context, id uint) (*identity.User, error) {
	var model models.UserModel

	err := db.GetTxFromContext(ctx, r.db).
		Preload("Roles.Permissions").
		First(&model, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get user by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return r.mapper.UserToEntity(&model)
}

// Update persists the mutable user fields
func (r *UserRepository) Update(ctx context.Context, userEntity *identity.User) error {
	model, err := r.mapper.UserToModel(userEntity)
	if err != nil {
		r.logger.Errorw("failed to map user to model", "id", userEntity.ID(), "error", err)
		return fmt.Errorf("failed to map user: %w", err)
	}

	result := db.GetTxFromContext(ctx, r.db).Model(&models.UserModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"email":         model.Email,
			"name":          model.Name,
			"password_hash": model.PasswordHash,
			"is_active":     model.IsActive,
			"updated_at":    model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update user", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update user: %w", result.Error)
	}

	r.logger.Infow("user updated", "id", model.ID)
	return nil
}

// List retrieves a paginated list of users
func (r *UserRepository) List(ctx context.Context, filter identity.UserFilter) ([]*identity.User, int64, error) {
	var userModels []*models.UserModel
	var total int64

	q := db.GetTxFromContext(ctx, r.db).Model(&models.UserModel{})

	if filter.Email != "" {
		q = q.Where("email LIKE ?", "%"+strings.ToLower(filter.Email)+"%")
	}
	if filter.IsActive != nil {
		q = q.Where("is_active = ?", *filter.IsActive)
	}

	if err := q.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count users", "error", err)
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	err := q.Preload("Roles").
		Order("created_at DESC").
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		Find(&userModels).Error
	if err != nil {
		r.logger.Errorw("failed to list users", "error", err)
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}

	entities, err := r.mapper.UsersToEntities(userModels)
	if err != nil {
		r.logger.Errorw("failed to map user models", "error", err)
		return nil, 0, fmt.Errorf("failed to map users: %w", err)
	}

	return entities, total, nil
}

// AssignRoles replaces the user's role associations with the given set
func (r *UserRepository) AssignRoles(ctx context.Context, userID uint, roleIDs []uint) error {
	roles := make([]models.RoleModel, 0, len(roleIDs))
	for _, id := range roleIDs {
		roles = append(roles, models.RoleModel{ID: id})
	}

	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.UserModel{ID: userID}).
		Association("Roles").
		Replace(roles)
	if err != nil {
		r.logger.Errorw("failed to assign roles", "user_id", userID, "role_ids", roleIDs, "error", err)
		return fmt.Errorf("failed to assign roles: %w", err)
	}

	r.logger.Infow("roles assigned", "user_id", userID, "role_ids", roleIDs)
	return nil
}
