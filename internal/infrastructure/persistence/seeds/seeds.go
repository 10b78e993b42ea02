// Package seeds installs the reference data the workflow depends on: the
// action vocabulary, permissions, roles with their grants, and a couple of
// demo mappings. Fixtures live in an embedded YAML file so the data set can
// be reviewed without reading Go code.
package seeds

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"lerms/internal/infrastructure/persistence/models"
)

//go:embed fixtures/seed_data.yaml
var seedData []byte

type actionTypeFixture struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

type permissionFixture struct {
	Slug        string `yaml:"slug"`
	Description string `yaml:"description"`
}

type roleFixture struct {
	Name        string   `yaml:"name"`
	Slug        string   `yaml:"slug"`
	Description string   `yaml:"description"`
	IsSystem    bool     `yaml:"is_system"`
	Permissions []string `yaml:"permissions"`
}

type mappingFixture struct {
	Pattern  string `yaml:"pattern"`
	RoleSlug string `yaml:"role_slug"`
}

type agencyFixture struct {
	Name         string `yaml:"name"`
	Code         string `yaml:"code"`
	Jurisdiction string `yaml:"jurisdiction"`
}

type fixtures struct {
	ActionTypes       []actionTypeFixture `yaml:"action_types"`
	Permissions       []permissionFixture `yaml:"permissions"`
	Roles             []roleFixture       `yaml:"roles"`
	EmailRoleMappings []mappingFixture    `yaml:"email_role_mappings"`
	Agencies          []agencyFixture     `yaml:"agencies"`
}

func loadFixtures() (*fixtures, error) {
	var f fixtures
	if err := yaml.Unmarshal(seedData, &f); err != nil {
		return nil, fmt.Errorf("failed to parse seed fixtures: %w", err)
	}
	return &f, nil
}

// SeedAll runs every seeder. It is idempotent; rows are keyed on their
// unique column and re-running only fills gaps.
func SeedAll(db *gorm.DB) error {
	f, err := loadFixtures()
	if err != nil {
		return err
	}

	if err := seedActionTypes(db, f.ActionTypes); err != nil {
		return err
	}
	if err := seedPermissions(db, f.Permissions); err != nil {
		return err
	}
	if err := seedRoles(db, f.Roles); err != nil {
		return err
	}
	if err := seedEmailRoleMappings(db, f.EmailRoleMappings); err != nil {
		return err
	}
	if err := seedAgencies(db, f.Agencies); err != nil {
		return err
	}

	return nil
}

func seedActionTypes(db *gorm.DB, items []actionTypeFixture) error {
	for _, item := range items {
		row := models.ActionTypeModel{
			Name:        item.Name,
			Description: item.Description,
		}
		if err := db.FirstOrCreate(&row, models.ActionTypeModel{Name: item.Name}).Error; err != nil {
			return fmt.Errorf("failed to seed action type %s: %w", item.Name, err)
		}
	}
	return nil
}

func seedPermissions(db *gorm.DB, items []permissionFixture) error {
	for _, item := range items {
		row := models.PermissionModel{
			Slug:        item.Slug,
			Description: item.Description,
		}
		if err := db.FirstOrCreate(&row, models.PermissionModel{Slug: item.Slug}).Error; err != nil {
			return fmt.Errorf("failed to seed permission %s: %w", item.Slug, err)
		}
	}
	return nil
}

func seedRoles(db *gorm.DB, items []roleFixture) error {
	for _, item := range items {
		row := models.RoleModel{
			Name:        item.Name,
			Slug:        item.Slug,
			Description: item.Description,
			IsSystem:    item.IsSystem,
		}
		if err := db.FirstOrCreate(&row, models.RoleModel{Slug: item.Slug}).Error; err != nil {
			return fmt.Errorf("failed to seed role %s: %w", item.Slug, err)
		}

		if len(item.Permissions) == 0 {
			continue
		}

		var perms []models.PermissionModel
		if err := db.Where("slug IN ?", item.Permissions).Find(&perms).Error; err != nil {
			return fmt.Errorf("failed to load permissions for role %s: %w", item.Slug, err)
		}
		if err := db.Model(&row).Association("Permissions").Replace(perms); err != nil {
			return fmt.Errorf("failed to grant permissions to role %s: %w", item.Slug, err)
		}
	}
	return nil
}

func seedEmailRoleMappings(db *gorm.DB, items []mappingFixture) error {
	for _, item := range items {
		var role models.RoleModel
		if err := db.Where("slug = ?", item.RoleSlug).First(&role).Error; err != nil {
			return fmt.Errorf("failed to resolve role %s for mapping %s: %w", item.RoleSlug, item.Pattern, err)
		}

		row := models.EmailRoleMappingModel{
			Pattern: item.Pattern,
			RoleID:  role.ID,
		}
		if err := db.FirstOrCreate(&row, models.EmailRoleMappingModel{Pattern: item.Pattern, RoleID: role.ID}).Error; err != nil {
			return fmt.Errorf("failed to seed mapping %s: %w", item.Pattern, err)
		}
	}
	return nil
}

func seedAgencies(db *gorm.DB, items []agencyFixture) error {
	for _, item := range items {
		row := models.AgencyModel{
			Name:         item.Name,
			Code:         item.Code,
			Jurisdiction: item.Jurisdiction,
		}
		if err := db.FirstOrCreate(&row, models.AgencyModel{Code: item.Code}).Error; err != nil {
			return fmt.Errorf("failed to seed agency %s: %w", item.Code, err)
		}
	}
	return nil
}
