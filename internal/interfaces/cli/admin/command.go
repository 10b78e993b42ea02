// Package admin provides operator commands that bypass the HTTP surface,
// such as bootstrapping the first administrator account.
package admin

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"

	"lerms/internal/infrastructure/config"
	"lerms/internal/infrastructure/database"
	"lerms/internal/infrastructure/persistence/models"
	"lerms/internal/shared/constants"
	"lerms/internal/shared/logger"
)

var (
	env       string
	userEmail string
	userName  string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Administrative tools",
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(newCreateAdminCommand())

	return cmd
}

func newCreateAdminCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an administrator account",
		Long:  `Create a user with the admin role. Prompts for a password on the terminal; the password is stored as a bcrypt hash.`,
		RunE:  runCreateAdmin,
	}

	cmd.Flags().StringVar(&userEmail, "email", "", "Email address for the account (required)")
	cmd.Flags().StringVar(&userName, "name", "", "Display name for the account")
	cmd.MarkFlagRequired("email")

	return cmd
}

func runCreateAdmin(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	password, err := promptPassword()
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cfg.Auth.Password.BcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	db := database.Get()

	var adminRole models.RoleModel
	if err := db.Where("slug = ?", constants.RoleSlugAdmin).First(&adminRole).Error; err != nil {
		return fmt.Errorf("admin role not found, run 'lerms seed' first: %w", err)
	}

	email := strings.ToLower(strings.TrimSpace(userEmail))
	name := userName
	if name == "" {
		name = email
	}

	hashStr := string(hash)
	user := models.UserModel{
		Email:        email,
		Name:         name,
		PasswordHash: &hashStr,
		IsActive:     true,
	}
	if err := db.Where("email = ?", email).FirstOrCreate(&user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	// Existing accounts get their password reset and the admin role ensured.
	if err := db.Model(&user).Updates(map[string]interface{}{
		"password_hash": hashStr,
		"is_active":     true,
	}).Error; err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	if err := db.Model(&user).Association("Roles").Append(&adminRole); err != nil {
		return fmt.Errorf("failed to assign admin role: %w", err)
	}

	logger.NewLogger().Infow("administrator account ready", "email", email, "user_id", user.ID)
	fmt.Printf("Administrator account %s is ready\n", email)

	return nil
}

func promptPassword() (string, error) {
	fmt.Fprint(os.Stderr, "Password: ")
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	fmt.Fprint(os.Stderr, "Confirm password: ")
	confirm, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read password confirmation: %w", err)
	}

	if string(password) != string(confirm) {
		return "", fmt.Errorf("passwords do not match")
	}
	if len(password) < 8 {
		return "", fmt.Errorf("password must be at least 8 characters")
	}

	return string(password), nil
}
