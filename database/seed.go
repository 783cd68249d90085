package database

import (
	"fmt"
	"log/slog"

	"anicms/internal/auth"
	"anicms/internal/authz"
	"anicms/internal/config"
	"anicms/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Seed provisions the rows the admin panel cannot function without: one
// permission per capability, the admin role holding all of them, and the
// bootstrap admin account. Safe to run on every start.
func Seed(db *gorm.DB, cfg *config.Config, logger *slog.Logger) error {
	perms, err := seedPermissions(db)
	if err != nil {
		return fmt.Errorf("failed to seed permissions: %w", err)
	}
	adminRole, err := seedAdminRole(db, perms)
	if err != nil {
		return fmt.Errorf("failed to seed admin role: %w", err)
	}
	if err := seedAdminUser(db, cfg, adminRole, logger); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}
	if err := seedLookups(db); err != nil {
		return fmt.Errorf("failed to seed lookup tables: %w", err)
	}
	return nil
}

func seedPermissions(db *gorm.DB) ([]models.Permission, error) {
	caps := authz.All()
	perms := make([]models.Permission, 0, len(caps))
	for _, cap := range caps {
		p := models.Permission{Name: string(cap)}
		if err := db.Where("name = ?", p.Name).FirstOrCreate(&p).Error; err != nil {
			return nil, err
		}
		perms = append(perms, p)
	}
	return perms, nil
}

func seedAdminRole(db *gorm.DB, perms []models.Permission) (*models.Role, error) {
	role := models.Role{Name: models.RoleAdmin}
	if err := db.Where("name = ?", role.Name).FirstOrCreate(&role).Error; err != nil {
		return nil, err
	}
	// The admin role always carries every capability, including ones added
	// since the last start.
	if err := db.Model(&role).Association("Permissions").Replace(perms); err != nil {
		return nil, err
	}
	return &role, nil
}

func seedAdminUser(db *gorm.DB, cfg *config.Config, role *models.Role, logger *slog.Logger) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		logger.Info("No admin credentials configured, skipping admin user seed")
		return nil
	}

	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", cfg.AdminEmail).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}
	admin := models.User{
		Name:     "Administrator",
		Email:    cfg.AdminEmail,
		Password: hash,
		Roles:    []models.Role{*role},
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	logger.Info("Seeded admin user", "email", cfg.AdminEmail)
	return nil
}

func seedLookups(db *gorm.DB) error {
	types := []models.Type{
		{LookupFields: models.LookupFields{Name: "TV", NameEn: "TV", Slug: "tv", IsActive: true}},
		{LookupFields: models.LookupFields{Name: "Movie", NameEn: "Movie", Slug: "movie", IsActive: true}},
		{LookupFields: models.LookupFields{Name: "OVA", NameEn: "OVA", Slug: "ova", IsActive: true}},
		{LookupFields: models.LookupFields{Name: "Special", NameEn: "Special", Slug: "special", IsActive: true}},
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&types).Error; err != nil {
		return err
	}

	languages := []models.Language{
		{LookupFields: models.LookupFields{Name: "Japanese", NameEn: "Japanese", Slug: "japanese", IsActive: true}},
		{LookupFields: models.LookupFields{Name: "English", NameEn: "English", Slug: "english", IsActive: true}},
		{LookupFields: models.LookupFields{Name: "Arabic", NameEn: "Arabic", Slug: "arabic", IsActive: true}},
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&languages).Error
}
