package database

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"assetledger/models"
)

var DB *gorm.DB

func Init(dsn, adminPassword string, log *zap.Logger) error {
	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	err = DB.AutoMigrate(
		&models.Tenant{},
		&models.User{},
		&models.Asset{},
		&models.EmploymentHistory{},
		&models.Request{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	if err := seedDefaultAdmin(DB, adminPassword, log); err != nil {
		return fmt.Errorf("failed to seed admin: %w", err)
	}

	return nil
}

// seedDefaultAdmin creates the default tenant and its admin on an empty
// database. The admin must change the seeded password on first login.
func seedDefaultAdmin(db *gorm.DB, password string, log *zap.Logger) error {
	var tenant models.Tenant
	err := db.Where("name = ?", models.DefaultTenantName).First(&tenant).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		tenant = models.Tenant{Name: models.DefaultTenantName}
		err = db.Create(&tenant).Error
	}
	if err != nil {
		return err
	}

	var count int64
	err = db.Model(&models.User{}).Where("tenant_id = ? AND username = ?", tenant.ID, "admin").Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		TenantID:           tenant.ID,
		Username:           "admin",
		FullName:           "Administrator",
		PasswordHash:       string(hashedPassword),
		Role:               models.RoleAdmin,
		MustChangePassword: true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Info("default admin user created", zap.String("username", admin.Username), zap.String("tenant_id", tenant.ID))
	return nil
}

func GetDB() *gorm.DB {
	return DB
}
