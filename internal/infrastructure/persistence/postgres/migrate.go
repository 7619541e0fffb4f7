package postgres

import (
	"fmt"

	"gorm.io/gorm"
)

// activeUniqueIndexes garantem unicidade sem diferenciar caixa apenas entre registros ativos
var activeUniqueIndexes = []string{
	`CREATE UNIQUE INDEX IF NOT EXISTS ux_users_username_active ON users (LOWER(username)) WHERE is_deleted = false`,
	`CREATE UNIQUE INDEX IF NOT EXISTS ux_users_email_active ON users (LOWER(email)) WHERE is_deleted = false`,
	`CREATE UNIQUE INDEX IF NOT EXISTS ux_services_name_active ON services (LOWER(name)) WHERE is_deleted = false`,
	`CREATE UNIQUE INDEX IF NOT EXISTS ux_service_categories_name_active ON service_categories (LOWER(name)) WHERE is_deleted = false`,
}

// Migrate cria/atualiza as tabelas e os índices parciais
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&UserModel{},
		&RefreshTokenModel{},
		&ServiceModel{},
		&CategoryModel{},
		&CategoryLinkModel{},
		&ActivityLogModel{},
		&NotificationModel{},
		&DentalModelModel{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	for _, stmt := range activeUniqueIndexes {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("create index: %w", err)
		}
	}

	return nil
}
