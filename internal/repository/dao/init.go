package dao

import "gorm.io/gorm"

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&Store{},
		&Staff{},
		&Item{},
		&Order{},
		&OrderLine{},
	)
}

// DropTables removes every table in reverse dependency order.
func DropTables(db *gorm.DB) error {
	return db.Migrator().DropTable(
		&OrderLine{},
		&Order{},
		&Item{},
		&Staff{},
		&Store{},
	)
}
