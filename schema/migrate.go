package schema

import (
	"fmt"

	"github.com/jinzhu/gorm"
)

// Migrate creates the relational tables, their foreign keys and the
// indexes used by the listings.
func Migrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}

	if err := db.AutoMigrate(
		&Area{},
		&UserRole{},
		&HelpRequest{},
		&HelpOffer{},
		&MissingPerson{},
		&WeatherAlert{},
	).Error; err != nil {
		return err
	}

	for _, model := range []interface{}{&HelpRequest{}, &HelpOffer{}, &MissingPerson{}, &WeatherAlert{}} {
		if err := addAreaForeignKey(db, model); err != nil {
			return err
		}
	}

	if !db.Dialect().HasIndex(string(TableAreas), "areas_name_district") {
		if err := db.Model(&Area{}).AddUniqueIndex("areas_name_district", "name", "district").Error; err != nil {
			return err
		}
	}

	if !db.Dialect().HasIndex(string(TableHelpRequests), "help_requests_area_status") {
		return db.Model(&HelpRequest{}).AddIndex("help_requests_area_status", "area_id", "status").Error
	}

	return nil
}

func addAreaForeignKey(db *gorm.DB, model interface{}) error {
	scope := db.NewScope(model)
	name := fmt.Sprintf("%s_area_id_areas_id_foreign", scope.TableName())

	var exists int
	if err := db.Raw(
		`SELECT count(*) FROM information_schema.table_constraints WHERE constraint_name = ?`, name,
	).Row().Scan(&exists); err != nil {
		return err
	}
	if exists > 0 {
		return nil
	}

	return db.Model(model).AddForeignKey("area_id", fmt.Sprintf("%s(id)", TableAreas), "RESTRICT", "CASCADE").Error
}
