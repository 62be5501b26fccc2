package database

import (
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/mssql"
	_ "github.com/jinzhu/gorm/dialects/sqlite"

	"videoshare/pkg/models"
)

// Open connects with the given dialect and migrates the schema. The
// returned session is passed to the handlers; nothing in this package
// holds onto it.
func Open(dialect, source string) (*gorm.DB, error) {
	db, err := gorm.Open(dialect, source)
	if err != nil {
		return nil, err
	}
	db.AutoMigrate(&models.User{}, &models.Video{}, &models.Comment{}, &models.Rating{})
	return db, nil
}
