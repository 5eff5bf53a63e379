package db

import (
	"errors"
	"log"
	"movie_tracker/configs"
	"movie_tracker/model"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Database struct {
	db *gorm.DB
}

func NewDatabase() (*Database, error) {
	db, err := gorm.Open(
		postgres.Open(configs.GetConfigs().DbUrl),
		&gorm.Config{
			SkipDefaultTransaction: true,
			PrepareStmt:            true,
			TranslateError:         true,
		},
	)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// SetMaxIdleConns sets the maximum number of connections in the idle connection pool.
	sqlDB.SetMaxIdleConns(10)
	// SetMaxOpenConns sets the maximum number of open connections to the database.
	sqlDB.SetMaxOpenConns(100)

	return &Database{db: db}, nil
}

func (d *Database) AutoMigrate() error {
	err := d.db.AutoMigrate(
		&model.User{},
		&model.ContentType{},
		&model.CachedContent{},
		&model.ViewingRecord{},
		&model.Rating{},
		&model.Review{},
		&model.EpisodeWatched{},
	)
	if err != nil {
		return err
	}
	return SeedContentTypes(d.db)
}

// SeedContentTypes inserts the fixed reference rows, first write wins.
func SeedContentTypes(db *gorm.DB) error {
	types := []model.ContentType{
		{TypeId: model.ContentTypeMovie, Name: "Película"},
		{TypeId: model.ContentTypeSeries, Name: "Serie"},
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&types).Error
}

func (d *Database) Close() {
	// try not to use it due to gorm connection pooling
	sqlDB, err := d.db.DB()
	if err != nil {
		log.Fatalln(err)
	}
	sqlDB.Close()
}

func (d *Database) GetDB() *gorm.DB {
	return d.db
}

// IsUniqueViolationError covers both the translated gorm error and a raw
// postgres 23505 that slips past TranslateError (e.g. inside raw SQL).
func IsUniqueViolationError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
