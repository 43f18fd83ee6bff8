package postgres

import (
	"alcyxob/fitness-tracker/internal/domain"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ConnectDB establishes a connection to PostgreSQL using the provided DSN.
// TranslateError is enabled so unique-constraint violations surface as
// gorm.ErrDuplicatedKey, which the repositories map to repository.ErrDuplicate.
func ConnectDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the schema for every domain model,
// including the explicit edge tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.Group{},
		&domain.GroupMember{},
		&domain.Workout{},
		&domain.WorkoutPlan{},
		&domain.PlanWorkout{},
		&domain.GroupPlan{},
		&domain.Progress{},
	)
}
