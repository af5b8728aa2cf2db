package repository

import (
	"errors"
	"log"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Schema holds every table of the application.
const Schema = "khe"

type DataMigration struct {
	Name      string    `gorm:"primaryKey"`
	AppliedAt time.Time `gorm:"not null"`
}

func Models() []interface{} {
	return []interface{}{
		&User{},
		&Track{},
		&Project{},
		&Application{},
		&JudgingCriterion{},
		&JudgeAssignment{},
		&Judgement{},
		&Score{},
		&DataMigration{},
	}
}

// AutoMigrate creates the schema, migrates all models and applies pending data migrations.
func AutoMigrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE SCHEMA IF NOT EXISTS ` + Schema).Error; err != nil {
		return err
	}
	if err := db.AutoMigrate(Models()...); err != nil {
		return err
	}
	return Migration(db)
}

type dataMigration struct {
	name string
	run  func(tx *gorm.DB) error
}

var dataMigrations = []dataMigration{
	{name: "backfill_manual_judging", run: backfillManualJudging},
	{name: "seed_catalog", run: seedCatalog},
}

func Migration(db *gorm.DB) error {
	for _, migration := range dataMigrations {
		var applied DataMigration
		err := db.First(&applied, "name = ?", migration.name).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Error fetching migration %s: %v", migration.name, err)
			return err
		}
		err = db.Transaction(func(tx *gorm.DB) error {
			log.Printf("Applying data migration %s", migration.name)
			if err := migration.run(tx); err != nil {
				return err
			}
			return tx.Create(&DataMigration{Name: migration.name, AppliedAt: time.Now()}).Error
		})
		if err != nil {
			log.Printf("Error applying migration %s: %v", migration.name, err)
			return err
		}
	}
	return nil
}

// backfillManualJudging derives the manual mode flag from assignment rows
// written before the flag existed on users.
func backfillManualJudging(tx *gorm.DB) error {
	return tx.Model(&User{}).
		Where("id IN (?)", tx.Model(&JudgeAssignment{}).Select("user_id").Where("is_manual = ?", true)).
		Update("manual_judging", true).Error
}

func strPtr(s string) *string {
	return &s
}

func seedTracks() []*Track {
	return []*Track{
		{Name: "General", Description: strPtr("General track for all projects")},
		{Name: "Business Analytics", Description: strPtr("Data driven business solutions")},
		{Name: "Education Tech", Description: strPtr("Improving education through technology")},
		{Name: "Healthcare", Description: strPtr("Health and wellness solutions")},
		{Name: "Consumer", Description: strPtr("Consumer facing products")},
		{Name: "New Frontiers", Description: strPtr("Experimental and cutting edge tech")},
	}
}

func seedCriteria() []*JudgingCriterion {
	return []*JudgingCriterion{
		{Slug: "creativity", Name: "Creativity", Order: 1, MaxScore: 5},
		{Slug: "most-learned", Name: "Most Learned", Order: 2, MaxScore: 5},
		{Slug: "technicality", Name: "Technicality", Order: 3, MaxScore: 5},
		{Slug: "overall", Name: "Overall Score", Order: 4, MaxScore: 5},
		{Slug: "track-fit", Name: "Track Fit", Order: 5, MaxScore: 5},
	}
}

// seedCatalog installs the default tracks and rubric. Existing rows with the
// same name or slug are left alone.
func seedCatalog(tx *gorm.DB) error {
	tracks := seedTracks()
	criteria := seedCriteria()
	err := tx.Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).Create(&tracks).Error
	if err != nil {
		return err
	}
	return tx.Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "slug"}}, DoNothing: true}).Create(&criteria).Error
}
