package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Judgement struct {
	ID        int       `gorm:"primaryKey"`
	UserID    int       `gorm:"not null;uniqueIndex:idx_judgements_pair"`
	ProjectID int       `gorm:"not null;uniqueIndex:idx_judgements_pair;index"`
	Comment   *string   `gorm:"null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	Scores []*Score `gorm:"foreignKey:JudgementID;constraint:OnDelete:CASCADE;"`
	User   *User    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
}

type Score struct {
	ID          int `gorm:"primaryKey"`
	JudgementID int `gorm:"not null;uniqueIndex:idx_scores_judgement_criterion"`
	CriterionID int `gorm:"not null;uniqueIndex:idx_scores_judgement_criterion;index"`
	Value       int `gorm:"not null"`

	Criterion *JudgingCriterion `gorm:"foreignKey:CriterionID;constraint:OnDelete:CASCADE;"`
}

type JudgementRepository struct {
	DB *gorm.DB
}

func NewJudgementRepository(db *gorm.DB) *JudgementRepository {
	return &JudgementRepository{DB: db}
}

func (r *JudgementRepository) GetJudgement(userId int, projectId int) (*Judgement, error) {
	var judgement Judgement
	result := r.DB.Preload("Scores").Where("user_id = ? AND project_id = ?", userId, projectId).First(&judgement)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &judgement, nil
}

// UpsertJudgement returns the judgement for the pair, creating it if needed.
func (r *JudgementRepository) UpsertJudgement(userId int, projectId int) (*Judgement, error) {
	now := time.Now()
	judgement := &Judgement{
		UserID:    userId,
		ProjectID: projectId,
		CreatedAt: now,
		UpdatedAt: now,
	}
	result := r.DB.Clauses(clause.OnConflict{
		Columns:   pairColumns,
		DoUpdates: clause.AssignmentColumns([]string{"updated_at"}),
	}).Create(judgement)
	if result.Error != nil {
		return nil, result.Error
	}
	return r.GetJudgement(userId, projectId)
}

// ReplaceScores drops every score of the judgement and stores scores instead.
func (r *JudgementRepository) ReplaceScores(judgement *Judgement, scores []*Score) error {
	if err := r.DB.Where("judgement_id = ?", judgement.ID).Delete(&Score{}).Error; err != nil {
		return err
	}
	for _, score := range scores {
		score.ID = 0
		score.JudgementID = judgement.ID
	}
	if len(scores) > 0 {
		if err := r.DB.Create(&scores).Error; err != nil {
			return err
		}
	}
	judgement.Scores = scores
	return nil
}

func (r *JudgementRepository) SetComment(judgementId int, comment *string) error {
	return r.DB.Model(&Judgement{}).Where("id = ?", judgementId).
		Updates(map[string]interface{}{"comment": comment, "updated_at": time.Now()}).Error
}

// DeleteAll removes every judgement; their scores go with them through the cascade.
func (r *JudgementRepository) DeleteAll() error {
	return r.DB.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&Judgement{}).Error
}
