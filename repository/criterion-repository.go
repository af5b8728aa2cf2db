package repository

import (
	"errors"
	"khe/app_error"

	"gorm.io/gorm"
)

type JudgingCriterion struct {
	ID       int    `gorm:"primaryKey"`
	Slug     string `gorm:"not null;uniqueIndex"`
	Name     string `gorm:"not null"`
	Order    int    `gorm:"column:sort_order;not null;default:0"`
	MaxScore int    `gorm:"not null;default:5"`
	Optional bool   `gorm:"not null;default:false"`
}

func (JudgingCriterion) TableName() string {
	return Schema + ".judging_criteria"
}

type CriterionRepository struct {
	DB *gorm.DB
}

func NewCriterionRepository(db *gorm.DB) *CriterionRepository {
	return &CriterionRepository{DB: db}
}

func (r *CriterionRepository) GetAllCriteria() ([]*JudgingCriterion, error) {
	criteria := make([]*JudgingCriterion, 0)
	result := r.DB.Order("sort_order ASC").Order("id ASC").Find(&criteria)
	if result.Error != nil {
		return nil, result.Error
	}
	return criteria, nil
}

// GetMaxScores maps every criterion id to its max score.
func (r *CriterionRepository) GetMaxScores() (map[int]int, error) {
	criteria, err := r.GetAllCriteria()
	if err != nil {
		return nil, err
	}
	maxScores := make(map[int]int, len(criteria))
	for _, criterion := range criteria {
		maxScores[criterion.ID] = criterion.MaxScore
	}
	return maxScores, nil
}

func (r *CriterionRepository) GetCriterionById(criterionId int) (*JudgingCriterion, error) {
	var criterion JudgingCriterion
	result := r.DB.First(&criterion, criterionId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, app_error.NotFound("criterion %d", criterionId)
		}
		return nil, result.Error
	}
	return &criterion, nil
}

func (r *CriterionRepository) SaveCriterion(criterion *JudgingCriterion) (*JudgingCriterion, error) {
	result := r.DB.Save(criterion)
	if result.Error != nil {
		return nil, result.Error
	}
	return criterion, nil
}

// DeleteCriterion removes the criterion; scores referencing it cascade.
func (r *CriterionRepository) DeleteCriterion(criterionId int) error {
	return r.DB.Delete(&JudgingCriterion{}, criterionId).Error
}
