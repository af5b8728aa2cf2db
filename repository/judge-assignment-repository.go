package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AssignmentStatus string

const (
	AssignmentStatusAssigned  AssignmentStatus = "assigned"
	AssignmentStatusCompleted AssignmentStatus = "completed"
	// reserved, nothing writes it yet
	AssignmentStatusSkipped AssignmentStatus = "skipped"
)

type JudgeAssignment struct {
	ID        int              `gorm:"primaryKey"`
	UserID    int              `gorm:"not null;uniqueIndex:idx_judge_assignments_pair"`
	ProjectID int              `gorm:"not null;uniqueIndex:idx_judge_assignments_pair;index"`
	Status    AssignmentStatus `gorm:"not null;default:'assigned'"`
	IsManual  bool             `gorm:"not null;default:false"`
	CreatedAt time.Time        `gorm:"not null"`

	Project *Project `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE;"`
}

type JudgeAssignmentRepository struct {
	DB *gorm.DB
}

func NewJudgeAssignmentRepository(db *gorm.DB) *JudgeAssignmentRepository {
	return &JudgeAssignmentRepository{DB: db}
}

var pairColumns = []clause.Column{{Name: "user_id"}, {Name: "project_id"}}

// GetPendingForJudge returns the judge's open assignment with the lowest
// table number, or nil if there is none.
func (r *JudgeAssignmentRepository) GetPendingForJudge(userId int) (*JudgeAssignment, error) {
	var assignment JudgeAssignment
	result := r.DB.
		Select("judge_assignments.*").
		Joins("JOIN "+Schema+".projects ON projects.id = judge_assignments.project_id").
		Where("judge_assignments.user_id = ? AND judge_assignments.status = ?", userId, AssignmentStatusAssigned).
		Order("projects.table_number ASC NULLS LAST").
		Order("judge_assignments.id ASC").
		First(&assignment)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &assignment, nil
}

func (r *JudgeAssignmentRepository) GetAssignment(userId int, projectId int) (*JudgeAssignment, error) {
	var assignment JudgeAssignment
	result := r.DB.Where("user_id = ? AND project_id = ?", userId, projectId).First(&assignment)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &assignment, nil
}

// GetAssignmentsForJudge lists the judge's queue, open work first ("assigned"
// sorts before "completed"), newest first.
func (r *JudgeAssignmentRepository) GetAssignmentsForJudge(userId int) ([]*JudgeAssignment, error) {
	assignments := make([]*JudgeAssignment, 0)
	result := r.DB.Preload("Project.Track").
		Where("user_id = ?", userId).
		Order("status ASC").
		Order("created_at DESC").
		Find(&assignments)
	if result.Error != nil {
		return nil, result.Error
	}
	return assignments, nil
}

// GetProjectIdsForJudge returns every project the judge was ever assigned, in any status.
func (r *JudgeAssignmentRepository) GetProjectIdsForJudge(userId int) ([]int, error) {
	projectIds := make([]int, 0)
	result := r.DB.Model(&JudgeAssignment{}).Where("user_id = ?", userId).Pluck("project_id", &projectIds)
	if result.Error != nil {
		return nil, result.Error
	}
	return projectIds, nil
}

func (r *JudgeAssignmentRepository) GetCompletedProjectIds(userId int, projectIds []int) ([]int, error) {
	completed := make([]int, 0)
	if len(projectIds) == 0 {
		return completed, nil
	}
	result := r.DB.Model(&JudgeAssignment{}).
		Where("user_id = ? AND project_id IN ? AND status = ?", userId, projectIds, AssignmentStatusCompleted).
		Pluck("project_id", &completed)
	if result.Error != nil {
		return nil, result.Error
	}
	return completed, nil
}

func (r *JudgeAssignmentRepository) CreateAssignments(assignments []*JudgeAssignment) error {
	if len(assignments) == 0 {
		return nil
	}
	return r.DB.CreateInBatches(assignments, len(assignments)).Error
}

// UpsertStatus writes status and manual flag for the (user, project) pair,
// creating the row when it does not exist yet.
func (r *JudgeAssignmentRepository) UpsertStatus(userId int, projectId int, status AssignmentStatus, manual bool) (*JudgeAssignment, error) {
	assignment := &JudgeAssignment{
		UserID:    userId,
		ProjectID: projectId,
		Status:    status,
		IsManual:  manual,
		CreatedAt: time.Now(),
	}
	result := r.DB.Clauses(clause.OnConflict{
		Columns:   pairColumns,
		DoUpdates: clause.AssignmentColumns([]string{"status", "is_manual"}),
	}).Create(assignment)
	if result.Error != nil {
		return nil, result.Error
	}
	return r.GetAssignment(userId, projectId)
}

// MarkCompleted moves the pair to completed, keeping the manual flag of an existing row.
func (r *JudgeAssignmentRepository) MarkCompleted(userId int, projectId int) error {
	assignment := &JudgeAssignment{
		UserID:    userId,
		ProjectID: projectId,
		Status:    AssignmentStatusCompleted,
		CreatedAt: time.Now(),
	}
	return r.DB.Clauses(clause.OnConflict{
		Columns:   pairColumns,
		DoUpdates: clause.AssignmentColumns([]string{"status"}),
	}).Create(assignment).Error
}

func (r *JudgeAssignmentRepository) DeleteAssignedForJudge(userId int) error {
	return r.DB.Where("user_id = ? AND status = ?", userId, AssignmentStatusAssigned).Delete(&JudgeAssignment{}).Error
}

func (r *JudgeAssignmentRepository) DeleteAll() error {
	return r.DB.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&JudgeAssignment{}).Error
}

func (r *JudgeAssignmentRepository) CountByStatus() (map[AssignmentStatus]int, error) {
	rows := make([]struct {
		Status AssignmentStatus
		Count  int
	}, 0)
	result := r.DB.Model(&JudgeAssignment{}).Select("status, COUNT(*) AS count").Group("status").Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}
	counts := make(map[AssignmentStatus]int, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
