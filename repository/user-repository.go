package repository

import (
	"errors"
	"khe/app_error"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleStaff Role = "staff"
	RoleJudge Role = "judge"
)

type User struct {
	ID    int    `gorm:"primaryKey"`
	Name  string `gorm:"not null;default:''"`
	Email string `gorm:"not null;default:''"`
	Role  Role   `gorm:"not null;default:'user'"`
	// ManualJudging is set once staff curate the judge's queue; automatic
	// assignment skips the judge while it is set.
	ManualJudging bool    `gorm:"not null;default:false"`
	JudgeCurve    float64 `gorm:"not null;default:0"`
	CreatedAt     time.Time

	JudgeAssignments []*JudgeAssignment `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
}

var judgeRoles = []Role{RoleJudge, RoleStaff}

func (u *User) CanJudge() bool {
	return u.Role == RoleJudge || u.Role == RoleStaff
}

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) GetUserById(userId int) (*User, error) {
	var user User
	result := r.DB.First(&user, userId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, app_error.NotFound("user %d", userId)
		}
		return nil, result.Error
	}
	return &user, nil
}

// LockJudge loads the judge row with FOR UPDATE. Every mutation of a judge's
// queue takes this lock first, which serializes them per judge. Users that
// may not judge are reported as not found.
func (r *UserRepository) LockJudge(userId int) (*User, error) {
	var user User
	result := r.DB.Clauses(clause.Locking{Strength: "UPDATE"}).First(&user, userId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, app_error.NotFound("judge %d", userId)
		}
		return nil, result.Error
	}
	if !user.CanJudge() {
		return nil, app_error.NotFound("judge %d", userId)
	}
	return &user, nil
}

func (r *UserRepository) SaveUser(user *User) (*User, error) {
	result := r.DB.Save(user)
	if result.Error != nil {
		return nil, result.Error
	}
	return user, nil
}

func (r *UserRepository) SetManualJudging(userId int, manual bool) error {
	return r.DB.Model(&User{}).Where("id = ?", userId).Update("manual_judging", manual).Error
}

func (r *UserRepository) ClearManualJudging() error {
	return r.DB.Model(&User{}).Where("manual_judging = ?", true).Update("manual_judging", false).Error
}

func (r *UserRepository) SetJudgeCurve(userId int, curve float64) error {
	result := r.DB.Model(&User{}).Where("id = ? AND role IN ?", userId, judgeRoles).Update("judge_curve", curve)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return app_error.NotFound("judge %d", userId)
	}
	return nil
}

// GetJudges returns staff and judge users with their pending assignments.
func (r *UserRepository) GetJudges() ([]*User, error) {
	defer observe("get_judges")()
	judges := make([]*User, 0)
	result := r.DB.
		Preload("JudgeAssignments", "status = ?", AssignmentStatusAssigned).
		Preload("JudgeAssignments.Project.Track").
		Where("role IN ?", judgeRoles).
		Order("name ASC").
		Find(&judges)
	if result.Error != nil {
		return nil, result.Error
	}
	return judges, nil
}
