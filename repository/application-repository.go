package repository

import (
	"khe/app_error"

	"gorm.io/gorm"
)

type Application struct {
	ID        int    `gorm:"primaryKey"`
	UserID    *int   `gorm:"index"`
	FirstName string `gorm:"not null;default:''"`
	LastName  string `gorm:"not null;default:''"`
	Email     string `gorm:"not null;default:''"`
	School    string `gorm:"not null;default:''"`
	CheckedIn bool   `gorm:"not null;default:false"`
	ProjectID *int   `gorm:"index"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL;"`
}

// ContactEmail prefers the address given on the application over the account email.
func (a *Application) ContactEmail() string {
	if a.Email != "" {
		return a.Email
	}
	if a.User != nil {
		return a.User.Email
	}
	return ""
}

type ApplicationRepository struct {
	DB *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{DB: db}
}

func (r *ApplicationRepository) SaveApplication(application *Application) (*Application, error) {
	result := r.DB.Save(application)
	if result.Error != nil {
		return nil, result.Error
	}
	return application, nil
}

// GetUnassignedCheckedIn returns checked-in applicants that are not on a project yet.
func (r *ApplicationRepository) GetUnassignedCheckedIn() ([]*Application, error) {
	applications := make([]*Application, 0)
	result := r.DB.Preload("User").
		Where("checked_in = ? AND project_id IS NULL", true).
		Order("first_name ASC").
		Find(&applications)
	if result.Error != nil {
		return nil, result.Error
	}
	return applications, nil
}

func (r *ApplicationRepository) SetProject(applicationId int, projectId *int) error {
	result := r.DB.Model(&Application{}).Where("id = ?", applicationId).Update("project_id", projectId)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return app_error.NotFound("application %d", applicationId)
	}
	return nil
}
