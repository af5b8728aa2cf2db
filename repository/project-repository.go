package repository

import (
	"errors"
	"khe/app_error"
	"khe/judging"
	"time"

	"gorm.io/gorm"
)

type Project struct {
	ID      int    `gorm:"primaryKey"`
	Name    string `gorm:"not null"`
	TrackID *int   `gorm:"index"`
	// LegacyTrack is the free-text track column from before tracks were
	// their own table. It is only read when no Track is linked.
	LegacyTrack string    `gorm:"column:track;not null;default:''"`
	TableNumber *string   `gorm:"index"`
	CreatedAt   time.Time `gorm:"not null"`

	Track      *Track         `gorm:"foreignKey:TrackID;constraint:OnDelete:SET NULL;"`
	Members    []*Application `gorm:"foreignKey:ProjectID;constraint:OnDelete:SET NULL;"`
	Judgements []*Judgement   `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE;"`
}

func (p *Project) TrackRef() judging.TrackRef {
	if p.Track != nil {
		return judging.LinkedTrack(p.Track.Name)
	}
	return judging.LegacyTrack(p.LegacyTrack)
}

func (p *Project) TrackName() string {
	return judging.ResolveTrack(p.TrackRef())
}

func (p *Project) Table() string {
	if p.TableNumber == nil {
		return ""
	}
	return *p.TableNumber
}

type ProjectRepository struct {
	DB *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{DB: db}
}

func (r *ProjectRepository) GetProjectById(projectId int, preloads ...string) (*Project, error) {
	var project Project
	query := r.DB
	for _, preload := range preloads {
		query = query.Preload(preload)
	}
	result := query.First(&project, projectId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, app_error.NotFound("project %d", projectId)
		}
		return nil, result.Error
	}
	return &project, nil
}

func (r *ProjectRepository) GetAllProjects() ([]*Project, error) {
	projects := make([]*Project, 0)
	result := r.DB.Preload("Track").Preload("Members.User").Order("name ASC").Find(&projects)
	if result.Error != nil {
		return nil, result.Error
	}
	return projects, nil
}

func (r *ProjectRepository) GetProjectsWithTables() ([]*Project, error) {
	projects := make([]*Project, 0)
	result := r.DB.Where("table_number IS NOT NULL").Order("table_number ASC").Find(&projects)
	if result.Error != nil {
		return nil, result.Error
	}
	return projects, nil
}

func (r *ProjectRepository) GetProjectByTableNumber(tableNumber string) (*Project, error) {
	var project Project
	result := r.DB.Where("table_number = ?", tableNumber).Order("id ASC").First(&project)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, app_error.NotFound("project at table %q", tableNumber)
		}
		return nil, result.Error
	}
	return &project, nil
}

func (r *ProjectRepository) GetProjectsByTableNumbers(tableNumbers []string) ([]*Project, error) {
	projects := make([]*Project, 0)
	if len(tableNumbers) == 0 {
		return projects, nil
	}
	result := r.DB.Where("table_number IN ?", tableNumbers).Order("id ASC").Find(&projects)
	if result.Error != nil {
		return nil, result.Error
	}
	return projects, nil
}

func (r *ProjectRepository) SaveProject(project *Project) (*Project, error) {
	result := r.DB.Save(project)
	if result.Error != nil {
		return nil, result.Error
	}
	return project, nil
}

func (r *ProjectRepository) DeleteProject(projectId int) error {
	return r.DB.Delete(&Project{}, projectId).Error
}

// GetCandidateLoads returns up to limit projects outside excluded, ordered by
// id, together with their judgement and in-flight assignment counts.
func (r *ProjectRepository) GetCandidateLoads(excluded []int, limit int) ([]judging.CandidateLoad, error) {
	defer observe("candidate_loads")()
	loads := make([]judging.CandidateLoad, 0)
	query := r.DB.Table(Schema+".projects AS projects").
		Select(`projects.id AS project_id,
			(SELECT COUNT(*) FROM `+Schema+`.judgements WHERE judgements.project_id = projects.id) AS judgement_count,
			(SELECT COUNT(*) FROM `+Schema+`.judge_assignments WHERE judge_assignments.project_id = projects.id AND judge_assignments.status = ?) AS active_assignments`,
			AssignmentStatusAssigned)
	if len(excluded) > 0 {
		query = query.Where("projects.id NOT IN ?", excluded)
	}
	result := query.Order("projects.id ASC").Limit(limit).Scan(&loads)
	if result.Error != nil {
		return nil, result.Error
	}
	return loads, nil
}

// GetProjectTallies sums every score of every project. Projects without
// judgements are included with zero counts.
func (r *ProjectRepository) GetProjectTallies() ([]judging.ProjectTally, error) {
	defer observe("project_tallies")()
	projects := make([]*Project, 0)
	if err := r.DB.Preload("Track").Order("id ASC").Find(&projects).Error; err != nil {
		return nil, err
	}
	sums := make([]struct {
		ProjectID      int
		JudgementCount int
		TotalScore     int
	}, 0)
	err := r.DB.Raw(`
		SELECT
			judgements.project_id,
			COUNT(DISTINCT judgements.id) AS judgement_count,
			COALESCE(SUM(scores.value), 0) AS total_score
		FROM ` + Schema + `.judgements AS judgements
		LEFT JOIN ` + Schema + `.scores AS scores ON scores.judgement_id = judgements.id
		GROUP BY judgements.project_id
	`).Scan(&sums).Error
	if err != nil {
		return nil, err
	}
	sumsByProject := make(map[int]int, len(sums))
	for i, sum := range sums {
		sumsByProject[sum.ProjectID] = i
	}
	tallies := make([]judging.ProjectTally, 0, len(projects))
	for _, project := range projects {
		tally := judging.ProjectTally{
			ProjectID:   project.ID,
			Name:        project.Name,
			Track:       project.TrackName(),
			TableNumber: project.Table(),
		}
		if i, ok := sumsByProject[project.ID]; ok {
			tally.JudgementCount = sums[i].JudgementCount
			tally.TotalScore = sums[i].TotalScore
		}
		tallies = append(tallies, tally)
	}
	return tallies, nil
}

// GetProjectsForFeedback loads one project, or all when projectId is nil,
// with members and every judgement's scores and criteria.
func (r *ProjectRepository) GetProjectsForFeedback(projectId *int) ([]*Project, error) {
	defer observe("projects_for_feedback")()
	projects := make([]*Project, 0)
	query := r.DB.
		Preload("Members", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("Members.User").
		Preload("Judgements", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("Judgements.Scores.Criterion")
	if projectId != nil {
		query = query.Where("id = ?", *projectId)
	}
	result := query.Order("id ASC").Find(&projects)
	if result.Error != nil {
		return nil, result.Error
	}
	return projects, nil
}
