package service

import (
	"khe/app_error"
	"khe/judging"
	"khe/repository"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"
)

type ProjectService struct {
	projectRepository     *repository.ProjectRepository
	trackRepository       *repository.TrackRepository
	applicationRepository *repository.ApplicationRepository
}

func NewProjectService(db *gorm.DB) *ProjectService {
	return &ProjectService{
		projectRepository:     repository.NewProjectRepository(db),
		trackRepository:       repository.NewTrackRepository(db),
		applicationRepository: repository.NewApplicationRepository(db),
	}
}

// GetAllProjects lists projects with members and track, or nothing if the
// store cannot be read.
func (s *ProjectService) GetAllProjects() []*repository.Project {
	projects, err := s.projectRepository.GetAllProjects()
	if err != nil {
		log.Printf("failed to load projects: %v", err)
		return []*repository.Project{}
	}
	return projects
}

func (s *ProjectService) GetAllProjectsWithTables() []*repository.Project {
	projects, err := s.projectRepository.GetProjectsWithTables()
	if err != nil {
		log.Printf("failed to load projects with tables: %v", err)
		return []*repository.Project{}
	}
	return projects
}

func (s *ProjectService) GetUnassignedApplications() []*repository.Application {
	applications, err := s.applicationRepository.GetUnassignedCheckedIn()
	if err != nil {
		log.Printf("failed to load unassigned applications: %v", err)
		return []*repository.Application{}
	}
	return applications
}

func (s *ProjectService) GetProjectById(projectId int) (*repository.Project, error) {
	return s.projectRepository.GetProjectById(projectId, "Track", "Members.User")
}

type ProjectInput struct {
	Name        string  `json:"name" binding:"required"`
	TrackID     *int    `json:"track_id"`
	TableNumber *string `json:"table_number"`
}

func (s *ProjectService) CreateProject(input ProjectInput) (*repository.Project, error) {
	project := &repository.Project{CreatedAt: time.Now()}
	if err := s.applyInput(project, input); err != nil {
		return nil, err
	}
	return s.projectRepository.SaveProject(project)
}

func (s *ProjectService) UpdateProject(projectId int, input ProjectInput) (*repository.Project, error) {
	project, err := s.projectRepository.GetProjectById(projectId)
	if err != nil {
		return nil, err
	}
	if err := s.applyInput(project, input); err != nil {
		return nil, err
	}
	return s.projectRepository.SaveProject(project)
}

// applyInput copies input onto project. The legacy track column mirrors the
// linked track's name so older readers still see a track.
func (s *ProjectService) applyInput(project *repository.Project, input ProjectInput) error {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return app_error.Invalid("project name is required")
	}
	project.Name = name
	project.Track = nil
	project.TrackID = nil
	project.LegacyTrack = judging.DefaultTrackName
	if input.TrackID != nil {
		track, err := s.trackRepository.GetTrackById(*input.TrackID)
		if err != nil {
			return err
		}
		project.TrackID = &track.ID
		project.LegacyTrack = track.Name
	}
	project.TableNumber = nil
	if input.TableNumber != nil {
		if table := strings.TrimSpace(*input.TableNumber); table != "" {
			project.TableNumber = &table
		}
	}
	return nil
}

func (s *ProjectService) DeleteProject(projectId int) error {
	return s.projectRepository.DeleteProject(projectId)
}

func (s *ProjectService) AssignParticipant(applicationId int, projectId int) error {
	if _, err := s.projectRepository.GetProjectById(projectId); err != nil {
		return err
	}
	return s.applicationRepository.SetProject(applicationId, &projectId)
}

func (s *ProjectService) RemoveParticipant(applicationId int) error {
	return s.applicationRepository.SetProject(applicationId, nil)
}
