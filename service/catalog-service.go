package service

import (
	"khe/app_error"
	"khe/repository"
	"log"
	"regexp"
	"strings"

	"gorm.io/gorm"
)

// DefaultMaxScore applies to criteria created without a positive max score.
const DefaultMaxScore = 5

type CatalogService struct {
	trackRepository     *repository.TrackRepository
	criterionRepository *repository.CriterionRepository
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{
		trackRepository:     repository.NewTrackRepository(db),
		criterionRepository: repository.NewCriterionRepository(db),
	}
}

// GetAllTracks never fails; a broken store yields an empty list.
func (s *CatalogService) GetAllTracks() []*repository.Track {
	tracks, err := s.trackRepository.GetAllTracks()
	if err != nil {
		log.Printf("failed to load tracks: %v", err)
		return []*repository.Track{}
	}
	return tracks
}

func (s *CatalogService) CreateTrack(name string, description *string) (*repository.Track, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, app_error.Invalid("track name is required")
	}
	if description != nil && strings.TrimSpace(*description) == "" {
		description = nil
	}
	return s.trackRepository.SaveTrack(&repository.Track{Name: name, Description: description})
}

func (s *CatalogService) DeleteTrack(trackId int) error {
	return s.trackRepository.DeleteTrack(trackId)
}

// GetAllCriteria never fails; a broken store yields an empty rubric.
func (s *CatalogService) GetAllCriteria() []*repository.JudgingCriterion {
	criteria, err := s.criterionRepository.GetAllCriteria()
	if err != nil {
		log.Printf("failed to load judging criteria: %v", err)
		return []*repository.JudgingCriterion{}
	}
	return criteria
}

type CriterionInput struct {
	Name     string `json:"name" binding:"required"`
	MaxScore int    `json:"max_score"`
	Order    int    `json:"order"`
	Optional bool   `json:"optional"`
}

func (s *CatalogService) CreateCriterion(input CriterionInput) (*repository.JudgingCriterion, error) {
	criterion, err := criterionFromInput(input)
	if err != nil {
		return nil, err
	}
	return s.criterionRepository.SaveCriterion(criterion)
}

func (s *CatalogService) UpdateCriterion(criterionId int, input CriterionInput) (*repository.JudgingCriterion, error) {
	existing, err := s.criterionRepository.GetCriterionById(criterionId)
	if err != nil {
		return nil, err
	}
	criterion, err := criterionFromInput(input)
	if err != nil {
		return nil, err
	}
	criterion.ID = existing.ID
	return s.criterionRepository.SaveCriterion(criterion)
}

func (s *CatalogService) DeleteCriterion(criterionId int) error {
	return s.criterionRepository.DeleteCriterion(criterionId)
}

func criterionFromInput(input CriterionInput) (*repository.JudgingCriterion, error) {
	name := strings.TrimSpace(input.Name)
	slug := Slugify(name)
	if slug == "" {
		return nil, app_error.Invalid("criterion name %q has no usable characters", input.Name)
	}
	maxScore := input.MaxScore
	if maxScore <= 0 {
		maxScore = DefaultMaxScore
	}
	return &repository.JudgingCriterion{
		Slug:     slug,
		Name:     name,
		Order:    input.Order,
		MaxScore: maxScore,
		Optional: input.Optional,
	}, nil
}

var nonSlugChars = regexp.MustCompile(`[^a-z0-9_-]`)

// Slugify lowercases name, turns spaces into dashes and drops everything else
// that is not a word character or a dash.
func Slugify(name string) string {
	slug := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
	return nonSlugChars.ReplaceAllString(slug, "")
}
