package service

import (
	"context"
	"khe/app_error"
	"khe/client"
	"khe/judging"
	"khe/metrics"
	"khe/repository"
	"khe/utils"
	"strings"
	"time"

	"gorm.io/gorm"
)

type AssignmentService struct {
	db        *gorm.DB
	publisher client.EventPublisher
}

func NewAssignmentService(db *gorm.DB, publisher client.EventPublisher) *AssignmentService {
	return &AssignmentService{db: db, publisher: publisher}
}

// AssignNextProject returns the judge's open assignment or creates one for the
// least judged project the judge has never touched. A nil assignment with a
// nil error means there is nothing left to judge.
func (s *AssignmentService) AssignNextProject(ctx context.Context, judgeId int) (*repository.JudgeAssignment, error) {
	var assignment *repository.JudgeAssignment
	created := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		judge, err := repository.NewUserRepository(tx).LockJudge(judgeId)
		if err != nil {
			return err
		}
		assignments := repository.NewJudgeAssignmentRepository(tx)
		pending, err := assignments.GetPendingForJudge(judgeId)
		if err != nil {
			return err
		}
		if pending != nil {
			assignment = pending
			return nil
		}
		if judge.ManualJudging {
			return nil
		}
		touched, err := assignments.GetProjectIdsForJudge(judgeId)
		if err != nil {
			return err
		}
		candidates, err := repository.NewProjectRepository(tx).GetCandidateLoads(touched, judging.CandidatePoolSize)
		if err != nil {
			return err
		}
		candidate, ok := judging.PickCandidate(candidates)
		if !ok {
			return nil
		}
		next := &repository.JudgeAssignment{
			UserID:    judgeId,
			ProjectID: candidate.ProjectID,
			Status:    repository.AssignmentStatusAssigned,
			IsManual:  false,
			CreatedAt: time.Now(),
		}
		if err := assignments.CreateAssignments([]*repository.JudgeAssignment{next}); err != nil {
			return err
		}
		assignment = next
		created = true
		return nil
	})
	if err != nil {
		return nil, err
	}
	if assignment == nil {
		metrics.NoProjectAvailableCounter.Inc()
		return nil, nil
	}
	if created {
		metrics.AssignmentsCreatedCounter.WithLabelValues("auto").Inc()
		publish(ctx, s.publisher, client.JudgingEvent{
			Type:       client.EventAssignmentCreated,
			JudgeID:    judgeId,
			ProjectIDs: []int{assignment.ProjectID},
		})
	}
	return assignment, nil
}

// AssignJudgeToTable lets a judge pick the project at a table. Finished work
// is returned as is and never reopened.
func (s *AssignmentService) AssignJudgeToTable(ctx context.Context, judgeId int, tableNumber string) (*repository.JudgeAssignment, error) {
	tableNumber = strings.TrimSpace(tableNumber)
	if tableNumber == "" {
		return nil, app_error.Invalid("table number is required")
	}
	var assignment *repository.JudgeAssignment
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := repository.NewUserRepository(tx).LockJudge(judgeId); err != nil {
			return err
		}
		project, err := repository.NewProjectRepository(tx).GetProjectByTableNumber(tableNumber)
		if err != nil {
			return err
		}
		assignments := repository.NewJudgeAssignmentRepository(tx)
		existing, err := assignments.GetAssignment(judgeId, project.ID)
		if err != nil {
			return err
		}
		if existing != nil && existing.Status == repository.AssignmentStatusCompleted {
			assignment = existing
			return nil
		}
		assignment, err = assignments.UpsertStatus(judgeId, project.ID, repository.AssignmentStatusAssigned, false)
		return err
	})
	if err != nil {
		return nil, err
	}
	if assignment.Status == repository.AssignmentStatusAssigned {
		metrics.AssignmentsCreatedCounter.WithLabelValues("table").Inc()
		publish(ctx, s.publisher, client.JudgingEvent{
			Type:       client.EventAssignmentCreated,
			JudgeID:    judgeId,
			ProjectIDs: []int{assignment.ProjectID},
		})
	}
	return assignment, nil
}

// AssignJudgeToTeams replaces the judge's open queue with the projects at the
// given tables, e.g. "1, 3-5". Projects the judge already completed are left
// out. Once any manual row exists the judge leaves automatic assignment.
func (s *AssignmentService) AssignJudgeToTeams(ctx context.Context, judgeId int, tableRangeSpec string) ([]*repository.JudgeAssignment, error) {
	tableNumbers := judging.ParseTableNumbers(tableRangeSpec)
	created := make([]*repository.JudgeAssignment, 0)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		users := repository.NewUserRepository(tx)
		if _, err := users.LockJudge(judgeId); err != nil {
			return err
		}
		projects, err := repository.NewProjectRepository(tx).GetProjectsByTableNumbers(tableNumbers)
		if err != nil {
			return err
		}
		assignments := repository.NewJudgeAssignmentRepository(tx)
		if err := assignments.DeleteAssignedForJudge(judgeId); err != nil {
			return err
		}
		projectIds := utils.Map(projects, func(p *repository.Project) int { return p.ID })
		completedIds, err := assignments.GetCompletedProjectIds(judgeId, projectIds)
		if err != nil {
			return err
		}
		now := time.Now()
		for _, projectId := range projectIds {
			if utils.Contains(completedIds, projectId) {
				continue
			}
			created = append(created, &repository.JudgeAssignment{
				UserID:    judgeId,
				ProjectID: projectId,
				Status:    repository.AssignmentStatusAssigned,
				IsManual:  true,
				CreatedAt: now,
			})
		}
		if err := assignments.CreateAssignments(created); err != nil {
			return err
		}
		if len(created) > 0 {
			return users.SetManualJudging(judgeId, true)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	metrics.AssignmentsCreatedCounter.WithLabelValues("manual").Add(float64(len(created)))
	publish(ctx, s.publisher, client.JudgingEvent{
		Type:       client.EventAssignmentsManual,
		JudgeID:    judgeId,
		ProjectIDs: utils.Map(created, func(a *repository.JudgeAssignment) int { return a.ProjectID }),
	})
	return created, nil
}

func (s *AssignmentService) GetJudgeAssignments(ctx context.Context, judgeId int) ([]*repository.JudgeAssignment, error) {
	return repository.NewJudgeAssignmentRepository(s.db.WithContext(ctx)).GetAssignmentsForJudge(judgeId)
}

// GetProjectForJudging returns the project with its track and the rubric in display order.
func (s *AssignmentService) GetProjectForJudging(ctx context.Context, projectId int) (*repository.Project, []*repository.JudgingCriterion, error) {
	db := s.db.WithContext(ctx)
	project, err := repository.NewProjectRepository(db).GetProjectById(projectId, "Track")
	if err != nil {
		return nil, nil, err
	}
	criteria, err := repository.NewCriterionRepository(db).GetAllCriteria()
	if err != nil {
		return nil, nil, err
	}
	return project, criteria, nil
}
