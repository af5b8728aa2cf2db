package service

import (
	"context"
	"khe/app_error"
	"khe/client"
	"khe/judging"
	"khe/metrics"
	"khe/repository"
	"strings"

	"gorm.io/gorm"
)

type ScoringService struct {
	db        *gorm.DB
	publisher client.EventPublisher
	listeners listeners
}

func NewScoringService(db *gorm.DB, publisher client.EventPublisher, scoreListeners ...ScoreListener) *ScoringService {
	return &ScoringService{db: db, publisher: publisher, listeners: scoreListeners}
}

// SubmitScore records a judge's rubric for a project. Resubmitting replaces
// the previous scores of that judge for that project.
func (s *ScoringService) SubmitScore(ctx context.Context, judgeId int, projectId int, scores []judging.ScoreInput) (*repository.Judgement, error) {
	var judgement *repository.Judgement
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := repository.NewUserRepository(tx).LockJudge(judgeId); err != nil {
			return err
		}
		if _, err := repository.NewProjectRepository(tx).GetProjectById(projectId); err != nil {
			return err
		}
		maxScores, err := repository.NewCriterionRepository(tx).GetMaxScores()
		if err != nil {
			return err
		}
		if err := judging.ValidateScores(scores, maxScores); err != nil {
			return err
		}
		judgements := repository.NewJudgementRepository(tx)
		judgement, err = judgements.UpsertJudgement(judgeId, projectId)
		if err != nil {
			return err
		}
		rows := make([]*repository.Score, 0, len(scores))
		for _, score := range scores {
			rows = append(rows, &repository.Score{CriterionID: score.CriterionID, Value: *score.Value})
		}
		return judgements.ReplaceScores(judgement, rows)
	})
	if err != nil {
		return nil, err
	}
	metrics.ScoresSubmittedCounter.Inc()
	publish(ctx, s.publisher, client.JudgingEvent{
		Type:       client.EventJudgementScored,
		JudgeID:    judgeId,
		ProjectIDs: []int{projectId},
	})
	s.listeners.notify()
	return judgement, nil
}

// SubmitComment stores the judge's comment and closes the judge's assignment
// for the project. A blank comment clears any previous one.
func (s *ScoringService) SubmitComment(ctx context.Context, judgeId int, projectId int, comment string) error {
	var stored *string
	if trimmed := strings.TrimSpace(comment); trimmed != "" {
		stored = &trimmed
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := repository.NewUserRepository(tx).LockJudge(judgeId); err != nil {
			return err
		}
		judgements := repository.NewJudgementRepository(tx)
		judgement, err := judgements.GetJudgement(judgeId, projectId)
		if err != nil {
			return err
		}
		if judgement == nil {
			return app_error.NotFound("judgement of judge %d for project %d", judgeId, projectId)
		}
		if err := judgements.SetComment(judgement.ID, stored); err != nil {
			return err
		}
		return repository.NewJudgeAssignmentRepository(tx).MarkCompleted(judgeId, projectId)
	})
	if err != nil {
		return err
	}
	metrics.JudgementsCompletedCounter.Inc()
	publish(ctx, s.publisher, client.JudgingEvent{
		Type:       client.EventJudgementCompleted,
		JudgeID:    judgeId,
		ProjectIDs: []int{projectId},
	})
	return nil
}
