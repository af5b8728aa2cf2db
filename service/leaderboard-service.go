package service

import (
	"context"
	"errors"
	"khe/client"
	"khe/judging"
	"khe/metrics"
	"khe/repository"
	"time"

	"gorm.io/gorm"
)

// AnnouncementTopCount is how many projects per track a leaderboard
// announcement lists.
const AnnouncementTopCount = 3

var ErrAnnouncementsDisabled = errors.New("leaderboard announcements are not configured")

type LeaderboardAnnouncer interface {
	AnnounceLeaderboard(leaderboard judging.Leaderboard, top int) error
}

type LeaderboardService struct {
	db        *gorm.DB
	publisher client.EventPublisher
	announcer LeaderboardAnnouncer
	listeners listeners
}

func NewLeaderboardService(db *gorm.DB, publisher client.EventPublisher, announcer LeaderboardAnnouncer, scoreListeners ...ScoreListener) *LeaderboardService {
	return &LeaderboardService{db: db, publisher: publisher, announcer: announcer, listeners: scoreListeners}
}

// GetAllProjectScores groups every project by track, best average first.
func (s *LeaderboardService) GetAllProjectScores(ctx context.Context) (judging.Leaderboard, error) {
	start := time.Now()
	tallies, err := repository.NewProjectRepository(s.db.WithContext(ctx)).GetProjectTallies()
	if err != nil {
		return nil, err
	}
	leaderboard := judging.BuildLeaderboard(tallies)
	metrics.LeaderboardDuration.Observe(time.Since(start).Seconds())
	return leaderboard, nil
}

// ClearAllScores wipes every judgement, score and assignment, which also puts
// every judge back into automatic assignment.
func (s *LeaderboardService) ClearAllScores(ctx context.Context) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := repository.NewJudgementRepository(tx).DeleteAll(); err != nil {
			return err
		}
		if err := repository.NewJudgeAssignmentRepository(tx).DeleteAll(); err != nil {
			return err
		}
		return repository.NewUserRepository(tx).ClearManualJudging()
	})
	if err != nil {
		return err
	}
	publish(ctx, s.publisher, client.JudgingEvent{Type: client.EventScoresCleared})
	s.listeners.notify()
	return nil
}

func (s *LeaderboardService) AnnounceLeaderboard(ctx context.Context) error {
	if s.announcer == nil {
		return ErrAnnouncementsDisabled
	}
	leaderboard, err := s.GetAllProjectScores(ctx)
	if err != nil {
		return err
	}
	return s.announcer.AnnounceLeaderboard(leaderboard, AnnouncementTopCount)
}

// GetAssignmentProgress counts assignments per status across all judges.
func (s *LeaderboardService) GetAssignmentProgress(ctx context.Context) (map[repository.AssignmentStatus]int, error) {
	return repository.NewJudgeAssignmentRepository(s.db.WithContext(ctx)).CountByStatus()
}
