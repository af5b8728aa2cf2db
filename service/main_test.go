package service

import (
	"context"
	"errors"
	"fmt"
	"khe/client"
	"khe/repository"
	"log"
	"sync"
	"testing"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"

	"github.com/ory/dockertest/v3"
	"github.com/stretchr/testify/require"
)

var db *gorm.DB

func TestMain(m *testing.M) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Fatalf("Could not construct pool: %s", err)
	}

	err = pool.Client.Ping()
	if err != nil {
		log.Fatalf("Could not connect to Docker: %s", err)
	}

	resource, err := pool.Run("postgres", "17.2-alpine", []string{"POSTGRES_USER=postgres", "POSTGRES_PASSWORD=postgres", "DATABASE_NAME=postgres"})
	if err != nil {
		log.Fatalf("Could not start resource: %s", err)
	}
	resource.Expire(600) // Tell docker to hard kill the container in 10 minutes
	sqlInfo := fmt.Sprintf(
		"host=localhost port=%s user=postgres password=postgres dbname=postgres sslmode=disable search_path=%s",
		resource.GetPort("5432/tcp"), repository.Schema)

	// the container might not accept connections yet
	if err := pool.Retry(func() error {
		var err error
		db, err = gorm.Open(postgres.Open(sqlInfo), &gorm.Config{
			NamingStrategy: schema.NamingStrategy{
				TablePrefix:   repository.Schema + ".",
				SingularTable: false,
			},
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if err != nil {
			return err
		}
		return repository.AutoMigrate(db)
	}); err != nil {
		log.Fatalf("Could not connect to database: %s", err)
	}
	// tests bring their own catalog
	TearDown()

	defer func() {
		if err := pool.Purge(resource); err != nil {
			log.Fatalf("Could not purge resource: %s", err)
		}
	}()
	m.Run()
}

func TearDown() {
	db.Exec("DELETE FROM khe.scores")
	db.Exec("DELETE FROM khe.judgements")
	db.Exec("DELETE FROM khe.judge_assignments")
	db.Exec("DELETE FROM khe.applications")
	db.Exec("DELETE FROM khe.projects")
	db.Exec("DELETE FROM khe.judging_criteria")
	db.Exec("DELETE FROM khe.tracks")
	db.Exec("DELETE FROM khe.users")
}

func newJudge(t *testing.T, name string) *repository.User {
	t.Helper()
	user, err := repository.NewUserRepository(db).SaveUser(&repository.User{
		Name:  name,
		Email: name + "@khe.io",
		Role:  repository.RoleJudge,
	})
	require.NoError(t, err)
	return user
}

func newTrack(t *testing.T, name string) *repository.Track {
	t.Helper()
	track, err := repository.NewTrackRepository(db).SaveTrack(&repository.Track{Name: name})
	require.NoError(t, err)
	return track
}

func newProject(t *testing.T, name string, table string, track *repository.Track) *repository.Project {
	t.Helper()
	project := &repository.Project{Name: name, CreatedAt: time.Now()}
	if table != "" {
		project.TableNumber = &table
	}
	if track != nil {
		project.TrackID = &track.ID
		project.LegacyTrack = track.Name
	}
	project, err := repository.NewProjectRepository(db).SaveProject(project)
	require.NoError(t, err)
	return project
}

func newCriterion(t *testing.T, name string, order int, maxScore int) *repository.JudgingCriterion {
	t.Helper()
	criterion, err := repository.NewCriterionRepository(db).SaveCriterion(&repository.JudgingCriterion{
		Slug:     Slugify(name),
		Name:     name,
		Order:    order,
		MaxScore: maxScore,
	})
	require.NoError(t, err)
	return criterion
}

func newMember(t *testing.T, project *repository.Project, email string, user *repository.User) *repository.Application {
	t.Helper()
	application := &repository.Application{
		FirstName: "Member",
		Email:     email,
		CheckedIn: true,
		ProjectID: &project.ID,
	}
	if user != nil {
		application.UserID = &user.ID
	}
	application, err := repository.NewApplicationRepository(db).SaveApplication(application)
	require.NoError(t, err)
	return application
}

func newAssignment(t *testing.T, judge *repository.User, project *repository.Project, status repository.AssignmentStatus, manual bool) {
	t.Helper()
	_, err := repository.NewJudgeAssignmentRepository(db).UpsertStatus(judge.ID, project.ID, status, manual)
	require.NoError(t, err)
}

func assignmentsOf(t *testing.T, judge *repository.User) []*repository.JudgeAssignment {
	t.Helper()
	assignments, err := repository.NewJudgeAssignmentRepository(db).GetAssignmentsForJudge(judge.ID)
	require.NoError(t, err)
	return assignments
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []client.JudgingEvent
}

func (p *recordingPublisher) Publish(ctx context.Context, event client.JudgingEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) types() []client.JudgingEventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	types := make([]client.JudgingEventType, 0, len(p.events))
	for _, event := range p.events {
		types = append(types, event.Type)
	}
	return types
}

type sentEmail struct {
	to      string
	subject string
	text    string
	html    string
}

type fakeSender struct {
	mu     sync.Mutex
	sent   []sentEmail
	failTo map[string]bool
}

func (s *fakeSender) Send(ctx context.Context, to string, subject string, text string, html string) error {
	if s.failTo[to] {
		return errors.New("mailbox unavailable")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, sentEmail{to: to, subject: subject, text: text, html: html})
	return nil
}

func (s *fakeSender) recipients() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	recipients := make([]string, 0, len(s.sent))
	for _, email := range s.sent {
		recipients = append(recipients, email.to)
	}
	return recipients
}

type countingListener struct {
	mu    sync.Mutex
	count int
}

func (l *countingListener) ScoresChanged() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.count++
}

func (l *countingListener) calls() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.count
}

func newJudgement(t *testing.T, judge *repository.User, project *repository.Project, values map[*repository.JudgingCriterion]int) *repository.Judgement {
	t.Helper()
	judgements := repository.NewJudgementRepository(db)
	judgement, err := judgements.UpsertJudgement(judge.ID, project.ID)
	require.NoError(t, err)
	scores := make([]*repository.Score, 0, len(values))
	for criterion, value := range values {
		scores = append(scores, &repository.Score{CriterionID: criterion.ID, Value: value})
	}
	require.NoError(t, judgements.ReplaceScores(judgement, scores))
	return judgement
}
