package service

import (
	"context"
	"khe/client"
	"khe/judging"
	"khe/metrics"
	"khe/repository"
	"khe/utils"
	"log"
	"sync"
	"sync/atomic"

	"gorm.io/gorm"
)

// DispatchReport counts the outcome of a feedback mailing.
type DispatchReport struct {
	Sent   int `json:"sent"`
	Failed int `json:"failed"`
}

func (r *DispatchReport) add(other DispatchReport) {
	r.Sent += other.Sent
	r.Failed += other.Failed
}

type FeedbackService struct {
	db     *gorm.DB
	sender client.EmailSender
}

func NewFeedbackService(db *gorm.DB, sender client.EmailSender) *FeedbackService {
	return &FeedbackService{db: db, sender: sender}
}

// GetProjectsWithFeedback compiles the anonymised judge feedback of one
// project, or of every project when projectId is nil.
func (s *FeedbackService) GetProjectsWithFeedback(ctx context.Context, projectId *int) ([]*judging.ProjectFeedback, error) {
	projects, err := repository.NewProjectRepository(s.db.WithContext(ctx)).GetProjectsForFeedback(projectId)
	if err != nil {
		return nil, err
	}
	feedback := make([]*judging.ProjectFeedback, 0, len(projects))
	for _, project := range projects {
		feedback = append(feedback, compileProjectFeedback(project))
	}
	return feedback, nil
}

func compileProjectFeedback(project *repository.Project) *judging.ProjectFeedback {
	emails := utils.Filter(utils.Map(project.Members, (*repository.Application).ContactEmail), func(email string) bool {
		return email != ""
	})
	records := make([]judging.JudgementRecord, 0, len(project.Judgements))
	for _, judgement := range project.Judgements {
		lines := make([]judging.ScoreLine, 0, len(judgement.Scores))
		for _, score := range judgement.Scores {
			if score.Criterion == nil {
				continue
			}
			lines = append(lines, judging.ScoreLine{
				Criterion: score.Criterion.Name,
				Order:     score.Criterion.Order,
				Value:     score.Value,
				Max:       score.Criterion.MaxScore,
			})
		}
		records = append(records, judging.JudgementRecord{
			JudgementID: judgement.ID,
			Comment:     judgement.Comment,
			Scores:      lines,
		})
	}
	return judging.CompileFeedback(project.ID, project.Name, emails, records)
}

// SendFeedbackEmailToProject mails the digest to every member at once. A
// failed address is logged and counted without stopping the others.
func (s *FeedbackService) SendFeedbackEmailToProject(ctx context.Context, feedback *judging.ProjectFeedback) DispatchReport {
	if feedback == nil || len(feedback.Emails) == 0 {
		return DispatchReport{}
	}
	subject := judging.FeedbackSubject(feedback)
	text := judging.RenderText(feedback)
	html, err := judging.RenderHTML(feedback)
	if err != nil {
		log.Printf("failed to render html feedback for project %d, sending text only: %v", feedback.ProjectID, err)
		html = ""
	}

	var sent, failed atomic.Int64
	wg := sync.WaitGroup{}
	for _, email := range feedback.Emails {
		wg.Add(1)
		go func(to string) {
			defer wg.Done()
			if err := s.sender.Send(ctx, to, subject, text, html); err != nil {
				log.Printf("failed to send feedback for project %d to %s: %v", feedback.ProjectID, to, err)
				metrics.FeedbackEmailCounter.WithLabelValues("failed").Inc()
				failed.Add(1)
				return
			}
			metrics.FeedbackEmailCounter.WithLabelValues("sent").Inc()
			sent.Add(1)
		}(email)
	}
	wg.Wait()
	return DispatchReport{Sent: int(sent.Load()), Failed: int(failed.Load())}
}

// SendAllFeedback mails every project its digest, one project after another.
func (s *FeedbackService) SendAllFeedback(ctx context.Context) (DispatchReport, error) {
	report := DispatchReport{}
	feedback, err := s.GetProjectsWithFeedback(ctx, nil)
	if err != nil {
		return report, err
	}
	for _, project := range feedback {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		report.add(s.SendFeedbackEmailToProject(ctx, project))
	}
	return report, nil
}
