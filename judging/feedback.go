package judging

import (
	"fmt"
	"html/template"
	"sort"
	"strings"
)

const NoFeedbackMessage = "No feedback was recorded for this project."

type ScoreLine struct {
	Criterion string
	Order     int
	Value     int
	Max       int
}

type JudgementRecord struct {
	JudgementID int
	Comment     *string
	Scores      []ScoreLine
}

type CriterionScore struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Max   int    `json:"max"`
}

type JudgeFeedback struct {
	Label   string           `json:"label"`
	Scores  []CriterionScore `json:"scores"`
	Comment *string          `json:"comment"`
}

type ProjectFeedback struct {
	ProjectID   int             `json:"project_id"`
	ProjectName string          `json:"project_name"`
	Emails      []string        `json:"emails"`
	Feedback    []JudgeFeedback `json:"feedback"`
}

// CompileFeedback labels judgements "Judge 1", "Judge 2", ... in judgement id
// order so that no judge identity leaks into the digest.
func CompileFeedback(projectID int, projectName string, emails []string, judgements []JudgementRecord) *ProjectFeedback {
	records := make([]JudgementRecord, len(judgements))
	copy(records, judgements)
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].JudgementID < records[j].JudgementID
	})

	feedback := make([]JudgeFeedback, 0, len(records))
	for i, record := range records {
		lines := make([]ScoreLine, len(record.Scores))
		copy(lines, record.Scores)
		sort.SliceStable(lines, func(a, b int) bool {
			if lines[a].Order != lines[b].Order {
				return lines[a].Order < lines[b].Order
			}
			return lines[a].Criterion < lines[b].Criterion
		})
		scores := make([]CriterionScore, 0, len(lines))
		for _, line := range lines {
			scores = append(scores, CriterionScore{Name: line.Criterion, Value: line.Value, Max: line.Max})
		}
		comment := record.Comment
		if comment != nil && strings.TrimSpace(*comment) == "" {
			comment = nil
		}
		feedback = append(feedback, JudgeFeedback{
			Label:   fmt.Sprintf("Judge %d", i+1),
			Scores:  scores,
			Comment: comment,
		})
	}
	if emails == nil {
		emails = []string{}
	}
	return &ProjectFeedback{
		ProjectID:   projectID,
		ProjectName: projectName,
		Emails:      emails,
		Feedback:    feedback,
	}
}

func FeedbackSubject(p *ProjectFeedback) string {
	return fmt.Sprintf("Judging feedback for %s", p.ProjectName)
}

const textDivider = "----------------------------------------"

func RenderText(p *ProjectFeedback) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s team,\n\n", p.ProjectName)
	b.WriteString("Thank you for competing! Here is the feedback our judges recorded for your project.\n\n")
	if len(p.Feedback) == 0 {
		b.WriteString(NoFeedbackMessage + "\n")
		return b.String()
	}
	for i, judge := range p.Feedback {
		if i > 0 {
			b.WriteString(textDivider + "\n\n")
		}
		b.WriteString(judge.Label + "\n")
		for _, score := range judge.Scores {
			fmt.Fprintf(&b, "- %s: %d/%d\n", score.Name, score.Value, score.Max)
		}
		if judge.Comment != nil {
			fmt.Fprintf(&b, "\n%s\n", *judge.Comment)
		}
		b.WriteString("\n")
	}
	return b.String()
}

var htmlDigest = template.Must(template.New("feedback").Funcs(template.FuncMap{
	"deref": func(s *string) string { return *s },
}).Parse(
	`<p>Hi {{.ProjectName}} team,</p>
<p>Thank you for competing! Here is the feedback our judges recorded for your project.</p>
{{- if not .Feedback}}
<p>{{.Empty}}</p>
{{- end}}
{{- range $i, $judge := .Feedback}}
{{- if $i}}
<hr/>
{{- end}}
<h3>{{$judge.Label}}</h3>
<ul>
{{- range $judge.Scores}}
<li><strong>{{.Name}}:</strong> {{.Value}}/{{.Max}}</li>
{{- end}}
</ul>
{{- if $judge.Comment}}
<p>{{deref $judge.Comment}}</p>
{{- end}}
{{- end}}
`))

func RenderHTML(p *ProjectFeedback) (string, error) {
	var b strings.Builder
	err := htmlDigest.Execute(&b, struct {
		*ProjectFeedback
		Empty string
	}{p, NoFeedbackMessage})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}
