package judging

import (
	"fmt"
	"khe/utils"
	"sort"
)

type ProjectTally struct {
	ProjectID      int
	Name           string
	Track          string
	TableNumber    string
	JudgementCount int
	TotalScore     int
}

type ProjectScore struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Track          string `json:"track"`
	TableNumber    string `json:"table_number"`
	JudgementCount int    `json:"judgement_count"`
	TotalScore     int    `json:"total_score"`
	AverageScore   string `json:"average_score"`

	average float64
}

// Leaderboard maps a track name to its projects, best average first.
type Leaderboard map[string][]*ProjectScore

func average(total int, count int) float64 {
	if count == 0 {
		return 0
	}
	return float64(total) / float64(count)
}

func FormatAverage(total int, count int) string {
	return fmt.Sprintf("%.2f", average(total, count))
}

func BuildLeaderboard(tallies []ProjectTally) Leaderboard {
	leaderboard := make(Leaderboard)
	for _, tally := range tallies {
		track := tally.Track
		if track == "" {
			track = DefaultTrackName
		}
		leaderboard[track] = append(leaderboard[track], &ProjectScore{
			ID:             tally.ProjectID,
			Name:           tally.Name,
			Track:          track,
			TableNumber:    tally.TableNumber,
			JudgementCount: tally.JudgementCount,
			TotalScore:     tally.TotalScore,
			AverageScore:   FormatAverage(tally.TotalScore, tally.JudgementCount),
			average:        average(tally.TotalScore, tally.JudgementCount),
		})
	}
	for _, standings := range leaderboard {
		sort.SliceStable(standings, func(i, j int) bool {
			a, b := standings[i], standings[j]
			if a.average != b.average {
				return a.average > b.average
			}
			if a.TotalScore != b.TotalScore {
				return a.TotalScore > b.TotalScore
			}
			return a.Name < b.Name
		})
	}
	return leaderboard
}

// Tracks returns the track names in alphabetical order.
func (l Leaderboard) Tracks() []string {
	tracks := utils.Keys(l)
	sort.Strings(tracks)
	return tracks
}

func (l Leaderboard) ProjectCount() int {
	count := 0
	for _, standings := range l {
		count += len(standings)
	}
	return count
}
