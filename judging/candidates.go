package judging

import "sort"

// CandidatePoolSize caps how many untouched projects are ranked per call.
// Fairness is local to this window once a roster grows beyond it.
const CandidatePoolSize = 50

type CandidateLoad struct {
	ProjectID         int
	JudgementCount    int
	ActiveAssignments int
}

// RankCandidates orders projects by fewest judgements, then fewest in-flight
// assignments, then project id.
func RankCandidates(candidates []CandidateLoad) []CandidateLoad {
	ranked := make([]CandidateLoad, len(candidates))
	copy(ranked, candidates)
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.JudgementCount != b.JudgementCount {
			return a.JudgementCount < b.JudgementCount
		}
		if a.ActiveAssignments != b.ActiveAssignments {
			return a.ActiveAssignments < b.ActiveAssignments
		}
		return a.ProjectID < b.ProjectID
	})
	return ranked
}

func PickCandidate(candidates []CandidateLoad) (CandidateLoad, bool) {
	if len(candidates) == 0 {
		return CandidateLoad{}, false
	}
	return RankCandidates(candidates)[0], true
}
