package batch

import (
	"fmt"
	"sort"
)

// topQuestionLimit caps how many question keys a findings list reports.
const topQuestionLimit = 5

// QuestionCount is a question key with its frequency among accepted runs.
type QuestionCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// PairFinding summarizes one student-scenario pair across a cycle.
type PairFinding struct {
	Student    string `json:"student"`
	ScenarioID string `json:"scenario_id"`

	Total    int `json:"total"`
	Accepted int `json:"accepted"`
	Rejected int `json:"rejected"`
	Failed   int `json:"failed"`

	PassRate     float64         `json:"pass_rate"`
	TopQuestions []QuestionCount `json:"top_questions,omitempty"`
}

// Analysis is what a cycle discovered: which question combinations
// worked for which pairs, and which questions kept showing up in
// accepted runs overall.
type Analysis struct {
	Pairs        []PairFinding   `json:"pairs"`
	TopQuestions []QuestionCount `json:"top_questions,omitempty"`
}

// Analyze aggregates cycle results into per-pair findings and a global
// question-frequency ranking over accepted runs. Output ordering is
// deterministic for a given result set.
func Analyze(results []Result) Analysis {
	type pairKey struct{ student, scenario string }

	byPair := make(map[pairKey][]Result)
	var order []pairKey
	for _, res := range results {
		k := pairKey{res.Student, res.ScenarioID}
		if _, seen := byPair[k]; !seen {
			order = append(order, k)
		}
		byPair[k] = append(byPair[k], res)
	}
	sort.Slice(order, func(i, j int) bool {
		if order[i].student != order[j].student {
			return order[i].student < order[j].student
		}
		return order[i].scenario < order[j].scenario
	})

	var analysis Analysis
	globalCounts := make(map[string]int)

	for _, k := range order {
		pairResults := byPair[k]
		finding := PairFinding{Student: k.student, ScenarioID: k.scenario, Total: len(pairResults)}

		pairCounts := make(map[string]int)
		for _, res := range pairResults {
			switch res.Outcome {
			case OutcomeAccepted:
				finding.Accepted++
				for _, q := range res.QuestionKeys {
					pairCounts[q]++
					globalCounts[q]++
				}
			case OutcomeRejected:
				finding.Rejected++
			case OutcomeFailed:
				finding.Failed++
			}
		}
		finding.PassRate = float64(finding.Accepted) / float64(finding.Total)
		finding.TopQuestions = rankQuestions(pairCounts)
		analysis.Pairs = append(analysis.Pairs, finding)
	}

	analysis.TopQuestions = rankQuestions(globalCounts)
	return analysis
}

// rankQuestions sorts by count descending, key ascending on ties, and
// truncates to the report limit.
func rankQuestions(counts map[string]int) []QuestionCount {
	ranked := make([]QuestionCount, 0, len(counts))
	for k, n := range counts {
		ranked = append(ranked, QuestionCount{Key: k, Count: n})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Key < ranked[j].Key
	})
	if len(ranked) > topQuestionLimit {
		ranked = ranked[:topQuestionLimit]
	}
	return ranked
}

// Summary renders a short human-readable digest of the analysis.
func (a Analysis) Summary() string {
	out := ""
	for _, p := range a.Pairs {
		out += fmt.Sprintf("%s x %s: %d/%d accepted (%.0f%%)\n",
			p.Student, p.ScenarioID, p.Accepted, p.Total, p.PassRate*100)
	}
	for _, q := range a.TopQuestions {
		out += fmt.Sprintf("  %s appeared in %d accepted runs\n", q.Key, q.Count)
	}
	return out
}
