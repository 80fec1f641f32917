// Package scoring turns raw questionnaire answers into subscale scores,
// levels, criterion flags and a composite verdict. Every function here is a
// pure transformation of its arguments.
package scoring

import "github.com/mindcheck/screener/internal/domain"

// Sum adds the answers for ids. Missing ids contribute 0 and values are not
// range checked.
func Sum(answers domain.OrdinalAnswers, ids []int) int {
	total := 0
	for _, id := range ids {
		total += answers[id]
	}
	return total
}

// SumGroups returns Sum for each named group.
func SumGroups(answers domain.OrdinalAnswers, groups map[string][]int) map[string]int {
	out := make(map[string]int, len(groups))
	for name, ids := range groups {
		out[name] = Sum(answers, ids)
	}
	return out
}

// CountYes counts ids answered yes. Anything else, including a missing
// answer, counts as no.
func CountYes(answers domain.ImpairmentAnswers, ids []int) int {
	n := 0
	for _, id := range ids {
		if answers[id] == domain.Yes {
			n++
		}
	}
	return n
}
