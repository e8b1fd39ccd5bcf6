package scoring

import "math"

// Summary is the aggregate of a set of verdicts as it should be stored.
type Summary struct {
	Score         int
	Total         int
	Percentage    int
	Passed        bool
	PendingReview bool
}

// Percentage is round(score/total*100), or 0 for an empty total.
func Percentage(score, total int) int {
	if total <= 0 {
		return 0
	}
	p := int(math.Round(float64(score) / float64(total) * 100))
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// Summarize aggregates verdicts against a percentage threshold. While any
// verdict is pending, the stored percentage is 0 and the result cannot pass.
func Summarize(verdicts []Verdict, passingScore int) Summary {
	var sum Summary
	for _, v := range verdicts {
		sum.Total++
		if v.Correct() {
			sum.Score++
		}
		if v.Pending() {
			sum.PendingReview = true
		}
	}
	if sum.PendingReview {
		return sum
	}
	sum.Percentage = Percentage(sum.Score, sum.Total)
	sum.Passed = sum.Percentage >= passingScore
	return sum
}

// Recount aggregates verdicts as judged so far. Unjudged verdicts count as
// incorrect and the summary is always final.
func Recount(verdicts []Verdict, passingScore int) Summary {
	var sum Summary
	for _, v := range verdicts {
		sum.Total++
		if v.Correct() {
			sum.Score++
		}
	}
	sum.Percentage = Percentage(sum.Score, sum.Total)
	sum.Passed = sum.Percentage >= passingScore
	return sum
}
