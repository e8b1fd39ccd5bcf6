package scoring

import (
	"strings"
)

type ReviewStatus string

const (
	ReviewAuto            ReviewStatus = "auto"
	ReviewPending         ReviewStatus = "pending"
	ReviewManualCorrect   ReviewStatus = "manual_correct"
	ReviewManualIncorrect ReviewStatus = "manual_incorrect"
)

// EmptySlot is what clients send for an unfilled match slot.
const EmptySlot = "—"

// Verdict is the outcome for one answer. IsCorrect is nil while the answer
// waits for manual review.
type Verdict struct {
	IsCorrect    *bool
	ReviewStatus ReviewStatus
}

func (v Verdict) Correct() bool { return v.IsCorrect != nil && *v.IsCorrect }

func (v Verdict) Pending() bool { return v.ReviewStatus == ReviewPending }

func auto(correct bool) Verdict {
	return Verdict{IsCorrect: &correct, ReviewStatus: ReviewAuto}
}

// Evaluate scores a single submission against its question.
func Evaluate(q Question, s Submission) Verdict {
	switch q := q.(type) {
	case ChoiceQuestion:
		return auto(evaluateChoice(q, s))
	case MatchQuestion:
		return auto(evaluateMatch(q, s))
	case TextQuestion:
		if hasText(s.Values) {
			return Verdict{ReviewStatus: ReviewPending}
		}
		return auto(false)
	default:
		return auto(false)
	}
}

// evaluateChoice compares key sets; order and repetition do not matter.
func evaluateChoice(q ChoiceQuestion, s Submission) bool {
	correct := make(map[string]struct{}, len(q.CorrectKeys))
	for _, k := range q.CorrectKeys {
		correct[k] = struct{}{}
	}
	if len(correct) == 0 {
		return false
	}

	chosen := make(map[string]struct{}, len(s.Values))
	for _, ref := range s.OptionRefs() {
		if ref.QuestionID != q.ID {
			return false
		}
		chosen[ref.Key] = struct{}{}
	}
	if len(chosen) != len(correct) {
		return false
	}
	for k := range correct {
		if _, ok := chosen[k]; !ok {
			return false
		}
	}
	return true
}

// evaluateMatch requires the same answers in the same order. Blank slots
// never match.
func evaluateMatch(q MatchQuestion, s Submission) bool {
	if len(q.Answers) == 0 || len(q.Answers) != len(s.Values) {
		return false
	}
	for i, want := range q.Answers {
		got := s.Values[i]
		if isBlank(got) || got != want {
			return false
		}
	}
	return true
}

func hasText(values []string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return true
		}
	}
	return false
}

func isBlank(v string) bool {
	v = strings.TrimSpace(v)
	return v == "" || v == EmptySlot
}
