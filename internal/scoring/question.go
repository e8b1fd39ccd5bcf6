// Package scoring decides correctness of submitted answers and aggregates
// them into a result summary. It does no I/O.
package scoring

type QuestionType string

const (
	TypeChoice    QuestionType = "checkbox"
	TypeMatch     QuestionType = "match"
	TypeTextInput QuestionType = "text_input"
)

// Question is one of ChoiceQuestion, MatchQuestion or TextQuestion.
type Question interface {
	QuestionID() string
	Type() QuestionType
	isQuestion()
}

type Base struct {
	ID      string
	Text    string
	Explain string
}

func (b Base) QuestionID() string { return b.ID }

// OptionRef identifies an option by its owning question and its key.
type OptionRef struct {
	QuestionID string
	Key        string
}

type Option struct {
	Ref  OptionRef
	Text string
}

type ChoiceQuestion struct {
	Base
	Options     []Option
	CorrectKeys []string
}

// MatchQuestion pairs Prompts[i] with Answers[i].
type MatchQuestion struct {
	Base
	Prompts []string
	Answers []string
}

// TextQuestion has no stored answer and is always judged by a human.
type TextQuestion struct {
	Base
}

func (ChoiceQuestion) Type() QuestionType { return TypeChoice }
func (MatchQuestion) Type() QuestionType  { return TypeMatch }
func (TextQuestion) Type() QuestionType   { return TypeTextInput }

func (ChoiceQuestion) isQuestion() {}
func (MatchQuestion) isQuestion()  {}
func (TextQuestion) isQuestion()   {}

// OptionText resolves a key to its display text.
func (q ChoiceQuestion) OptionText(key string) (string, bool) {
	for _, o := range q.Options {
		if o.Ref.Key == key {
			return o.Text, true
		}
	}
	return "", false
}

// Submission holds the values submitted for one question: option keys for
// choice questions, ordered answers for match questions, and the free text
// as the single element for text questions.
type Submission struct {
	QuestionID string
	Values     []string
}

// OptionRefs scopes the submitted keys to the submission's question.
func (s Submission) OptionRefs() []OptionRef {
	refs := make([]OptionRef, 0, len(s.Values))
	for _, v := range s.Values {
		refs = append(refs, OptionRef{QuestionID: s.QuestionID, Key: v})
	}
	return refs
}
