package service

import (
	"testing"
	"time"

	"github.com/quizdesk/quizdesk/internal/apperror"
	"github.com/quizdesk/quizdesk/internal/dto"
	"github.com/quizdesk/quizdesk/internal/model"
	"github.com/quizdesk/quizdesk/internal/scoring"
	"github.com/quizdesk/quizdesk/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func itemFor(t *testing.T, p *dto.ProtocolDTO, questionID string) dto.ProtocolItemDTO {
	t.Helper()
	for _, it := range p.Protocol {
		if it.QuestionID == questionID {
			return it
		}
	}
	t.Fatalf("no protocol item for question %s", questionID)
	return dto.ProtocolItemDTO{}
}

func TestBuildProtocolRendersEveryType(t *testing.T) {
	f := newFixture(t)
	test, choice, text := safetyTest(t, f.db)
	match := testutil.SeedMatch(t, f.db, test.ID, "Match", []string{"A", "B", "C"}, []string{"x", "y", "z"})

	res := f.submit(t, test.ID, "Ivanov I.I.", answer(choice, "c"), answer(match, "x", "—"), answer(text, ""))
	p, err := f.protocols.BuildProtocol(f.ctx, res.ResultID)
	require.NoError(t, err)
	require.Len(t, p.Protocol, 3)
	assert.Equal(t, "Fire safety", p.Summary.TestName)
	assert.Equal(t, 3, p.Summary.Total)

	c := itemFor(t, p, choice.ID)
	assert.Equal(t, []string{"Water"}, c.Chosen)
	assert.Equal(t, []string{"CO2", "Powder"}, c.Correct)
	assert.Equal(t, choice.Explain, c.Explanation)
	require.NotNil(t, c.IsCorrect)
	assert.False(t, *c.IsCorrect)

	m := itemFor(t, p, match.ID)
	assert.Equal(t, []string{"A", "B", "C"}, m.MatchPrompts)
	assert.Equal(t, []string{"x", scoring.EmptySlot, scoring.EmptySlot}, m.Chosen)
	assert.Equal(t, []string{"x", "y", "z"}, m.Correct)

	tx := itemFor(t, p, text.ID)
	assert.Equal(t, []string{scoring.EmptySlot}, tx.Chosen)
	assert.Equal(t, []string{ManualReviewSentinel}, tx.Correct)
}

func TestBuildProtocolEmptyChoice(t *testing.T) {
	f := newFixture(t)
	test, choice, _ := safetyTest(t, f.db)

	res := f.submit(t, test.ID, "Nobody", answer(choice))
	p, err := f.protocols.BuildProtocol(f.ctx, res.ResultID)
	require.NoError(t, err)
	assert.Equal(t, []string{scoring.EmptySlot}, itemFor(t, p, choice.ID).Chosen)
}

func TestBuildProtocolNotFound(t *testing.T) {
	f := newFixture(t)
	_, err := f.protocols.BuildProtocol(f.ctx, 12345)
	assert.True(t, apperror.IsNotFound(err))
}

func TestFindLastPassedProtocol(t *testing.T) {
	f := newFixture(t)
	test, choice, _ := safetyTest(t, f.db)

	p, err := f.protocols.FindLastPassedProtocol(f.ctx, test.ID, "Ivanov I.I.")
	require.NoError(t, err)
	assert.Nil(t, p)

	f.submit(t, test.ID, "Ivanov I.I.", answer(choice, "a", "b"))
	f.now = f.now.Add(time.Hour)
	latest := f.submit(t, test.ID, "Ivanov I.I.", answer(choice, "b", "a"))
	f.now = f.now.Add(time.Hour)
	f.submit(t, test.ID, "Ivanov I.I.", answer(choice, "a"))
	f.submit(t, test.ID, "Petrov P.P.", answer(choice, "a", "b"))

	before, err := f.results.CountByStatus(f.ctx, "")
	require.NoError(t, err)

	p, err = f.protocols.FindLastPassedProtocol(f.ctx, test.ID, "Ivanov I.I.")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, latest.ResultID, p.Summary.ResultID)
	assert.True(t, p.Summary.Passed)
	assert.Equal(t, model.ResultStatusCompleted, p.Summary.Status)

	after, err := f.results.CountByStatus(f.ctx, "")
	require.NoError(t, err)
	assert.Equal(t, before, after)
}
