package service

import (
	"context"
	"errors"

	"github.com/quizdesk/quizdesk/internal/apperror"
	"github.com/quizdesk/quizdesk/internal/dto"
	"github.com/quizdesk/quizdesk/internal/session"
	"github.com/rs/zerolog/log"
)

// AttemptService runs the test-taker's side of an attempt: it gates
// delivery and submission on an attempt recorded in the caller's session.
type AttemptService interface {
	Start(ctx context.Context, store session.Store, testID string) (*dto.AttemptStartedDTO, error)
	Abandon(ctx context.Context, store session.Store, testID string) error
	Questions(ctx context.Context, store session.Store, testID string) (*dto.DeliveredTestDTO, error)
	Submit(ctx context.Context, store session.Store, testID string, req dto.SubmitTestDTO) (*dto.SubmissionResultDTO, error)
}

type attemptService struct {
	tracker     *session.Tracker
	tests       UserTestService
	delivery    TestDeliveryService
	submissions TestSubmissionService
}

func NewAttemptService(
	tracker *session.Tracker,
	tests UserTestService,
	delivery TestDeliveryService,
	submissions TestSubmissionService,
) AttemptService {
	return &attemptService{
		tracker:     tracker,
		tests:       tests,
		delivery:    delivery,
		submissions: submissions,
	}
}

// Start resets the clock of any earlier attempt at the same test.
func (s *attemptService) Start(ctx context.Context, store session.Store, testID string) (*dto.AttemptStartedDTO, error) {
	test, err := s.tests.GetActive(ctx, testID)
	if err != nil {
		return nil, err
	}
	started, err := s.tracker.Start(store, testID)
	if err != nil {
		return nil, err
	}
	log.Info().Str("testID", testID).Time("startedAt", started).Msg("Attempt started")
	return &dto.AttemptStartedDTO{TestID: testID, StartedAt: started, DurationMinutes: test.DurationMinutes}, nil
}

func (s *attemptService) Abandon(ctx context.Context, store session.Store, testID string) error {
	if _, err := s.tracker.Require(store, testID); err != nil {
		return err
	}
	return s.tracker.End(store, testID)
}

func (s *attemptService) Questions(ctx context.Context, store session.Store, testID string) (*dto.DeliveredTestDTO, error) {
	started, err := s.tracker.Require(store, testID)
	if err != nil {
		return nil, err
	}
	delivered, err := s.delivery.PrepareTest(ctx, testID)
	if err != nil {
		return nil, err
	}
	delivered.StartedAt = &started
	return delivered, nil
}

// Submit ends the attempt only when the result was stored. An expired
// attempt is ended too, since it can never be submitted again.
func (s *attemptService) Submit(ctx context.Context, store session.Store, testID string, req dto.SubmitTestDTO) (*dto.SubmissionResultDTO, error) {
	started, err := s.tracker.Require(store, testID)
	if err != nil {
		return nil, err
	}
	res, err := s.submissions.SubmitResult(ctx, SubmitCommand{
		TestID:    testID,
		FIO:       req.FIO,
		Answers:   req.Answers,
		StartedAt: started,
	})
	if err != nil {
		if errors.Is(err, apperror.ErrTimeExpired) {
			if endErr := s.tracker.End(store, testID); endErr != nil {
				log.Warn().Err(endErr).Str("testID", testID).Msg("Failed to clear expired attempt")
			}
		}
		return nil, err
	}
	if err := s.tracker.End(store, testID); err != nil {
		// The result is stored; a stale entry only costs the user a restart.
		log.Warn().Err(err).Str("testID", testID).Uint("resultID", res.ResultID).Msg("Failed to end attempt after submission")
	}
	return res, nil
}
