package swap

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/skillswap/backend/domain"
	"github.com/skillswap/backend/repository"
)

// Decision is the recipient's answer to a pending swap request.
type Decision string

const (
	DecisionAccept Decision = "accept"
	DecisionReject Decision = "reject"
)

// Summary counts a user's swap requests by status, for the notification
// badge and the requests overview.
type Summary struct {
	Pending   int `json:"pending"`
	Accepted  int `json:"accepted"`
	Rejected  int `json:"rejected"`
	Completed int `json:"completed"`
}

type UseCase struct {
	swaps  repository.SwapRequestRepository
	users  repository.UserRepository
	logger *zap.Logger
}

func New(swaps repository.SwapRequestRepository, users repository.UserRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		swaps:  swaps,
		users:  users,
		logger: logger,
	}
}

// Propose creates a pending swap request. The offered skill must be in the
// proposer's offered set and the requested skill in the recipient's wanted
// set; the engine checks this even though the calling UI constrains choices.
func (uc *UseCase) Propose(ctx context.Context, fromID, toID, offeredSkill, requestedSkill, message string) (*domain.SwapRequest, error) {
	if fromID == "" || toID == "" || fromID == toID {
		return nil, domain.ErrInvalidPayload
	}

	from, err := uc.users.GetByID(ctx, fromID)
	if err != nil {
		return nil, err
	}
	to, err := uc.users.GetByID(ctx, toID)
	if err != nil {
		return nil, err
	}

	if !from.Offers(offeredSkill) || !to.Wants(requestedSkill) {
		return nil, domain.ErrInvalidSkillSelection
	}

	request := &domain.SwapRequest{
		FromUser:       fromID,
		ToUser:         toID,
		OfferedSkill:   offeredSkill,
		RequestedSkill: requestedSkill,
		Message:        message,
	}
	created, err := uc.swaps.Create(ctx, request)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("swap proposed",
		zap.String("swap_id", created.ID),
		zap.String("from", fromID),
		zap.String("to", toID))
	return created, nil
}

// Respond accepts or rejects a pending request. Only the recipient may
// respond, and only while the request is still pending.
func (uc *UseCase) Respond(ctx context.Context, actorID, requestID string, decision Decision) (*domain.SwapRequest, error) {
	request, err := uc.swaps.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request.ToUser != actorID {
		return nil, domain.ErrNotParticipant
	}

	var next domain.SwapStatus
	switch decision {
	case DecisionAccept:
		next = domain.StatusAccepted
	case DecisionReject:
		next = domain.StatusRejected
	default:
		return nil, domain.ErrInvalidPayload
	}

	if !request.Status.CanTransitionTo(next) {
		return nil, domain.ErrInvalidTransition
	}
	request.Status = next

	if err := uc.swaps.Update(ctx, request); err != nil {
		return nil, err
	}
	uc.logger.Info("swap responded",
		zap.String("swap_id", request.ID),
		zap.String("status", string(next)))
	return request, nil
}

// Cancel removes a pending request entirely. Only the proposer may cancel;
// this is a hard delete, not a status transition.
func (uc *UseCase) Cancel(ctx context.Context, actorID, requestID string) error {
	request, err := uc.swaps.GetByID(ctx, requestID)
	if err != nil {
		return err
	}
	if request.FromUser != actorID {
		return domain.ErrNotParticipant
	}
	if request.Status != domain.StatusPending {
		return domain.ErrInvalidTransition
	}
	if err := uc.swaps.Delete(ctx, requestID); err != nil {
		return err
	}
	uc.logger.Info("swap cancelled", zap.String("swap_id", requestID))
	return nil
}

// Complete marks an accepted request as completed and stamps completedAt.
// Either participant may trigger it. Completing does not itself create a
// review; that is the caller's follow-up.
func (uc *UseCase) Complete(ctx context.Context, actorID, requestID string) (*domain.SwapRequest, error) {
	request, err := uc.swaps.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if !request.Participant(actorID) {
		return nil, domain.ErrNotParticipant
	}
	if !request.Status.CanTransitionTo(domain.StatusCompleted) {
		return nil, domain.ErrInvalidTransition
	}

	now := time.Now().UTC()
	request.Status = domain.StatusCompleted
	request.CompletedAt = &now

	if err := uc.swaps.Update(ctx, request); err != nil {
		return nil, err
	}
	uc.logger.Info("swap completed", zap.String("swap_id", request.ID))
	return request, nil
}

// ListFor returns a user's requests in one direction.
func (uc *UseCase) ListFor(ctx context.Context, userID string, direction repository.Direction) ([]domain.SwapRequest, error) {
	if !direction.Valid() {
		return nil, domain.ErrInvalidPayload
	}
	return uc.swaps.ListByUser(ctx, userID, direction)
}

// SummaryFor counts every request the user is a party to, grouped by status.
func (uc *UseCase) SummaryFor(ctx context.Context, userID string) (*Summary, error) {
	requests, err := uc.swaps.List(ctx)
	if err != nil {
		return nil, err
	}

	var summary Summary
	for i := range requests {
		if !requests[i].Participant(userID) {
			continue
		}
		switch requests[i].Status {
		case domain.StatusPending:
			summary.Pending++
		case domain.StatusAccepted:
			summary.Accepted++
		case domain.StatusRejected:
			summary.Rejected++
		case domain.StatusCompleted:
			summary.Completed++
		}
	}
	return &summary, nil
}
