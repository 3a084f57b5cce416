package usecases

import (
	"context"
	"time"

	"mangedesk/internal/domain/ticket"
	vo "mangedesk/internal/domain/ticket/valueobjects"
	"mangedesk/internal/domain/user"
	"mangedesk/internal/shared/errors"
	"mangedesk/internal/shared/logger"
)

// PhotoInput references a blob already written to the file store.
type PhotoInput struct {
	Path         string
	OriginalName string
}

type ChangeStatusCommand struct {
	TicketID  uint
	Identity  user.Identity
	NewStatus string
	Note      string
	Photos    []PhotoInput
}

type ChangeStatusResult struct {
	TicketID  uint
	Status    string
	HistoryID uint
	UpdatedAt time.Time
}

// ChangeStatusUseCase moves a ticket to a new status and appends the audit
// entry. The status write and the history append run in one transaction:
// neither is ever visible without the other.
type ChangeStatusUseCase struct {
	ticketRepo  ticket.Repository
	historyRepo ticket.HistoryRepository
	txManager   TransactionRunner
	logger      logger.Interface

	notifier StatusNotifier
	userRepo user.Repository
}

func NewChangeStatusUseCase(
	ticketRepo ticket.Repository,
	historyRepo ticket.HistoryRepository,
	txManager TransactionRunner,
	logger logger.Interface,
) *ChangeStatusUseCase {
	return &ChangeStatusUseCase{
		ticketRepo:  ticketRepo,
		historyRepo: historyRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// WithNotifier enables a best-effort email to the requester after a status
// change commits. A failed delivery is logged and never fails the change.
func (uc *ChangeStatusUseCase) WithNotifier(notifier StatusNotifier, userRepo user.Repository) *ChangeStatusUseCase {
	uc.notifier = notifier
	uc.userRepo = userRepo
	return uc
}

func (uc *ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error) {
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	newStatus, err := vo.NewTicketStatus(cmd.NewStatus)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	var result *ChangeStatusResult
	var requesterID *uint
	var title string

	txErr := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := uc.ticketRepo.FindByID(txCtx, cmd.TicketID)
		if err != nil {
			return err
		}

		if !t.CanBeViewedBy(cmd.Identity) {
			return errors.NewForbiddenError("you do not have access to this ticket")
		}

		entry, err := ticket.NewStatusHistoryEntry(
			t.ID(),
			newStatus,
			cmd.Note,
			uc.actorID(cmd.Identity),
		)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}

		for _, photo := range cmd.Photos {
			p, err := ticket.NewStatusPhoto(photo.Path, photo.OriginalName)
			if err != nil {
				return errors.NewValidationError(err.Error())
			}
			if err := entry.AttachPhoto(p); err != nil {
				return errors.NewValidationError(err.Error())
			}
		}

		if err := t.ChangeStatus(newStatus); err != nil {
			return errors.NewValidationError(err.Error())
		}

		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return err
		}

		if err := uc.historyRepo.Append(txCtx, entry); err != nil {
			return err
		}

		requesterID = t.RequesterID()
		title = t.Title()
		result = &ChangeStatusResult{
			TicketID:  t.ID(),
			Status:    t.Status().String(),
			HistoryID: entry.ID(),
			UpdatedAt: t.UpdatedAt(),
		}
		return nil
	})
	if txErr != nil {
		uc.logger.Errorw("failed to change ticket status",
			"ticket_id", cmd.TicketID,
			"new_status", cmd.NewStatus,
			"error", txErr)
		return nil, txErr
	}

	uc.logger.Infow("ticket status changed",
		"ticket_id", result.TicketID,
		"status", result.Status,
		"history_id", result.HistoryID)

	if uc.notifier != nil && requesterID != nil {
		uc.notifyRequester(ctx, *requesterID, result, title, cmd.Note)
	}

	return result, nil
}

func (uc *ChangeStatusUseCase) notifyRequester(ctx context.Context, requesterID uint, result *ChangeStatusResult, title, note string) {
	requester, err := uc.userRepo.FindByID(ctx, requesterID)
	if err != nil {
		uc.logger.Warnw("failed to load requester for notification",
			"ticket_id", result.TicketID,
			"requester_id", requesterID,
			"error", err)
		return
	}

	if err := uc.notifier.SendTicketStatusEmail(requester.Email(), result.TicketID, title, result.Status, note); err != nil {
		uc.logger.Warnw("failed to send status notification",
			"ticket_id", result.TicketID,
			"requester_id", requesterID,
			"error", err)
	}
}

func (uc *ChangeStatusUseCase) actorID(identity user.Identity) *uint {
	if identity.IsAnonymous() {
		return nil
	}
	id := identity.UserID
	return &id
}
