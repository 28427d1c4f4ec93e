package usecases

import (
	"context"

	"helpdesk/internal/domain/accessrequest"
	"helpdesk/internal/domain/notification"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/goroutine"
	"helpdesk/internal/shared/logger"
)

type RejectRequestCommand struct {
	RequestID uint
}

type RejectRequestResult struct {
	RequestID uint
	Status    string
}

type RejectRequestUseCase struct {
	requestRepo accessrequest.Repository
	notifier    notification.Notifier
	logger      logger.Interface
}

func NewRejectRequestUseCase(
	requestRepo accessrequest.Repository,
	notifier notification.Notifier,
	logger logger.Interface,
) *RejectRequestUseCase {
	return &RejectRequestUseCase{
		requestRepo: requestRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

func (uc *RejectRequestUseCase) Execute(ctx context.Context, cmd RejectRequestCommand) (*RejectRequestResult, error) {
	uc.logger.Infow("executing reject request use case", "request_id", cmd.RequestID)

	if cmd.RequestID == 0 {
		return nil, errors.NewValidationError("request ID is required")
	}

	request, err := uc.requestRepo.GetByID(ctx, cmd.RequestID)
	if err != nil {
		uc.logger.Errorw("failed to get access request", "request_id", cmd.RequestID, "error", err)
		return nil, err
	}
	if request == nil {
		return nil, errors.NewNotFoundError("access request not found")
	}

	if err := request.Reject(); err != nil {
		return nil, errors.NewConflictError(err.Error())
	}

	if err := uc.requestRepo.Update(ctx, request); err != nil {
		uc.logger.Errorw("failed to save rejected request", "request_id", request.ID(), "error", err)
		return nil, err
	}

	data := notification.TemplateData{"name": request.Name()}
	recipients := []string{request.Email()}
	requestID := request.ID()
	goroutine.SafeGo(uc.logger, "notify-access-request-rejected", func() {
		sendCtx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		if err := uc.notifier.Send(sendCtx, notification.KindAccessRequestRejected, recipients, data); err != nil {
			uc.logger.Errorw("failed to send rejection notification", "request_id", requestID, "error", err)
		}
	})

	uc.logger.Infow("access request rejected", "request_id", request.ID(), "email", request.Email())

	return &RejectRequestResult{
		RequestID: request.ID(),
		Status:    request.Status().String(),
	}, nil
}
