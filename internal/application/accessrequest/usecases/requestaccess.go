package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/accessrequest"
	"helpdesk/internal/domain/notification"
	"helpdesk/internal/domain/user"
	uservo "helpdesk/internal/domain/user/valueobjects"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/goroutine"
	"helpdesk/internal/shared/logger"
)

// notifyTimeout bounds background notification sends.
const notifyTimeout = 30 * time.Second

type RequestAccessCommand struct {
	Email       string
	Name        string
	CompanyName *string
}

type RequestAccessResult struct {
	RequestID uint
	Status    string
}

// RequestAccessUseCase files a new access request. At most one live
// (pending or approved) request may exist per email; a second attempt while
// one is live is a Conflict. Admins are notified best-effort.
type RequestAccessUseCase struct {
	requestRepo accessrequest.Repository
	userRepo    user.Repository
	notifier    notification.Notifier
	logger      logger.Interface
}

func NewRequestAccessUseCase(
	requestRepo accessrequest.Repository,
	userRepo user.Repository,
	notifier notification.Notifier,
	logger logger.Interface,
) *RequestAccessUseCase {
	return &RequestAccessUseCase{
		requestRepo: requestRepo,
		userRepo:    userRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

func (uc *RequestAccessUseCase) Execute(ctx context.Context, cmd RequestAccessCommand) (*RequestAccessResult, error) {
	uc.logger.Infow("executing request access use case", "email", cmd.Email)

	request, err := accessrequest.NewAccessRequest(cmd.Email, cmd.Name, cmd.CompanyName)
	if err != nil {
		uc.logger.Errorw("invalid access request", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	existing, err := uc.requestRepo.GetByEmail(ctx, request.Email())
	if err != nil {
		uc.logger.Errorw("failed to look up existing request", "email", request.Email(), "error", err)
		return nil, err
	}
	if existing != nil && existing.Status().IsLive() {
		return nil, errors.NewConflictError("an access request for this email is already in progress")
	}

	if err := uc.requestRepo.Create(ctx, request); err != nil {
		uc.logger.Errorw("failed to save access request", "email", request.Email(), "error", err)
		return nil, err
	}

	uc.notifyAdmins(ctx, request)

	uc.logger.Infow("access request created", "request_id", request.ID(), "email", request.Email())

	return &RequestAccessResult{
		RequestID: request.ID(),
		Status:    request.Status().String(),
	}, nil
}

func (uc *RequestAccessUseCase) notifyAdmins(ctx context.Context, request *accessrequest.AccessRequest) {
	adminEmails, err := uc.userRepo.GetEmailsByRoles(ctx, []uservo.Role{uservo.RoleAdmin})
	if err != nil {
		uc.logger.Errorw("failed to list admin emails", "error", err)
		return
	}
	if len(adminEmails) == 0 {
		return
	}

	data := notification.TemplateData{
		"name":  request.Name(),
		"email": request.Email(),
	}
	if request.CompanyName() != nil {
		data["companyName"] = *request.CompanyName()
	}
	requestID := request.ID()

	goroutine.SafeGo(uc.logger, "notify-admin-new-access-request", func() {
		sendCtx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		if err := uc.notifier.Send(sendCtx, notification.KindAdminNewAccessRequest, adminEmails, data); err != nil {
			uc.logger.Errorw("failed to send new access request notification", "request_id", requestID, "error", err)
		}
	})
}
