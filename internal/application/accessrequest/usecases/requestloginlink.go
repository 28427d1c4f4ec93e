package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/accessrequest"
	"helpdesk/internal/domain/notification"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/goroutine"
	"helpdesk/internal/shared/logger"
)

type RequestLoginLinkCommand struct {
	Email string
}

type RequestLoginLinkResult struct {
	RequestID      uint
	TokenExpiresAt time.Time
}

// RequestLoginLinkUseCase is the recurring-login path: holders of an
// approved access request get a fresh short-lived token by email, replacing
// whatever token was stored before.
type RequestLoginLinkUseCase struct {
	requestRepo   accessrequest.Repository
	notifier      notification.Notifier
	generateToken TokenGenerator
	logger        logger.Interface
	expiryMinutes int
	frontendURL   string
}

func NewRequestLoginLinkUseCase(
	requestRepo accessrequest.Repository,
	notifier notification.Notifier,
	generateToken TokenGenerator,
	logger logger.Interface,
	expiryMinutes int,
	frontendURL string,
) *RequestLoginLinkUseCase {
	if expiryMinutes <= 0 {
		expiryMinutes = 10
	}
	return &RequestLoginLinkUseCase{
		requestRepo:   requestRepo,
		notifier:      notifier,
		generateToken: generateToken,
		logger:        logger,
		expiryMinutes: expiryMinutes,
		frontendURL:   frontendURL,
	}
}

func (uc *RequestLoginLinkUseCase) Execute(ctx context.Context, cmd RequestLoginLinkCommand) (*RequestLoginLinkResult, error) {
	email, err := user.NormalizeEmail(cmd.Email)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	uc.logger.Infow("executing request login link use case", "email", email)

	request, err := uc.requestRepo.GetByEmail(ctx, email)
	if err != nil {
		uc.logger.Errorw("failed to look up access request", "email", email, "error", err)
		return nil, err
	}
	if request == nil {
		return nil, errors.NewNotFoundError("no access request for this email")
	}
	if !request.Status().IsApproved() {
		return nil, errors.NewForbiddenError("access request is not approved")
	}

	token, err := uc.generateToken()
	if err != nil {
		uc.logger.Errorw("failed to mint login token", "request_id", request.ID(), "error", err)
		return nil, errors.NewInternalError("failed to mint login token")
	}

	expiresAt := time.Now().Add(time.Duration(uc.expiryMinutes) * time.Minute)
	if err := request.SetMagicToken(token, expiresAt); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.requestRepo.Update(ctx, request); err != nil {
		uc.logger.Errorw("failed to save login token", "request_id", request.ID(), "error", err)
		return nil, err
	}

	data := notification.TemplateData{
		"name":     request.Name(),
		"loginURL": magicLoginURL(uc.frontendURL, token),
	}
	recipients := []string{request.Email()}
	requestID := request.ID()
	goroutine.SafeGo(uc.logger, "notify-login-link", func() {
		sendCtx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		if err := uc.notifier.Send(sendCtx, notification.KindMagicLink, recipients, data); err != nil {
			uc.logger.Errorw("failed to send login link", "request_id", requestID, "error", err)
		}
	})

	return &RequestLoginLinkResult{
		RequestID:      request.ID(),
		TokenExpiresAt: expiresAt,
	}, nil
}
