package usecases

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"helpdesk/internal/domain/accessrequest"
	"helpdesk/internal/domain/notification"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/goroutine"
	"helpdesk/internal/shared/logger"
)

type ApproveRequestCommand struct {
	RequestID uint
}

type ApproveRequestResult struct {
	RequestID      uint
	Email          string
	TokenExpiresAt time.Time
}

// ApproveRequestUseCase grants magic-link access. Approving ensures a
// customer account exists for the email (auto-approved, with an unusable
// random password placeholder), mints a long-lived token, and emails the
// login link. Approving an already-approved request is not an error: it
// simply re-mints the token and re-sends the link.
type ApproveRequestUseCase struct {
	requestRepo accessrequest.Repository
	userRepo    user.Repository
	notifier    notification.Notifier
	generateToken TokenGenerator
	logger      logger.Interface
	expiryYears int
	frontendURL string
}

func NewApproveRequestUseCase(
	requestRepo accessrequest.Repository,
	userRepo user.Repository,
	notifier notification.Notifier,
	generateToken TokenGenerator,
	logger logger.Interface,
	expiryYears int,
	frontendURL string,
) *ApproveRequestUseCase {
	if expiryYears <= 0 {
		expiryYears = 10
	}
	return &ApproveRequestUseCase{
		requestRepo:   requestRepo,
		userRepo:      userRepo,
		notifier:      notifier,
		generateToken: generateToken,
		logger:        logger,
		expiryYears:   expiryYears,
		frontendURL:   frontendURL,
	}
}

func (uc *ApproveRequestUseCase) Execute(ctx context.Context, cmd ApproveRequestCommand) (*ApproveRequestResult, error) {
	uc.logger.Infow("executing approve request use case", "request_id", cmd.RequestID)

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

	if request.Status().IsPending() {
		if err := request.Approve(); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	} else if !request.Status().IsApproved() {
		return nil, errors.NewConflictError(
			fmt.Sprintf("request cannot be approved in status %s", request.Status()))
	}

	if err := uc.ensureUser(ctx, request); err != nil {
		return nil, err
	}

	token, err := uc.generateToken()
	if err != nil {
		uc.logger.Errorw("failed to mint magic token", "request_id", request.ID(), "error", err)
		return nil, errors.NewInternalError("failed to mint magic token")
	}

	expiresAt := time.Now().AddDate(uc.expiryYears, 0, 0)
	if err := request.SetMagicToken(token, expiresAt); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.requestRepo.Update(ctx, request); err != nil {
		uc.logger.Errorw("failed to save approved request", "request_id", request.ID(), "error", err)
		return nil, err
	}

	uc.sendMagicLink(request, token)

	uc.logger.Infow("access request approved", "request_id", request.ID(), "email", request.Email())

	return &ApproveRequestResult{
		RequestID:      request.ID(),
		Email:          request.Email(),
		TokenExpiresAt: expiresAt,
	}, nil
}

// ensureUser creates the customer account for the request's email if none
// exists yet. Re-approval finds the existing account and leaves it alone.
func (uc *ApproveRequestUseCase) ensureUser(ctx context.Context, request *accessrequest.AccessRequest) error {
	existing, err := uc.userRepo.GetByEmail(ctx, request.Email())
	if err != nil {
		uc.logger.Errorw("failed to look up user", "email", request.Email(), "error", err)
		return err
	}
	if existing != nil {
		return nil
	}

	// unusable placeholder; these accounts only log in through magic links
	placeholder, err := uc.generateToken()
	if err != nil {
		uc.logger.Errorw("failed to generate password placeholder", "error", err)
		return errors.NewInternalError("failed to create user")
	}

	newUser, err := user.NewMagicLinkUser(request.Email(), placeholder, request.Name(), request.CompanyName())
	if err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		uc.logger.Errorw("failed to create user for approved request",
			"email", request.Email(), "error", err)
		return err
	}

	uc.logger.Infow("created user for approved access request",
		"user_id", newUser.ID(), "email", newUser.Email())
	return nil
}

func (uc *ApproveRequestUseCase) sendMagicLink(request *accessrequest.AccessRequest, token string) {
	data := notification.TemplateData{
		"name":     request.Name(),
		"loginURL": magicLoginURL(uc.frontendURL, token),
	}
	recipients := []string{request.Email()}
	requestID := request.ID()

	goroutine.SafeGo(uc.logger, "notify-magic-link", func() {
		sendCtx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		if err := uc.notifier.Send(sendCtx, notification.KindMagicLink, recipients, data); err != nil {
			uc.logger.Errorw("failed to send magic link", "request_id", requestID, "error", err)
		}
	})
}

func magicLoginURL(frontendURL, token string) string {
	return fmt.Sprintf("%s/magic-login?token=%s", frontendURL, url.QueryEscape(token))
}
