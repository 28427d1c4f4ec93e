package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/accessrequest"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type RedeemMagicLinkCommand struct {
	Token string
}

type RedeemMagicLinkResult struct {
	Credential string
	UserID     uint
	Email      string
	Name       string
	Role       string
}

// RedeemMagicLinkUseCase exchanges a valid magic token for a session
// credential. Whether redemption consumes the token is a deployment policy:
// with singleUse enabled the request moves to used and the token is
// cleared, otherwise the token stays redeemable until it expires.
type RedeemMagicLinkUseCase struct {
	requestRepo accessrequest.Repository
	userRepo    user.Repository
	credentials CredentialIssuer
	logger      logger.Interface
	singleUse   bool
}

func NewRedeemMagicLinkUseCase(
	requestRepo accessrequest.Repository,
	userRepo user.Repository,
	credentials CredentialIssuer,
	logger logger.Interface,
	singleUse bool,
) *RedeemMagicLinkUseCase {
	return &RedeemMagicLinkUseCase{
		requestRepo: requestRepo,
		userRepo:    userRepo,
		credentials: credentials,
		logger:      logger,
		singleUse:   singleUse,
	}
}

func (uc *RedeemMagicLinkUseCase) Execute(ctx context.Context, cmd RedeemMagicLinkCommand) (*RedeemMagicLinkResult, error) {
	if len(cmd.Token) == 0 {
		return nil, errors.NewValidationError("token is required")
	}

	request, err := uc.requestRepo.GetByValidToken(ctx, cmd.Token, time.Now())
	if err != nil {
		uc.logger.Errorw("failed to look up magic token", "error", err)
		return nil, err
	}
	if request == nil {
		// expired and unknown tokens are indistinguishable on purpose
		return nil, errors.NewUnauthorizedError("invalid or expired login link")
	}

	account, err := uc.userRepo.GetByEmail(ctx, request.Email())
	if err != nil {
		uc.logger.Errorw("failed to resolve user for magic token",
			"request_id", request.ID(), "error", err)
		return nil, err
	}
	if account == nil {
		return nil, errors.NewNotFoundError("no account exists for this login link")
	}

	credential, err := uc.credentials.Generate(account.ID(), account.Email(), account.Name(), account.Role())
	if err != nil {
		uc.logger.Errorw("failed to issue credential", "user_id", account.ID(), "error", err)
		return nil, errors.NewInternalError("failed to issue credential")
	}

	if uc.singleUse {
		if err := request.MarkUsed(); err == nil {
			if err := uc.requestRepo.Update(ctx, request); err != nil {
				// the login already succeeded; losing the used marker only
				// leaves the token redeemable again
				uc.logger.Errorw("failed to mark request used", "request_id", request.ID(), "error", err)
			}
		}
	}

	uc.logger.Infow("magic link redeemed", "request_id", request.ID(), "user_id", account.ID())

	return &RedeemMagicLinkResult{
		Credential: credential,
		UserID:     account.ID(),
		Email:      account.Email(),
		Name:       account.Name(),
		Role:       account.Role().String(),
	}, nil
}
