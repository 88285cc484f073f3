package account

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/academia-accounts/internal/audit"
	"github.com/BruksfildServices01/academia-accounts/internal/credentials"
	domain "github.com/BruksfildServices01/academia-accounts/internal/domain/account"
	"github.com/BruksfildServices01/academia-accounts/internal/httperr"
	"github.com/BruksfildServices01/academia-accounts/internal/models"
	"github.com/BruksfildServices01/academia-accounts/internal/ratelimit"
	"github.com/BruksfildServices01/academia-accounts/internal/token"
)

type AuthenticateOutput struct {
	User        *models.User
	AccessToken string
}

type Authenticate struct {
	repo     domain.Repository
	tokens   *token.Service
	throttle *ratelimit.LoginThrottle
	audit    *audit.Dispatcher
}

func NewAuthenticate(
	repo domain.Repository,
	tokens *token.Service,
	throttle *ratelimit.LoginThrottle,
	audit *audit.Dispatcher,
) *Authenticate {
	return &Authenticate{
		repo:     repo,
		tokens:   tokens,
		throttle: throttle,
		audit:    audit,
	}
}

func (uc *Authenticate) Execute(
	ctx context.Context,
	email string,
	password string,
) (*AuthenticateOutput, error) {

	email = strings.ToLower(strings.TrimSpace(email))

	if err := uc.throttle.Check(ctx, email); err != nil {
		return nil, err
	}

	user, err := uc.repo.GetByEmail(ctx, email)
	if err != nil {
		if httperr.IsBusiness(err, "user_not_found") {
			// Mesma resposta que password errada: não revelamos se o
			// email existe.
			uc.recordFailure(ctx, email)
			return nil, httperr.ErrBusiness("invalid_credentials")
		}
		return nil, err
	}

	if !credentials.Verify(password, user.PasswordHash) {
		uc.recordFailure(ctx, email)
		return nil, httperr.ErrBusiness("invalid_credentials")
	}

	accessToken, err := uc.tokens.Issue(token.Claims{
		Subject:  user.Email,
		FullName: user.FullName,
		Role:     user.Role.Name,
	})
	if err != nil {
		return nil, err
	}

	uc.throttle.Reset(ctx, email)

	uc.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "login_ok",
		Entity:   "user",
		EntityID: &user.ID,
	})

	return &AuthenticateOutput{
		User:        user,
		AccessToken: accessToken,
	}, nil
}

func (uc *Authenticate) recordFailure(ctx context.Context, email string) {
	uc.throttle.RecordFailure(ctx, email)

	uc.audit.Dispatch(audit.Event{
		Action:   "login_failed",
		Entity:   "user",
		Metadata: map[string]any{"email": email},
	})
}
