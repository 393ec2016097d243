package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"elegance/config"
	deliverycontext "elegance/internal/delivery/context"
	"elegance/internal/domain/entity"
	domainerrors "elegance/internal/domain/errors"
	"elegance/internal/domain/repository"
	"elegance/internal/domain/service"
	"elegance/internal/usecase"

	"github.com/pkg/errors"
)

// sessionService implements the SessionUsecase interface. There is no
// credential authority: the configured administrator pair resolves to the
// admin record, every other non-empty pair fabricates a customer after the
// simulated delay.
type sessionService struct {
	sessions   repository.SessionRepository
	hasher     service.PasswordHasher
	tokens     service.TokenService
	notifier   service.ToastNotifier
	logger     *slog.Logger
	adminEmail string
	adminHash  string
	loginDelay time.Duration
}

// NewSessionService is the constructor for sessionService. The admin
// credential is hashed once here so login never compares plaintext.
func NewSessionService(
	cfg *config.Config,
	sessions repository.SessionRepository,
	hasher service.PasswordHasher,
	tokens service.TokenService,
	notifier service.ToastNotifier,
	logger *slog.Logger,
) (usecase.SessionUsecase, error) {
	adminHash, err := hasher.Hash(cfg.Auth.AdminPassword)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash admin credential")
	}

	return &sessionService{
		sessions:   sessions,
		hasher:     hasher,
		tokens:     tokens,
		notifier:   notifier,
		logger:     logger,
		adminEmail: cfg.Auth.AdminEmail,
		adminHash:  adminHash,
		loginDelay: cfg.Auth.LoginDelay,
	}, nil
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login resolves a credential pair to a session record. The admin pair
// resolves immediately; every other pair fabricates a customer record after
// the simulated delay.
func (srv *sessionService) Login(ctx context.Context, email, password string) (*usecase.AuthResult, error) {
	if email == "" || password == "" {
		return nil, domainerrors.ErrInvalidCredentials
	}

	if email == srv.adminEmail && srv.hasher.Check(password, srv.adminHash) {
		admin := &entity.User{
			ID:    "admin",
			Name:  "Admin User",
			Email: email,
			Role:  entity.RoleAdmin,
		}

		result, err := srv.establish(ctx, admin)
		if err != nil {
			return nil, err
		}

		srv.log(ctx).Info("Admin session established")
		srv.notifier.Notify(ctx, service.Toast{
			Title:    "Admin Login Successful",
			Message:  "Welcome to the admin dashboard",
			Severity: service.SeveritySuccess,
		})

		return result, nil
	}

	if err := srv.simulateDelay(ctx); err != nil {
		return nil, err
	}

	customer := &entity.User{
		ID:    fmt.Sprintf("user%d", time.Now().UnixMilli()),
		Name:  emailLocalPart(email),
		Email: email,
		Role:  entity.RoleCustomer,
	}

	result, err := srv.establish(ctx, customer)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Customer session established", slog.String("user_id", customer.ID))
	srv.notifier.Notify(ctx, service.Toast{
		Title:    "Welcome back!",
		Message:  fmt.Sprintf("Logged in as %s", customer.Name),
		Severity: service.SeveritySuccess,
	})

	return result, nil
}

// Signup fabricates a new customer record after the simulated delay. There
// is no uniqueness check; signup always succeeds.
func (srv *sessionService) Signup(ctx context.Context, name, email, password string) (*usecase.AuthResult, error) {
	if err := srv.simulateDelay(ctx); err != nil {
		return nil, err
	}

	customer := &entity.User{
		ID:    fmt.Sprintf("user%d", time.Now().UnixMilli()),
		Name:  name,
		Email: email,
		Role:  entity.RoleCustomer,
	}

	result, err := srv.establish(ctx, customer)
	if err != nil {
		return nil, err
	}

	srv.notifier.Notify(ctx, service.Toast{
		Title:    "Account created!",
		Message:  fmt.Sprintf("Welcome, %s!", name),
		Severity: service.SeveritySuccess,
	})

	return result, nil
}

// Logout clears the session record and its persisted copy.
func (srv *sessionService) Logout(ctx context.Context) error {
	if err := srv.sessions.Clear(ctx); err != nil {
		return err
	}

	srv.notifier.Notify(ctx, service.Toast{
		Title:    "Logged out",
		Message:  "You have been logged out successfully",
		Severity: service.SeverityInfo,
	})

	return nil
}

// Current returns the session record, or nil when signed out.
func (srv *sessionService) Current(ctx context.Context) (*entity.User, error) {
	return srv.sessions.Load(ctx)
}

// establish persists the record and signs its access token.
func (srv *sessionService) establish(ctx context.Context, user *entity.User) (*usecase.AuthResult, error) {
	if err := srv.sessions.Save(ctx, user); err != nil {
		return nil, err
	}

	token, err := srv.tokens.Generate(user.ID, []string{user.Role.String()})
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign access token")
	}

	return &usecase.AuthResult{User: user, AccessToken: token}, nil
}

// simulateDelay stands in for the credential round-trip and honors context
// cancellation.
func (srv *sessionService) simulateDelay(ctx context.Context) error {
	if srv.loginDelay <= 0 {
		return nil
	}

	select {
	case <-time.After(srv.loginDelay):
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "login aborted")
	}
}

// emailLocalPart derives a display name from the part before the at sign.
func emailLocalPart(email string) string {
	if at := strings.Index(email, "@"); at >= 0 {
		return email[:at]
	}

	return email
}
