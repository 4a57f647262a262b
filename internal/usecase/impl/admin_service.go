package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "activator/internal/delivery/context"
	"activator/internal/domain/entity"
	domainerrors "activator/internal/domain/errors"
	"activator/internal/domain/repository"
	"activator/internal/domain/service"
	"activator/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	txManager    repository.TransactionManager
	adminRepo    repository.AdminRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	clock        service.Clock
	logger       *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AdminRepo    repository.AdminRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Clock        service.Clock
	Logger       *slog.Logger
}

// NewAdminService creates a new admin service.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		txManager:    params.TxManager,
		adminRepo:    params.AdminRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		clock:        params.Clock,
		logger:       params.Logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an admin account with a hashed password.
func (srv *adminService) Register(ctx context.Context, input *usecase.RegisterAdminInput) (*entity.Admin, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Info("Registering admin", slog.String("email", email))

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	now := srv.clock.Now()
	admin := &entity.Admin{
		ID:           uuid.New(),
		Email:        email,
		Name:         strings.TrimSpace(input.Name),
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		adminRepo := repoFactory.NewAdminRepository()

		existing, findErr := adminRepo.FindAdminByEmail(ctx, email)
		if findErr != nil && !errors.Is(findErr, repository.ErrAdminNotFound) {
			return errors.Wrap(findErr, "failed to check existing admin")
		}
		if existing != nil {
			return repository.ErrDuplicateAdmin
		}

		return adminRepo.CreateAdmin(ctx, admin)
	})
	if errors.Is(err, repository.ErrDuplicateAdmin) {
		return nil, domainerrors.ErrAdminAlreadyExists
	}
	if err != nil {
		return nil, domainerrors.ErrTransactionFailed.WrapMessage(err.Error())
	}

	return admin, nil
}

// Login verifies the credentials and issues a token pair.
func (srv *adminService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	admin, err := srv.adminRepo.FindAdminByEmail(ctx, normalizeEmail(input.Email))
	if errors.Is(err, repository.ErrAdminNotFound) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find admin")
	}

	if !srv.hasher.Check(input.Password, admin.PasswordHash) {
		srv.log(ctx).Warn("Admin login rejected", slog.String("admin_id", admin.ID.String()))

		return nil, domainerrors.ErrInvalidCredentials
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(admin.ID, adminRoles())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Admin:        admin,
	}, nil
}

// RefreshToken issues a new token pair for a valid refresh token of an existing admin.
func (srv *adminService) RefreshToken(ctx context.Context, refreshToken string) (*usecase.RefreshTokenOutput, error) {
	claims, err := srv.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	admin, err := srv.adminRepo.FindAdminByID(ctx, claims.AdminID)
	if errors.Is(err, repository.ErrAdminNotFound) {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find admin")
	}

	accessToken, newRefreshToken, err := srv.tokenService.GenerateTokens(admin.ID, adminRoles())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.RefreshTokenOutput{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
	}, nil
}

func adminRoles() []string {
	return entity.Roles{entity.RoleAdmin}.ToStrings()
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
