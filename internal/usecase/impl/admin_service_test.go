package impl

import (
	"context"
	"testing"

	"activator/internal/domain/entity"
	domainerrors "activator/internal/domain/errors"
	"activator/internal/domain/repository"
	"activator/internal/domain/service"
	mockRepo "activator/internal/mocks/repository"
	mockSvc "activator/internal/mocks/service"
	"activator/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type adminServiceFixtures struct {
	service      usecase.AdminUsecase
	txManager    *mockRepo.MockTransactionManager
	adminRepo    *mockRepo.MockAdminRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAdminService(t *testing.T) adminServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	adminRepo := mockRepo.NewMockAdminRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewAdminService(AdminServiceParams{
		TxManager:    txManager,
		AdminRepo:    adminRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Clock:        fixedClock{now: testNow},
		Logger:       newDiscardLogger(),
	})

	return adminServiceFixtures{
		service:      service,
		txManager:    txManager,
		adminRepo:    adminRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func (f adminServiceFixtures) expectTransaction(t *testing.T) {
	f.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().NewAdminRepository().Return(f.adminRepo)

			return fn(factory)
		})
}

func TestAdminService_Register_Success(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("Secret123!").Return("hashed", nil)
	fx.expectTransaction(t)
	fx.adminRepo.EXPECT().FindAdminByEmail(ctx, "owner@example.com").Return(nil, repository.ErrAdminNotFound)
	fx.adminRepo.EXPECT().
		CreateAdmin(ctx, mock.MatchedBy(func(a *entity.Admin) bool {
			return a.Email == "owner@example.com" && a.PasswordHash == "hashed"
		})).
		Return(nil)

	admin, err := fx.service.Register(ctx, &usecase.RegisterAdminInput{
		Name:     " Owner ",
		Email:    " Owner@Example.com ",
		Password: "Secret123!",
	})
	require.NoError(t, err)
	assert.Equal(t, "Owner", admin.Name)
	assert.Equal(t, testNow, admin.CreatedAt)
}

func TestAdminService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil)
	fx.expectTransaction(t)
	fx.adminRepo.EXPECT().FindAdminByEmail(ctx, "owner@example.com").Return(&entity.Admin{ID: uuid.New()}, nil)

	_, err := fx.service.Register(ctx, &usecase.RegisterAdminInput{Email: "owner@example.com", Password: "x"})
	assert.ErrorIs(t, err, domainerrors.ErrAdminAlreadyExists)
}

func TestAdminService_Login(t *testing.T) {
	admin := &entity.Admin{ID: uuid.New(), Email: "owner@example.com", PasswordHash: "hashed"}

	t.Run("issues tokens for valid credentials", func(t *testing.T) {
		fx := createTestAdminService(t)
		ctx := context.Background()

		fx.adminRepo.EXPECT().FindAdminByEmail(ctx, "owner@example.com").Return(admin, nil)
		fx.hasher.EXPECT().Check("Secret123!", "hashed").Return(true)
		fx.tokenService.EXPECT().GenerateTokens(admin.ID, []string{"admin"}).Return("access", "refresh", nil)

		out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "OWNER@example.com", Password: "Secret123!"})
		require.NoError(t, err)
		assert.Equal(t, "access", out.AccessToken)
		assert.Equal(t, "refresh", out.RefreshToken)
		assert.Equal(t, admin, out.Admin)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestAdminService(t)
		ctx := context.Background()

		fx.adminRepo.EXPECT().FindAdminByEmail(ctx, "owner@example.com").Return(admin, nil)
		fx.hasher.EXPECT().Check("nope", "hashed").Return(false)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "owner@example.com", Password: "nope"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		fx := createTestAdminService(t)
		ctx := context.Background()

		fx.adminRepo.EXPECT().FindAdminByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrAdminNotFound)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "x"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}

func TestAdminService_RefreshToken(t *testing.T) {
	adminID := uuid.New()

	t.Run("rotates the token pair", func(t *testing.T) {
		fx := createTestAdminService(t)
		ctx := context.Background()

		fx.tokenService.EXPECT().ValidateRefreshToken("refresh").Return(&service.Claims{AdminID: adminID}, nil)
		fx.adminRepo.EXPECT().FindAdminByID(ctx, adminID).Return(&entity.Admin{ID: adminID}, nil)
		fx.tokenService.EXPECT().GenerateTokens(adminID, []string{"admin"}).Return("access2", "refresh2", nil)

		out, err := fx.service.RefreshToken(ctx, "refresh")
		require.NoError(t, err)
		assert.Equal(t, "access2", out.AccessToken)
		assert.Equal(t, "refresh2", out.RefreshToken)
	})

	t.Run("invalid token", func(t *testing.T) {
		fx := createTestAdminService(t)

		fx.tokenService.EXPECT().ValidateRefreshToken("bad").Return(nil, errors.New("token is expired"))

		_, err := fx.service.RefreshToken(context.Background(), "bad")
		assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	})

	t.Run("deleted admin", func(t *testing.T) {
		fx := createTestAdminService(t)
		ctx := context.Background()

		fx.tokenService.EXPECT().ValidateRefreshToken("refresh").Return(&service.Claims{AdminID: adminID}, nil)
		fx.adminRepo.EXPECT().FindAdminByID(ctx, adminID).Return(nil, repository.ErrAdminNotFound)

		_, err := fx.service.RefreshToken(ctx, "refresh")
		assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	})
}
