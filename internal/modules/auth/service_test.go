package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"guesthouse/internal/domain"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

type mockJWT struct {
	mock.Mock
}

func (m *mockJWT) GenerateToken(userID int64) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestSignup_Success(t *testing.T) {
	users := new(mockUserRepo)
	tokens := new(mockJWT)
	svc := NewService(users, tokens)

	users.On("ExistsByEmail", mock.Anything, "admin@example.com").Return(false, nil)
	users.On("ExistsByUsername", mock.Anything, "admin").Return(false, nil)
	users.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.User).ID = 1
		}).
		Return(nil)

	user, err := svc.Signup(context.Background(), SignupRequest{
		Username: "admin",
		Email:    "Admin@Example.com",
		Password: "secret123",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "admin@example.com", user.Email)
	assert.Empty(t, user.PasswordHash, "hash must never leave the service")
	users.AssertExpectations(t)
}

func TestSignup_EmailAlreadyExists(t *testing.T) {
	users := new(mockUserRepo)
	svc := NewService(users, new(mockJWT))

	users.On("ExistsByEmail", mock.Anything, "admin@example.com").Return(true, nil)

	_, err := svc.Signup(context.Background(), SignupRequest{
		Username: "admin",
		Email:    "admin@example.com",
		Password: "secret123",
	})

	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSignup_UsernameAlreadyExists(t *testing.T) {
	users := new(mockUserRepo)
	svc := NewService(users, new(mockJWT))

	users.On("ExistsByEmail", mock.Anything, "admin@example.com").Return(false, nil)
	users.On("ExistsByUsername", mock.Anything, "admin").Return(true, nil)

	_, err := svc.Signup(context.Background(), SignupRequest{
		Username: "admin",
		Email:    "admin@example.com",
		Password: "secret123",
	})

	assert.ErrorIs(t, err, ErrUsernameAlreadyExists)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSignin_Success(t *testing.T) {
	users := new(mockUserRepo)
	tokens := new(mockJWT)
	svc := NewService(users, tokens)

	users.On("GetByEmail", mock.Anything, "admin@example.com").Return(&domain.User{
		ID:           1,
		Username:     "admin",
		Email:        "admin@example.com",
		PasswordHash: hashOf(t, "secret123"),
	}, nil)
	tokens.On("GenerateToken", int64(1)).Return("signed-token", nil)

	user, token, err := svc.Signin(context.Background(), SigninRequest{
		Email:    "admin@example.com",
		Password: "secret123",
	})

	assert.NoError(t, err)
	assert.Equal(t, "signed-token", token)
	assert.Empty(t, user.PasswordHash)
	tokens.AssertExpectations(t)
}

func TestSignin_UserNotFound(t *testing.T) {
	users := new(mockUserRepo)
	svc := NewService(users, new(mockJWT))

	users.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	_, _, err := svc.Signin(context.Background(), SigninRequest{
		Email:    "ghost@example.com",
		Password: "secret123",
	})

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSignin_WrongPassword(t *testing.T) {
	users := new(mockUserRepo)
	tokens := new(mockJWT)
	svc := NewService(users, tokens)

	users.On("GetByEmail", mock.Anything, "admin@example.com").Return(&domain.User{
		ID:           1,
		Email:        "admin@example.com",
		PasswordHash: hashOf(t, "secret123"),
	}, nil)

	_, _, err := svc.Signin(context.Background(), SigninRequest{
		Email:    "admin@example.com",
		Password: "wrong-password",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	tokens.AssertNotCalled(t, "GenerateToken", mock.Anything)
}
