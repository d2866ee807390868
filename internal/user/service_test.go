package user

import (
	"context"
	"errors"
	"testing"

	"github.com/lightlabcreation/gym-backend/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

// MockRepository is a mock implementation of Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) FindByID(ctx context.Context, id int) (*User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func intPtr(v int) *int { return &v }

func staffUser(t *testing.T, password string) *User {
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	return &User{
		ID:           12,
		AdminID:      intPtr(3),
		FullName:     "Priya Coach",
		Email:        "coach@example.com",
		PasswordHash: hash,
		Role:         "trainer",
	}
}

func TestUser_TenantID(t *testing.T) {
	admin := &User{ID: 3, Role: RoleAdmin}
	assert.Equal(t, 3, admin.TenantID())

	staff := &User{ID: 12, AdminID: intPtr(3), Role: "trainer"}
	assert.Equal(t, 3, staff.TenantID())

	orphan := &User{ID: 40, Role: "member"}
	assert.Equal(t, 40, orphan.TenantID())
}

func TestService_Login(t *testing.T) {
	tests := []struct {
		name          string
		req           LoginRequest
		setupMock     func(*MockRepository, *User)
		expectedError error
	}{
		{
			name: "successful login",
			req:  LoginRequest{Email: "coach@example.com", Password: "password123"},
			setupMock: func(m *MockRepository, u *User) {
				m.On("FindByEmail", mock.Anything, "coach@example.com").Return(u, nil)
			},
		},
		{
			name: "unknown email",
			req:  LoginRequest{Email: "nobody@example.com", Password: "password123"},
			setupMock: func(m *MockRepository, _ *User) {
				m.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, ErrUserNotFound)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name: "wrong password",
			req:  LoginRequest{Email: "coach@example.com", Password: "wrong"},
			setupMock: func(m *MockRepository, u *User) {
				m.On("FindByEmail", mock.Anything, "coach@example.com").Return(u, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			tt.setupMock(repo, staffUser(t, "password123"))
			svc := NewService(repo, testSecret)

			user, access, refresh, err := svc.Login(context.Background(), tt.req)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
				assert.Empty(t, access)
				assert.Empty(t, refresh)
			} else {
				require.NoError(t, err)
				assert.Equal(t, 12, user.ID)

				claims, err := auth.ValidateToken(access, testSecret)
				require.NoError(t, err)
				assert.Equal(t, 12, claims.UserID)
				assert.Equal(t, 3, claims.AdminID)
				assert.Equal(t, "trainer", claims.Role)
				assert.NotEmpty(t, refresh)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestService_Login_RepositoryError(t *testing.T) {
	repo := new(MockRepository)
	repo.On("FindByEmail", mock.Anything, "coach@example.com").Return(nil, errors.New("connection reset"))
	svc := NewService(repo, testSecret)

	_, _, _, err := svc.Login(context.Background(), LoginRequest{Email: "coach@example.com", Password: "x"})
	assert.EqualError(t, err, "connection reset")
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_RefreshToken(t *testing.T) {
	repo := new(MockRepository)
	user := staffUser(t, "password123")
	_, refresh, err := auth.GenerateTokens(user.Identity(), testSecret, testSecret)
	require.NoError(t, err)

	// role changed since the refresh token was issued
	promoted := *user
	promoted.Role = "manager"
	repo.On("FindByID", mock.Anything, 12).Return(&promoted, nil)

	svc := NewService(repo, testSecret)
	access, got, err := svc.RefreshToken(context.Background(), refresh)
	require.NoError(t, err)
	assert.Equal(t, 12, got.ID)

	claims, err := auth.ValidateToken(access, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "manager", claims.Role)
	repo.AssertExpectations(t)
}

func TestService_RefreshToken_Invalid(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, testSecret)

	_, _, err := svc.RefreshToken(context.Background(), "not-a-token")
	assert.Error(t, err)
	repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestService_GetByID(t *testing.T) {
	repo := new(MockRepository)
	repo.On("FindByID", mock.Anything, 99).Return(nil, ErrUserNotFound)
	svc := NewService(repo, testSecret)

	_, err := svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
