package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"brnaccounts/internal/auth"
	apperrors "brnaccounts/internal/errors"
	"brnaccounts/internal/model"
	"brnaccounts/internal/repository"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Insert(ctx context.Context, user *model.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) UpdateByEmail(ctx context.Context, email string, user *model.User) (int64, error) {
	args := m.Called(ctx, email, user)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) DeleteByEmail(ctx context.Context, email string) (int64, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(int64), args.Error(1)
}

func signupFields(email string) map[string]string {
	return map[string]string{
		"firstName":  "Jane",
		"lastName":   "Doe",
		"age":        "25",
		"email":      email,
		"password":   "secret123",
		"mobileNo":   "0123456789",
		"profilePic": "uploads/avatar.png",
	}
}

func newTestService(t *testing.T) (AccountService, *repository.MemoryRepository) {
	t.Helper()
	repo := repository.NewMemoryRepository()
	return NewAccountService(repo, auth.NewJWTService("test-secret"), nil), repo
}

func TestSignup_StoresHashNotPlaintext(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	id, err := svc.Signup(ctx, signupFields("jane@example.com"))
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	stored, err := repo.FindByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", stored.Password)
	assert.True(t, auth.CheckPassword("secret123", stored.Password))
}

func TestSignup_ValidationFailureInsertsNothing(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	fields := signupFields("jane@example.com")
	fields["age"] = "121"

	_, err := svc.Signup(ctx, fields)
	ve, ok := apperrors.AsValidation(err)
	require.True(t, ok)
	require.Len(t, ve.Fields, 1)
	assert.Equal(t, "age", ve.Fields[0].Field)

	_, err = repo.FindByEmail(ctx, "jane@example.com")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestLogin(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, signupFields("jane@example.com"))
	require.NoError(t, err)

	t.Run("success issues token and strips password", func(t *testing.T) {
		token, user, err := svc.Login(ctx, "jane@example.com", "secret123")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Empty(t, user.Password)

		claims, err := auth.NewJWTService("test-secret").Validate(token)
		require.NoError(t, err)
		assert.Equal(t, "jane@example.com", claims.Email)
		assert.Equal(t, user.ID.Hex(), claims.UserID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "jane@example.com", "wrongpass")
		assert.ErrorIs(t, err, apperrors.ErrInvalidPassword)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "nobody@example.com", "secret123")
		assert.ErrorIs(t, err, apperrors.ErrInvalidUsername)
	})
}

func TestLogin_MissingStoredHash(t *testing.T) {
	repo := repository.NewMemoryRepository()
	svc := NewAccountService(repo, auth.NewJWTService("test-secret"), nil)
	ctx := context.Background()

	user := &model.User{Email: "jane@example.com"} // no hash stored
	_, err := repo.Insert(ctx, user)
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "jane@example.com", "secret123")
	assert.ErrorIs(t, err, apperrors.ErrInvalidPassword)
}

func TestUpdateProfile_PreservesProtectedFields(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, signupFields("jane@example.com"))
	require.NoError(t, err)

	update := signupFields("jane@example.com")
	update["firstName"] = "Janet"
	delete(update, "password")
	delete(update, "profilePic")

	require.NoError(t, svc.UpdateProfile(ctx, update))

	stored, err := repo.FindByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Janet", stored.FirstName)
	assert.Equal(t, "uploads/avatar.png", stored.ProfilePic)
	assert.True(t, auth.CheckPassword("secret123", stored.Password),
		"the original password must still verify after an update without one")
}

func TestUpdateProfile_NewPasswordReplacesHash(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, signupFields("jane@example.com"))
	require.NoError(t, err)

	update := signupFields("jane@example.com")
	update["password"] = "brandnew1"

	require.NoError(t, svc.UpdateProfile(ctx, update))

	stored, err := repo.FindByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.True(t, auth.CheckPassword("brandnew1", stored.Password))
	assert.False(t, auth.CheckPassword("secret123", stored.Password),
		"the old password must stop verifying")
}

func TestUpdateProfile_NewPicReplacesReference(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, signupFields("jane@example.com"))
	require.NoError(t, err)

	update := signupFields("jane@example.com")
	update["profilePic"] = "uploads/new.png"

	require.NoError(t, svc.UpdateProfile(ctx, update))

	stored, err := repo.FindByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, "uploads/new.png", stored.ProfilePic)
}

func TestUpdateProfile_UnknownEmail(t *testing.T) {
	svc, _ := newTestService(t)

	err := svc.UpdateProfile(context.Background(), signupFields("nobody@example.com"))
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUpdateProfile_ValidationFailure(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, signupFields("jane@example.com"))
	require.NoError(t, err)

	update := signupFields("jane@example.com")
	update["mobileNo"] = "123"

	err = svc.UpdateProfile(ctx, update)
	_, ok := apperrors.AsValidation(err)
	require.True(t, ok)

	stored, err := repo.FindByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, "0123456789", stored.MobileNo, "rejected update must not write")
}

func TestDeleteProfile(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, signupFields("jane@example.com"))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProfile(ctx, "jane@example.com"))

	_, _, err = svc.Login(ctx, "jane@example.com", "secret123")
	assert.ErrorIs(t, err, apperrors.ErrInvalidUsername,
		"login after delete must fail as an unknown user")

	err = svc.DeleteProfile(ctx, "jane@example.com")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestSignup_RoundTrip(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, signupFields("jane@example.com"))
	require.NoError(t, err)

	stored, err := repo.FindByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Jane", stored.FirstName)
	assert.Equal(t, "Doe", stored.LastName)
	assert.Equal(t, 25, stored.Age)
	assert.Equal(t, "jane@example.com", stored.Email)
	assert.Equal(t, "0123456789", stored.MobileNo)
	assert.Equal(t, "uploads/avatar.png", stored.ProfilePic)
}

func TestLogin_StorageFaultIsOpaque(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewAccountService(repo, auth.NewJWTService("test-secret"), nil)

	repo.On("FindByEmail", mock.Anything, "jane@example.com").
		Return(nil, errors.New("connection reset"))

	_, _, err := svc.Login(context.Background(), "jane@example.com", "secret123")
	require.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrInvalidUsername)
	assert.NotErrorIs(t, err, apperrors.ErrInvalidPassword)
	repo.AssertExpectations(t)
}

func TestUpdateProfile_ZeroMatchedIsConflict(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewAccountService(repo, auth.NewJWTService("test-secret"), nil)

	existing := &model.User{
		FirstName: "Jane", LastName: "Doe", Age: 25,
		Email: "jane@example.com", Password: "$2a$10$storedhash", MobileNo: "0123456789",
	}
	repo.On("FindByEmail", mock.Anything, "jane@example.com").Return(existing, nil)
	repo.On("UpdateByEmail", mock.Anything, "jane@example.com", mock.Anything).
		Return(int64(0), nil)

	err := svc.UpdateProfile(context.Background(), signupFields("jane@example.com"))
	assert.ErrorIs(t, err, apperrors.ErrUpdateConflict)
	repo.AssertExpectations(t)
}
