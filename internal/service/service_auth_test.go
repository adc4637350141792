package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/studyhub-id/studyhub/internal/config"
	"github.com/studyhub-id/studyhub/internal/logger"
	"github.com/studyhub-id/studyhub/internal/store"
	"github.com/studyhub-id/studyhub/models"
)

type fakeUserRepo struct {
	users     map[string]models.User
	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]models.User{}}
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user models.User) (models.User, error) {
	if f.createErr != nil {
		return models.User{}, f.createErr
	}
	if _, exists := f.users[user.Login]; exists {
		return models.User{}, store.ErrLoginAlreadyExists
	}
	f.users[user.Login] = user
	return user, nil
}

func (f *fakeUserRepo) FindUserByLogin(_ context.Context, login string) (models.User, error) {
	user, ok := f.users[login]
	if !ok {
		return models.User{}, store.ErrNoUserWasFound
	}
	return user, nil
}

func testAuthConfig() config.Auth {
	return config.Auth{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "studyhub-test",
		TokenDuration: time.Hour,
	}
}

func TestRegisterUser_HashesPasswordAndAssignsID(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, testAuthConfig(), logger.Nop())

	user, err := svc.RegisterUser(context.Background(), models.Credentials{
		Login:    "dina@studyhub.id",
		Password: "s3cret",
		Name:     "Dina",
	})
	require.NoError(t, err)

	_, err = uuid.Parse(user.ID)
	assert.NoError(t, err, "assigned id should be a valid UUID")
	assert.Equal(t, "Dina", user.Name)
	assert.NotEqual(t, "s3cret", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret")))
}

func TestRegisterUser_NameDefaultsToLogin(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), testAuthConfig(), logger.Nop())

	user, err := svc.RegisterUser(context.Background(), models.Credentials{
		Login:    "dina@studyhub.id",
		Password: "s3cret",
	})
	require.NoError(t, err)
	assert.Equal(t, "dina@studyhub.id", user.Name)
}

func TestRegisterUser_EmptyCredentials(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), testAuthConfig(), logger.Nop())

	_, err := svc.RegisterUser(context.Background(), models.Credentials{Login: "x"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.RegisterUser(context.Background(), models.Credentials{Password: "x"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestRegisterUser_DuplicateLogin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, testAuthConfig(), logger.Nop())

	creds := models.Credentials{Login: "dina@studyhub.id", Password: "s3cret"}
	_, err := svc.RegisterUser(context.Background(), creds)
	require.NoError(t, err)

	_, err = svc.RegisterUser(context.Background(), creds)
	assert.ErrorIs(t, err, store.ErrLoginAlreadyExists)
}

func TestLogin_Success(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, testAuthConfig(), logger.Nop())

	registered, err := svc.RegisterUser(context.Background(), models.Credentials{
		Login:    "dina@studyhub.id",
		Password: "s3cret",
		Name:     "Dina",
	})
	require.NoError(t, err)

	found, err := svc.Login(context.Background(), models.Credentials{
		Login:    "dina@studyhub.id",
		Password: "s3cret",
	})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, found.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, testAuthConfig(), logger.Nop())

	_, err := svc.RegisterUser(context.Background(), models.Credentials{
		Login:    "dina@studyhub.id",
		Password: "s3cret",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), models.Credentials{
		Login:    "dina@studyhub.id",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestLogin_UnknownUser(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), testAuthConfig(), logger.Nop())

	_, err := svc.Login(context.Background(), models.Credentials{
		Login:    "ghost@studyhub.id",
		Password: "s3cret",
	})
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestTokenRoundTrip(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), testAuthConfig(), logger.Nop())

	user := models.User{ID: "user-1", Name: "Dina"}
	token, err := svc.CreateToken(context.Background(), user)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(context.Background(), token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "user-1", parsed.UserID)
	assert.Equal(t, "Dina", parsed.UserName)
}

func TestParseToken_WrongIssuerRejected(t *testing.T) {
	issuerA := NewAuthService(newFakeUserRepo(), testAuthConfig(), logger.Nop())

	otherCfg := testAuthConfig()
	otherCfg.TokenIssuer = "someone-else"
	issuerB := NewAuthService(newFakeUserRepo(), otherCfg, logger.Nop())

	token, err := issuerB.CreateToken(context.Background(), models.User{ID: "user-1"})
	require.NoError(t, err)

	_, err = issuerA.ParseToken(context.Background(), token.SignedString)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrTokenIsExpired)
}

func TestParseToken_ExpiredToken(t *testing.T) {
	shortCfg := testAuthConfig()
	shortCfg.TokenDuration = -time.Minute
	svc := NewAuthService(newFakeUserRepo(), shortCfg, logger.Nop())

	token, err := svc.CreateToken(context.Background(), models.User{ID: "user-1"})
	require.NoError(t, err)

	_, err = svc.ParseToken(context.Background(), token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpired)
}

func TestParseToken_Garbage(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), testAuthConfig(), logger.Nop())

	_, err := svc.ParseToken(context.Background(), "not-a-token")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrTokenIsExpired))
}
