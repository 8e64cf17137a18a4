package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Animeshkhedkar0523/campus-smart-eats/entity"
	"github.com/Animeshkhedkar0523/campus-smart-eats/repository"
	"github.com/Animeshkhedkar0523/campus-smart-eats/utils"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	db := newTestDB(t)
	return NewAuthService(repository.NewUserRepository(db), "test-secret", 7*24*time.Hour)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newAuthService(t)

	user, token, err := svc.Register("Asha", "asha@campus.edu", "pw1")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, entity.RoleUser, user.Role)
	assert.NotEqual(t, "pw1", user.Password, "password must be stored hashed")

	got, token, err := svc.Login("asha@campus.edu", "pw1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	uid, err := utils.ParseToken(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, uid)
}

func TestRegisterNormalizesEmail(t *testing.T) {
	svc := newAuthService(t)

	_, _, err := svc.Register("Asha", "  Asha@Campus.EDU ", "pw1")
	require.NoError(t, err)

	_, _, err = svc.Login("asha@campus.edu", "pw1")
	assert.NoError(t, err)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newAuthService(t)

	_, _, err := svc.Register("Asha", "a@x.com", "pw1")
	require.NoError(t, err)

	_, _, err = svc.Register("Impostor", "a@x.com", "pw2")
	assert.ErrorIs(t, err, ErrEmailTaken)

	// First identity's credential is unaffected.
	_, _, err = svc.Login("a@x.com", "pw1")
	assert.NoError(t, err)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc := newAuthService(t)

	_, _, err := svc.Register("Asha", "a@x.com", "pw1")
	require.NoError(t, err)

	_, _, wrongPassword := svc.Login("a@x.com", "nope")
	_, _, unknownEmail := svc.Login("ghost@x.com", "nope")
	require.Error(t, wrongPassword)
	require.Error(t, unknownEmail)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error(),
		"login failures must not reveal whether the account exists")
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	svc := newAuthService(t)

	_, token, err := svc.Register("Asha", "a@x.com", "pw1")
	require.NoError(t, err)

	_, err = utils.ParseToken(token, "other-secret")
	assert.Error(t, err)
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := utils.GenerateToken(1, "test-secret", -time.Minute)
	require.NoError(t, err)

	_, err = utils.ParseToken(token, "test-secret")
	assert.Error(t, err)
}
