package services

import (
	"path/filepath"
	"strings"
	"testing"

	"faculty-portal/app/db"
	"faculty-portal/app/errs"
	"faculty-portal/app/repo"
	"faculty-portal/config"

	"github.com/stretchr/testify/require"
)

func newTestUserService(t *testing.T) *UserService {
	t.Helper()
	gdb, err := db.Connect(config.DB{Driver: "sqlite", Path: filepath.Join(t.TempDir(), "test.db")})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))
	return NewUserService(repo.NewUserRepository(gdb))
}

func validRegistration() RegisterRequest {
	return RegisterRequest{
		Username: "faculty1",
		Password: "faculty123",
		Email:    "faculty1@christuniversity.in",
		FullName: "Dr. John Smith",
	}
}

func TestRegisterAndAuthenticate(t *testing.T) {
	svc := newTestUserService(t)

	id, err := svc.Register(validRegistration())
	require.NoError(t, err)
	require.NotZero(t, id)

	u, err := svc.Authenticate("faculty1", "faculty123")
	require.NoError(t, err)
	require.Equal(t, "faculty1", u.Username)
	require.NotNil(t, u.LastLogin, "authenticate must stamp last login")
}

func TestRegisterDefaults(t *testing.T) {
	svc := newTestUserService(t)

	_, err := svc.Register(validRegistration())
	require.NoError(t, err)

	u, err := svc.Authenticate("faculty1", "faculty123")
	require.NoError(t, err)
	require.Equal(t, "faculty", u.Role)
	require.Equal(t, "", u.Department)
	require.True(t, u.IsActive)
}

func TestRegisterStoresHashNotPassword(t *testing.T) {
	svc := newTestUserService(t)

	_, err := svc.Register(validRegistration())
	require.NoError(t, err)

	u, err := svc.Authenticate("faculty1", "faculty123")
	require.NoError(t, err)
	require.NotEqual(t, "faculty123", u.PasswordHash)
	require.True(t, strings.HasPrefix(u.PasswordHash, "$2"), "expected a bcrypt hash")
}

func TestRegisterMissingFields(t *testing.T) {
	svc := newTestUserService(t)

	for _, req := range []RegisterRequest{
		{Password: "p", Email: "e@x.in", FullName: "F"},
		{Username: "u", Email: "e@x.in", FullName: "F"},
		{Username: "u", Password: "p", FullName: "F"},
		{Username: "u", Password: "p", Email: "e@x.in"},
	} {
		_, err := svc.Register(req)
		require.ErrorIs(t, err, errs.ErrInvalidInput)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc := newTestUserService(t)

	_, err := svc.Register(validRegistration())
	require.NoError(t, err)

	dup := validRegistration()
	dup.Email = "other@christuniversity.in"
	_, err = svc.Register(dup)
	require.ErrorIs(t, err, errs.ErrDuplicateIdentity)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newTestUserService(t)

	_, err := svc.Register(validRegistration())
	require.NoError(t, err)

	dup := validRegistration()
	dup.Username = "faculty2"
	_, err = svc.Register(dup)
	require.ErrorIs(t, err, errs.ErrDuplicateIdentity)
}

func TestAuthenticateFailuresAreUniform(t *testing.T) {
	svc := newTestUserService(t)

	_, err := svc.Register(validRegistration())
	require.NoError(t, err)

	_, wrongPass := svc.Authenticate("faculty1", "nope")
	_, unknownUser := svc.Authenticate("ghost", "nope")
	require.ErrorIs(t, wrongPass, errs.ErrAuthFailed)
	require.ErrorIs(t, unknownUser, errs.ErrAuthFailed)
}

func TestDeactivatedAccountCannotLogin(t *testing.T) {
	svc := newTestUserService(t)

	id, err := svc.Register(validRegistration())
	require.NoError(t, err)

	require.NoError(t, svc.Deactivate(id))

	_, err = svc.Authenticate("faculty1", "faculty123")
	require.ErrorIs(t, err, errs.ErrAuthFailed)
}

func TestEnsureAdminIsIdempotent(t *testing.T) {
	svc := newTestUserService(t)

	require.NoError(t, svc.EnsureAdmin("admin", "admin123", "admin@christuniversity.in"))
	require.NoError(t, svc.EnsureAdmin("admin", "admin123", "admin@christuniversity.in"))

	u, err := svc.Authenticate("admin", "admin123")
	require.NoError(t, err)
	require.Equal(t, "admin", u.Role)
}
