package user

import (
	"testing"
	"time"

	"github.com/rightguydaniel/deluxconex-BE/config"
	"github.com/rightguydaniel/deluxconex-BE/models"
	"github.com/rightguydaniel/deluxconex-BE/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	config.AppConfig.JWTSecret = "test-jwt-secret"
}

type memoryUserRepo struct {
	byID    map[string]*models.User
	byEmail map[string]*models.User
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{byID: map[string]*models.User{}, byEmail: map[string]*models.User{}}
}

func (r *memoryUserRepo) Create(u *models.User) error {
	r.byID[u.ID] = u
	r.byEmail[u.Email] = u
	return nil
}
func (r *memoryUserRepo) Update(u *models.User) error {
	r.byID[u.ID] = u
	r.byEmail[u.Email] = u
	return nil
}
func (r *memoryUserRepo) GetByID(id string) (*models.User, error)     { return r.byID[id], nil }
func (r *memoryUserRepo) GetByEmail(e string) (*models.User, error)   { return r.byEmail[e], nil }
func (r *memoryUserRepo) GetAll() ([]models.User, error)              { return nil, nil }
func (r *memoryUserRepo) SetBlocked(id string, blocked bool) error    { return nil }
func (r *memoryUserRepo) Delete(id string) error {
	if u, ok := r.byID[id]; ok {
		delete(r.byEmail, u.Email)
	}
	delete(r.byID, id)
	return nil
}

type noopMailer struct{}

func (noopMailer) Send(to, subject, textBody, htmlBody string) error { return nil }

func newUserService() (*DefaultUserService, *memoryUserRepo) {
	repo := newMemoryUserRepo()
	return &DefaultUserService{Repo: repo, Mailer: noopMailer{}}, repo
}

func registration() RegistrationRequest {
	return RegistrationRequest{
		FullName: "Jordan Smith",
		Email:    "Jordan@Example.com",
		Phone:    "+15550001111",
		Password: "sup3r-secret",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	svc, repo := newUserService()

	resp, err := svc.Register(registration())
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, "jordan@example.com", resp.Email)
	assert.Equal(t, string(models.RoleUser), resp.Role)

	// The stored hash is never the raw password.
	stored := repo.byEmail["jordan@example.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "sup3r-secret", stored.PasswordHash)

	login, err := svc.Login("JORDAN@example.com", "sup3r-secret")
	require.NoError(t, err)
	assert.Equal(t, resp.ID, login.ID)

	userID, email, role, err := utils.ExtractClaimsFromToken(login.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.ID, userID)
	assert.Equal(t, "jordan@example.com", email)
	assert.Equal(t, string(models.RoleUser), role)
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newUserService()

	short := registration()
	short.Password = "short"
	_, err := svc.Register(short)
	assert.Error(t, err)

	missing := registration()
	missing.Email = ""
	_, err = svc.Register(missing)
	assert.Error(t, err)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newUserService()

	_, err := svc.Register(registration())
	require.NoError(t, err)

	_, err = svc.Register(registration())
	assert.Error(t, err)
}

func TestLoginFailures(t *testing.T) {
	svc, repo := newUserService()

	resp, err := svc.Register(registration())
	require.NoError(t, err)

	_, err = svc.Login("jordan@example.com", "wrong-password")
	assert.Error(t, err)

	_, err = svc.Login("nobody@example.com", "sup3r-secret")
	assert.Error(t, err)

	now := time.Now()
	repo.byID[resp.ID].BlockedAt = &now
	_, err = svc.Login("jordan@example.com", "sup3r-secret")
	assert.Error(t, err)
}

func TestPasswordResetFlow(t *testing.T) {
	svc, _ := newUserService()

	resp, err := svc.Register(registration())
	require.NoError(t, err)

	// Requesting a reset never reveals whether the email is registered.
	require.NoError(t, svc.RequestPasswordReset("jordan@example.com"))
	require.NoError(t, svc.RequestPasswordReset("nobody@example.com"))

	token, err := utils.GenerateResetToken(resp.ID, time.Hour)
	require.NoError(t, err)

	require.NoError(t, svc.ResetPassword(token, "brand-new-secret"))
	_, err = svc.Login("jordan@example.com", "brand-new-secret")
	assert.NoError(t, err)

	// A session token must not pass as a reset token.
	assert.Error(t, svc.ResetPassword(resp.Token, "another-long-one"))
	assert.Error(t, svc.ResetPassword("garbage", "another-long-one"))
	assert.Error(t, svc.ResetPassword(token, "short"))
}

func TestUpdatePassword(t *testing.T) {
	svc, _ := newUserService()

	resp, err := svc.Register(registration())
	require.NoError(t, err)

	require.NoError(t, svc.UpdatePassword(resp.ID, "sup3r-secret", "even-m0re-secret"))

	_, err = svc.Login("jordan@example.com", "sup3r-secret")
	assert.Error(t, err)

	_, err = svc.Login("jordan@example.com", "even-m0re-secret")
	assert.NoError(t, err)

	assert.Error(t, svc.UpdatePassword(resp.ID, "even-m0re-secret", "short"))
	assert.Error(t, svc.UpdatePassword(resp.ID, "wrong", "another-long-one"))
}
