package services

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mskn-backend/internal/apperr"
	"mskn-backend/internal/auth"
	"mskn-backend/internal/config"
	"mskn-backend/internal/models"
)

func newReportService(f *fixture) *ReportService {
	s := NewReportService(f.store.Properties(), f.store.Payments(), f.store.Maintenance(), f.resolver)
	s.now = clock
	return s
}

func TestPropertyReport(t *testing.T) {
	f := newFixture(t)
	svc := newReportService(f)
	ctx := context.Background()

	r, err := svc.PropertyReport(ctx, manager, "p1", "")
	require.NoError(t, err)
	assert.Equal(t, "report_p1_all", r.ID)
	assert.InDelta(t, 1500, r.TotalIncome, 0.001)
	assert.InDelta(t, 1000, r.RentCollected, 0.001)
	assert.InDelta(t, 250, r.Expenses.Maintenance, 0.001)
	assert.InDelta(t, 550, r.TotalExpenses, 0.001)
	assert.InDelta(t, 950, r.NetIncome, 0.001)
	assert.Equal(t, fixedNow, r.GeneratedDate)

	_, err = svc.PropertyReport(ctx, ownerTwo, "p1", "month")
	assert.Equal(t, http.StatusForbidden, statusOf(t, err))

	_, err = svc.PropertyReport(ctx, manager, "missing", "month")
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))
}

func TestOwnerReportOnlyForSelf(t *testing.T) {
	f := newFixture(t)
	svc := newReportService(f)
	ctx := context.Background()

	r, err := svc.OwnerReport(ctx, ownerTwo, "owner-2", "year")
	require.NoError(t, err)
	assert.Equal(t, "report_owner_owner-2_year", r.ID)
	assert.InDelta(t, 1500, r.TotalIncome, 0.001)
	assert.Zero(t, r.Expenses.Maintenance)

	_, err = svc.OwnerReport(ctx, ownerOne, "owner-2", "year")
	assert.Equal(t, http.StatusForbidden, statusOf(t, err))

	_, err = svc.OwnerReport(ctx, manager, "mgr-1", "year")
	assert.Equal(t, http.StatusForbidden, statusOf(t, err))
}

type fakeRevoker struct {
	revoked map[string]time.Time
}

func (f *fakeRevoker) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	f.revoked[tokenID] = expiresAt
	return nil
}

func (f *fakeRevoker) IsRevoked(ctx context.Context, tokenID string) bool {
	_, ok := f.revoked[tokenID]
	return ok
}

func newAuthService(t *testing.T, f *fixture) (*AuthService, *fakeRevoker) {
	t.Helper()
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpirationHours = 1

	hash, err := auth.HashPassword("password123")
	require.NoError(t, err)
	require.NoError(t, f.store.Users().Create(context.Background(), &models.User{
		ID: "owner-1", Email: "owner@example.com", PasswordHash: hash, Name: "Olive Owner", Role: models.RoleOwner,
	}))

	revoker := &fakeRevoker{revoked: map[string]time.Time{}}
	svc := NewAuthService(f.store.Users(), auth.NewJWTManager(cfg), revoker)
	svc.now = clock
	return svc, revoker
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	f := newFixture(t)
	svc, _ := newAuthService(t, f)
	ctx := context.Background()

	_, unknown := svc.Login(ctx, &models.LoginRequest{Email: "nobody@example.com", Password: "password123"})
	_, wrong := svc.Login(ctx, &models.LoginRequest{Email: "owner@example.com", Password: "password999"})

	assert.Same(t, apperr.ErrInvalidCredentials, unknown)
	assert.Same(t, apperr.ErrInvalidCredentials, wrong)
	assert.Equal(t, http.StatusUnauthorized, statusOf(t, wrong))
}

func TestLoginAndAuthenticate(t *testing.T) {
	f := newFixture(t)
	svc, revoker := newAuthService(t, f)
	ctx := context.Background()

	resp, err := svc.Login(ctx, &models.LoginRequest{Email: "owner@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "owner-1", resp.User.ID)
	require.NotEmpty(t, resp.Token)

	user, err := svc.Authenticate(ctx, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, models.RoleOwner, user.Role)
	assert.Equal(t, ownerOne, Identity(user))

	require.NoError(t, svc.Logout(ctx, resp.Token))
	assert.Len(t, revoker.revoked, 1)

	_, err = svc.Authenticate(ctx, resp.Token)
	assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))

	_, err = svc.Authenticate(ctx, "garbage")
	assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))
}

func TestRegister(t *testing.T) {
	f := newFixture(t)
	svc, _ := newAuthService(t, f)
	ctx := context.Background()

	req := &models.RegisterRequest{Email: "new@example.com", Password: "secret1", Name: "Nia", Role: models.RoleTenant}
	resp, err := svc.Register(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, models.RoleTenant, resp.User.Role)
	assert.NotEqual(t, "secret1", resp.User.PasswordHash)
	assert.NotEmpty(t, resp.Token)

	_, err = svc.Register(ctx, req)
	assert.Same(t, apperr.ErrUserAlreadyExists, err)

	_, err = svc.Register(ctx, &models.RegisterRequest{Email: "bad", Password: "123", Name: "N", Role: "admin"})
	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
}

func TestAuthenticateDeletedUser(t *testing.T) {
	f := newFixture(t)
	svc, _ := newAuthService(t, f)

	token, err := svc.Tokens.GenerateToken(&models.User{ID: "ghost", Role: models.RoleManager})
	require.NoError(t, err)

	_, err = svc.Authenticate(context.Background(), token)
	assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))
}

type fakeObjects struct {
	puts    map[string]string
	deleted []string
}

func (f *fakeObjects) Put(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	f.puts[key] = string(data)
	return "https://files.example.com/" + key, nil
}

func (f *fakeObjects) Delete(ctx context.Context, objectURL string) error {
	f.deleted = append(f.deleted, objectURL)
	return nil
}

func TestDocumentUploadWithoutObjectStore(t *testing.T) {
	f := newFixture(t)
	svc := NewDocumentService(f.store.Documents(), f.resolver, nil)
	svc.now = clock

	d, err := svc.Upload(context.Background(), manager, &models.UploadDocumentRequest{
		Name: "lease.pdf", Type: "lease", PropertyID: ptr("p1"),
	}, &FileUpload{Filename: "lease.pdf", Body: strings.NewReader("x")})
	require.NoError(t, err)
	assert.Equal(t, "/uploads/1718442000000-lease.pdf", d.URL)
	assert.Equal(t, "mgr-1", d.UploadedBy)
}

func TestDocumentUploadAndDelete(t *testing.T) {
	f := newFixture(t)
	objects := &fakeObjects{puts: map[string]string{}}
	svc := NewDocumentService(f.store.Documents(), f.resolver, objects)
	svc.now = clock
	ctx := context.Background()

	d, err := svc.Upload(ctx, manager, &models.UploadDocumentRequest{
		Name: "Receipt June", Type: "receipt", PropertyID: ptr("p1"), TenantID: ptr("t1"),
	}, &FileUpload{Filename: "receipt.pdf", ContentType: "application/pdf", Body: strings.NewReader("%PDF")})
	require.NoError(t, err)
	assert.Equal(t, "https://files.example.com/documents/1718442000000-receipt.pdf", d.URL)
	assert.Equal(t, "%PDF", objects.puts["documents/1718442000000-receipt.pdf"])

	visible, err := svc.List(ctx, tenantUser, models.RecordFilter{})
	require.NoError(t, err)
	assert.Len(t, visible, 1)

	hidden, err := svc.List(ctx, ownerTwo, models.RecordFilter{})
	require.NoError(t, err)
	assert.Empty(t, hidden)

	require.NoError(t, svc.Delete(ctx, manager, d.ID))
	assert.Equal(t, []string{d.URL}, objects.deleted)

	_, err = svc.Get(ctx, manager, d.ID)
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))
}
