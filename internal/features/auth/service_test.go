package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-estate-crm/internal/common/models"
	"go-estate-crm/internal/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(backend storage.Backend) SessionService {
	return NewSessionService(NewSessionRepository(storage.NewStore(backend, "", nil)), zap.NewNop())
}

func TestSessionService_LoginAdmin(t *testing.T) {
	ctx := context.Background()
	backend := storage.NewMemoryBackend()
	svc := newTestService(backend)

	ok, err := svc.Login(ctx, "admin@isearch.com", "admin123")
	require.NoError(t, err)
	require.True(t, ok)

	user := svc.Current()
	require.NotNil(t, user)
	assert.Equal(t, models.RoleAdmin, user.Role)
	assert.True(t, svc.IsAdmin())
	assert.True(t, svc.CanAccessSettings())

	raw, found, err := backend.Get(ctx, models.KeyCurrentUser)
	require.NoError(t, err)
	require.True(t, found)
	assert.NotContains(t, string(raw), "admin123")
	assert.NotContains(t, string(raw), "password")
}

func TestSessionService_LoginFailureKeepsSession(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(storage.NewMemoryBackend())

	ok, err := svc.Login(ctx, "admin@isearch.com", "wrong")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, svc.Current())

	ok, err = svc.Login(ctx, "ahmed@isearch.com", "sales123")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = svc.Login(ctx, "sara@isearch.com", "bad")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, "sales-1", svc.Current().ID)
	assert.False(t, svc.CanAccessSettings())
}

func TestSessionService_InactiveUserCannotLogin(t *testing.T) {
	impl := newTestService(storage.NewMemoryBackend()).(*SessionServiceImpl)
	impl.Roster = []models.Credential{{User: models.User{ID: "x", Email: "x@isearch.com", Role: models.RoleSales}, Password: "pw"}}

	ok, err := impl.Login(context.Background(), "x@isearch.com", "pw")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSessionService_RehydratesAndLogsOut(t *testing.T) {
	ctx := context.Background()
	backend := storage.NewMemoryBackend()

	first := newTestService(backend)
	ok, err := first.Login(ctx, "sara@isearch.com", "sales123")
	require.NoError(t, err)
	require.True(t, ok)

	second := newTestService(backend)
	require.NotNil(t, second.Current())
	assert.Equal(t, "sales-2", second.Current().ID)

	require.NoError(t, second.Logout(ctx))
	assert.Nil(t, second.Current())
	assert.Nil(t, newTestService(backend).Current())

	require.NoError(t, second.Logout(ctx))
}

func TestFilterVisible(t *testing.T) {
	leads := models.DefaultLeads()
	admin := &models.User{ID: "admin-1", Role: models.RoleAdmin}
	sales := &models.User{ID: "sales-1", Role: models.RoleSales}

	assert.Empty(t, FilterVisible(nil, leads))
	assert.Equal(t, leads, FilterVisible(admin, leads))

	visible := FilterVisible(sales, leads)
	ids := []string{}
	for _, l := range visible {
		assert.True(t, l.AssignedTo == "sales-1" || l.AssignedTo == "")
		ids = append(ids, l.ID)
	}
	assert.Equal(t, []string{"1", "4", "5", "6"}, ids)
}

func TestAuthController_Login(t *testing.T) {
	svc := newTestService(storage.NewMemoryBackend())
	app := fiber.New()
	NewAuthApi(NewAuthController(svc)).Setup(app)

	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(`{"email":"admin@isearch.com","password":"nope"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req = httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(`{"email":"admin@isearch.com","password":"admin123"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, svc.IsAdmin())

	req = httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(`{"email":""}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAuthController_Session(t *testing.T) {
	svc := newTestService(storage.NewMemoryBackend())
	app := fiber.New()
	NewAuthApi(NewAuthController(svc)).Setup(app)

	session := func() SessionResponse {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/session", nil))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var body SessionResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		return body
	}

	assert.False(t, session().Authenticated)

	ok, err := svc.Login(context.Background(), "ahmed@isearch.com", "sales123")
	require.NoError(t, err)
	require.True(t, ok)

	body := session()
	assert.True(t, body.Authenticated)
	assert.Equal(t, "sales", body.Role)
	assert.False(t, body.CanAccessSettings)

	ok, err = svc.Login(context.Background(), "admin@isearch.com", "admin123")
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, session().CanAccessSettings)
}
