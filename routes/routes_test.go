package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Animeshkhedkar0523/campus-smart-eats/configs"
	"github.com/Animeshkhedkar0523/campus-smart-eats/entity"
)

func setupServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, configs.SetupDatabase(db))

	cfg := &configs.Config{
		JWTSecret: "test-secret",
		JWTTTL:    7 * 24 * time.Hour,
	}
	r := gin.New()
	RegisterRoutes(r, db, cfg)
	return r, db
}

func seedAdmin(t *testing.T, db *gorm.DB) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("adminpw"), bcrypt.DefaultCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&entity.User{
		Name: "Admin", Email: "admin@campus.edu", Password: string(hash), Role: entity.RoleAdmin,
	}).Error)
}

func do(r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func register(t *testing.T, r *gin.Engine, name, email, password string) string {
	t.Helper()
	w := do(r, http.MethodPost, "/auth/register", "", gin.H{
		"name": name, "email": email, "password": password,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode(t, w)["token"].(string)
}

func login(t *testing.T, r *gin.Engine, email, password string) string {
	t.Helper()
	w := do(r, http.MethodPost, "/auth/login", "", gin.H{"email": email, "password": password})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return decode(t, w)["token"].(string)
}

// Walks the whole ordering flow: register, browse, cart, checkout, track,
// admin advances the status.
func TestOrderingEndToEnd(t *testing.T) {
	r, db := setupServer(t)
	seedAdmin(t, db)
	adminToken := login(t, r, "admin@campus.edu", "adminpw")

	register(t, r, "Asha", "a@x.com", "pw1")
	userToken := login(t, r, "a@x.com", "pw1")

	// Admin creates the menu item.
	w := do(r, http.MethodPost, "/menu", adminToken, gin.H{
		"name": "Idli Vada Combo", "description": "3 Idli, 1 Vada", "price": 50, "category": "breakfast",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	itemID := decode(t, w)["ID"].(float64)

	// Menu reads are public.
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/menu", "", nil).Code)

	// Add 2x to the cart and read it back.
	w = do(r, http.MethodPost, "/cart/add", userToken, gin.H{"menuItemId": itemID, "quantity": 2})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = do(r, http.MethodGet, "/cart", userToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	cart := decode(t, w)
	items := cart["items"].([]any)
	require.Len(t, items, 1)
	line := items[0].(map[string]any)
	assert.Equal(t, 2.0, line["quantity"])
	assert.Equal(t, 50.0, line["menuItem"].(map[string]any)["price"])

	// Checkout with the client-computed total, then clear the cart.
	w = do(r, http.MethodPost, "/orders", userToken, gin.H{
		"items":       []gin.H{{"menuItemId": itemID, "quantity": 2, "price": 50}},
		"totalAmount": 100,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	orderID := decode(t, w)["ID"].(float64)

	w = do(r, http.MethodDelete, "/cart/clear", userToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode(t, w)["items"])

	// Order history shows the pending order with the submitted total.
	w = do(r, http.MethodGet, "/orders/user", userToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var orders []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	require.Len(t, orders, 1)
	assert.Equal(t, "pending", orders[0]["status"])
	assert.Equal(t, 100.0, orders[0]["totalAmount"])

	// Admin advances the status, the user sees it.
	w = do(r, http.MethodPut, fmt.Sprintf("/orders/%.0f/status", orderID), adminToken, gin.H{"status": "preparing"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = do(r, http.MethodGet, "/orders/user", userToken, nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	assert.Equal(t, "preparing", orders[0]["status"])
}

func TestRegisterDuplicateEmailHTTP(t *testing.T) {
	r, _ := setupServer(t)

	register(t, r, "Asha", "a@x.com", "pw1")
	w := do(r, http.MethodPost, "/auth/register", "", gin.H{
		"name": "Impostor", "email": "a@x.com", "password": "pw2",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Original credential still works.
	login(t, r, "a@x.com", "pw1")
}

func TestLoginGenericFailureMessage(t *testing.T) {
	r, _ := setupServer(t)
	register(t, r, "Asha", "a@x.com", "pw1")

	wrongPw := do(r, http.MethodPost, "/auth/login", "", gin.H{"email": "a@x.com", "password": "nope"})
	noUser := do(r, http.MethodPost, "/auth/login", "", gin.H{"email": "ghost@x.com", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, wrongPw.Code)
	assert.Equal(t, http.StatusUnauthorized, noUser.Code)
	assert.Equal(t, wrongPw.Body.String(), noUser.Body.String())
}

func TestCartRequiresAuth(t *testing.T) {
	r, _ := setupServer(t)

	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodGet, "/cart", "", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodPost, "/cart/add", "", gin.H{"menuItemId": 1, "quantity": 1}).Code)
}

func TestCartUpdateAndClearNotFound(t *testing.T) {
	r, _ := setupServer(t)
	register(t, r, "Asha", "a@x.com", "pw1")
	token := login(t, r, "a@x.com", "pw1")

	// No cart exists yet: update and clear are 404, not silent successes.
	w := do(r, http.MethodPut, "/cart/update", token, gin.H{"menuItemId": 1, "quantity": 3})
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = do(r, http.MethodDelete, "/cart/clear", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// GET materializes the cart; clear on the now-empty cart succeeds.
	require.Equal(t, http.StatusOK, do(r, http.MethodGet, "/cart", token, nil).Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodDelete, "/cart/clear", token, nil).Code)

	// Cart exists but has no line for the item.
	w = do(r, http.MethodPut, "/cart/update", token, gin.H{"menuItemId": 1, "quantity": 3})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOrderCrossUserLookupIs404(t *testing.T) {
	r, db := setupServer(t)
	seedAdmin(t, db)

	register(t, r, "A", "a@x.com", "pw1")
	aToken := login(t, r, "a@x.com", "pw1")
	register(t, r, "B", "b@x.com", "pw2")
	bToken := login(t, r, "b@x.com", "pw2")

	w := do(r, http.MethodPost, "/orders", aToken, gin.H{
		"items":       []gin.H{{"menuItemId": 1, "quantity": 1, "price": 20}},
		"totalAmount": 20,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	orderID := decode(t, w)["ID"].(float64)

	path := fmt.Sprintf("/orders/%.0f", orderID)
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, path, aToken, nil).Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, path, bToken, nil).Code)
}

func TestAdminEndpointsGated(t *testing.T) {
	r, db := setupServer(t)
	seedAdmin(t, db)
	adminToken := login(t, r, "admin@campus.edu", "adminpw")

	register(t, r, "Asha", "a@x.com", "pw1")
	userToken := login(t, r, "a@x.com", "pw1")

	for _, route := range []struct{ method, path string }{
		{http.MethodGet, "/orders/admin/all"},
		{http.MethodGet, "/orders/admin/stats"},
		{http.MethodPost, "/menu"},
	} {
		assert.Equal(t, http.StatusForbidden, do(r, route.method, route.path, userToken, gin.H{}).Code,
			"%s %s must be admin-only", route.method, route.path)
	}

	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/orders/admin/all", adminToken, nil).Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/orders/admin/stats", adminToken, nil).Code)
}

func TestAdminStatsAndAllOrders(t *testing.T) {
	r, db := setupServer(t)
	seedAdmin(t, db)
	adminToken := login(t, r, "admin@campus.edu", "adminpw")

	register(t, r, "Asha", "a@x.com", "pw1")
	userToken := login(t, r, "a@x.com", "pw1")

	for _, total := range []float64{40, 60} {
		w := do(r, http.MethodPost, "/orders", userToken, gin.H{
			"items":       []gin.H{{"menuItemId": 1, "quantity": 1, "price": total}},
			"totalAmount": total,
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := do(r, http.MethodGet, "/orders/admin/stats", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	stats := decode(t, w)
	assert.Equal(t, 2.0, stats["ordersToday"])
	assert.Equal(t, 100.0, stats["revenueToday"])
	assert.Equal(t, 1.0, stats["totalUsers"])
	assert.Equal(t, 50.0, stats["avgOrderValue"])

	w = do(r, http.MethodGet, "/orders/admin/all", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var all []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &all))
	require.Len(t, all, 2)
	owner := all[0]["user"].(map[string]any)
	assert.Equal(t, "a@x.com", owner["email"])
	assert.Equal(t, "Asha", owner["name"])
	assert.NotContains(t, owner, "password")
}

func TestMenuAdminCRUD(t *testing.T) {
	r, db := setupServer(t)
	seedAdmin(t, db)
	adminToken := login(t, r, "admin@campus.edu", "adminpw")

	w := do(r, http.MethodPost, "/menu", adminToken, gin.H{"name": "Poha", "price": 30, "category": "breakfast"})
	require.Equal(t, http.StatusCreated, w.Code)
	id := decode(t, w)["ID"].(float64)

	w = do(r, http.MethodPut, fmt.Sprintf("/menu/%.0f", id), adminToken, gin.H{"price": 35, "available": false})
	require.Equal(t, http.StatusOK, w.Code)
	updated := decode(t, w)
	assert.Equal(t, 35.0, updated["price"])
	assert.Equal(t, false, updated["available"])
	assert.Equal(t, "Poha", updated["name"], "partial update keeps untouched fields")

	assert.Equal(t, http.StatusOK, do(r, http.MethodDelete, fmt.Sprintf("/menu/%.0f", id), adminToken, nil).Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, fmt.Sprintf("/menu/%.0f", id), "", nil).Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodPut, fmt.Sprintf("/menu/%.0f", id), adminToken, gin.H{"price": 1}).Code)
}
