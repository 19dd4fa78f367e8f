package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"mascotas-shop/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.BcryptCost = bcrypt.MinCost
	return cfg
}

func startApp(t *testing.T, cfg *config.Config) *testShop {
	t.Helper()
	app, err := NewApp(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { app.Close() })

	srv := httptest.NewServer(NewRouter(app.Handler))
	t.Cleanup(srv.Close)
	return &testShop{srv: srv}
}

// shopperFlow walks a shopper through login, two adds, the cart page and
// logout against whatever stores cfg selects.
func shopperFlow(t *testing.T, shop *testShop) {
	t.Helper()
	c := shop.client(t)

	resp := shop.login(t, c, "demo@mascotas.com", "123456")
	require.Equal(t, http.StatusFound, resp.StatusCode)
	require.Equal(t, "/products", resp.Header.Get("Location"))

	resp, body := shop.get(t, c, "/products")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 10, strings.Count(body, `class="card product"`))

	_, body = shop.postJSON(t, c, "/agregar-carrito", `{"productoId": 3, "cantidad": 1}`)
	assert.Contains(t, body, `"totalItems":1`)
	_, body = shop.postJSON(t, c, "/agregar-carrito", `{"productoId": "gato", "cantidad": "dos"}`)
	assert.Contains(t, body, `"totalItems":2`)

	resp, body = shop.get(t, c, "/carrito")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Royal Canin Mini Adult")
	assert.Contains(t, body, "Producto #gato")

	resp, _ = shop.get(t, c, "/logout")
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	resp, _ = shop.get(t, c, "/products")
	assert.Equal(t, http.StatusFound, resp.StatusCode)

	shop.login(t, c, "demo@mascotas.com", "123456")
	_, body = shop.postJSON(t, c, "/agregar-carrito", `{"productoId": 1}`)
	assert.Contains(t, body, `"totalItems":1`)
}

func TestNewApp_DefaultStores(t *testing.T) {
	shop := startApp(t, testConfig())
	shopperFlow(t, shop)
}

func TestNewApp_SQLiteAndRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := testConfig()
	cfg.StoreDriver = "sqlite"
	cfg.DatabaseDSN = "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	cfg.CartDriver = "redis"
	cfg.CacheType = "redis"
	cfg.RedisAddr = mr.Addr()

	shop := startApp(t, cfg)
	shopperFlow(t, shop)

	c := shop.client(t)
	resp, body := shop.postForm(t, c, "/register", url.Values{
		"nombre":          {"Ana"},
		"email":           {"ana@example.com"},
		"password":        {"secreto"},
		"confirmPassword": {"secreto"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "¡Registro exitoso!")

	resp = shop.login(t, c, "ana@example.com", "secreto")
	assert.Equal(t, "/products", resp.Header.Get("Location"))

	var sessions, carts int
	for _, key := range mr.Keys() {
		switch {
		case strings.HasPrefix(key, "session:"):
			sessions++
		case strings.HasPrefix(key, "cart:"):
			carts++
			assert.Equal(t, cfg.SessionTTL, mr.TTL(key))
		}
	}
	assert.Equal(t, 2, sessions, "the demo shopper's second session and Ana's")
	assert.Equal(t, 1, carts)

	resp, _ = shop.get(t, c, "/reset")
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	for _, key := range mr.Keys() {
		assert.False(t, strings.HasPrefix(key, "cart:"), "reset drops every cart")
	}
}

func TestNewApp_UnknownDriver(t *testing.T) {
	cfg := testConfig()
	cfg.StoreDriver = "postgres"
	_, err := NewApp(context.Background(), cfg)
	assert.Error(t, err)

	cfg = testConfig()
	cfg.CartDriver = "mongo"
	_, err = NewApp(context.Background(), cfg)
	assert.Error(t, err)
}
