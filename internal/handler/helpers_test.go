package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/msomdec/little-lemon/internal/handler"
	"github.com/msomdec/little-lemon/internal/remote"
	"github.com/msomdec/little-lemon/internal/repository/sqlite"
	"github.com/msomdec/little-lemon/internal/service"
)

const testMenuBody = `{"menu":[
	{"id":1,"title":"Greek Salad","description":"Crispy lettuce and feta","price":"10","image":"https://example.com/greek.jpg","category":"starters"},
	{"id":2,"title":"Bruschetta","description":"Grilled bread with garlic","price":"7","image":"https://example.com/bruschetta.jpg","category":"starters"},
	{"id":3,"title":"Lemon Dessert","description":"Ricotta cake","price":"5","image":"https://example.com/lemon.jpg","category":"desserts"}
]}`

type testEnv struct {
	server  *httptest.Server
	catalog *service.MenuCatalog
	db      *sqlite.DB
}

// newTestEnv wires the real stack against a fake menu endpoint that answers
// with status and body.
func newTestEnv(t *testing.T, status int, body string) *testEnv {
	t.Helper()

	menuSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(menuSrv.Close)

	db, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("New DB: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	catalog := service.NewMenuCatalog(db.Menu(), remote.NewHTTPMenuSource(menuSrv.URL, time.Second))
	profiles := service.NewProfileService(db.Profiles())

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, catalog, profiles)

	srv := httptest.NewServer(handler.Middleware(mux, []string{"*"}))
	t.Cleanup(srv.Close)

	return &testEnv{server: srv, catalog: catalog, db: db}
}
