package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"

	"sreepix-backend/config"
	"sreepix-backend/controllers"
	"sreepix-backend/routes"
	"sreepix-backend/services"
	"sreepix-backend/storage"
	"sreepix-backend/utils"
)

type testEnv struct {
	router *gin.Engine
	store  *storage.FileStore
	token  string
}

// newTestEnv builds the real router over a file store in a temp dir, with
// calendar and SMS integrations deliberately unconfigured so nothing
// attempts the network.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")

	cfg := config.Load()
	cfg.OwnerUsername = "owner"
	cfg.OwnerPassword = "let-me-in"
	cfg.OwnerPasswordHash = ""
	cfg.GoogleServiceAccountEmail = ""
	cfg.GoogleServiceAccountKey = ""
	cfg.GoogleCalendarID = ""
	cfg.TwilioAccountSID = ""
	cfg.TwilioAuthToken = ""

	store := storage.NewFileStore(filepath.Join(t.TempDir(), "services.json"))

	authCtl := &controllers.AuthController{Cfg: cfg}
	serviceCtl := &controllers.ServiceController{Store: store}
	bookingCtl := &controllers.BookingController{
		Store:    store,
		Invoices: services.NewInvoiceService(cfg),
		Calendar: services.NewCalendarService(cfg),
		SMS:      services.NewSMSService(cfg),
	}

	token, err := utils.GenerateToken("owner")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	return &testEnv{
		router: routes.SetupRouter(authCtl, serviceCtl, bookingCtl),
		store:  store,
		token:  token,
	}
}

func (e *testEnv) do(t *testing.T, method, path, body string, authed bool) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, newReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		req.Header.Set("Authorization", "Bearer "+e.token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}
