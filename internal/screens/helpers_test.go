package screens_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/abcpharmacy/backoffice-golang/internal/api"
	"github.com/abcpharmacy/backoffice-golang/internal/apitest"
)

// newEnv spins up the in-memory backend and a client pointed at it.
func newEnv(t *testing.T) (*apitest.Server, *api.Client) {
	t.Helper()
	srv := apitest.NewServer()
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return srv, api.NewClient(ts.URL, 5*time.Second)
}
