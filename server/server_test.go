package server

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shail31-tech/Clinical-Notes-Summary/internal/profile"
	"github.com/shail31-tech/Clinical-Notes-Summary/store"
	"github.com/shail31-tech/Clinical-Notes-Summary/store/db/memory"
)

func newTestServer(t *testing.T, testProfile *profile.Profile) *Server {
	t.Helper()

	driver, err := memory.NewDB(testProfile)
	require.NoError(t, err)
	testStore := store.New(driver, testProfile)
	require.NoError(t, testStore.Migrate(context.Background()))

	s, err := NewServer(context.Background(), testProfile, testStore)
	require.NoError(t, err)
	return s
}

func TestHealthz(t *testing.T) {
	testProfile := &profile.Profile{Mode: "demo", Driver: "memory"}
	s := newTestServer(t, testProfile)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	s.echoServer.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Service ready.", rec.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	testProfile := &profile.Profile{Mode: "demo", Driver: "memory"}
	s := newTestServer(t, testProfile)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	s.echoServer.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestStartReportsBindFailure(t *testing.T) {
	// Occupy a port so Start cannot bind it.
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer listener.Close()
	port := listener.Addr().(*net.TCPAddr).Port

	testProfile := &profile.Profile{Mode: "demo", Driver: "memory", Addr: "127.0.0.1", Port: port}
	s := newTestServer(t, testProfile)

	require.NoError(t, s.Start(context.Background()))

	select {
	case err := <-s.Err():
		assert.Error(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("expected the bind failure to be reported")
	}
}
