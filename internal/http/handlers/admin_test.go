package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"store-status-service/internal/app/status"
	"store-status-service/internal/poller"
	"store-status-service/internal/providers"
	"store-status-service/internal/testutil"
)

type stubReloader struct {
	err    error
	status poller.Status
	calls  int
}

func (s *stubReloader) Refresh(ctx context.Context) error {
	_ = ctx
	s.calls++
	return s.err
}

func (s *stubReloader) Status() poller.Status {
	return s.status
}

func reloadRequest(token string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/admin/reload", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestAdminReloadRequiresAuth(t *testing.T) {
	reloader := &stubReloader{}
	h := NewAdminHandler(reloader, "secret", nil)

	for _, token := range []string{"", "wrong"} {
		rr := testutil.ServeRequest(http.HandlerFunc(h.Reload), reloadRequest(token))
		testutil.AssertStatus(t, rr, http.StatusUnauthorized)
	}
	if reloader.calls != 0 {
		t.Fatalf("expected no reloads without auth, got %d", reloader.calls)
	}
}

func TestAdminReloadDisabledWithoutToken(t *testing.T) {
	h := NewAdminHandler(&stubReloader{}, "", nil)
	rr := testutil.ServeRequest(http.HandlerFunc(h.Reload), reloadRequest(""))
	testutil.AssertStatus(t, rr, http.StatusUnauthorized)
}

func TestAdminReloadRejectsGet(t *testing.T) {
	h := NewAdminHandler(&stubReloader{}, "secret", nil)
	rr := testutil.Serve(http.HandlerFunc(h.Reload), http.MethodGet, "/admin/reload", nil)
	testutil.AssertStatus(t, rr, http.StatusMethodNotAllowed)
}

func TestAdminReloadWithoutReloader(t *testing.T) {
	h := NewAdminHandler(nil, "secret", nil)
	rr := testutil.ServeRequest(http.HandlerFunc(h.Reload), reloadRequest("secret"))
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
}

func TestAdminReloadSuccess(t *testing.T) {
	reloader := &stubReloader{status: poller.Status{
		Source: "file",
		State:  status.StateOpen,
		Label:  "Open now • Closes 8:00 pm",
	}}
	h := NewAdminHandler(reloader, "secret", nil)

	rr := testutil.ServeRequest(http.HandlerFunc(h.Reload), reloadRequest("secret"))
	testutil.AssertStatus(t, rr, http.StatusOK)

	var body map[string]string
	testutil.DecodeJSON(t, rr, &body)
	if body["status"] != "ok" || body["source"] != "file" || body["state"] != "open" {
		t.Fatalf("unexpected body %+v", body)
	}
	if reloader.calls != 1 {
		t.Fatalf("expected one reload, got %d", reloader.calls)
	}
}

func TestAdminReloadValidationError(t *testing.T) {
	reloader := &stubReloader{err: providers.Invalid("file", "hours[2].open", "expected HH:MM")}
	h := NewAdminHandler(reloader, "secret", nil)

	rr := testutil.ServeRequest(http.HandlerFunc(h.Reload), reloadRequest("secret"))
	testutil.AssertStatus(t, rr, http.StatusUnprocessableEntity)
	if !strings.Contains(rr.Body.String(), "hours[2].open") {
		t.Fatalf("expected field path in body, got %s", rr.Body.String())
	}
}

func TestAdminReloadProviderFailure(t *testing.T) {
	reloader := &stubReloader{err: errors.Join(providers.ErrProviderUnavailable, errors.New("open store.yaml: no such file"))}
	logger, buf := testutil.NewBufferLogger()
	h := NewAdminHandler(reloader, "secret", logger)

	rr := testutil.ServeRequest(http.HandlerFunc(h.Reload), reloadRequest("secret"))
	testutil.AssertStatus(t, rr, http.StatusBadGateway)
	if strings.Contains(rr.Body.String(), "store.yaml") {
		t.Fatalf("expected provider detail to stay out of the response, got %s", rr.Body.String())
	}
	if !strings.Contains(buf.String(), "admin reload failed") {
		t.Fatalf("expected failure to be logged, got %s", buf.String())
	}
}
