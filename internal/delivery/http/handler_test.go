package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpdelivery "github.com/mjohndus/sepa-qr-data/internal/delivery/http"
	"github.com/mjohndus/sepa-qr-data/internal/infrastructure/memory"
	"github.com/mjohndus/sepa-qr-data/internal/infrastructure/qrgenerator"
	"github.com/mjohndus/sepa-qr-data/internal/usecase/generateqr"
	"github.com/mjohndus/sepa-qr-data/internal/usecase/issue"
	"github.com/mjohndus/sepa-qr-data/internal/usecase/lookup"
)

const validBody = `{"name":"Red Cross","iban":"BE72000000001616","amount":"10","remittance_text":"Donation"}`

func newServer(t *testing.T) *httptest.Server {
	t.Helper()

	repo := memory.NewPayloadRepo()
	handler := httpdelivery.NewHandler(
		issue.NewUseCase(repo),
		lookup.NewUseCase(repo),
		generateqr.NewUseCase(qrgenerator.NewGenerator(256), repo),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)

	srv := httptest.NewServer(httpdelivery.NewRouter(handler))
	t.Cleanup(srv.Close)
	return srv
}

func postIssue(t *testing.T, srv *httptest.Server, key, body string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/epc", strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if key != "" {
		req.Header.Set("X-Idempotency-Key", key)
	}

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestHandleIssue(t *testing.T) {
	srv := newServer(t)

	resp := postIssue(t, srv, "key-1", validBody)

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decode[httpdelivery.IssueResponse](t, resp)
	assert.Equal(t, "BCD\n002\n1\nSCT\n\nRed Cross\nBE72000000001616\nEUR10.00\n\n\nDonation", body.Payload)
	assert.False(t, body.Replayed)
	_, err := uuid.Parse(body.ID)
	assert.NoError(t, err)
}

func TestHandleIssue_Idempotency(t *testing.T) {
	srv := newServer(t)

	first := decode[httpdelivery.IssueResponse](t, postIssue(t, srv, "retry", validBody))

	resp := postIssue(t, srv, "retry", validBody)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	second := decode[httpdelivery.IssueResponse](t, resp)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.Payload, second.Payload)
	assert.True(t, second.Replayed)
}

func TestHandleIssue_BadRequests(t *testing.T) {
	srv := newServer(t)

	t.Run("missing_key", func(t *testing.T) {
		resp := postIssue(t, srv, "", validBody)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("invalid_json", func(t *testing.T) {
		resp := postIssue(t, srv, "k-json", `{"name":`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("unknown_field", func(t *testing.T) {
		resp := postIssue(t, srv, "k-field", `{"name":"a","iban":"b","amount_cents":5}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestHandleIssue_ValidationError(t *testing.T) {
	srv := newServer(t)

	resp := postIssue(t, srv, "k-invalid", `{"name":"Red Cross","iban":"BE72000000001616","currency":"XXX"}`)

	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	body := decode[httpdelivery.ErrorResponse](t, resp)
	assert.Equal(t, "currency", body.Field)
	assert.Equal(t, "invalid format", body.Kind)
}

func TestHandleGet(t *testing.T) {
	srv := newServer(t)
	issued := decode[httpdelivery.IssueResponse](t, postIssue(t, srv, "k-get", validBody))

	resp, err := srv.Client().Get(srv.URL + "/api/epc/" + issued.ID)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, issued.Payload, string(body))
}

func TestHandleGet_NotFound(t *testing.T) {
	srv := newServer(t)

	resp, err := srv.Client().Get(srv.URL + "/api/epc/" + uuid.NewString())
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp2, err := srv.Client().Get(srv.URL + "/api/epc/not-a-uuid")
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp2.StatusCode)
}

func TestHandleStoredQR(t *testing.T) {
	srv := newServer(t)
	issued := decode[httpdelivery.IssueResponse](t, postIssue(t, srv, "k-qr", validBody))

	resp, err := srv.Client().Get(srv.URL + "/api/epc/" + issued.ID + "/qr")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(body, []byte("\x89PNG")))
}

func TestHandleQR(t *testing.T) {
	srv := newServer(t)

	resp, err := srv.Client().Post(srv.URL+"/api/epc/qr", "application/json", strings.NewReader(validBody))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
}

func TestHandleQR_ValidationError(t *testing.T) {
	srv := newServer(t)

	resp, err := srv.Client().Post(srv.URL+"/api/epc/qr", "application/json",
		strings.NewReader(`{"name":"Red Cross","iban":"BE72000000001616","version":1}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	body := decode[httpdelivery.ErrorResponse](t, resp)
	assert.Equal(t, "bic", body.Field)
	assert.Equal(t, "missing required field", body.Kind)
}

func TestHandleQR_CharacterOutsideCharset(t *testing.T) {
	srv := newServer(t)

	resp, err := srv.Client().Post(srv.URL+"/api/epc/qr", "application/json",
		strings.NewReader(`{"name":"Łukasz","iban":"PL61109010140000071219812874","character_set":2}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	body := decode[httpdelivery.ErrorResponse](t, resp)
	assert.Contains(t, body.Error, "outside its declared character set")
}

func TestHandleCurrencies(t *testing.T) {
	srv := newServer(t)

	resp, err := srv.Client().Get(srv.URL + "/api/epc/currencies")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, decode[[]string](t, resp), "EUR")
}
