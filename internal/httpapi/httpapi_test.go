package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tate-it/energy-toolbox-sub003/internal/engine"
	"github.com/tate-it/energy-toolbox-sub003/internal/offer"
	"github.com/tate-it/energy-toolbox-sub003/internal/offer/offertest"
	"github.com/tate-it/energy-toolbox-sub003/internal/wizard"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	e, err := engine.New()
	require.NoError(t, err)
	r := gin.New()
	r.Use(RequestIDMiddleware())
	SetupRouter(r, NewHandlers(e, zap.NewNop()))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
}

func TestFieldsEndpoint(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodGet, "/api/v1/fields", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Fields []fieldInfo `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Fields)
	assert.Equal(t, "identification.vatNumber", string(resp.Fields[0].ID))
}

func TestStepsEndpoint(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodGet, "/api/v1/steps", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Steps []stepInfo `json:"steps"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Steps, wizard.StepCount)
	assert.Equal(t, offer.SectionIdentification, resp.Steps[0].Section)
}

func TestValidateEndpoint(t *testing.T) {
	r := newTestRouter(t)

	t.Run("clean record", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/v1/validate", offertest.Valid())
		require.Equal(t, http.StatusOK, w.Code)

		var resp validateResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Clean)
		assert.NotEmpty(t, resp.Fields)
	})

	t.Run("empty record is dirty", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/v1/validate", map[string]any{})
		require.Equal(t, http.StatusOK, w.Code)

		var resp validateResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Clean)
	})

	t.Run("section scope", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/v1/validate?section=contacts", map[string]any{})
		require.Equal(t, http.StatusOK, w.Code)

		var resp validateResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotEmpty(t, resp.Fields)
		for _, f := range resp.Fields {
			assert.True(t, strings.HasPrefix(string(f.Field), "contacts."), "unexpected field %s", f.Field)
		}
	})

	t.Run("unknown section", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/v1/validate?section=nope", map[string]any{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/validate", bytes.NewBufferString("{"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown property rejected", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/v1/validate", map[string]any{"bogus": true})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCanAdvanceEndpoint(t *testing.T) {
	r := newTestRouter(t)

	t.Run("blocked step", func(t *testing.T) {
		o := offertest.Valid()
		o.Details.OfferType = nil
		w := doJSON(t, r, http.MethodPost, "/api/v1/steps/2/can-advance", o)
		require.Equal(t, http.StatusOK, w.Code)

		var gate wizard.Gate
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &gate))
		assert.False(t, gate.Allowed)
		assert.NotEmpty(t, gate.BlockingErrors)
	})

	t.Run("open step", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/v1/steps/2/can-advance", offertest.Valid())
		require.Equal(t, http.StatusOK, w.Code)

		var gate wizard.Gate
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &gate))
		assert.True(t, gate.Allowed)
	})

	t.Run("step id not a number", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/v1/steps/abc/can-advance", offertest.Valid())
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown step", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/v1/steps/42/can-advance", offertest.Valid())
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestExportEndpoint(t *testing.T) {
	r := newTestRouter(t)

	t.Run("clean record exports", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/v1/export?description=SUMMER", offertest.Valid())
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/xml", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Header().Get("Content-Disposition"), "12345678901_INSERIMENTO_SUMMER.XML")
		assert.Contains(t, w.Body.String(), "<PIVA_UTENTE>12345678901</PIVA_UTENTE>")
	})

	t.Run("dirty record refused", func(t *testing.T) {
		o := offertest.Valid()
		o.Contacts = nil
		w := doJSON(t, r, http.MethodPost, "/api/v1/export", o)
		require.Equal(t, http.StatusConflict, w.Code)

		var resp validateResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Clean)
	})
}
