package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/pergola"
	"github.com/aretw0/pergola/pkg/domain"
	"github.com/aretw0/pergola/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tattooConfig = `{
	"business_type": "tattoo",
	"tabs": [
		{"id": "tab_1", "label": "Dashboard", "components": [{"id": "calendar"}]},
		{"id": "tab_2", "label": "Clients", "components": [{"id": "clients"}]}
	]
}`

func post(t *testing.T, h http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func get(h http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("GET", path, nil))
	return w
}

func decodeResult(t *testing.T, w *httptest.ResponseRecorder) *pergola.Result {
	t.Helper()
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var res pergola.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.NotNil(t, res.Config)
	return &res
}

func TestValidate_NoTemplate(t *testing.T) {
	h := NewHandler(pergola.New())

	res := decodeResult(t, post(t, h, "/validate", `{"config": `+tattooConfig+`}`))

	assert.Equal(t, "tattoo", res.Config.BusinessType)
	require.NotNil(t, res.Report)
	for _, s := range res.Report.Stages {
		assert.NotEqual(t, domain.StageLocked, s.Stage)
	}
	assert.Empty(t, res.Report.Degraded)
}

func TestValidate_BuiltinTemplate(t *testing.T) {
	h := NewHandler(pergola.New())

	res := decodeResult(t, post(t, h, "/validate", `{"config": `+tattooConfig+`, "template_type": "tattoo"}`))

	for _, id := range []string{"clients", "waivers", "invoices"} {
		assert.True(t, res.Config.HasComponent(id), "locked component %s restored", id)
	}
	assert.LessOrEqual(t, len(res.Config.Tabs), domain.MaxTabs)
	assert.Empty(t, res.Report.Degraded)
}

func TestValidate_CustomTemplate(t *testing.T) {
	h := NewHandler(pergola.New())

	body := `{
		"config": ` + tattooConfig + `,
		"template": {
			"business_type": "tattoo",
			"tabs": [
				{"id": "tab_2", "label": "Clients", "components": [{"id": "clients"}]},
				{"id": "tab_3", "label": "Forms", "components": [{"id": "waivers", "_locked": true}]}
			]
		},
		"locked_ids": ["waivers", "ghost"]
	}`
	res := decodeResult(t, post(t, h, "/validate", body))

	assert.True(t, res.Config.HasComponent("waivers"))
	assert.Equal(t, []string{"ghost"}, res.Report.Degraded)
}

func TestValidate_Warnings(t *testing.T) {
	h := NewHandler(pergola.New())

	body := `{"config": {"business_type": "tattoo", "tabs": [
		{"id": "tab_1", "label": "Dashboard", "components": [{"id": "clients", "view": 7}]}
	]}}`
	res := decodeResult(t, post(t, h, "/validate", body))

	require.NotEmpty(t, res.Warnings)
	assert.Contains(t, strings.Join(res.Warnings, "\n"), "view")
}

func TestValidate_Rejected(t *testing.T) {
	h := NewHandler(pergola.New())

	tests := []struct {
		name string
		body string
		code int
	}{
		{"missing config", `{"template_type": "tattoo"}`, http.StatusBadRequest},
		{"config not an object", `{"config": "tabs"}`, http.StatusBadRequest},
		{"locked ids must be strings", `{"config": {}, "locked_ids": [1]}`, http.StatusBadRequest},
		{"locked ids without template", `{"config": {}, "locked_ids": ["clients"]}`, http.StatusBadRequest},
		{"unknown template", `{"config": {}, "template_type": "bakery"}`, http.StatusNotFound},
		{"invalid custom template", `{"config": {}, "template": {"locked_ids": ["x"]}}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := post(t, h, "/validate", tt.body)
			assert.Equal(t, tt.code, w.Code, w.Body.String())
		})
	}
}

func TestTemplates(t *testing.T) {
	h := NewHandler(pergola.New())

	w := get(h, "/templates")
	require.Equal(t, http.StatusOK, w.Code)
	var types []string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &types))
	assert.Contains(t, types, "tattoo")

	w = get(h, "/templates/tattoo")
	require.Equal(t, http.StatusOK, w.Code)
	var tpl struct {
		BusinessType string         `json:"business_type"`
		Config       *domain.Config `json:"config"`
		Locked       []string       `json:"locked_ids"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tpl))
	assert.Equal(t, "tattoo", tpl.BusinessType)
	assert.Contains(t, tpl.Locked, "waivers")
	assert.NotEmpty(t, tpl.Config.Tabs)

	w = get(h, "/templates/bakery")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDetect(t *testing.T) {
	h := NewHandler(pergola.New())

	w := post(t, h, "/detect", `{"description": "A small tattoo parlor downtown"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"business_type":"tattoo"`)

	w = post(t, h, "/detect", `{"description": "quantum computing consultancy"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = post(t, h, "/detect", `{"description": ""}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInfoAndSpec(t *testing.T) {
	h := NewHandler(pergola.New())

	w := get(h, "/info")
	require.Equal(t, http.StatusOK, w.Code)
	var info map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.Equal(t, "1.1.0", info["api_version"])
	assert.Equal(t, pergola.Version, info["version"])

	w = get(h, "/openapi.yaml")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("openapi: 3.0.3")))

	w = get(h, "/health")
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestCORS(t *testing.T) {
	h := NewHandler(pergola.New())

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("OPTIONS", "/validate", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestMetricsEndpoint(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := observability.NewMetrics(reg)
	h := NewHandler(
		pergola.New(pergola.WithLifecycleHooks(metrics.Hooks())),
		WithGatherer(reg),
	)

	post(t, h, "/validate", `{"config": `+tattooConfig+`}`)

	w := get(h, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "pergola_validations_total 1")
	assert.Contains(t, w.Body.String(), `pergola_stage_duration_seconds_count{stage="`+domain.StageFlags+`"} 1`)
}

func TestSubscribeEvents(t *testing.T) {
	h := NewHandler(pergola.New())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	wSub := httptest.NewRecorder()
	reqSub := httptest.NewRequest("GET", "/events?business_type=tattoo", nil).WithContext(ctx)

	done := make(chan struct{})
	go func() {
		defer close(done)
		h.ServeHTTP(wSub, reqSub)
	}()

	time.Sleep(100 * time.Millisecond) // Wait for subscription to register

	other := `{"config": {"business_type": "florist", "tabs": []}}`
	require.Equal(t, http.StatusOK, post(t, h, "/validate", other).Code)
	require.Equal(t, http.StatusOK, post(t, h, "/validate", `{"config": `+tattooConfig+`}`).Code)

	time.Sleep(50 * time.Millisecond)
	cancel()
	<-done

	output := wSub.Body.String()
	assert.Equal(t, "text/event-stream", wSub.Header().Get("Content-Type"))
	assert.Contains(t, output, "event: ping")
	assert.Equal(t, 1, strings.Count(output, "event: validation"))
	assert.Contains(t, output, `"business_type":"tattoo"`)
	assert.NotContains(t, output, "florist")
}

func TestStreamManager_CatchAll(t *testing.T) {
	sm := NewStreamManager(nil)

	all, cancelAll := sm.Subscribe("")
	defer cancelAll()
	tattoo, cancelTattoo := sm.Subscribe("tattoo")

	sm.Broadcast("tattoo", "a")
	sm.Broadcast("florist", "b")

	assert.Equal(t, "a", <-all)
	assert.Equal(t, "b", <-all)
	assert.Equal(t, "a", <-tattoo)

	cancelTattoo()
	_, open := <-tattoo
	assert.False(t, open)
	sm.Broadcast("tattoo", "c")
	assert.Equal(t, "c", <-all)
}
