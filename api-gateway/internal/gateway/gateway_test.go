package gateway_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"canteen/api-gateway/internal/gateway"
	"canteen/api-gateway/internal/mocks"
	"canteen/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testConfig = gateway.Config{
	CanteenSvcURL:   "http://canteen-svc/",
	AnalyticsSvcURL: "http://analytics-svc",
}

func response(status int, contentType, body string) *http.Response {
	resp := &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
	resp.Header.Set("Content-Type", contentType)
	return resp
}

func TestGateway_HealthCheck(t *testing.T) {
	gw := gateway.NewGateway(testConfig, nil, logger.Discard())

	rr := httptest.NewRecorder()
	gw.SetupRoutes().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	var body map[string]string
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "api-gateway", body["service"])
}

func TestGateway_Upstream(t *testing.T) {
	gw := gateway.NewGateway(testConfig, nil, logger.Discard())

	tests := []struct {
		path string
		want string
	}{
		{path: "/api/analytics/summary", want: "http://analytics-svc"},
		{path: "/api/orders/o1/listen", want: "http://canteen-svc"},
		{path: "/api/menu-items", want: "http://canteen-svc"},
		{path: "/uploads/abc.png", want: "http://canteen-svc"},
		{path: "/index.html", want: ""},
	}

	for _, testCase := range tests {
		t.Run(testCase.path, func(t *testing.T) {
			assert.Equal(t, testCase.want, gw.Upstream(testCase.path))
		})
	}
}

func TestGateway_ProxiesWithHeaders(t *testing.T) {
	client := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(testConfig, client, logger.Discard())

	client.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.URL.String() == "http://analytics-svc/api/analytics/trend?bucket=week" &&
			req.Header.Get("Authorization") == "Bearer staff" &&
			req.Header.Get("X-Request-ID") == "req-1"
	})).Return(response(http.StatusOK, "application/json", `[{"label":"2024-W19"}]`), nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/analytics/trend?bucket=week", nil)
	req.Header.Set("Authorization", "Bearer staff")
	req.Header.Set("X-Request-ID", "req-1")
	rr := httptest.NewRecorder()
	gw.SetupRoutes().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "req-1", rr.Header().Get("X-Request-ID"))
	assert.Contains(t, rr.Body.String(), "2024-W19")
}

func TestGateway_ForwardsBodyAndStatus(t *testing.T) {
	client := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(testConfig, client, logger.Discard())

	client.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		body, _ := io.ReadAll(req.Body)
		return req.Method == http.MethodPost && req.URL.Path == "/api/checkout" && string(body) == `{"paymentMethod":"cash"}`
	})).Return(response(http.StatusConflict, "application/json", `{"error":"Not enough stock."}`), nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/checkout", strings.NewReader(`{"paymentMethod":"cash"}`))
	rr := httptest.NewRecorder()
	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
	assert.JSONEq(t, `{"error":"Not enough stock."}`, rr.Body.String())
}

func TestGateway_RelaysEventStreams(t *testing.T) {
	client := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(testConfig, client, logger.Discard())
	events := "event: snapshot\ndata: {\"orderId\":\"o1\"}\n\n"
	client.On("Do", mock.Anything).Return(response(http.StatusOK, "text/event-stream", events), nil).Once()

	rr := httptest.NewRecorder()
	gw.RouteHandler(rr, httptest.NewRequest(http.MethodGet, "/api/orders/o1/listen", nil))

	assert.Equal(t, events, rr.Body.String())
	assert.True(t, rr.Flushed)
}

func TestGateway_UpstreamDown(t *testing.T) {
	client := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(testConfig, client, logger.Discard())
	client.On("Do", mock.Anything).Return(nil, errors.New("connection refused")).Once()

	rr := httptest.NewRecorder()
	gw.RouteHandler(rr, httptest.NewRequest(http.MethodGet, "/api/menu-items", nil))

	assert.Equal(t, http.StatusBadGateway, rr.Code)
}

func TestGateway_UnknownRoute(t *testing.T) {
	gw := gateway.NewGateway(testConfig, nil, logger.Discard())

	rr := httptest.NewRecorder()
	gw.RouteHandler(rr, httptest.NewRequest(http.MethodGet, "/admin", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
