package gateway

import (
	"io"
	"net/http"
	"strings"
	"time"

	"canteen/httpx"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	CanteenSvcURL   string
	AnalyticsSvcURL string
}

type Gateway struct {
	config Config
	client HTTPClient
	log    *logrus.Entry
}

func NewGateway(config Config, client HTTPClient, log *logrus.Entry) *Gateway {
	return &Gateway{
		config: Config{
			CanteenSvcURL:   strings.TrimRight(config.CanteenSvcURL, "/"),
			AnalyticsSvcURL: strings.TrimRight(config.AnalyticsSvcURL, "/"),
		},
		client: client,
		log:    log,
	}
}

func (g *Gateway) HealthCheck(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"service":   "api-gateway",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

var hopHeaders = map[string]bool{
	"Connection":        true,
	"Keep-Alive":        true,
	"Transfer-Encoding": true,
	"Upgrade":           true,
}

func copyHeaders(dst, src http.Header) {
	for k, v := range src {
		if hopHeaders[http.CanonicalHeaderKey(k)] {
			continue
		}
		dst[k] = v
	}
}

// ProxyRequest forwards r to targetURL. The upstream call is bound to the
// client's request context, so closing a listener stream ends it upstream too.
func (g *Gateway) ProxyRequest(w http.ResponseWriter, r *http.Request, targetURL string) {
	requestID := r.Header.Get(httpx.RequestIDHeader)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	logger := g.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"method":     r.Method,
		"path":       r.URL.Path,
		"upstream":   targetURL,
	})
	logger.Debug("proxying request")

	url := targetURL + r.URL.Path
	if r.URL.RawQuery != "" {
		url += "?" + r.URL.RawQuery
	}

	req, err := http.NewRequestWithContext(r.Context(), r.Method, url, r.Body)
	if err != nil {
		logger.WithError(err).Error("Failed to create upstream request")
		httpx.WriteJSON(w, http.StatusInternalServerError, httpx.ErrorBody{Error: "Something went wrong."})
		return
	}
	copyHeaders(req.Header, r.Header)
	req.Header.Set(httpx.RequestIDHeader, requestID)

	resp, err := g.client.Do(req)
	if err != nil {
		logger.WithError(err).Error("Upstream unavailable")
		httpx.WriteJSON(w, http.StatusBadGateway, httpx.ErrorBody{Error: "Service unavailable."})
		return
	}
	defer resp.Body.Close()

	copyHeaders(w.Header(), resp.Header)
	w.Header().Set(httpx.RequestIDHeader, requestID)
	w.WriteHeader(resp.StatusCode)

	if strings.HasPrefix(resp.Header.Get("Content-Type"), "text/event-stream") {
		g.stream(w, resp.Body, logger)
		return
	}
	if _, err := io.Copy(w, resp.Body); err != nil {
		logger.WithError(err).Warn("Failed to copy response")
	}
}

// stream relays server-sent events chunk by chunk.
func (g *Gateway) stream(w http.ResponseWriter, body io.Reader, logger *logrus.Entry) {
	flusher, _ := w.(http.Flusher)
	buf := make([]byte, 4096)
	for {
		n, err := body.Read(buf)
		if n > 0 {
			if _, werr := w.Write(buf[:n]); werr != nil {
				return
			}
			if flusher != nil {
				flusher.Flush()
			}
		}
		if err != nil {
			if err != io.EOF {
				logger.WithError(err).Debug("Event stream closed")
			}
			return
		}
	}
}

// Upstream picks the service that owns path; "" means no route.
func (g *Gateway) Upstream(path string) string {
	switch {
	case strings.HasPrefix(path, "/api/analytics/"):
		return g.config.AnalyticsSvcURL
	case strings.HasPrefix(path, "/api/"), strings.HasPrefix(path, "/uploads/"):
		return g.config.CanteenSvcURL
	}
	return ""
}

func (g *Gateway) RouteHandler(w http.ResponseWriter, r *http.Request) {
	target := g.Upstream(r.URL.Path)
	if target == "" {
		httpx.WriteJSON(w, http.StatusNotFound, httpx.ErrorBody{Error: "Route not found."})
		return
	}
	g.ProxyRequest(w, r, target)
}

func (g *Gateway) SetupRoutes() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", g.HealthCheck).Methods("GET")
	r.PathPrefix("/").HandlerFunc(g.RouteHandler)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type", httpx.RequestIDHeader},
		ExposedHeaders: []string{httpx.RequestIDHeader},
	})
	return c.Handler(r)
}
