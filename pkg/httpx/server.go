package httpx

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/unrolled/secure"
)

// ServerConfig holds the options for NewRouter.
type ServerConfig struct {
	ServiceName   string
	IsDevelopment bool
	// CORSAllowedOrigins is a comma-separated list of allowed origins.
	// "*" allows all origins (dev only).
	CORSAllowedOrigins string
	// RequestsPerMinute caps requests per client IP; zero means 600.
	RequestsPerMinute int
}

// Middlewares are the process-specific layers NewRouter slots into its stack.
// Nil entries are skipped.
type Middlewares struct {
	Recovery func(http.Handler) http.Handler
	Sentry   func(http.Handler) http.Handler
	Tracing  func(http.Handler) http.Handler
	Logging  func(http.Handler) http.Handler
}

const (
	defaultRequestsPerMinute = 600
	maxRequestBody           = 1 << 20 // 1 MB
	handlerTimeout           = 30 * time.Second

	// SwaggerPrefix is served with a CSP that lets the UI run its inline scripts.
	SwaggerPrefix = "/swagger/"

	apiCSP     = "default-src 'self'"
	swaggerCSP = "default-src 'self'; script-src 'self' 'unsafe-inline'; style-src 'self' 'unsafe-inline'; img-src 'self' data:"
)

// NewRouter returns a chi.Mux with the fridgekeeper middleware stack, outermost
// first: recovery, sentry, request ID, tracing, request log, real IP, per-IP
// rate limit, CORS, body cap, handler timeout, security headers.
func NewRouter(cfg ServerConfig, mw Middlewares) *chi.Mux {
	perMinute := cfg.RequestsPerMinute
	if perMinute <= 0 {
		perMinute = defaultRequestsPerMinute
	}

	stack := []func(http.Handler) http.Handler{
		mw.Recovery,
		mw.Sentry,
		middleware.RequestID,
		mw.Tracing,
		mw.Logging,
		middleware.RealIP,
		httprate.Limit(perMinute, time.Minute,
			httprate.WithKeyFuncs(httprate.KeyByIP),
			httprate.WithLimitHandler(tooManyRequests),
		),
		CORSMiddleware(cfg.CORSAllowedOrigins),
		RequestBodyLimit(maxRequestBody),
		middleware.Timeout(handlerTimeout),
		SecurityHeaders(cfg.IsDevelopment),
	}

	r := chi.NewRouter()
	for _, m := range stack {
		if m != nil {
			r.Use(m)
		}
	}
	return r
}

func tooManyRequests(w http.ResponseWriter, _ *http.Request) {
	JSONError(w, http.StatusTooManyRequests, "Too many requests")
}

// SecurityHeaders sets HSTS, frame, sniffing, referrer and permissions headers.
// Paths under SwaggerPrefix get a CSP relaxed for the Swagger UI.
func SecurityHeaders(isDevelopment bool) func(http.Handler) http.Handler {
	api := newSecure(apiCSP, isDevelopment)
	docs := newSecure(swaggerCSP, isDevelopment)

	return func(next http.Handler) http.Handler {
		apiNext := api.Handler(next)
		docsNext := docs.Handler(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.HasPrefix(r.URL.Path, SwaggerPrefix) {
				docsNext.ServeHTTP(w, r)
				return
			}
			apiNext.ServeHTTP(w, r)
		})
	}
}

func newSecure(csp string, isDevelopment bool) *secure.Secure {
	return secure.New(secure.Options{
		STSSeconds:            63072000,
		STSIncludeSubdomains:  true,
		FrameDeny:             true,
		ContentTypeNosniff:    true,
		BrowserXssFilter:      true,
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		ContentSecurityPolicy: csp,
		PermissionsPolicy:     "geolocation=(), microphone=(), camera=(), usb=(), magnetometer=(), gyroscope=()",
		IsDevelopment:         isDevelopment,
	})
}

// CORSMiddleware returns a CORS handler restricted to a comma-separated list
// of origins. "*" allows all origins (development only).
func CORSMiddleware(allowedOrigins string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   parseOrigins(allowedOrigins),
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: false,
		MaxAge:           300,
	})
}

func parseOrigins(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

// RequestBodyLimit caps the request body at maxBytes. Reads past the cap fail
// and handlers answer 413.
func RequestBodyLimit(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// NewServer returns an *http.Server with bounded timeouts.
func NewServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      handlerTimeout,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1 MB
	}
}
