package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"runtime"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/elys-network/aprcell/internal/display"
	"github.com/elys-network/aprcell/internal/logger"
	"github.com/elys-network/aprcell/internal/state"
	"github.com/elys-network/aprcell/internal/types"
)

var webLogger = logger.GetForComponent("web_server")

// DataSource is the snapshot store the server reads pools, users and the chain head from.
type DataSource interface {
	GetPool(ctx context.Context, id types.PoolID, account string) (types.Pool, error)
	ListPools(ctx context.Context, account string) ([]types.Pool, error)
	GetVaultUserData(ctx context.Context, vaultKey types.VaultKey, account string) (*types.VaultUserData, error)
	GetCurrentBlock(ctx context.Context) (*uint64, error)
	Ping(ctx context.Context) error
}

// ApyTables provides the APY quotes of a vault.
type ApyTables interface {
	Table(ctx context.Context, vaultKey types.VaultKey) (display.ApyTable, error)
}

// Dependencies are everything the server needs injected.
type Dependencies struct {
	Source        DataSource
	ApyTables     ApyTables
	Resolver      display.Resolver
	Translator    display.Translator
	VaultSettings func(types.VaultKey) types.VaultSettings
}

// WebServer serves resolved APR/APY cells and calculator parameters over HTTP
type WebServer struct {
	router  *mux.Router
	port    string
	deps    Dependencies
	metrics *metrics
}

// NewWebServer creates a new web server instance
func NewWebServer(port string, deps Dependencies) *WebServer {
	if port == "" {
		port = "8080"
	}
	if deps.VaultSettings == nil {
		deps.VaultSettings = func(types.VaultKey) types.VaultSettings { return types.VaultSettings{} }
	}
	if deps.Translator == nil {
		deps.Translator = NewCatalog(nil)
	}

	server := &WebServer{
		router:  mux.NewRouter(),
		port:    port,
		deps:    deps,
		metrics: newMetrics(),
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all HTTP routes
func (ws *WebServer) setupRoutes() {
	ws.router.HandleFunc("/health", ws.handleHealth).Methods("GET")
	ws.router.Handle("/metrics", promhttp.HandlerFor(ws.metrics.registry, promhttp.HandlerOpts{})).Methods("GET")

	api := ws.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", ws.handleHealth).Methods("GET")
	api.HandleFunc("/pools", ws.handleListPools).Methods("GET")
	api.HandleFunc("/pools/{id:[0-9]+}/apr", ws.handleGetPoolApr).Methods("GET")
	api.HandleFunc("/pools/{id:[0-9]+}/calculator", ws.handleGetCalculator).Methods("GET")

	ws.router.Use(ws.corsMiddleware)
	ws.router.Use(ws.loggingMiddleware)
}

// Handler exposes the router, mainly for tests.
func (ws *WebServer) Handler() http.Handler {
	return ws.router
}

// Start starts the web server
func (ws *WebServer) Start() error {
	webLogger.Info().Str("port", ws.port).Msg("Starting web server")

	server := &http.Server{
		Addr:         ":" + ws.port,
		Handler:      ws.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return server.ListenAndServe()
}

// resolve builds the display state of one pool from a fresh snapshot.
// Store failures are logged and degrade to a pending state.
func (ws *WebServer) resolve(ctx context.Context, pool types.Pool, account string, currentBlock *uint64) types.DisplayState {
	var result types.DisplayState
	defer func() { ws.metrics.observeState(result) }()

	if !pool.IsVault() {
		result = ws.deps.Resolver.Resolve(pool, nil, currentBlock, nil)
		return result
	}

	userData, err := ws.deps.Source.GetVaultUserData(ctx, pool.VaultKey, account)
	if err != nil {
		webLogger.Warn().Err(err).Str("vaultKey", string(pool.VaultKey)).Msg("Vault user data unavailable")
		// Position is unknown, so the cell falls back to the dual skeleton layout.
		result = types.Pending()
		return result
	}

	var oracle display.ApyOracle
	if ws.deps.ApyTables != nil {
		table, err := ws.deps.ApyTables.Table(ctx, pool.VaultKey)
		if err != nil {
			webLogger.Warn().Err(err).Str("vaultKey", string(pool.VaultKey)).Msg("Vault APY unavailable")
		} else {
			oracle = table
		}
	}

	result = ws.deps.Resolver.Resolve(pool, userData, currentBlock, oracle)
	return result
}

func (ws *WebServer) currentBlock(ctx context.Context) *uint64 {
	block, err := ws.deps.Source.GetCurrentBlock(ctx)
	if err != nil {
		webLogger.Warn().Err(err).Msg("Current block unavailable")
		return nil
	}
	return block
}

// handleHealth returns server health status
func (ws *WebServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	dbHealthy := true
	if err := ws.deps.Source.Ping(r.Context()); err != nil {
		webLogger.Warn().Err(err).Msg("Health check: database unreachable")
		dbHealthy = false
	}

	overallStatus := "OK"
	statusCode := http.StatusOK
	if !dbHealthy {
		overallStatus = "DEGRADED"
		statusCode = http.StatusServiceUnavailable
	}

	response := map[string]interface{}{
		"status":    overallStatus,
		"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
		"system": map[string]interface{}{
			"version":          runtime.Version(),
			"goroutines_count": runtime.NumGoroutine(),
		},
		"component": map[string]interface{}{
			"name":    "aprcell",
			"version": "1.0.0",
		},
		"database_healthy": dbHealthy,
	}

	ws.writeJSONResponse(w, statusCode, response)
}

// handleListPools returns the resolved cell of every pool
func (ws *WebServer) handleListPools(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	account := r.URL.Query().Get("account")
	opts := renderOptions(r)

	pools, err := ws.deps.Source.ListPools(ctx, account)
	if err != nil {
		webLogger.Error().Err(err).Msg("Failed to list pools")
		ws.writeErrorResponse(w, http.StatusInternalServerError, "Failed to retrieve pools")
		return
	}

	currentBlock := ws.currentBlock(ctx)
	cells := make([]types.Cell, 0, len(pools))
	for _, pool := range pools {
		st := ws.resolve(ctx, pool, account, currentBlock)
		cells = append(cells, display.RenderCell(pool, st, ws.deps.Translator, opts))
	}

	response := map[string]interface{}{
		"pools":         cells,
		"count":         len(cells),
		"current_block": currentBlock,
	}
	ws.writeJSONResponse(w, http.StatusOK, response)
}

// handleGetPoolApr returns the resolved cell of a single pool
func (ws *WebServer) handleGetPoolApr(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	account := r.URL.Query().Get("account")

	pool, ok := ws.loadPool(w, r, account)
	if !ok {
		return
	}

	st := ws.resolve(ctx, pool, account, ws.currentBlock(ctx))
	ws.writeJSONResponse(w, http.StatusOK, display.RenderCell(pool, st, ws.deps.Translator, renderOptions(r)))
}

// handleGetCalculator returns the parameters the ROI calculator opens with
func (ws *WebServer) handleGetCalculator(w http.ResponseWriter, r *http.Request) {
	account := r.URL.Query().Get("account")

	pool, ok := ws.loadPool(w, r, account)
	if !ok {
		return
	}

	view := types.CalculatorPool
	if pool.IsVault() {
		view = types.CalculatorFlexible
		if r.URL.Query().Get("view") == string(types.CalculatorLocked) {
			view = types.CalculatorLocked
		}
	}

	params := display.BuildCalculator(pool, view, ws.deps.VaultSettings(pool.VaultKey), ws.deps.Translator)
	ws.writeJSONResponse(w, http.StatusOK, params)
}

func (ws *WebServer) loadPool(w http.ResponseWriter, r *http.Request, account string) (types.Pool, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		ws.writeErrorResponse(w, http.StatusBadRequest, "Invalid pool ID")
		return types.Pool{}, false
	}

	pool, err := ws.deps.Source.GetPool(r.Context(), types.PoolID(id), account)
	if err != nil {
		if errors.Is(err, state.ErrPoolNotFound) {
			ws.writeErrorResponse(w, http.StatusNotFound, "Pool not found")
			return types.Pool{}, false
		}
		webLogger.Error().Err(err).Uint64("poolId", id).Msg("Failed to get pool")
		ws.writeErrorResponse(w, http.StatusInternalServerError, "Failed to retrieve pool")
		return types.Pool{}, false
	}
	return pool, true
}

func renderOptions(r *http.Request) display.RenderOptions {
	q := r.URL.Query()
	return display.RenderOptions{
		ShowIcon: queryBool(q.Get("showIcon"), true),
		Compact:  queryBool(q.Get("compact"), false),
	}
}

func queryBool(raw string, defaultValue bool) bool {
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return defaultValue
	}
	return v
}

// writeJSONResponse writes a JSON response
func (ws *WebServer) writeJSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		webLogger.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// writeErrorResponse writes an error response
func (ws *WebServer) writeErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	response := map[string]interface{}{
		"error":     true,
		"message":   message,
		"timestamp": time.Now().UTC(),
	}

	ws.writeJSONResponse(w, statusCode, response)
}

// corsMiddleware adds CORS headers
func (ws *WebServer) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware logs HTTP requests and tags each with a request id
func (ws *WebServer) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		w.Header().Set("X-Request-ID", requestID)

		wrapper := &responseWriterWrapper{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapper, r)

		duration := time.Since(start)

		route := r.URL.Path
		if current := mux.CurrentRoute(r); current != nil {
			if tmpl, err := current.GetPathTemplate(); err == nil {
				route = tmpl
			}
		}
		ws.metrics.requests.WithLabelValues(route, strconv.Itoa(wrapper.statusCode)).Observe(duration.Seconds())

		webLogger.Info().
			Str("request_id", requestID).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("remote_addr", r.RemoteAddr).
			Int("status", wrapper.statusCode).
			Dur("duration", duration).
			Msg("HTTP request")
	})
}

// responseWriterWrapper wraps http.ResponseWriter to capture status code
type responseWriterWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (w *responseWriterWrapper) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}
