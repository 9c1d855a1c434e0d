package http

import (
	"context"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"toala-backend/internal/api/http/interceptor"
	"toala-backend/internal/logger"
	"toala-backend/internal/service"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	auth      service.AuthService
	equipment service.EquipmentService
	rentals   service.RentalService
	messages  service.MessageService
	store     Pinger
	validate  *validator.Validate
}

func NewHandler(
	auth service.AuthService,
	equipment service.EquipmentService,
	rentals service.RentalService,
	messages service.MessageService,
	store Pinger,
) *Handler {
	return &Handler{
		auth:      auth,
		equipment: equipment,
		rentals:   rentals,
		messages:  messages,
		store:     store,
		validate:  newValidator(),
	}
}

// newValidator reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

type RouterOptions struct {
	// Limiter is optional; nil disables rate limiting.
	Limiter *interceptor.RateLimiter
	// Metrics and Gatherer are optional; nil disables /metrics.
	Metrics  *interceptor.Metrics
	Gatherer prometheus.Gatherer
	// AllowedOrigins for CORS; empty allows any origin.
	AllowedOrigins []string
}

// Routes builds the complete HTTP handler. Route names are the keys of
// config.EndpointSecurityConfig.
func (h *Handler) Routes(opts RouterOptions) http.Handler {
	router := mux.NewRouter()

	router.HandleFunc("/healthz", h.Health).Methods(http.MethodGet).Name("health")
	if opts.Gatherer != nil {
		router.Handle("/metrics", promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})).
			Methods(http.MethodGet).Name("metrics")
	}

	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/auth/register", h.Register).Methods(http.MethodPost).Name("auth.register")
	api.HandleFunc("/auth/login", h.Login).Methods(http.MethodPost).Name("auth.login")
	api.HandleFunc("/auth/me", h.Me).Methods(http.MethodGet).Name("auth.me")

	api.HandleFunc("/equipment", h.CreateEquipment).Methods(http.MethodPost).Name("equipment.create")
	api.HandleFunc("/equipment", h.ListEquipment).Methods(http.MethodGet).Name("equipment.list")
	api.HandleFunc("/equipment/{id}", h.GetEquipment).Methods(http.MethodGet).Name("equipment.get")
	api.HandleFunc("/my-equipment", h.ListMyEquipment).Methods(http.MethodGet).Name("equipment.mine")
	api.HandleFunc("/categories", h.ListCategories).Methods(http.MethodGet).Name("categories.list")

	api.HandleFunc("/requests", h.CreateRequest).Methods(http.MethodPost).Name("requests.create")
	api.HandleFunc("/requests/received", h.ListReceivedRequests).Methods(http.MethodGet).Name("requests.received")
	api.HandleFunc("/requests/sent", h.ListSentRequests).Methods(http.MethodGet).Name("requests.sent")
	api.HandleFunc("/requests/{id}", h.GetRequest).Methods(http.MethodGet).Name("requests.get")
	api.HandleFunc("/requests/{id}/status", h.UpdateRequestStatus).Methods(http.MethodPut).Name("requests.status")

	api.HandleFunc("/messages", h.SendMessage).Methods(http.MethodPost).Name("messages.send")
	api.HandleFunc("/messages/{id}", h.ListMessages).Methods(http.MethodGet).Name("messages.list")

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeDetail(w, http.StatusNotFound, "Not Found")
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeDetail(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	if opts.Metrics != nil {
		router.Use(opts.Metrics.Middleware)
	}
	if opts.Limiter != nil {
		router.Use(opts.Limiter.Middleware)
	}
	router.Use(interceptor.NewAuthInterceptor(h.auth).Middleware)

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	cors := handlers.CORS(
		handlers.AllowedOrigins(origins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Authorization", "Content-Type", interceptor.RequestIDHeader}),
		handlers.ExposedHeaders([]string{interceptor.RequestIDHeader}),
	)
	recovery := handlers.RecoveryHandler(
		handlers.RecoveryLogger(recoveryLogger{}),
		handlers.PrintRecoveryStack(false),
	)

	return interceptor.RequestLogger(recovery(cors(router)))
}

type recoveryLogger struct{}

func (recoveryLogger) Println(v ...any) {
	logger.Error("Recovered from panic", "panic", v)
}
