package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/sufra-pos/api/internal/auth"
	"github.com/sufra-pos/api/internal/chat"
	"github.com/sufra-pos/api/internal/config"
	"github.com/sufra-pos/api/internal/handler"
	mw "github.com/sufra-pos/api/internal/middleware"
	"github.com/sufra-pos/api/internal/service"
	"github.com/sufra-pos/api/internal/store"
	"github.com/sufra-pos/api/internal/ws"
)

// New creates a Chi router with all application routes wired up. The
// customer and cashier surfaces are open (the app runs on the
// restaurant's LAN); only the admin surface sits behind auth.
func New(cfg *config.Config, st *store.Store, sessions *chat.SessionManager, hub *ws.Hub) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300, // 5 minutes
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	orderService := service.NewOrderService(st.Menu, st.Orders, hub)

	menuHandler := handler.NewMenuHandler(st.Menu)
	categoryHandler := handler.NewCategoryHandler(st.Categories)
	dealHandler := handler.NewDealHandler(st.Deals)
	orderHandler := handler.NewOrderHandler(orderService, st.Orders)
	settingsHandler := handler.NewSettingsHandler(st.Settings)
	chatHandler := handler.NewChatHandler(sessions, st.Menu, st.Deals, orderService)
	reportsHandler := handler.NewReportsHandler(st.Orders, st.Menu)
	authHandler := handler.NewAuthHandler(auth.Credentials{
		Username:     cfg.AdminUsername,
		Password:     cfg.AdminPassword,
		PasswordHash: cfg.AdminPasswordHash,
	}, cfg.JWTSecret)

	// Customer surface
	menuHandler.RegisterPublicRoutes(r)
	categoryHandler.RegisterPublicRoutes(r)
	dealHandler.RegisterPublicRoutes(r)
	settingsHandler.RegisterPublicRoutes(r)
	r.Route("/tables/{tid}", func(r chi.Router) {
		orderHandler.RegisterPublicRoutes(r)
		chatHandler.RegisterTableRoutes(r)
	})
	r.Route("/chat/sessions", chatHandler.RegisterSessionRoutes)

	// Cashier surface
	r.Route("/orders", orderHandler.RegisterCashierRoutes)

	// Order lifecycle feed for the cashier screen
	r.Get("/ws/orders", func(w http.ResponseWriter, r *http.Request) {
		ws.ServeWS(hub, w, r)
	})

	r.Route("/auth", authHandler.RegisterRoutes)

	// Admin surface
	r.Route("/admin", func(r chi.Router) {
		r.Use(mw.Authenticate(cfg.JWTSecret))

		menuHandler.RegisterAdminRoutes(r)
		categoryHandler.RegisterAdminRoutes(r)
		dealHandler.RegisterAdminRoutes(r)
		settingsHandler.RegisterAdminRoutes(r)
		r.Route("/reports", reportsHandler.RegisterRoutes)
	})

	return r
}
