// routes/routes.go
package routes

import (
	"context"
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/gorilla/mux"

	"wholesale-delivery/controllers"
	"wholesale-delivery/middleware"
	"wholesale-delivery/utils"
)

// Controllers groups the per-domain handlers mounted by RegisterRoutes.
type Controllers struct {
	Admin     *controllers.AdminController
	Driver    *controllers.DriverController
	Vendor    *controllers.VendorController
	Inventory *controllers.InventoryController
	Order     *controllers.OrderController
}

// Options carries the cross-cutting pieces of the router.
type Options struct {
	// RequireAuth puts the management routes behind bearer tokens.
	RequireAuth bool
	Tokens      middleware.TokenParser
	Revocations middleware.RevocationChecker

	// UploadDir is served under /uploads/ when set.
	UploadDir string
	// OrderFeed is mounted at /ws/orders when set.
	OrderFeed http.Handler
	// Ping backs GET /health.
	Ping func(ctx context.Context) error
}

// RegisterRoutes sets up all the routes for the application
func RegisterRoutes(router *mux.Router, c Controllers, opts Options) {
	admins := guard(opts, utils.RoleAdmin)
	staff := guard(opts, utils.RoleAdmin, utils.RoleDriver)

	router.HandleFunc("/health", health(opts.Ping)).Methods("GET")

	// Admin routes
	admin := router.PathPrefix("/admin").Subrouter()
	admin.HandleFunc("/register", c.Admin.Register).Methods("POST")
	admin.HandleFunc("/verify-email", c.Admin.VerifyEmail).Methods("GET")
	admin.HandleFunc("/login", c.Admin.Login).Methods("POST")

	// Driver routes
	driver := router.PathPrefix("/driver").Subrouter()
	driver.HandleFunc("/login", c.Driver.Login).Methods("POST")
	driver.Handle("/register", admins(c.Driver.Register)).Methods("POST")
	driver.Handle("/get-drivers", admins(c.Driver.GetDrivers)).Methods("GET")
	driver.Handle("/edit-driver/{id}", admins(c.Driver.EditDriver)).Methods("PUT")
	driver.Handle("/delete-driver/{id}", admins(c.Driver.DeleteDriver)).Methods("DELETE")

	// Vendor routes
	vendor := router.PathPrefix("/vendor").Subrouter()
	vendor.Handle("/register", admins(c.Vendor.Register)).Methods("POST")
	vendor.Handle("/get-vendors", staff(c.Vendor.GetVendors)).Methods("GET")
	vendor.Handle("/edit-vendor/{id}", admins(c.Vendor.EditVendor)).Methods("PUT")
	vendor.Handle("/delete-vendor/{id}", admins(c.Vendor.DeleteVendor)).Methods("DELETE")

	// Inventory routes
	inventory := router.PathPrefix("/inventory").Subrouter()
	inventory.Handle("/add-item", admins(c.Inventory.AddItem)).Methods("POST")
	inventory.Handle("/get-inventory", staff(c.Inventory.GetInventory)).Methods("GET")
	inventory.Handle("/edit-item/{id}", admins(c.Inventory.EditItem)).Methods("PUT")
	inventory.Handle("/delete-item/{id}", admins(c.Inventory.DeleteItem)).Methods("DELETE")

	// Order routes
	order := router.PathPrefix("/order").Subrouter()
	order.Handle("/create-order", staff(c.Order.CreateOrder)).Methods("POST")
	order.Handle("/get-orders", staff(c.Order.GetOrders)).Methods("GET")
	order.Handle("/{id}/update-payment", staff(c.Order.UpdatePayment)).Methods("PATCH")

	if opts.OrderFeed != nil {
		router.Handle("/ws/orders", opts.OrderFeed).Methods("GET")
	}
	if opts.UploadDir != "" {
		router.PathPrefix("/uploads/").Handler(http.StripPrefix("/uploads/", http.FileServer(http.Dir(opts.UploadDir))))
	}
}

// guard wraps a handler with authentication and a role check. It is a
// pass-through when auth is disabled.
func guard(opts Options, roles ...string) func(http.HandlerFunc) http.Handler {
	return func(h http.HandlerFunc) http.Handler {
		if !opts.RequireAuth {
			return h
		}
		return middleware.Authenticate(opts.Tokens, opts.Revocations)(middleware.RequireRole(roles...)(h))
	}
}

func health(ping func(ctx context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if ping != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := ping(ctx); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				w.Write([]byte(`{"status":"unavailable"}`))
				return
			}
		}
		w.Write([]byte(`{"status":"ok"}`))
	}
}

// Wrap adds CORS, access logging and panic recovery around the router.
func Wrap(router http.Handler, origins []string) http.Handler {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	withCORS := cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	})
	return chimw.Logger(chimw.Recoverer(withCORS(router)))
}
