package cmd

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"

	"wholesale-delivery/cache"
	"wholesale-delivery/config"
	"wholesale-delivery/controllers"
	"wholesale-delivery/events"
	"wholesale-delivery/realtime"
	"wholesale-delivery/repositories"
	"wholesale-delivery/routes"
	"wholesale-delivery/services"
	"wholesale-delivery/storage"
	"wholesale-delivery/utils"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return serve(ctx, cfg)
	},
}

func serve(ctx context.Context, cfg *config.Config) error {
	client, err := utils.ConnectDB(ctx, cfg.MongoURL)
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Printf("ERROR: disconnect MongoDB: %v", err)
		}
	}()
	db := client.Database(cfg.MongoDatabase)

	indexCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	err = repositories.EnsureIndexes(indexCtx, db)
	cancel()
	if err != nil {
		return err
	}

	images, uploadDir, err := newImageStore(ctx, cfg)
	if err != nil {
		return err
	}

	tokens := utils.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	revocations, closeRevocations, err := newRevocations(ctx, cfg, tokens.TTL())
	if err != nil {
		return err
	}
	defer closeRevocations()

	hub := realtime.NewHub()
	go hub.Run(ctx)

	publisher, closePublisher, err := newPublisher(cfg, hub)
	if err != nil {
		return err
	}
	defer closePublisher()

	emailService := utils.NewEmailService(newMailer(cfg), cfg.FrontendURL)

	adminRepo := repositories.NewAdminRepository(db)
	driverRepo := repositories.NewDriverRepository(db)
	vendorRepo := repositories.NewVendorRepository(db)
	inventoryRepo := repositories.NewInventoryRepository(db)
	orderRepo := repositories.NewOrderRepository(db)

	timeout := cfg.RequestTimeout
	router := mux.NewRouter()
	routes.RegisterRoutes(router, routes.Controllers{
		Admin:     controllers.NewAdminController(services.NewAdminService(adminRepo, emailService, tokens), timeout),
		Driver:    controllers.NewDriverController(services.NewDriverService(driverRepo, tokens, revocations), timeout),
		Vendor:    controllers.NewVendorController(services.NewVendorService(vendorRepo), timeout),
		Inventory: controllers.NewInventoryController(services.NewInventoryService(inventoryRepo, images), timeout),
		Order: controllers.NewOrderController(
			services.NewOrderService(orderRepo, inventoryRepo, vendorRepo, driverRepo, publisher), timeout),
	}, routes.Options{
		RequireAuth: cfg.RequireAuth,
		Tokens:      tokens,
		Revocations: revocations,
		UploadDir:   uploadDir,
		OrderFeed:   realtime.ServeWS(hub, tokens, revocations),
		Ping:        func(ctx context.Context) error { return pingMongo(ctx, client) },
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           routes.Wrap(router, cfg.CORSOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server is running on port %s (%s)", cfg.Port, cfg.Mode)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func pingMongo(ctx context.Context, client *mongo.Client) error {
	return client.Ping(ctx, nil)
}

func newMailer(cfg *config.Config) utils.Mailer {
	switch cfg.MailProvider {
	case "sendgrid":
		return utils.NewSendGridMailer(cfg.SendGridAPIKey, cfg.EmailSender)
	case "postmark":
		return utils.NewPostmarkMailer(cfg.PostmarkServerToken, cfg.EmailSender)
	default:
		return utils.LogMailer{}
	}
}

// newImageStore returns the store and, for the local backend, the
// directory to serve under /uploads/.
func newImageStore(ctx context.Context, cfg *config.Config) (services.ImageStore, string, error) {
	if cfg.ImageStore == "s3" {
		s3Store, err := storage.NewS3Store(ctx, cfg.S3Region, cfg.S3Bucket, cfg.S3PublicURL)
		return s3Store, "", err
	}
	local, err := storage.NewLocalStore(cfg.UploadDir, cfg.PublicURL)
	if err != nil {
		return nil, "", err
	}
	return local, local.Dir(), nil
}

func newRevocations(ctx context.Context, cfg *config.Config, ttl time.Duration) (cache.Revocations, func(), error) {
	if cfg.RedisAddr == "" {
		log.Println("REDIS_ADDR not set; driver tokens stay valid after deletion until they expire")
		return cache.Noop{}, func() {}, nil
	}
	r := cache.NewRedisRevocations(cfg.RedisAddr, cfg.RedisUsername, cfg.RedisPassword, ttl)
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := r.Ping(pingCtx); err != nil {
		r.Close()
		return nil, nil, err
	}
	return r, func() { r.Close() }, nil
}

func newPublisher(cfg *config.Config, hub *realtime.Hub) (events.Publisher, func(), error) {
	publishers := events.Multi{hub, events.LogPublisher{}}
	if len(cfg.KafkaBrokers) == 0 {
		return publishers, func() {}, nil
	}
	kafka, err := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
	if err != nil {
		return nil, nil, err
	}
	return append(publishers, kafka), func() { kafka.Close() }, nil
}
