package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	pb "go4rent-backend/api/gen/v1"
	api "go4rent-backend/internal/api/grpc"
	"go4rent-backend/internal/api/grpc/interceptor"
	httpapi "go4rent-backend/internal/api/http"
	"go4rent-backend/internal/config"
	"go4rent-backend/internal/events"
	"go4rent-backend/internal/gateway"
	"go4rent-backend/internal/logger"
	"go4rent-backend/internal/metrics"
	"go4rent-backend/internal/repository/postgres"
	"go4rent-backend/internal/security"
	"go4rent-backend/internal/service"
	"go4rent-backend/internal/utils"

	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting go4rent rental coordinator...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "grpc_address", cfg.GetServerAddress(), "http_address", cfg.GetHTTPAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	if cfg.Database.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	}
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	store := postgres.NewStoreWithOptions(db, postgres.TxOptions{
		Attempts: cfg.Database.TxRetryAttempts,
		Delay:    20 * time.Millisecond,
		MaxDelay: 500 * time.Millisecond,
	})

	if cfg.Metrics.Enabled {
		metrics.Register()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Notification channels
	dispatcher, closeChannels, err := buildDispatcher(ctx, cfg, store)
	if err != nil {
		log.Fatalf("Failed to initialize notifications: %v", err)
	}
	workerCtx, stopWorkers := context.WithCancel(context.Background())
	dispatcher.Start(workerCtx)

	// Services
	rates, err := utils.ParseRates(cfg.Pricing.HourlyRate, cfg.Pricing.DailyRate)
	if err != nil {
		log.Fatalf("Invalid pricing configuration: %v", err)
	}
	authz := service.NewAuthorizer(store.PermissionRepository)
	gatewayClient := gateway.NewClient(gateway.Options{
		BaseURL:  cfg.Gateway.BaseURL,
		APIKey:   cfg.Gateway.APIKey,
		Timeout:  time.Duration(cfg.Gateway.TimeoutSeconds) * time.Second,
		Attempts: cfg.Gateway.RetryAttempts,
	})

	rentalSvc := service.NewRentalService(store, store.RentalRepository, store.EquipmentRepository, authz, dispatcher, service.RentalOptions{
		PaymentFirst:     cfg.Rental.PaymentFirst,
		MaxAddressLength: cfg.Rental.MaxAddressLength,
		Rates:            rates,
	})
	paymentSvc := service.NewPaymentService(store, store.PaymentRepository, store.RentalRepository, store.EquipmentRepository,
		authz, gatewayClient, dispatcher, service.PaymentOptions{
			CheckoutBaseURL: cfg.Gateway.CheckoutBaseURL,
		})

	// gRPC server
	lis, err := net.Listen("tcp", cfg.GetServerAddress())
	if err != nil {
		logger.Error("Failed to listen", "error", err, "address", cfg.GetServerAddress())
		log.Fatalf("Failed to listen: %v", err)
	}

	grpcServer, healthServer := newGRPCServer(security.NewTokenManager(cfg.JWT.Secret), rentalSvc, paymentSvc)

	// HTTP server: gateway callback, health and metrics
	metricsPath := ""
	if cfg.Metrics.Enabled {
		metricsPath = cfg.Metrics.Path
	}
	httpServer := &http.Server{
		Addr: cfg.GetHTTPAddress(),
		Handler: httpapi.NewRouter(paymentSvc, httpapi.RouterOptions{
			WebhookSecret: cfg.Gateway.WebhookSecret,
			MetricsPath:   metricsPath,
			DB:            db,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 2)
	go func() {
		logger.Info("HTTP server listening", "address", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()
	go func() {
		logger.Info("gRPC server listening", "address", cfg.GetServerAddress())
		if err := grpcServer.Serve(lis); err != nil {
			errCh <- fmt.Errorf("grpc server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-errCh:
		logger.Error("Server failed", "error", err)
	}

	healthServer.Shutdown()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP shutdown failed", "error", err)
	}
	grpcServer.GracefulStop()

	// Stop the workers before closing the channels they use.
	stopWorkers()
	dispatcher.Wait()
	closeChannels()
	logger.Info("Server stopped")
}

// buildDispatcher creates the notification dispatcher with the channels
// enabled in cfg. The returned func releases channel resources.
func buildDispatcher(ctx context.Context, cfg *config.Config, store *postgres.Store) (*service.NotificationDispatcher, func(), error) {
	ncfg := cfg.Notifications
	closers := []func(){}
	closeAll := func() {
		for _, c := range closers {
			c()
		}
	}

	var email service.EmailSender
	switch ncfg.EmailProvider {
	case "smtp":
		email = service.NewSMTPSender(ncfg.SMTP.Host, ncfg.SMTP.Port, ncfg.SMTP.User, ncfg.SMTP.Password, ncfg.SMTP.From)
		logger.Info("Email channel enabled", "provider", "smtp", "host", ncfg.SMTP.Host)
	case "sendgrid":
		email = service.NewSendGridSender(ncfg.SendGrid.APIKey, ncfg.SendGrid.FromEmail, ncfg.SendGrid.FromName)
		logger.Info("Email channel enabled", "provider", "sendgrid")
	default:
		logger.Info("Email channel disabled")
	}

	var push service.PushSender
	if ncfg.Firebase.Enabled {
		sender, err := service.NewFirebaseSender(ctx, ncfg.Firebase.CredentialsFile)
		if err != nil {
			return nil, closeAll, fmt.Errorf("firebase: %w", err)
		}
		push = sender
		logger.Info("Push channel enabled")
	}

	var bus service.EventPublisher
	if ncfg.Kafka.Enabled {
		publisher, err := events.NewKafkaPublisher(ncfg.Kafka.Brokers, ncfg.Kafka.Topic)
		if err != nil {
			return nil, closeAll, fmt.Errorf("kafka: %w", err)
		}
		bus = publisher
		closers = append(closers, publisher.Close)
		logger.Info("Event bus enabled", "brokers", ncfg.Kafka.Brokers, "topic", ncfg.Kafka.Topic)
	}

	dispatcher := service.NewNotificationDispatcher(store.UserRepository, store.PushNotificationRepository, email, push, bus,
		service.NotificationOptions{
			Workers:    ncfg.Workers,
			QueueSize:  ncfg.QueueSize,
			MaxRetries: ncfg.MaxRetries,
			Backoff:    time.Second,
		})
	return dispatcher, closeAll, nil
}

// newGRPCServer registers the API services, health checks and reflection
// behind the auth interceptor.
func newGRPCServer(tokens security.TokenManager, rentalSvc service.RentalService, paymentSvc service.PaymentService) (*grpc.Server, *health.Server) {
	authInterceptor := interceptor.NewAuthInterceptor(tokens)
	s := grpc.NewServer(
		grpc.UnaryInterceptor(authInterceptor.Unary()),
	)
	pb.RegisterRentalServiceServer(s, api.NewRentalHandler(rentalSvc))
	pb.RegisterPaymentServiceServer(s, api.NewPaymentHandler(paymentSvc))

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(s, healthServer)
	healthServer.SetServingStatus(pb.RentalService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(pb.PaymentService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)

	// Register reflection service for grpcurl
	reflection.Register(s)
	return s, healthServer
}
