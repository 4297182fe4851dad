package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/socialboost/vision/ai"
	"github.com/socialboost/vision/api"
	"github.com/socialboost/vision/config"
	"github.com/socialboost/vision/scrapers"
	"github.com/socialboost/vision/service"
	"github.com/socialboost/vision/store"
	"github.com/socialboost/vision/utils"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {
	config.LoadConfig()
	if err := config.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	ctx := context.Background()

	st, err := openStore(ctx)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer utils.DisconnectMongo(context.Background())

	// Uploaded images are inlined as data URLs unless a bucket is configured
	var previews service.PreviewStore = utils.DataURLPreviewStore{}
	if config.AWSBucketName != "" {
		if err := utils.InitS3(ctx); err != nil {
			log.Printf("S3 unavailable, previews will be inlined: %v", err)
		} else {
			previews = utils.S3PreviewStore{Prefix: "previews"}
		}
	}

	aiClient := ai.NewClient(
		ai.NewGeminiModel(config.GeminiAPIKey, config.GeminiModel, config.GeminiRequestsPerMinute),
		ai.NewOpenAIModel(config.OpenAIAPIKey, config.OpenAIModel, ""),
	)
	scraperService := scrapers.NewService()
	mailer := utils.SendGridMailer{}

	h := api.NewHandler(
		service.NewAnalyzer(scraperService, aiClient, previews),
		scraperService,
		service.NewAdminService(st, mailer),
		service.NewAuthService(st, mailer),
	)
	handler := utils.CORSMiddleware(utils.LatencyMiddleware(otelhttp.NewHandler(api.NewRouter(h), "socialboost-vision")))

	server := &http.Server{
		Addr:              ":" + config.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		fmt.Printf("Server starting on port %s...\n", config.Port)
		fmt.Printf("Usage: curl -X POST \"http://localhost:%s/analyze/link\" -d '{\"url\":\"<product_url>\"}'\n", config.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down gracefully")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
}

// openStore uses MongoDB when MONGO_URI is set, otherwise the seeded in-memory store
func openStore(ctx context.Context) (store.Store, error) {
	if config.MongoURI == "" {
		log.Println("MONGO_URI not set, using in-memory store")
		return store.NewMemoryStore()
	}

	if err := utils.ConnectMongo(ctx, config.MongoURI); err != nil {
		return nil, err
	}
	mongoStore := store.NewMongoStore(utils.GetDatabase(config.MongoDatabase))
	if err := mongoStore.Seed(ctx); err != nil {
		return nil, err
	}
	return mongoStore, nil
}
