package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	diskblobstore "github.com/club41-romania/directory-api/internal/adapters/disk/blobstore"
	"github.com/club41-romania/directory-api/internal/adapters/httpapi"
	memblobstore "github.com/club41-romania/directory-api/internal/adapters/memory/blobstore"
	mempersonrepo "github.com/club41-romania/directory-api/internal/adapters/memory/personrepo"
	mongoadapter "github.com/club41-romania/directory-api/internal/adapters/mongo"
	mongopersonrepo "github.com/club41-romania/directory-api/internal/adapters/mongo/personrepo"
	"github.com/club41-romania/directory-api/internal/adapters/postgres"
	pgpersonrepo "github.com/club41-romania/directory-api/internal/adapters/postgres/personrepo"
	s3blobstore "github.com/club41-romania/directory-api/internal/adapters/s3/blobstore"
	"github.com/club41-romania/directory-api/internal/app/directory"
	platformclock "github.com/club41-romania/directory-api/internal/platform/clock"
	"github.com/club41-romania/directory-api/internal/platform/config"
	"github.com/club41-romania/directory-api/internal/platform/logger"
	blobstoreport "github.com/club41-romania/directory-api/internal/ports/out/blobstore"
	personrepoport "github.com/club41-romania/directory-api/internal/ports/out/personrepo"
)

func main() {
	// Local development convenience; deployments set real env vars.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	zl, err := logger.New(cfg.LogMode)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		repo    personrepoport.Repository
		cleanup func()
	)
	switch cfg.StoreBackend {
	case config.StoreMongo:
		client, err := mongoadapter.Connect(ctx, cfg.MongoURI)
		if err != nil {
			zl.Fatal("mongo connect failed", zap.Error(err))
		}
		cleanup = func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = client.Disconnect(disconnectCtx)
		}
		repo = mongopersonrepo.NewRepo(client.Database(cfg.MongoDatabase))
	case config.StorePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, postgres.PoolOptions{})
		if err != nil {
			zl.Fatal("postgres connect failed", zap.Error(err))
		}
		cleanup = pool.Close
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			zl.Fatal("postgres schema setup failed", zap.Error(err))
		}
		repo = pgpersonrepo.NewRepo(pool)
	default:
		repo = mempersonrepo.NewRepo()
	}
	if cleanup != nil {
		defer cleanup()
	}

	var (
		blobs      blobstoreport.Store
		uploadsDir string
	)
	switch cfg.BlobBackend {
	case config.BlobS3:
		s3Store, err := s3blobstore.New(ctx, s3blobstore.Config{
			Bucket:        cfg.S3Bucket,
			Region:        cfg.S3Region,
			Endpoint:      cfg.S3Endpoint,
			AccessKey:     cfg.S3AccessKey,
			SecretKey:     cfg.S3SecretKey,
			PublicBaseURL: cfg.S3PublicURL,
			UsePathStyle:  cfg.S3Endpoint != "",
		}, s3blobstore.WithLogger(zl))
		if err != nil {
			zl.Fatal("s3 blob store setup failed", zap.Error(err))
		}
		blobs = s3Store
	case config.BlobMemory:
		blobs = memblobstore.NewStore()
	default:
		diskStore, err := diskblobstore.NewStore(cfg.UploadDir)
		if err != nil {
			zl.Fatal("upload directory setup failed", zap.Error(err))
		}
		blobs = diskStore
		uploadsDir = diskStore.Dir()
	}

	svc := directory.NewService(repo, blobs, platformclock.NewSystemClock(), cfg.DeleteSecret)
	svc.MaxUploadBytes = cfg.MaxUploadBytes

	handler := httpapi.NewRouter(httpapi.NewServer(svc, zl), httpapi.RouterOptions{
		AllowedOrigin: cfg.AllowedOrigin,
		UploadsDir:    uploadsDir,
		StaticDir:     cfg.StaticDir,
		Logger:        zl,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		zl.Info("api listening",
			zap.String("port", cfg.Port),
			zap.String("store", cfg.StoreBackend),
			zap.String("blobs", cfg.BlobBackend))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zl.Fatal("listen failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zl.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
