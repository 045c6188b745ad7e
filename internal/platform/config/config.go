// Package config loads runtime configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Backend names accepted by STORE_BACKEND.
const (
	StoreMemory   = "memory"
	StoreMongo    = "mongo"
	StorePostgres = "postgres"
)

// Backend names accepted by BLOB_BACKEND.
const (
	BlobDisk   = "disk"
	BlobS3     = "s3"
	BlobMemory = "memory"
)

type Config struct {
	Port string

	StoreBackend  string
	MongoURI      string
	MongoDatabase string
	DatabaseURL   string

	BlobBackend string
	UploadDir   string
	S3Bucket    string
	S3Region    string
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	S3PublicURL string

	AllowedOrigin  string
	DeleteSecret   string
	StaticDir      string
	MaxUploadBytes int64
	LogMode        string
}

// Load reads configuration from the environment and validates the
// combinations that depend on the chosen backends.
func Load() (Config, error) {
	cfg := Config{
		Port:           getenv("PORT", "8080"),
		StoreBackend:   getenv("STORE_BACKEND", StoreMemory),
		MongoURI:       os.Getenv("MONGODB_URI"),
		MongoDatabase:  getenv("MONGODB_DATABASE", "persondb"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		BlobBackend:    getenv("BLOB_BACKEND", BlobDisk),
		UploadDir:      getenv("UPLOAD_DIR", "uploads"),
		S3Bucket:       os.Getenv("S3_BUCKET"),
		S3Region:       os.Getenv("S3_REGION"),
		S3Endpoint:     os.Getenv("S3_ENDPOINT"),
		S3AccessKey:    os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey:    os.Getenv("S3_SECRET_KEY"),
		S3PublicURL:    os.Getenv("S3_PUBLIC_URL"),
		AllowedOrigin:  os.Getenv("ALLOWED_ORIGIN"),
		DeleteSecret:   os.Getenv("DELETE_SECRET"),
		StaticDir:      os.Getenv("STATIC_DIR"),
		MaxUploadBytes: 10 << 20,
		LogMode:        getenv("LOG_MODE", "production"),
	}

	if v := os.Getenv("MAX_UPLOAD_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("MAX_UPLOAD_BYTES must be a positive integer, got %q", v)
		}
		cfg.MaxUploadBytes = n
	}

	switch cfg.StoreBackend {
	case StoreMemory:
	case StoreMongo:
		if cfg.MongoURI == "" {
			return Config{}, fmt.Errorf("STORE_BACKEND=%s requires MONGODB_URI", StoreMongo)
		}
	case StorePostgres:
		if cfg.DatabaseURL == "" {
			return Config{}, fmt.Errorf("STORE_BACKEND=%s requires DATABASE_URL", StorePostgres)
		}
	default:
		return Config{}, fmt.Errorf("unknown STORE_BACKEND %q", cfg.StoreBackend)
	}

	switch cfg.BlobBackend {
	case BlobDisk, BlobMemory:
	case BlobS3:
		if cfg.S3Bucket == "" {
			return Config{}, fmt.Errorf("BLOB_BACKEND=%s requires S3_BUCKET", BlobS3)
		}
	default:
		return Config{}, fmt.Errorf("unknown BLOB_BACKEND %q", cfg.BlobBackend)
	}

	return cfg, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
