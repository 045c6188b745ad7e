package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("Port = %q", cfg.Port)
	}
	if cfg.StoreBackend != StoreMemory {
		t.Fatalf("StoreBackend = %q", cfg.StoreBackend)
	}
	if cfg.BlobBackend != BlobDisk {
		t.Fatalf("BlobBackend = %q", cfg.BlobBackend)
	}
	if cfg.UploadDir != "uploads" {
		t.Fatalf("UploadDir = %q", cfg.UploadDir)
	}
	if cfg.MaxUploadBytes != 10<<20 {
		t.Fatalf("MaxUploadBytes = %d", cfg.MaxUploadBytes)
	}
}

func TestLoad_MongoRequiresURI(t *testing.T) {
	t.Setenv("STORE_BACKEND", StoreMongo)
	if _, err := Load(); err == nil {
		t.Fatal("expected error without MONGODB_URI")
	}

	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.MongoDatabase != "persondb" {
		t.Fatalf("MongoDatabase = %q", cfg.MongoDatabase)
	}
}

func TestLoad_PostgresRequiresDSN(t *testing.T) {
	t.Setenv("STORE_BACKEND", StorePostgres)
	if _, err := Load(); err == nil {
		t.Fatal("expected error without DATABASE_URL")
	}

	t.Setenv("DATABASE_URL", "postgres://localhost/persons")
	if _, err := Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
}

func TestLoad_S3RequiresBucket(t *testing.T) {
	t.Setenv("BLOB_BACKEND", BlobS3)
	if _, err := Load(); err == nil {
		t.Fatal("expected error without S3_BUCKET")
	}

	t.Setenv("S3_BUCKET", "fotos")
	if _, err := Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
}

func TestLoad_RejectsUnknownBackends(t *testing.T) {
	t.Setenv("STORE_BACKEND", "cassandra")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown store backend")
	}
}

func TestLoad_MaxUploadBytes(t *testing.T) {
	t.Setenv("MAX_UPLOAD_BYTES", "1048576")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.MaxUploadBytes != 1<<20 {
		t.Fatalf("MaxUploadBytes = %d", cfg.MaxUploadBytes)
	}

	t.Setenv("MAX_UPLOAD_BYTES", "zero")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for non-numeric MAX_UPLOAD_BYTES")
	}
}
