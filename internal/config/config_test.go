package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("AUTH_JWT_SECRET", "secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.GRPCAddr != ":50051" {
		t.Fatalf("GRPCAddr = %q, want :50051", cfg.GRPCAddr)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("HTTPAddr = %q, want :8080", cfg.HTTPAddr)
	}
	if cfg.DB.Driver != DriverPostgres || cfg.DB.Port != 5432 {
		t.Fatalf("unexpected db defaults: %+v", cfg.DB)
	}
	if cfg.Auth.Audience != "authenticated" {
		t.Fatalf("Audience = %q", cfg.Auth.Audience)
	}
	if !cfg.Otel.Enabled || cfg.Otel.Endpoint != "" {
		t.Fatalf("unexpected otel defaults: %+v", cfg.Otel)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("AUTH_JWT_SECRET", "secret")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_SQLITE_PATH", "/tmp/academy.db")
	t.Setenv("GRPC_ADDR", ":6000")
	t.Setenv("DB_MAX_OPEN_CONNS", "3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DB.Driver != DriverSQLite || cfg.DB.SQLitePath != "/tmp/academy.db" {
		t.Fatalf("unexpected db config: %+v", cfg.DB)
	}
	if cfg.DB.MaxOpenConns != 3 {
		t.Fatalf("MaxOpenConns = %d, want 3", cfg.DB.MaxOpenConns)
	}
	if cfg.GRPCAddr != ":6000" {
		t.Fatalf("GRPCAddr = %q", cfg.GRPCAddr)
	}
}

func TestLoad_ReadsDotEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("AUTH_JWT_SECRET=from-file\nHTTP_ADDR=:9090\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv("ENV_FILE", path)
	// godotenv does not override variables that are already set, so make sure these are unset.
	t.Setenv("AUTH_JWT_SECRET", "")
	os.Unsetenv("AUTH_JWT_SECRET")
	t.Setenv("HTTP_ADDR", "")
	os.Unsetenv("HTTP_ADDR")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Auth.JWTSecret != "from-file" || cfg.HTTPAddr != ":9090" {
		t.Fatalf("env file values not applied: %+v", cfg)
	}
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("AUTH_JWT_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for empty jwt secret")
	}
}

func TestDBConfig_Validate(t *testing.T) {
	cases := []struct {
		name    string
		cfg     DBConfig
		wantErr bool
	}{
		{name: "postgres ok", cfg: DBConfig{Driver: DriverPostgres, Host: "h", User: "u", Name: "n"}},
		{name: "postgres missing host", cfg: DBConfig{Driver: DriverPostgres, User: "u", Name: "n"}, wantErr: true},
		{name: "sqlite ok", cfg: DBConfig{Driver: DriverSQLite, SQLitePath: ":memory:"}},
		{name: "sqlite missing path", cfg: DBConfig{Driver: DriverSQLite}, wantErr: true},
		{name: "unknown driver", cfg: DBConfig{Driver: "mysql"}, wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Fatalf("Validate() err = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestLoadDBConfig_Prefix(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_SQLITE_PATH", "seed.db")

	cfg, err := LoadDBConfig()
	if err != nil {
		t.Fatalf("LoadDBConfig: %v", err)
	}
	if cfg.Driver != DriverSQLite || cfg.SQLitePath != "seed.db" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}
