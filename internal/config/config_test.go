package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DATABASE_DRIVER", "DATABASE_URL", "BCRYPT_COST", "CORS_ALLOWED_ORIGINS", "FLASH_SECRET"} {
		t.Setenv(key, "")
	}
	t.Setenv("APP_ENV", "development")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ServerPort != 8080 {
		t.Fatalf("port = %d, want 8080", cfg.ServerPort)
	}
	if cfg.DatabaseDriver != DriverSQLite {
		t.Fatalf("driver = %q, want %q", cfg.DatabaseDriver, DriverSQLite)
	}
	if cfg.BcryptCost != 10 {
		t.Fatalf("bcrypt cost = %d, want 10", cfg.BcryptCost)
	}
	if cfg.FlashSecret == "" {
		t.Fatal("expected a development flash secret")
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "http://localhost:3000" {
		t.Fatalf("origins = %v", cfg.AllowedOrigins)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "postgres://localhost/showcase?sslmode=disable")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("BCRYPT_COST", "12")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ServerPort != 9090 || cfg.DatabaseDriver != DriverPostgres || cfg.BcryptCost != 12 {
		t.Fatalf("config = %+v", cfg)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://b.example" {
		t.Fatalf("origins = %v", cfg.AllowedOrigins)
	}
}

func TestValidateRejects(t *testing.T) {
	base := Config{ServerPort: 8080, DatabaseDriver: DriverSQLite, DatabaseURL: "x.db", BcryptCost: 10, FlashSecret: "s"}
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "bad port", mutate: func(c *Config) { c.ServerPort = 0 }},
		{name: "unknown driver", mutate: func(c *Config) { c.DatabaseDriver = "mysql" }},
		{name: "empty database url", mutate: func(c *Config) { c.DatabaseURL = " " }},
		{name: "low bcrypt cost", mutate: func(c *Config) { c.BcryptCost = 1 }},
		{name: "production without secret", mutate: func(c *Config) { c.AppEnv = "production"; c.FlashSecret = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}
