package config

import (
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "")
	t.Setenv("DB_HOST", "")
	t.Setenv("DB_PORT", "")
	t.Setenv("ESTIMATION_SUN_HOURS", "")

	c := Load()
	if c.DBDriver != "mysql" || c.DBHost != "mysql" || c.DBPort != "3306" {
		t.Fatalf("unexpected DB defaults: %+v", c)
	}
	if c.SunHours != 5 || c.PanelSize != 1.7 || c.ElectricityRate != 0.52 {
		t.Fatalf("unexpected estimation defaults: %+v", c)
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate defaults: %v", err)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_HOST", "")
	t.Setenv("DB_PORT", "")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("ESTIMATION_SUN_HOURS", "4.5")
	t.Setenv("IDEMPOTENCY_TTL_SECONDS", "not-a-number")

	c := Load()
	if c.DBPort != "5432" || c.DBHost != "postgres" {
		t.Fatalf("postgres defaults not applied: %+v", c)
	}
	if c.RedisDB != 3 || c.SunHours != 4.5 {
		t.Fatalf("overrides not applied: %+v", c)
	}
	if c.IdempTTLSecs != 300 {
		t.Fatalf("bad int should keep default, got %d", c.IdempTTLSecs)
	}
	if !strings.Contains(c.DSN(), "dbname=greenmarket") {
		t.Fatalf("postgres DSN = %q", c.DSN())
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{AppPort: "8080", DBDriver: "mysql", DBHost: "h", DBPort: "3306", DBName: "d", DBUser: "u", IdempTTLSecs: 60}
	}
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"driver", func(c *Config) { c.DBDriver = "oracle" }},
		{"host", func(c *Config) { c.DBHost = "" }},
		{"port", func(c *Config) { c.DBPort = "99999999" }},
		{"app port", func(c *Config) { c.AppPort = "" }},
		{"ttl", func(c *Config) { c.IdempTTLSecs = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base()
			tt.mutate(c)
			if err := c.Validate(); err == nil {
				t.Fatal("expected error")
			}
		})
	}
	if got := base().DSN(); !strings.HasPrefix(got, "u:@tcp(h:3306)/d?parseTime=true") {
		t.Fatalf("mysql DSN = %q", got)
	}
}
