package config

import (
	"errors"
	"fmt"
	"log"
	"net"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort string

	DBDriver string // mysql | postgres
	DBHost   string
	DBPort   string
	DBName   string
	DBUser   string
	DBPass   string
	DBDebug  bool

	RedisAddr string
	RedisPass string
	RedisDB   int

	IdempTTLSecs int

	// estimation defaults, overridable per deployment
	PanelSize        float64
	PanelWattage     float64
	SunHours         float64
	PerformanceRatio float64
	ElectricityRate  float64
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getenvInt(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}

func getenvFloat(k string, d float64) float64 {
	if v := os.Getenv(k); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return d
}

func getenvBool(k string, d bool) bool {
	if v := os.Getenv(k); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return d
}

// Load reads .env (if present) and then the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("config: .env not loaded: %v", err)
	}

	c := &Config{
		AppPort: getenv("APP_PORT", "8080"),

		DBDriver: getenv("DB_DRIVER", "mysql"),
		DBName:   getenv("DB_NAME", "greenmarket"),
		DBUser:   getenv("DB_USER", "greenmarket"),
		DBPass:   getenv("DB_PASS", "greenmarket"),
		DBDebug:  getenvBool("DB_DEBUG", false),

		RedisAddr:    getenv("REDIS_ADDR", "redis:6379"),
		RedisPass:    os.Getenv("REDIS_PASS"),
		RedisDB:      getenvInt("REDIS_DB", 0),
		IdempTTLSecs: getenvInt("IDEMPOTENCY_TTL_SECONDS", 300),

		PanelSize:        getenvFloat("ESTIMATION_PANEL_SIZE", 1.7),
		PanelWattage:     getenvFloat("ESTIMATION_PANEL_WATTAGE", 300),
		SunHours:         getenvFloat("ESTIMATION_SUN_HOURS", 5),
		PerformanceRatio: getenvFloat("ESTIMATION_PERFORMANCE_RATIO", 0.75),
		ElectricityRate:  getenvFloat("ESTIMATION_ELECTRICITY_RATE", 0.52),
	}
	switch c.DBDriver {
	case "postgres":
		c.DBHost = getenv("DB_HOST", "postgres")
		c.DBPort = getenv("DB_PORT", "5432")
	default:
		c.DBHost = getenv("DB_HOST", "mysql")
		c.DBPort = getenv("DB_PORT", "3306")
	}
	return c
}

func (c *Config) Validate() error {
	if c.DBDriver != "mysql" && c.DBDriver != "postgres" {
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.DBHost == "" || c.DBPort == "" || c.DBName == "" || c.DBUser == "" {
		return errors.New("missing DB config (DB_HOST/PORT/NAME/USER)")
	}
	// ensure port is valid
	if _, err := net.LookupPort("tcp", c.DBPort); err != nil {
		return fmt.Errorf("invalid DB_PORT %q: %w", c.DBPort, err)
	}
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	if c.IdempTTLSecs <= 0 {
		return errors.New("IDEMPOTENCY_TTL_SECONDS must be positive")
	}
	return nil
}

func (c *Config) dbAddr() string { return net.JoinHostPort(c.DBHost, c.DBPort) }

// DSN renders the connection string for the configured driver.
func (c *Config) DSN() string {
	if c.DBDriver == "postgres" {
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
			c.DBHost, c.DBPort, c.DBUser, c.DBPass, c.DBName)
	}
	// parseTime needed for DATETIME/DATE
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true&loc=UTC&charset=utf8mb4,utf8",
		c.DBUser, c.DBPass, c.dbAddr(), c.DBName)
}
