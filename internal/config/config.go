package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/PavaniTiago/satisfaction-survey-api/internal/utils"
)

// Config agrupa as configurações da aplicação lidas do ambiente
type Config struct {
	Port             string
	DatabaseURL      string
	Timezone         string
	Location         *time.Location
	JWTSecret        string
	CORSAllowOrigins string

	DBMaxOpenConns int
	DBMaxIdleConns int

	Dashboard DashboardConfig
}

// DashboardConfig controla o tamanho das séries e listas do dashboard
type DashboardConfig struct {
	TrendDays   int
	TrendMonths int
	RecentLimit int
	TopLimit    int
}

// DefaultDashboardConfig retorna os valores padrão do dashboard
func DefaultDashboardConfig() DashboardConfig {
	return DashboardConfig{
		TrendDays:   30,
		TrendMonths: 6,
		RecentLimit: 5,
		TopLimit:    10,
	}
}

// Load lê a configuração das variáveis de ambiente.
// Valores numéricos inválidos voltam para o padrão.
func Load() Config {
	tz := getEnvOrDefault("APP_TIMEZONE", "Asia/Manila")

	defaults := DefaultDashboardConfig()
	cfg := Config{
		Port:             getEnvOrDefault("PORT", "8080"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		Timezone:         tz,
		Location:         utils.LoadLocation(tz),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		CORSAllowOrigins: getEnvOrDefault("CORS_ALLOW_ORIGINS", "http://localhost:3000"),
		DBMaxOpenConns:   getEnvInt("DB_MAX_OPEN_CONNS", 50),
		DBMaxIdleConns:   getEnvInt("DB_MAX_IDLE_CONNS", 10),
		Dashboard: DashboardConfig{
			TrendDays:   getEnvInt("DASHBOARD_TREND_DAYS", defaults.TrendDays),
			TrendMonths: getEnvInt("DASHBOARD_TREND_MONTHS", defaults.TrendMonths),
			RecentLimit: getEnvInt("DASHBOARD_RECENT_LIMIT", defaults.RecentLimit),
			TopLimit:    getEnvInt("DASHBOARD_TOP_LIMIT", defaults.TopLimit),
		},
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		slog.Warn("invalid numeric config value, using default", "key", key, "value", raw, "default", defaultValue)
		return defaultValue
	}
	return value
}
