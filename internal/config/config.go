package config

import (
	"os"
	"strconv"
	"time"
)

// Config concentra tudo que vem de variável de ambiente.
// Valores ausentes caem nos defaults usados em desenvolvimento.
type Config struct {
	ListenAddr string

	// Bases dos serviços upstream
	CorrespondenciasBase string // API de correspondências / empresas / histórico
	AditivoBase          string // microserviço de aditivos (download de documentos)
	AuthBase             string // serviço de autenticação

	// Origem do dashboard para CORS
	DashboardOrigin string

	// Sessão
	SessionSecret  string
	AdminEmail     string
	AdminSenhaHash string // hash bcrypt; se vazio, não há fallback local

	// Quiet period de debounce por visão
	DebounceEmpresas         time.Duration
	DebounceCorrespondencias time.Duration

	// Banco local usado só como espelho/cache do snapshot de empresas
	DBHost, DBPort, DBUser, DBPassword, DBName string
	DBSSLModeDisable                           bool
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvMS(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return def
}

// Carregar monta a configuração a partir do ambiente.
func Carregar() Config {
	return Config{
		ListenAddr:           getenv("LISTEN_ADDR", ":8080"),
		CorrespondenciasBase: getenv("CORRESPONDENCIAS_API_BASE", "http://localhost:8081"),
		AditivoBase:          getenv("ADITIVO_API_BASE", ""),
		AuthBase:             getenv("AUTH_API_BASE", "http://localhost:8082"),
		DashboardOrigin:      getenv("DASHBOARD_ORIGIN", "http://localhost:5173"),
		SessionSecret:        getenv("SESSION_SECRET", "dev-secret"),
		AdminEmail:           os.Getenv("ADMIN_EMAIL"),
		AdminSenhaHash:       os.Getenv("ADMIN_SENHA_HASH"),

		DebounceEmpresas:         getenvMS("DEBOUNCE_EMPRESAS_MS", 500*time.Millisecond),
		DebounceCorrespondencias: getenvMS("DEBOUNCE_CORRESPONDENCIAS_MS", 1000*time.Millisecond),

		DBHost:           getenv("DB_HOST", "localhost"),
		DBPort:           getenv("DB_PORT", "5432"),
		DBUser:           getenv("DB_USER", "postgres"),
		DBPassword:       getenv("DB_PASSWORD", "postgres"),
		DBName:           getenv("DB_NAME", "correspondencias"),
		DBSSLModeDisable: os.Getenv("DB_SSL_MODE_DISABLE") == "true",
	}
}
