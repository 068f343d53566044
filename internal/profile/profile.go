package profile

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Profile is configuration to start the main server.
type Profile struct {
	// LLM configuration (OpenAI-compatible protocol).
	// All providers (openai, deepseek, siliconflow, openrouter, ollama) share the same config.
	LLMProvider    string  // Provider identifier
	LLMAPIKey      string  // API key; empty disables inference and forces the fallback path
	LLMBaseURL     string  // Base URL (optional, has default per provider)
	LLMModel       string  // Model name: gpt-4o, deepseek-chat, etc.
	LLMTimeout     int     // LLM request timeout in seconds (default: 60)
	LLMMaxTokens   int     // Maximum generated tokens per call (default: 800)
	LLMTemperature float32 // Sampling temperature (default: 0.2)

	Mode    string // dev, prod, demo
	Addr    string // address of server
	Port    int    // port of server
	Data    string // data directory
	Driver  string // database driver: postgres, sqlite, memory
	DSN     string // database source name
	Version string
}

// Provider default configurations for the LLM.
// Used when LLM base URL or model is not explicitly set.
var llmProviderDefaults = map[string]struct {
	BaseURL string
	Model   string
}{
	"openai": {
		BaseURL: "https://api.openai.com/v1",
		Model:   "gpt-4o",
	},
	"deepseek": {
		BaseURL: "https://api.deepseek.com",
		Model:   "deepseek-chat",
	},
	"siliconflow": {
		BaseURL: "https://api.siliconflow.cn/v1",
		Model:   "Qwen/Qwen2.5-72B-Instruct",
	},
	"openrouter": {
		BaseURL: "https://openrouter.ai/api/v1",
		Model:   "mistralai/mixtral-8x7b-instruct",
	},
	"ollama": {
		BaseURL: "http://localhost:11434",
		Model:   "llama3.1",
	},
}

func (p *Profile) IsDev() bool {
	return p.Mode != "prod"
}

// IsAIEnabled returns true if an LLM API key is configured.
// Ollama runs locally without a key, so it is always considered enabled.
func (p *Profile) IsAIEnabled() bool {
	return p.LLMAPIKey != "" || p.LLMProvider == "ollama"
}

// getEnvOrDefault returns environment variable value or default value.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvOrDefaultInt returns environment variable value as int or default value.
func getEnvOrDefaultInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvOrDefaultFloat returns environment variable value as float32 or default value.
func getEnvOrDefaultFloat(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

// FromEnv loads LLM configuration from environment variables.
func (p *Profile) FromEnv() {
	p.LLMProvider = getEnvOrDefault("CLINICALNOTES_AI_LLM_PROVIDER", "openai")
	p.LLMAPIKey = getEnvOrDefault("CLINICALNOTES_AI_LLM_API_KEY", "")
	p.LLMBaseURL = getEnvOrDefault("CLINICALNOTES_AI_LLM_BASE_URL", "")
	p.LLMModel = getEnvOrDefault("CLINICALNOTES_AI_LLM_MODEL", "")
	p.LLMTimeout = getEnvOrDefaultInt("CLINICALNOTES_AI_LLM_TIMEOUT_SECONDS", 60)
	p.LLMMaxTokens = getEnvOrDefaultInt("CLINICALNOTES_AI_LLM_MAX_TOKENS", 800)
	p.LLMTemperature = getEnvOrDefaultFloat("CLINICALNOTES_AI_LLM_TEMPERATURE", 0.2)

	if p.LLMProvider != "" {
		if _, ok := llmProviderDefaults[p.LLMProvider]; !ok {
			slog.Warn("unknown LLM provider, using default: openai", "provider", p.LLMProvider)
			p.LLMProvider = "openai"
		}
	}
	if defaults, ok := llmProviderDefaults[p.LLMProvider]; ok {
		if p.LLMBaseURL == "" {
			p.LLMBaseURL = defaults.BaseURL
		}
		if p.LLMModel == "" {
			p.LLMModel = defaults.Model
		}
	}
}

func checkDataDir(dataDir string) (string, error) {
	// Convert to absolute path if relative path is supplied.
	if !filepath.IsAbs(dataDir) {
		relativeDir := filepath.Join(filepath.Dir(os.Args[0]), dataDir)
		absDir, err := filepath.Abs(relativeDir)
		if err != nil {
			return "", err
		}
		dataDir = absDir
	}

	// Trim trailing \ or / in case user supplies
	dataDir = strings.TrimRight(dataDir, "\\/")
	if _, err := os.Stat(dataDir); err != nil {
		return "", errors.Wrapf(err, "unable to access data folder %s", dataDir)
	}
	return dataDir, nil
}

func (p *Profile) Validate() error {
	if p.Mode != "demo" && p.Mode != "dev" && p.Mode != "prod" {
		p.Mode = "demo"
	}

	if p.Driver != "postgres" && p.Driver != "sqlite" && p.Driver != "memory" {
		return errors.Errorf("unsupported database driver: %s", p.Driver)
	}

	// The memory driver holds records in-process and needs no data directory or DSN.
	if p.Driver == "memory" {
		return nil
	}

	if p.Driver == "postgres" && p.DSN == "" {
		return errors.New("dsn required for postgres driver")
	}

	if p.Driver == "sqlite" {
		dataDir, err := checkDataDir(p.Data)
		if err != nil {
			slog.Error("failed to check data directory", slog.String("data", p.Data), slog.String("error", err.Error()))
			return err
		}
		p.Data = dataDir
		if p.DSN == "" {
			dbFile := fmt.Sprintf("clinicalnotes_%s.db", p.Mode)
			p.DSN = filepath.Join(dataDir, dbFile)
		}
	}

	return nil
}
