package profile

import (
	"testing"
)

func TestProfileDefaults(t *testing.T) {
	clearLLMEnvVars(t)

	profile := &Profile{}
	profile.FromEnv()

	tests := []struct {
		name     string
		expected string
		actual   string
	}{
		{"LLMProvider default", "openai", profile.LLMProvider},
		{"LLMBaseURL default", "https://api.openai.com/v1", profile.LLMBaseURL},
		{"LLMModel default", "gpt-4o", profile.LLMModel},
		{"LLMAPIKey default", "", profile.LLMAPIKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.actual != tt.expected {
				t.Errorf("%s: expected %q, got %q", tt.name, tt.expected, tt.actual)
			}
		})
	}

	if profile.LLMMaxTokens != 800 {
		t.Errorf("LLMMaxTokens default: expected 800, got %d", profile.LLMMaxTokens)
	}
	if profile.LLMTemperature != 0.2 {
		t.Errorf("LLMTemperature default: expected 0.2, got %v", profile.LLMTemperature)
	}
	if profile.IsAIEnabled() {
		t.Error("AI should be disabled without an API key")
	}
}

func TestProfileFromEnv(t *testing.T) {
	clearLLMEnvVars(t)
	t.Setenv("CLINICALNOTES_AI_LLM_PROVIDER", "deepseek")
	t.Setenv("CLINICALNOTES_AI_LLM_API_KEY", "test-key")
	t.Setenv("CLINICALNOTES_AI_LLM_MAX_TOKENS", "1024")

	profile := &Profile{}
	profile.FromEnv()

	if profile.LLMProvider != "deepseek" {
		t.Errorf("LLMProvider: expected deepseek, got %q", profile.LLMProvider)
	}
	if profile.LLMBaseURL != "https://api.deepseek.com" {
		t.Errorf("LLMBaseURL: expected provider default, got %q", profile.LLMBaseURL)
	}
	if profile.LLMMaxTokens != 1024 {
		t.Errorf("LLMMaxTokens: expected 1024, got %d", profile.LLMMaxTokens)
	}
	if !profile.IsAIEnabled() {
		t.Error("AI should be enabled with an API key")
	}
}

func TestProfileUnknownProviderFallsBack(t *testing.T) {
	clearLLMEnvVars(t)
	t.Setenv("CLINICALNOTES_AI_LLM_PROVIDER", "not-a-provider")

	profile := &Profile{}
	profile.FromEnv()

	if profile.LLMProvider != "openai" {
		t.Errorf("unknown provider should fall back to openai, got %q", profile.LLMProvider)
	}
}

func TestProfileValidate(t *testing.T) {
	tests := []struct {
		name    string
		profile Profile
		wantErr bool
	}{
		{
			name:    "memory driver needs nothing",
			profile: Profile{Mode: "demo", Driver: "memory"},
			wantErr: false,
		},
		{
			name:    "postgres without dsn",
			profile: Profile{Mode: "dev", Driver: "postgres"},
			wantErr: true,
		},
		{
			name:    "postgres with dsn",
			profile: Profile{Mode: "dev", Driver: "postgres", DSN: "postgres://localhost/notes?sslmode=disable"},
			wantErr: false,
		},
		{
			name:    "unsupported driver",
			profile: Profile{Mode: "dev", Driver: "oracle"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.profile.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestProfileValidateSQLiteDefaultDSN(t *testing.T) {
	dir := t.TempDir()
	profile := Profile{Mode: "dev", Driver: "sqlite", Data: dir}
	if err := profile.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if profile.DSN == "" {
		t.Error("sqlite driver should derive a default DSN from the data directory")
	}
}

func clearLLMEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CLINICALNOTES_AI_LLM_PROVIDER",
		"CLINICALNOTES_AI_LLM_API_KEY",
		"CLINICALNOTES_AI_LLM_BASE_URL",
		"CLINICALNOTES_AI_LLM_MODEL",
		"CLINICALNOTES_AI_LLM_TIMEOUT_SECONDS",
		"CLINICALNOTES_AI_LLM_MAX_TOKENS",
		"CLINICALNOTES_AI_LLM_TEMPERATURE",
	} {
		t.Setenv(key, "")
	}
}
