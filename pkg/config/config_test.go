package config

import (
	"math"
	"strings"
	"testing"
)

func validProductionConfig() *Config {
	return &Config{
		Environment:        EnvProduction,
		LogLevel:           "info",
		CORSAllowedOrigins: "https://fridge.example.com",
		RestockThreshold:   0.25,
		EventsBackend:      EventsMemory,
	}
}

func TestValidateForProduction(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "non-production skips checks", mutate: func(c *Config) {
			c.Environment = EnvDevelopment
			c.LogLevel = "debug"
			c.CORSAllowedOrigins = "*"
		}},
		{name: "debug logging", mutate: func(c *Config) { c.LogLevel = "debug" }, wantErr: "LOG_LEVEL"},
		{name: "wildcard cors", mutate: func(c *Config) { c.CORSAllowedOrigins = "https://a.example.com, *" }, wantErr: "CORS_ALLOWED_ORIGINS"},
		{name: "threshold above one", mutate: func(c *Config) { c.RestockThreshold = 1.5 }, wantErr: "RESTOCK_THRESHOLD"},
		{name: "negative threshold", mutate: func(c *Config) { c.RestockThreshold = -0.1 }, wantErr: "RESTOCK_THRESHOLD"},
		{name: "NaN threshold", mutate: func(c *Config) { c.RestockThreshold = math.NaN() }, wantErr: "RESTOCK_THRESHOLD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validProductionConfig()
			tt.mutate(cfg)
			err := ValidateForProduction(cfg)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error mentioning %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidateForProduction_CollectsAllProblems(t *testing.T) {
	cfg := validProductionConfig()
	cfg.LogLevel = "debug"
	cfg.CORSAllowedOrigins = "*"

	err := ValidateForProduction(cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"LOG_LEVEL", "CORS_ALLOWED_ORIGINS"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("expected %q in %q", want, err.Error())
		}
	}
}

func TestAllowedOrigins(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"*", []string{"*"}},
		{"https://a.example.com, https://b.example.com", []string{"https://a.example.com", "https://b.example.com"}},
		{" , ,", nil},
		{"", nil},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := (&Config{CORSAllowedOrigins: tt.in}).AllowedOrigins()
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("entry %d: got %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("RESTOCK_THRESHOLD", "0.4")
	t.Setenv("EVENTS_BACKEND", "memory")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTPAddr != ":9090" {
		t.Errorf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if cfg.RestockThreshold != 0.4 {
		t.Errorf("RestockThreshold = %v", cfg.RestockThreshold)
	}
	if cfg.ServiceName == "" {
		t.Error("expected default service name")
	}
}

func TestLoad_RejectsInvalidThreshold(t *testing.T) {
	for _, v := range []string{"2", "-0.5", "NaN"} {
		t.Run(v, func(t *testing.T) {
			t.Setenv("RESTOCK_THRESHOLD", v)

			if _, err := Load(); err == nil || !strings.Contains(err.Error(), "RESTOCK_THRESHOLD") {
				t.Fatalf("expected threshold error, got %v", err)
			}
		})
	}
}
