package meta

import (
	"strings"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"zero MinLiteralLen", func(c *Config) { c.MinLiteralLen = 0 }, "MinLiteralLen"},
		{"huge MinLiteralLen", func(c *Config) { c.MinLiteralLen = 65 }, "MinLiteralLen"},
		{"zero MaxLiterals", func(c *Config) { c.MaxLiterals = 0 }, "MaxLiterals"},
		{"huge MaxLiterals", func(c *Config) { c.MaxLiterals = 1_001 }, "MaxLiterals"},
		{"zero MaxClassSize", func(c *Config) { c.MaxClassSize = 0 }, "MaxClassSize"},
		{"huge MaxClassSize", func(c *Config) { c.MaxClassSize = 257 }, "MaxClassSize"},
		{"zero MaxSteps", func(c *Config) { c.MaxSteps = 0 }, "MaxSteps"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.mutate(&config)
			err := config.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			configErr, ok := err.(*ConfigError)
			if !ok {
				t.Fatalf("error type = %T, want *ConfigError", err)
			}
			if configErr.Field != tt.field {
				t.Errorf("Field = %q, want %q", configErr.Field, tt.field)
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("Error() = %q, missing field name", err.Error())
			}
		})
	}
}

func TestCompileRejectsInvalidConfig(t *testing.T) {
	config := DefaultConfig()
	config.MaxSteps = -1
	if _, err := CompileWithConfig("abc", config); err == nil {
		t.Fatal("CompileWithConfig accepted an invalid config")
	}
}
