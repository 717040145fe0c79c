package phenoai

import (
	"testing"

	"github.com/spf13/viper"
)

func TestGetClientConfigs_Valid(t *testing.T) {
	viper.Set("PHENOAI_CLIENT_V1_HOST", "localhost")
	viper.Set("PHENOAI_CLIENT_V1_PORT", 31415)
	viper.Set("PHENOAI_CLIENT_V1_TIMEOUT_IN_MS", 500)
	defer viper.Reset()

	conf, err := getClientConfigs(V1Prefix)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if conf.Host != "localhost" {
		t.Errorf("expected host localhost, got %s", conf.Host)
	}
	if conf.Port != 31415 {
		t.Errorf("expected port 31415, got %d", conf.Port)
	}
	if conf.TimeoutInMs != 500 {
		t.Errorf("expected timeout 500, got %d", conf.TimeoutInMs)
	}
}

func TestGetClientConfigs_MissingHost(t *testing.T) {
	viper.Reset()
	viper.Set("PHENOAI_CLIENT_V1_PORT", 31415)
	defer viper.Reset()

	_, err := getClientConfigs(V1Prefix)
	if err == nil {
		t.Fatal("expected error for missing host, got nil")
	}
}

func TestGetClientConfigs_Defaults(t *testing.T) {
	viper.Reset()
	viper.Set("PHENOAI_CLIENT_V1_HOST", "phenoai.svc")
	defer viper.Reset()

	conf, err := getClientConfigs(V1Prefix)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if conf.Port != DefaultPort {
		t.Errorf("expected default port %d, got %d", DefaultPort, conf.Port)
	}
	if conf.TimeoutInMs != DefaultTimeoutMS {
		t.Errorf("expected default timeout %d, got %d", DefaultTimeoutMS, conf.TimeoutInMs)
	}
}

func TestValidConfigs(t *testing.T) {
	tests := []struct {
		name   string
		config *ClientConfig
		wantOK bool
	}{
		{
			name:   "valid config",
			config: &ClientConfig{Host: "localhost", Port: 8080},
			wantOK: true,
		},
		{
			name:   "no timeout is valid",
			config: &ClientConfig{Host: "localhost", Port: 8080, TimeoutInMs: 0},
			wantOK: true,
		},
		{
			name:   "empty host",
			config: &ClientConfig{Host: "", Port: 8080},
			wantOK: false,
		},
		{
			name:   "zero port",
			config: &ClientConfig{Host: "localhost", Port: 0},
			wantOK: false,
		},
		{
			name:   "negative port",
			config: &ClientConfig{Host: "localhost", Port: -1},
			wantOK: false,
		},
		{
			name:   "negative timeout",
			config: &ClientConfig{Host: "localhost", Port: 8080, TimeoutInMs: -5},
			wantOK: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := validConfigs(tt.config)
			if ok != tt.wantOK {
				t.Errorf("validConfigs() = %v, want %v, err: %v", ok, tt.wantOK, err)
			}
		})
	}
}
