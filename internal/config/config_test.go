package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.DataFile != defaultDataFile {
		t.Fatalf("expected default data file %s, got %s", defaultDataFile, cfg.DataFile)
	}
	if cfg.Log.Level != defaultLogLevel || cfg.Log.Format != defaultLogFormat {
		t.Fatalf("unexpected log defaults %+v", cfg.Log)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Port != defaultMetricsPort {
		t.Fatalf("unexpected metrics defaults %+v", cfg.Metrics)
	}
	if cfg.Metrics.ServiceName != defaultServiceName {
		t.Fatalf("expected default service name, got %s", cfg.Metrics.ServiceName)
	}
	if cfg.Metrics.OtlpEndpoint != "" || !cfg.Metrics.OtlpInsecure {
		t.Fatalf("unexpected otlp defaults %+v", cfg.Metrics)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envPort, "5000")
	t.Setenv(envDataFile, "/srv/results.csv")
	t.Setenv(envLogLevel, "debug")
	t.Setenv(envLogFormat, "json")
	t.Setenv(envMetricsOn, "false")
	t.Setenv(envMetricsPort, "9191")
	t.Setenv(envOtelEndpoint, "collector:4318")
	t.Setenv(envOtelService, "dash")
	t.Setenv(envOtelInsecure, "no")

	cfg := Load()

	if cfg.Port != "5000" {
		t.Fatalf("expected port 5000, got %s", cfg.Port)
	}
	if cfg.DataFile != "/srv/results.csv" {
		t.Fatalf("expected data file override, got %s", cfg.DataFile)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Fatalf("expected log overrides, got %+v", cfg.Log)
	}
	if cfg.Metrics.Enabled || cfg.Metrics.Port != "9191" {
		t.Fatalf("expected metrics overrides, got %+v", cfg.Metrics)
	}
	if cfg.Metrics.OtlpEndpoint != "collector:4318" || cfg.Metrics.ServiceName != "dash" || cfg.Metrics.OtlpInsecure {
		t.Fatalf("expected otlp overrides, got %+v", cfg.Metrics)
	}
}

func TestLoadBlankValuesFallBack(t *testing.T) {
	t.Setenv(envDataFile, "   ")

	cfg := Load()
	if cfg.DataFile != defaultDataFile {
		t.Fatalf("expected default data file for blank value, got %q", cfg.DataFile)
	}
}
