package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"ringside/internal/config"
)

const baseConfig = `
shutdown_timeout = "30s"
version = "0.1.0"

[server]
host = "0.0.0.0"
port = 8080
read_timeout = "1m"
write_timeout = "15m"
shutdown_timeout = "30s"

[database]
host = "localhost"
port = 5432
name = "ringside"
user = "ringside"
password = "ringside"
ssl_mode = "disable"
max_open_conns = 25
max_idle_conns = 5
conn_max_lifetime = "15m"
conn_timeout = "5s"

[storage]
container_name = "documents"
connection_string = "DefaultEndpointsProtocol=http;AccountName=ringsidestore;AccountKey=key;BlobEndpoint=http://127.0.0.1:10000/ringsidestore;"

[api]
base_path = "/api"

[api.cors]
enabled = false

[api.pagination]
default_page_size = 25
max_page_size = 50

[eligibility]
expiring_soon_days = 30
checklist = ["physical", "blood_test", "eye_exam"]
sweep_interval = "1h"
`

const overlayConfig = `
[server]
port = 9090

[database]
host = "prodhost"
`

// minimalConfig provides the minimum fields required for validation to
// pass (db name, db user, storage connection string).
const minimalConfig = `
shutdown_timeout = "30s"

[server]
port = 8080

[database]
name = "ringside"
user = "ringside"

[storage]
connection_string = "conn"

[api]
base_path = "/api"
`

func writeConfig(t *testing.T, dir, filename, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, filename), []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", filename, err)
	}
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(orig) })
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", baseConfig)
	chdir(t, dir)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("server port: got %d, want 8080", cfg.Server.Port)
	}
	if cfg.Database.Host != "localhost" {
		t.Errorf("db host: got %s, want localhost", cfg.Database.Host)
	}
	if cfg.Storage.ContainerName != "documents" {
		t.Errorf("storage container: got %s, want documents", cfg.Storage.ContainerName)
	}
	if cfg.API.BasePath != "/api" {
		t.Errorf("api base_path: got %s, want /api", cfg.API.BasePath)
	}
	if cfg.API.Pagination.DefaultPageSize != 25 {
		t.Errorf("pagination default_page_size: got %d, want 25", cfg.API.Pagination.DefaultPageSize)
	}
	if len(cfg.Eligibility.Checklist) != 3 {
		t.Errorf("eligibility checklist: got %d entries, want 3", len(cfg.Eligibility.Checklist))
	}
}

func TestLoadWithOverlay(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", baseConfig)
	writeConfig(t, dir, "config.staging.toml", overlayConfig)
	chdir(t, dir)

	t.Setenv("RINGSIDE_ENV", "staging")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("server port: got %d, want 9090 (from overlay)", cfg.Server.Port)
	}
	if cfg.Database.Host != "prodhost" {
		t.Errorf("db host: got %s, want prodhost (from overlay)", cfg.Database.Host)
	}
	if cfg.Database.Port != 5432 {
		t.Errorf("db port: got %d, want 5432 (from base)", cfg.Database.Port)
	}
}

func TestLoadEnvVarOverrides(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", baseConfig)
	chdir(t, dir)

	t.Setenv("RINGSIDE_VERSION", "2.0.0")
	t.Setenv("RINGSIDE_SERVER_PORT", "3000")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Version != "2.0.0" {
		t.Errorf("version: got %s, want 2.0.0", cfg.Version)
	}
	if cfg.Server.Port != 3000 {
		t.Errorf("server port: got %d, want 3000", cfg.Server.Port)
	}
}

func TestLoadNoConfigFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	t.Setenv("RINGSIDE_DB_NAME", "testdb")
	t.Setenv("RINGSIDE_DB_USER", "testuser")
	t.Setenv("RINGSIDE_STORAGE_CONNECTION_STRING", "conn")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load without config.toml failed: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("server port default: got %d, want 8080", cfg.Server.Port)
	}
	if cfg.Database.Name != "testdb" {
		t.Errorf("db name from env: got %s, want testdb", cfg.Database.Name)
	}
}

func TestLoadInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", `server = {port =`)
	chdir(t, dir)

	_, err := config.Load()
	if err == nil {
		t.Fatal("expected error for invalid TOML")
	}
}

func TestEnvDefault(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", baseConfig)
	chdir(t, dir)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Env() != "local" {
		t.Errorf("env: got %s, want local", cfg.Env())
	}
}

func TestShutdownTimeoutDuration(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", baseConfig)
	chdir(t, dir)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if d := cfg.ShutdownTimeoutDuration(); d != 30*time.Second {
		t.Errorf("shutdown timeout: got %v, want 30s", d)
	}
}

func TestMaxUploadSizeBytes(t *testing.T) {
	tests := []struct {
		name string
		size string
		want int64
	}{
		{"valid 50MB", "50MB", 50 * 1024 * 1024},
		{"valid 10MB", "10MB", 10 * 1024 * 1024},
		{"valid 1GB", "1GB", 1024 * 1024 * 1024},
		{"invalid falls back to 10MB", "bad", 10 * 1024 * 1024},
		{"empty falls back to 10MB", "", 10 * 1024 * 1024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.APIConfig{MaxUploadSize: tt.size}
			got := cfg.MaxUploadSizeBytes()
			if got != tt.want {
				t.Errorf("MaxUploadSizeBytes() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMaxUploadSizeDefault(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", minimalConfig)
	chdir(t, dir)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	want := int64(10 * 1024 * 1024)
	if got := cfg.API.MaxUploadSizeBytes(); got != want {
		t.Errorf("MaxUploadSizeBytes() = %d, want %d", got, want)
	}
}

func TestServerValidation(t *testing.T) {
	tests := []struct {
		name    string
		config  string
		wantErr string
	}{
		{
			name: "invalid port",
			config: `
shutdown_timeout = "30s"

[server]
port = 99999

[database]
name = "ringside"
user = "ringside"

[storage]
connection_string = "conn"
`,
			wantErr: "invalid port",
		},
		{
			name: "invalid read_timeout",
			config: `
shutdown_timeout = "30s"

[server]
read_timeout = "bad"

[database]
name = "ringside"
user = "ringside"

[storage]
connection_string = "conn"
`,
			wantErr: "invalid read_timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeConfig(t, dir, "config.toml", tt.config)
			chdir(t, dir)

			_, err := config.Load()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestEligibilityDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", minimalConfig)
	chdir(t, dir)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Eligibility.ExpiringSoonDays != 30 {
		t.Errorf("expiring_soon_days: got %d, want 30", cfg.Eligibility.ExpiringSoonDays)
	}
	if len(cfg.Eligibility.Checklist) == 0 {
		t.Error("default checklist is empty")
	}
	if cfg.Eligibility.SweepIntervalDuration() != time.Hour {
		t.Errorf("sweep interval: got %v, want 1h", cfg.Eligibility.SweepIntervalDuration())
	}
}

func TestEligibilityValidation(t *testing.T) {
	cfg := &config.EligibilityConfig{
		Checklist: []string{"blood_test", "hologram_scan"},
	}

	err := cfg.Finalize()
	if err == nil {
		t.Fatal("expected error for unknown checklist type")
	}
	if !strings.Contains(err.Error(), "hologram_scan") {
		t.Errorf("error %q does not name the unknown type", err.Error())
	}
}

func TestEligibilityPolicies(t *testing.T) {
	cfg := &config.EligibilityConfig{
		Expiration: map[string]int{"blood_test": 90},
		Suspension: map[string]int{"knockout_loss": 60},
	}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	p := cfg.Policies()

	days, err := p.Expiration.ValidityDays("blood_test")
	if err != nil {
		t.Fatalf("ValidityDays failed: %v", err)
	}
	if days != 90 {
		t.Errorf("blood_test override: got %d, want 90", days)
	}

	days, err = p.Expiration.ValidityDays("drug_test")
	if err != nil {
		t.Fatalf("ValidityDays failed: %v", err)
	}
	if days != 90 {
		t.Errorf("drug_test baseline: got %d, want 90", days)
	}

	if d, _ := p.Suspension.Lookup("knockout_loss"); d != 60 {
		t.Errorf("knockout_loss override: got %d, want 60", d)
	}
	if d, _ := p.Suspension.Lookup("tko_loss"); d != 21 {
		t.Errorf("tko_loss baseline: got %d, want 21", d)
	}
}

func TestEligibilityEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", baseConfig)
	chdir(t, dir)

	t.Setenv("RINGSIDE_ELIGIBILITY_EXPIRING_SOON_DAYS", "14")
	t.Setenv("RINGSIDE_ELIGIBILITY_CHECKLIST", "blood_test, license")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Eligibility.ExpiringSoonDays != 14 {
		t.Errorf("expiring_soon_days: got %d, want 14", cfg.Eligibility.ExpiringSoonDays)
	}
	if len(cfg.Eligibility.Checklist) != 2 || cfg.Eligibility.Checklist[1] != "license" {
		t.Errorf("checklist: got %v, want [blood_test license]", cfg.Eligibility.Checklist)
	}
}
