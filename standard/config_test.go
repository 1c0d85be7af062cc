package standard

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "database.yml")
	data := []byte(`host: db.internal
port: 3307
username: app
password: secret
database: app_production
params:
  charset: utf8mb4
max_open_conns: 50
max_idle_conns: 10
conn_max_lifetime: 300
conn_max_idle_time: 60
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() = %v", err)
	}
	want := Config{
		Host:            "db.internal",
		Port:            3307,
		Username:        "app",
		Password:        "secret",
		Database:        "app_production",
		Params:          map[string]string{"charset": "utf8mb4"},
		MaxOpenConns:    50,
		MaxIdleConns:    10,
		ConnMaxLifetime: 300,
		ConnMaxIdleTime: 60,
	}
	if !reflect.DeepEqual(config, want) {
		t.Errorf("LoadConfig() = %+v, want %+v", config, want)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Parallel()

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yml")); err == nil {
		t.Error("LoadConfig() = nil, want error")
	}
}

func TestDSN(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		config Config
		want   string
	}{
		{
			name:   "defaults",
			config: Config{Username: "user", Password: "pass", Database: "app"},
			want:   "user:pass@tcp(127.0.0.1:3306)/app?parseTime=true",
		},
		{
			name: "explicit host and port",
			config: Config{
				Host: "db.internal", Port: 3307,
				Username: "app", Password: "secret", Database: "app",
			},
			want: "app:secret@tcp(db.internal:3307)/app?parseTime=true",
		},
		{
			name:   "zero value",
			config: Config{},
			want:   "tcp(127.0.0.1:3306)/?parseTime=true",
		},
		{
			name: "driver params",
			config: Config{
				Username: "user", Password: "pass", Database: "app",
				Params: map[string]string{"charset": "utf8mb4"},
			},
			want: "user:pass@tcp(127.0.0.1:3306)/app?parseTime=true&charset=utf8mb4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.config.DSN(); got != tt.want {
				t.Errorf("DSN() = %q, want %q", got, tt.want)
			}
		})
	}
}
