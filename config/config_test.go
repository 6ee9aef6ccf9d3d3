package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("RABBITMQ_ROUTING_KEY", "")
	t.Setenv("SESSION_TTL", "")
	t.Setenv("STORAGE_SWEEP_INTERVAL", "")
	t.Setenv("SERVICE_PORT", "")

	cfg := Load()

	assert.Equal(t, defaultServicePort, cfg.App.Port)
	assert.Equal(t, defaultSessionTTL, cfg.App.SessionTTL)
	assert.Equal(t, time.Duration(0), cfg.S3.SweepInterval)
	assert.Equal(t, defaultSweepGrace, cfg.S3.SweepGrace)
	assert.Equal(t, "disable", cfg.DB.SSLMode)
	assert.Equal(t, "blob.orphan", cfg.MQ.RoutingKey)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("SERVICE_PORT", "9090")
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("SESSION_SECURE_COOKIE", "true")
	t.Setenv("S3_USE_PATH_STYLE", "1")
	t.Setenv("STORAGE_SWEEP_INTERVAL", "15m")
	t.Setenv("STORAGE_SWEEP_GRACE", "not-a-duration")

	cfg := Load()

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, 2*time.Hour, cfg.App.SessionTTL)
	assert.True(t, cfg.App.SecureCookie)
	assert.True(t, cfg.S3.UsePathStyle)
	assert.Equal(t, 15*time.Minute, cfg.S3.SweepInterval)
	assert.Equal(t, defaultSweepGrace, cfg.S3.SweepGrace, "invalid duration falls back to default")
}

func TestConfig_DBDSN(t *testing.T) {
	tests := []struct {
		name    string
		db      DB
		want    string
		wantErr bool
	}{
		{
			name:    "incomplete",
			db:      DB{User: "u", Host: "h"},
			wantErr: true,
		},
		{
			name: "escaped password",
			db:   DB{User: "u", Password: "p@ss", Name: "files", Host: "db", Port: "5432", SSLMode: "disable"},
			want: "postgres://u:p%40ss@db:5432/files?sslmode=disable",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			dsn, err := Config{DB: tt.db}.DBDSN()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, dsn)
		})
	}
}

func TestConfig_AMQPDSN(t *testing.T) {
	_, err := Config{}.AMQPDSN()
	require.Error(t, err)

	dsn, err := Config{MQ: MQ{User: "guest", Password: "guest", Host: "mq", AmqpPort: "5672", Vhost: "/"}}.AMQPDSN()
	require.NoError(t, err)
	assert.Equal(t, "amqp://guest:guest@mq:5672/%2F", dsn)
}

func TestConfig_Validate(t *testing.T) {
	require.Error(t, Config{}.Validate())
	require.Error(t, Config{App: APP{JWTSecret: "s"}}.Validate())
	require.NoError(t, Config{App: APP{JWTSecret: "s"}, S3: S3{BucketUploads: "b"}}.Validate())
}
