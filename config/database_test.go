package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPostgresProviderConnectFailure(t *testing.T) {
	// Nothing listens on this port, so the open-time ping fails and the
	// provider signals that with nil rather than an error.
	cfg := &Config{
		DBHost:     "localhost",
		DBPort:     "9999",
		DBUser:     "invalid",
		DBPassword: "invalid",
		DBName:     "nonexistent",
	}
	provider := NewPostgresProvider(cfg)

	db := provider.Connect()
	assert.Nil(t, db, "Connect should return nil when the database is unreachable")
}

func TestPostgresProviderReleaseNil(t *testing.T) {
	provider := NewPostgresProvider(&Config{DBName: "ecommerce"})

	// The provider never closes a connection it failed to create; Release
	// must tolerate the nil from a failed Connect.
	assert.NotPanics(t, func() {
		provider.Release(nil)
	})
}
