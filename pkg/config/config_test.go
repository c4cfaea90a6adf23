package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestFromViperDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	cfg := fromViper(v)

	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "/api/v1", cfg.APIPrefix)
	assert.False(t, cfg.Views.CacheEnabled)
	assert.Equal(t, 2*time.Minute, cfg.Views.CacheTTL)
	assert.Equal(t, CacheBackendRedis, cfg.Views.CacheBackend)
	assert.Equal(t, 1024, cfg.Views.MemoryCacheSize)
	assert.Equal(t, "res.cloudinary.com", cfg.CDN.Host)
	assert.Empty(t, cfg.CDN.CloudName)
	assert.Equal(t, "https://placehold.co/600x400", cfg.CDN.PlaceholderURL)
	assert.True(t, cfg.Exports.Enabled)
	assert.Nil(t, cfg.CORS.AllowedOrigins)
}

func TestFromViperOverrides(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("CACHE_BACKEND", " Memory ")
	v.Set("VIEW_CACHE_TTL", "not-a-duration")
	v.Set("JWT_EXPIRATION", "90m")
	v.Set("ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
	v.Set("ENABLE_VIEW_CACHE", true)

	cfg := fromViper(v)

	assert.Equal(t, CacheBackendMemory, cfg.Views.CacheBackend)
	assert.Equal(t, 2*time.Minute, cfg.Views.CacheTTL)
	assert.Equal(t, 90*time.Minute, cfg.JWT.Expiration)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	assert.True(t, cfg.Views.CacheEnabled)
}

func TestFromViperUnknownBackendFallsBackToRedis(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("CACHE_BACKEND", "memcached")

	assert.Equal(t, CacheBackendRedis, fromViper(v).Views.CacheBackend)
}

func TestValidate(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	assert.NoError(t, fromViper(v).Validate())

	v.Set("ENV", EnvProduction)
	assert.ErrorContains(t, fromViper(v).Validate(), "JWT_SECRET")

	v.Set("JWT_SECRET", "rotated-secret")
	assert.NoError(t, fromViper(v).Validate())

	v.Set("CACHE_BACKEND", CacheBackendMemory)
	v.Set("ENABLE_VIEW_CACHE", true)
	v.Set("MEMORY_CACHE_SIZE", 0)
	assert.ErrorContains(t, fromViper(v).Validate(), "MEMORY_CACHE_SIZE")
}
