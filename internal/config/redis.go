package config

import (
	"strconv"
	"time"
)

// RedisConfig представляет конфигурацию для Redis.
type RedisConfig struct {
	Enabled        bool          `yaml:"enabled" env:"API_REDIS_ENABLED" env-default:"false"`
	Host           string        `yaml:"host" env:"API_REDIS_HOST" env-default:"localhost"`
	Port           int           `yaml:"port" env:"API_REDIS_PORT" env-default:"6379"`
	Password       string        `yaml:"password" env:"API_REDIS_PASSWORD" env-default:""`
	DB             int           `yaml:"db" env:"API_REDIS_DB" env-default:"0"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" env:"API_REDIS_CONNECT_TIMEOUT" env-default:"5s"`
	ReadTimeout    time.Duration `yaml:"read_timeout" env:"API_REDIS_READ_TIMEOUT" env-default:"3s"`
	WriteTimeout   time.Duration `yaml:"write_timeout" env:"API_REDIS_WRITE_TIMEOUT" env-default:"3s"`
	PoolSize       int           `yaml:"pool_size" env:"API_REDIS_POOL_SIZE" env-default:"10"`
	DefaultTTL     time.Duration `yaml:"default_ttl" env:"API_REDIS_DEFAULT_TTL" env-default:"15m"`
}

// GetAddressString возвращает адрес Redis строкой.
func (c *RedisConfig) GetAddressString() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}

// GetDefaultTTL возвращает TTL кэша по умолчанию.
func (c *RedisConfig) GetDefaultTTL() time.Duration {
	if c.DefaultTTL <= 0 {
		return 15 * time.Minute
	}
	return c.DefaultTTL
}
