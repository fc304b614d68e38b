package config

import "time"

// JWTConfig содержит настройки для подписи bearer-токенов. Переменные
// окружения совпадают с принятыми для этого сервиса именами:
// SECRET_KEY, ALGORITHM, ACCESS_TOKEN_EXPIRE_MINUTES.
type JWTConfig struct {
	SecretKey                string `yaml:"secret_key" env:"SECRET_KEY" env-default:"super-secret-key-change-me-in-production"`
	Algorithm                string `yaml:"algorithm" env:"ALGORITHM" env-default:"HS256"`
	AccessTokenExpireMinutes int    `yaml:"access_token_expire_minutes" env:"ACCESS_TOKEN_EXPIRE_MINUTES" env-default:"30"`
}

// GetAccessTokenTTL возвращает продолжительность времени жизни access токена.
func (c *JWTConfig) GetAccessTokenTTL() time.Duration {
	if c.AccessTokenExpireMinutes <= 0 {
		return 30 * time.Minute
	}
	return time.Duration(c.AccessTokenExpireMinutes) * time.Minute
}
