package config

import "time"

var JWTSecret []byte
var JWTExpiration time.Duration

func init() {
	JWTSecret = []byte(GetEnv("JWT_SECRET", "your-secret-key-change-this-in-production"))
	JWTExpiration = GetEnvDuration("JWT_EXPIRATION", 24*time.Hour)
}
