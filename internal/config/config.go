package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Client      ClientConfig      `yaml:"client"`
	Dictionary  DictionaryConfig  `yaml:"dictionary"`
	Translation TranslationConfig `yaml:"translation"`
	CORS        CORSConfig        `yaml:"cors"`
	Log         LogConfig         `yaml:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// ClientConfig holds settings shared by both upstream clients.
type ClientConfig struct {
	UserAgent string        `yaml:"user_agent" env:"CLIENT_USER_AGENT" env-default:"YosWearDic@Yos-X"`
	Timeout   time.Duration `yaml:"timeout"    env:"CLIENT_TIMEOUT"    env-default:"10s"`
}

// DictionaryConfig holds dictionary upstream settings.
type DictionaryConfig struct {
	BaseURL string `yaml:"base_url" env:"DICTIONARY_BASE_URL" env-default:"https://dict.youdao.com/jsonapi"`
}

// TranslationConfig holds translation upstream settings.
type TranslationConfig struct {
	BaseURL string `yaml:"base_url" env:"TRANSLATION_BASE_URL" env-default:"https://fanyi.so.com/index/search"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-default:"*"`
	AllowedMethods string `yaml:"allowed_methods" env:"CORS_ALLOWED_METHODS" env-default:"GET,POST,OPTIONS"`
	AllowedHeaders string `yaml:"allowed_headers" env:"CORS_ALLOWED_HEADERS" env-default:"Content-Type,X-Request-Id"`
	MaxAge         int    `yaml:"max_age"         env:"CORS_MAX_AGE"         env-default:"86400"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
