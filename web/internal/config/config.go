package config

import (
	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Server    server
	Shortener shortenerClient
	Tracing   tracing
}

type server struct {
	Addr string `env:"SERVER_ADDR" env-default:":8080"`
	// Empty means short links are built from the request's own origin
	PublicHost string `env:"PUBLIC_HOST"`
}

type shortenerClient struct {
	URL string `env:"SHORTENER_URL" env-default:"http://localhost:1323"`
}

type tracing struct {
	CollectorAddr string `env:"TRACING_COLLECTOR_ADDR"`
}

func NewConfig() (*Config, error) {
	var cfg Config

	// Read .env file
	// If failed to read file, will try ReadEnv
	if err := cleanenv.ReadConfig(".env", &cfg); err == nil {
		return &cfg, nil
	}

	// Read env
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
