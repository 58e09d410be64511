// Package config provides type-safe environment variable loading with
// per-type caching using Go generics. A .env file is loaded automatically on
// first use; parsing uses caarlos0/env struct tags.
//
//	type ServiceConfig struct {
//		URL     string `env:"DATASERVICE_URL,required"`
//		AnonKey string `env:"DATASERVICE_ANON_KEY,required"`
//	}
//
//	var cfg ServiceConfig
//	config.MustLoad(&cfg)
//
// Each configuration type is loaded once per process; subsequent calls for
// the same type return the cached value.
package config
