package config

import "time"

// defaultConfig returns the built-in fallback values applied after all other
// sources. They mirror the development defaults of the sample: a local
// server on port 8000 and a client pointed at it.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "go-api-sample",
			TokenDuration: 30 * time.Minute,
			Version:       "dev",
		},
		Server: Server{
			HTTPAddress:    "localhost:8000",
			RequestTimeout: 30 * time.Second,
		},
		Client: Client{
			BaseURL:        "http://localhost:8000",
			RequestTimeout: 15 * time.Second,
		},
	}
}
