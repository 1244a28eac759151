package configs

import "time"

// HTTP defines configuration for the HTTP server.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`
	// ReadTimeout bounds reading a whole request including the body.
	ReadTimeout time.Duration `env:"READ_TIMEOUT" envDefault:"15s"`
	// WriteTimeout must exceed the gateway timeout, because the donation
	// and callback handlers block on the gateway before responding.
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"45s"`
	// StaticDir is served under /static/.
	StaticDir string `env:"STATIC_DIR" envDefault:"static"`
}
