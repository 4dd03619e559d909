package config

import (
	"flag"
	"fmt"
	"github.com/ilyakaznacheev/cleanenv"
	"os"
	"time"
)

type Params struct {
	AddrRun             string        `env:"RUN_ADDRESS"`
	SecretKey           string        `env:"JWT_SECRET"`
	SessionTTL          time.Duration `env:"SESSION_TTL"`
	SessionReapInterval time.Duration `env:"SESSION_REAP_INTERVAL"`
	LogLevel            string        `env:"LOG_LEVEL"`
}

var Config Params = Params{}

func (f *Params) Parse() error {
	return f.parse(flag.CommandLine, os.Args[1:])
}

func (f *Params) parse(fs *flag.FlagSet, args []string) error {
	fs.StringVar(&f.AddrRun, "a", "localhost:8080", "address and port to run API")
	fs.StringVar(&f.SecretKey, "k", "dswereGsdfgert2345Dsd", "key used to sign session tokens")
	fs.DurationVar(&f.SessionTTL, "t", 5*time.Minute, "idle time after which a session is logged out")
	fs.DurationVar(&f.SessionReapInterval, "i", 30*time.Second, "how often expired sessions are dropped")
	fs.StringVar(&f.LogLevel, "l", "info", "log level")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := cleanenv.ReadEnv(f); err != nil {
		return fmt.Errorf("couldn't read environment variables: %w", err)
	}

	if f.SessionTTL <= 0 {
		return fmt.Errorf("session TTL must be positive, got %s", f.SessionTTL)
	}

	if f.SessionReapInterval <= 0 {
		return fmt.Errorf("session reap interval must be positive, got %s", f.SessionReapInterval)
	}

	return nil
}

func (f Params) String() string {
	return fmt.Sprintf("{AddrRun:%s SessionTTL:%s SessionReapInterval:%s LogLevel:%s}",
		f.AddrRun, f.SessionTTL, f.SessionReapInterval, f.LogLevel)
}
