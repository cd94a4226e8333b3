package dotenv

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// флаги командной строки важнее .env и окружения
var overrides = []struct {
	flag  string
	env   string
	usage string
}{
	{flag: "port", env: "PORT", usage: "Server port (overrides PORT environment variable)"},
	{flag: "storage", env: "STORAGE_DRIVER", usage: "Storage driver, postgres or memory (overrides STORAGE_DRIVER environment variable)"},
}

func Load() error {
	err := godotenv.Load()
	if err != nil {
		return err
	}

	return applyFlags(flag.CommandLine, os.Args[1:])
}

func applyFlags(fs *flag.FlagSet, args []string) error {
	values := make(map[string]*string, len(overrides))
	for _, o := range overrides {
		values[o.env] = fs.String(o.flag, "", o.usage)
	}

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	for env, value := range values {
		if *value == "" {
			continue
		}
		if err := os.Setenv(env, *value); err != nil {
			return fmt.Errorf("failed to set %s environment variable: %w", env, err)
		}
	}
	return nil
}
