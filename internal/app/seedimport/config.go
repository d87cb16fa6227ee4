package seedimport

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds seed-import settings.
type Config struct {
	File        string `yaml:"file"          env:"SEED_IMPORT_FILE"          env-default:"./seed.json"`
	DryRun      bool   `yaml:"dry_run"       env:"SEED_IMPORT_DRY_RUN"`
	MaxDocBytes int64  `yaml:"max_doc_bytes" env:"SEED_IMPORT_MAX_DOC_BYTES" env-default:"33554432"`
}

// LoadConfig reads config from YAML file or environment variables.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := cleanenv.ReadConfig(path, &cfg); err != nil {
				return nil, fmt.Errorf("seed-import config: %w", err)
			}
			return &cfg, nil
		}
		return nil, fmt.Errorf("seed-import config: file %s not found", path)
	}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("seed-import config: read env: %w", err)
	}
	return &cfg, nil
}
