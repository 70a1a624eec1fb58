package envconfig

import "github.com/caarlos0/env/v11"

type catalogEnv struct {
	Bootstrap bool `env:"CATALOG_BOOTSTRAP" envDefault:"true"`
}

type catalog struct {
	raw catalogEnv
}

func NewCatalogConfig() (*catalog, error) {
	var raw catalogEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &catalog{raw: raw}, nil
}

func (cfg *catalog) Bootstrap() bool { return cfg.raw.Bootstrap }
