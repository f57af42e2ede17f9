package cli

import (
	"github.com/brandonbloom/rn/internal/config"
	"github.com/brandonbloom/rn/internal/repos"
)

func loadConfig(opts *rootOptions) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	return cfg.Override(opts.root, opts.color)
}

func loadRepos(opts *rootOptions) (config.Config, []repos.Repo, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return config.Config{}, nil, err
	}
	all, err := repos.List(cfg.Root)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, all, nil
}
