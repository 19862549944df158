package config

import (
	"errors"
	"net/url"
)

// AssetRegistryConfig points at the custody service holding the NFT assets.
type AssetRegistryConfig struct {
	Host    string `mapstructure:"host"`
	Timeout int    `mapstructure:"timeout"`
}

func (cfg *AssetRegistryConfig) Validate() error {
	if err := validateClientHost(cfg.Host); err != nil {
		return err
	}

	if cfg.Timeout <= 0 {
		return errors.New("timeout cannot be smaller or equal to 0")
	}

	return nil
}

// RewardLedgerConfig points at the fungible reward token service.
type RewardLedgerConfig struct {
	Host    string `mapstructure:"host"`
	Timeout int    `mapstructure:"timeout"`
}

func (cfg *RewardLedgerConfig) Validate() error {
	if err := validateClientHost(cfg.Host); err != nil {
		return err
	}

	if cfg.Timeout <= 0 {
		return errors.New("timeout cannot be smaller or equal to 0")
	}

	return nil
}

func validateClientHost(host string) error {
	if host == "" {
		return errors.New("host cannot be empty")
	}

	parsedURL, err := url.ParseRequestURI(host)
	if err != nil {
		return errors.New("invalid client host")
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return errors.New("host must start with http or https")
	}

	return nil
}
