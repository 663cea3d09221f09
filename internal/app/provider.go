package app

import (
	"fmt"

	"github.com/guttosm/quotepulse/config"
	"github.com/guttosm/quotepulse/internal/provider"
	"github.com/guttosm/quotepulse/internal/provider/financego"
	"github.com/guttosm/quotepulse/internal/provider/yahoo"
)

// NewProvider builds the market-data provider named in cfg.Provider.Name.
//
// Supported values:
//   - "yahoo": REST client for the Yahoo chart API at cfg.Provider.BaseURL.
//   - "financego": piquette/finance-go backed client.
//
// Returns an error for any other name.
func NewProvider(cfg config.Config) (provider.Provider, error) {
	switch cfg.Provider.Name {
	case config.ProviderYahoo:
		return yahoo.NewClient(cfg.Provider.BaseURL, cfg.Provider.Timeout, cfg.Provider.UserAgent), nil
	case config.ProviderFinanceGo:
		return financego.NewClient(cfg.Provider.Timeout), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider.Name)
	}
}

// providerOpener is an indirection used by InitializeApp; overridden in tests to avoid real upstream calls.
var providerOpener = NewProvider
