package creational

import (
	"sync"

	"patternlab/internal/output"
)

// AppConfig is the configuration every service shares.
type AppConfig struct {
	Currency string
	TaxRate  int64
}

// ConfigProvider lazily creates exactly one AppConfig. The provider is
// owned by the caller and handed to the services that need it.
type ConfigProvider struct {
	once   sync.Once
	config *AppConfig
	loads  int
}

// Config returns the shared configuration, loading it on first use.
func (p *ConfigProvider) Config() *AppConfig {
	p.once.Do(func() {
		p.loads++
		p.config = &AppConfig{Currency: "USD", TaxRate: 20}
	})
	return p.config
}

// Loads returns how many times the configuration was loaded.
func (p *ConfigProvider) Loads() int {
	return p.loads
}

type billingService struct{ config *AppConfig }
type reportingService struct{ config *AppConfig }

func demoSingleton(p *output.Printer) error {
	provider := &ConfigProvider{}

	billing := billingService{config: provider.Config()}
	reporting := reportingService{config: provider.Config()}

	p.Linef("billing currency: %s", billing.config.Currency)
	p.Linef("reporting currency: %s", reporting.config.Currency)
	p.Linef("same instance: %t", billing.config == reporting.config)

	billing.config.TaxRate = 21
	p.Linef("reporting sees tax rate update: %d%%", reporting.config.TaxRate)
	p.Linef("configuration loads: %d", provider.Loads())
	return nil
}
