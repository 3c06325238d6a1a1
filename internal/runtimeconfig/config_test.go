package runtimeconfig_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-pagemeta/internal/runtimeconfig"
)

func validConfig() runtimeconfig.Config {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Catalog.Path = "pages.json"
	return cfg
}

func TestConfig_Defaults(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()

	if !cfg.Enabled {
		t.Fatalf("expected module enabled by default")
	}
	if cfg.DefaultLanguage != "en" {
		t.Fatalf("expected english default language, got %q", cfg.DefaultLanguage)
	}
	if cfg.Catalog.Provider != runtimeconfig.CatalogProviderJSON {
		t.Fatalf("expected json provider, got %q", cfg.Catalog.Provider)
	}
	if cfg.Related.DefaultLimit != 6 {
		t.Fatalf("expected related limit 6, got %d", cfg.Related.DefaultLimit)
	}
}

func TestConfig_Validate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*runtimeconfig.Config)
		wantErr error
	}{
		{"valid json config", func(*runtimeconfig.Config) {}, nil},
		{
			"json provider requires path",
			func(c *runtimeconfig.Config) { c.Catalog.Path = "" },
			runtimeconfig.ErrCatalogPathRequired,
		},
		{
			"markdown provider requires content dir",
			func(c *runtimeconfig.Config) {
				c.Catalog.Provider = runtimeconfig.CatalogProviderMarkdown
				c.Catalog.ContentDir = ""
			},
			runtimeconfig.ErrCatalogContentDirRequired,
		},
		{
			"sql provider requires db",
			func(c *runtimeconfig.Config) {
				c.Catalog.Provider = runtimeconfig.CatalogProviderSQL
			},
			runtimeconfig.ErrCatalogDatabaseRequired,
		},
		{
			"unknown provider rejected",
			func(c *runtimeconfig.Config) { c.Catalog.Provider = "yaml" },
			runtimeconfig.ErrCatalogProviderUnknown,
		},
		{
			"unsupported default language rejected",
			func(c *runtimeconfig.Config) { c.DefaultLanguage = "fr" },
			runtimeconfig.ErrDefaultLanguageInvalid,
		},
		{
			"arabic default language accepted",
			func(c *runtimeconfig.Config) { c.DefaultLanguage = "ar" },
			nil,
		},
		{
			"negative related limit rejected",
			func(c *runtimeconfig.Config) { c.Related.DefaultLimit = -1 },
			runtimeconfig.ErrRelatedLimitInvalid,
		},
		{
			"unknown logging provider rejected when logger enabled",
			func(c *runtimeconfig.Config) {
				c.Features.Logger = true
				c.Logging.Provider = "syslog"
			},
			runtimeconfig.ErrLoggingProviderUnknown,
		},
		{
			"logging options ignored when logger disabled",
			func(c *runtimeconfig.Config) {
				c.Logging.Provider = "syslog"
			},
			nil,
		},
		{
			"bad logging level rejected",
			func(c *runtimeconfig.Config) {
				c.Features.Logger = true
				c.Logging.Level = "verbose"
			},
			runtimeconfig.ErrLoggingLevelInvalid,
		},
		{
			"bad logging format rejected",
			func(c *runtimeconfig.Config) {
				c.Features.Logger = true
				c.Logging.Format = "xml"
			},
			runtimeconfig.ErrLoggingFormatInvalid,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("expected valid config, got %v", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}
