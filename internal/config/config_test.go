package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func newViperWithDefaults() *viper.Viper {
	v := viper.New()
	for key, value := range Defaults() {
		v.SetDefault(key, value)
	}
	return v
}

func TestFromViperDefaults(t *testing.T) {
	cfg, err := FromViper(newViperWithDefaults())
	require.NoError(t, err)

	require.Equal(t, 5, cfg.Checks.Workers)
	require.Equal(t, 500*time.Millisecond, cfg.Checks.DomainDelay)
	require.Equal(t, time.Second, cfg.Checks.NameDelay)
	require.Equal(t, 10*time.Second, cfg.Probes.WhoisTimeout)
	require.Equal(t, time.Hour, cfg.Cache.AvailableTTL)
	require.True(t, cfg.Cache.Enabled)
	require.Equal(t, "libsql", cfg.Store.Driver)
	require.Equal(t, 8710, cfg.Server.Port)
	require.Equal(t, "info", cfg.Logging.Level)
	require.Equal(t, 0.8, cfg.RateLimitMargin)
	require.NoError(t, cfg.Validate())
}

func TestFromViperOverrides(t *testing.T) {
	v := newViperWithDefaults()
	v.Set("checks.workers", 2)
	v.Set("checks.suffixes", []string{"", "hq"})
	v.Set("probes.whois_servers", map[string]string{"com": "whois.verisign-grs.com"})

	cfg, err := FromViper(v)
	require.NoError(t, err)
	require.Equal(t, 2, cfg.Checks.Workers)
	require.Equal(t, []string{"", "hq"}, cfg.Checks.Suffixes)
	require.Equal(t, "whois.verisign-grs.com", cfg.Probes.WhoisServers["com"])
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg, err := FromViper(newViperWithDefaults())
	require.NoError(t, err)

	cfg.Server.Port = 70000
	require.Error(t, cfg.Validate())

	cfg.Server.Port = 8710
	cfg.RateLimitMargin = 1.5
	require.Error(t, cfg.Validate())

	cfg.RateLimitMargin = 0.8
	cfg.Output.Format = "xml"
	require.Error(t, cfg.Validate())
}

func TestFromViperNil(t *testing.T) {
	_, err := FromViper(nil)
	require.Error(t, err)
}
