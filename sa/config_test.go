package sa

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	mutate := func(f func(*Config)) Config {
		c := DefaultConfig()
		f(&c)
		return c
	}

	cases := []struct {
		name string
		cfg  Config
		want error
	}{
		{"defaults", DefaultConfig(), nil},
		{"frozen schedule", mutate(func(c *Config) { c.Alpha = 0 }), nil},
		{"zero initial temp", mutate(func(c *Config) { c.InitialTemp = 0 }), ErrBadInitialTemp},
		{"negative initial temp", mutate(func(c *Config) { c.InitialTemp = -5 }), ErrBadInitialTemp},
		{"nan initial temp", mutate(func(c *Config) { c.InitialTemp = math.NaN() }), ErrBadInitialTemp},
		{"zero final temp", mutate(func(c *Config) { c.FinalTemp = 0 }), ErrBadFinalTemp},
		{"floor above start", mutate(func(c *Config) { c.FinalTemp = c.InitialTemp }), ErrBadFinalTemp},
		{"negative alpha", mutate(func(c *Config) { c.Alpha = -0.01 }), ErrBadAlpha},
		{"nan alpha", mutate(func(c *Config) { c.Alpha = math.NaN() }), ErrBadAlpha},
		{"zero neighbors", mutate(func(c *Config) { c.NeighborsPerTemp = 0 }), ErrBadNeighborsPerTemp},
		{"zero stall limit", mutate(func(c *Config) { c.StallLimit = 0 }), ErrBadStallLimit},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestDefaultConfig_IsValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}
