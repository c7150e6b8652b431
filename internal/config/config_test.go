package config

import "testing"

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{Host: "0.0.0.0", Port: 8000, Mode: "release"},
		Output: OutputConfig{Dir: "output"},
		Providers: ProvidersConfig{
			Image: "gemini",
			Video: "veo",
		},
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "valid config",
			mutate: func(c *Config) {},
		},
		{
			name:    "invalid port",
			mutate:  func(c *Config) { c.Server.Port = 0 },
			wantErr: true,
		},
		{
			name:    "invalid mode",
			mutate:  func(c *Config) { c.Server.Mode = "production" },
			wantErr: true,
		},
		{
			name:   "ark image provider",
			mutate: func(c *Config) { c.Providers.Image = "ark" },
		},
		{
			name:    "unsupported image provider",
			mutate:  func(c *Config) { c.Providers.Image = "dalle" },
			wantErr: true,
		},
		{
			name:    "unsupported video provider",
			mutate:  func(c *Config) { c.Providers.Video = "sora" },
			wantErr: true,
		},
		{
			name:    "missing output dir",
			mutate:  func(c *Config) { c.Output.Dir = "" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Errorf("Validate() = nil, want error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}
