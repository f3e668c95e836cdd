package config

import (
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		wantError string
	}{
		{
			name: "valid manifest",
			cfg: Config{
				Alignment:  4,
				LineLength: 16,
				Assets: []Asset{
					{File: "gfx/foo.bin"},
					{File: "snd/boom.pcm", Name: "boom"},
				},
			},
			wantError: "",
		},
		{
			name: "no assets",
			cfg: Config{
				Alignment:  4,
				LineLength: 16,
			},
			wantError: "no assets",
		},
		{
			name: "negative alignment",
			cfg: Config{
				Alignment:  -2,
				LineLength: 16,
				Assets:     []Asset{{File: "foo.bin"}},
			},
			wantError: "alignment must be greater than 0",
		},
		{
			name: "zero line length",
			cfg: Config{
				Alignment:  4,
				LineLength: -1,
				Assets:     []Asset{{File: "foo.bin"}},
			},
			wantError: "line_length must be greater than 0",
		},
		{
			name: "asset without file",
			cfg: Config{
				Alignment:  4,
				LineLength: 16,
				Assets:     []Asset{{Name: "orphan"}},
			},
			wantError: "missing a file path",
		},
		{
			name: "name with no legal characters",
			cfg: Config{
				Alignment:  4,
				LineLength: 16,
				Assets:     []Asset{{File: "foo.bin", Name: "$$$"}},
			},
			wantError: "legal characters",
		},
		{
			name: "colliding symbols",
			cfg: Config{
				Alignment:  4,
				LineLength: 16,
				Assets: []Asset{
					{File: "gfx/foo.bin"},
					{File: "old/foo-bin"},
				},
			},
			wantError: "both produce symbol 'foo_bin'",
		},
		{
			name: "name override avoids collision",
			cfg: Config{
				Alignment:  4,
				LineLength: 16,
				Assets: []Asset{
					{File: "gfx/foo.bin"},
					{File: "old/foo-bin", Name: "foo_legacy"},
				},
			},
			wantError: "",
		},
		{
			name: "invalid logging level",
			cfg: Config{
				Alignment:  4,
				LineLength: 16,
				Logging:    LoggingConfig{Level: "verbose"},
				Assets:     []Asset{{File: "foo.bin"}},
			},
			wantError: "invalid logging level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(&tt.cfg)
			if tt.wantError != "" {
				if err == nil {
					t.Errorf("Validate() expected error containing %q, got nil", tt.wantError)
				} else if !strings.Contains(err.Error(), tt.wantError) {
					t.Errorf("Validate() error = %v, want substring %q", err, tt.wantError)
				}
			} else {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{Assets: []Asset{{File: "foo.bin"}}}
	ApplyDefaults(&cfg)

	if cfg.Alignment != 4 {
		t.Errorf("Alignment = %d, want 4", cfg.Alignment)
	}
	if cfg.LineLength != 16 {
		t.Errorf("LineLength = %d, want 16", cfg.LineLength)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want \"info\"", cfg.Logging.Level)
	}
	if cfg.Output != "" {
		t.Errorf("Output = %q, want stdout default", cfg.Output)
	}
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := Config{
		Output:     "assets.s",
		Alignment:  8,
		LineLength: 12,
		Logging:    LoggingConfig{Level: "debug"},
	}
	ApplyDefaults(&cfg)

	if cfg.Alignment != 8 || cfg.LineLength != 12 {
		t.Errorf("ApplyDefaults() overwrote explicit parameters: %+v", cfg)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want \"debug\"", cfg.Logging.Level)
	}
}

func TestAssetIdentifier(t *testing.T) {
	tests := []struct {
		name  string
		asset Asset
		want  string
	}{
		{name: "basename used by default", asset: Asset{File: "gfx/foo.bin"}, want: "foo.bin"},
		{name: "override wins", asset: Asset{File: "gfx/foo.bin", Name: "sprites"}, want: "sprites"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.asset.Identifier(); got != tt.want {
				t.Errorf("Identifier() = %q, want %q", got, tt.want)
			}
		})
	}
}
