package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bibi40k/filemenu/pkg/filemenu"
)

func TestResolveMode(t *testing.T) {
	askLoad := func() (string, error) { return modeLoad, nil }
	askFail := func() (string, error) { return "", errors.New("interrupted") }
	noAsk := func() (string, error) {
		t.Fatal("ask must not be called")
		return "", nil
	}

	tests := []struct {
		name        string
		save, load  bool
		interactive bool
		ask         func() (string, error)
		want        bool
		wantErr     bool
	}{
		{"save flag", true, false, true, noAsk, true, false},
		{"load flag", false, true, true, noAsk, false, false},
		{"both flags", true, true, true, noAsk, false, true},
		{"redirected stdin saves", false, false, false, noAsk, true, false},
		{"asked load", false, false, true, askLoad, false, false},
		{"ask fails", false, false, true, askFail, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveMode(tt.save, tt.load, tt.interactive, tt.ask)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadMenuConfig(t *testing.T) {
	cfg, err := loadMenuConfig("")
	require.NoError(t, err)
	assert.Equal(t, filemenu.DefaultConfig(), cfg)

	dir := t.TempDir()
	good := filepath.Join(dir, "menu.toml")
	require.NoError(t, os.WriteFile(good, []byte("[menu]\nextension = \"sav\"\n"), 0644))
	cfg, err = loadMenuConfig(good)
	require.NoError(t, err)
	assert.Equal(t, "sav", cfg.Extension)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("menu:\n  padding_width: 5\n"), 0644))
	_, err = loadMenuConfig(bad)
	var ue *userError
	require.ErrorAs(t, err, &ue)
	assert.NotEmpty(t, ue.Hint())
	assert.ErrorIs(t, err, filemenu.ErrInvalidConfig)

	_, err = loadMenuConfig(filepath.Join(dir, "missing.yaml"))
	require.ErrorAs(t, err, &ue)
	assert.Contains(t, ue.Error(), "missing.yaml")
}
