package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/gate-snake/internal/config"
	"github.com/vovakirdan/gate-snake/internal/games/snake"
)

func TestSelectConfig(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	if err := os.WriteFile(good, []byte("board: {height: 15, width: 31}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	small := filepath.Join(dir, "small.yaml")
	if err := os.WriteFile(small, []byte("board: {height: 5, width: 5}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { snake.SetConfigPath("") })

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{"valid file", good, nil},
		{"board too small", small, config.ErrInvalid},
		{"missing file", filepath.Join(dir, "missing.yaml"), os.ErrNotExist},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := selectConfig(tc.path)
			if tc.wantErr == nil {
				if err != nil {
					t.Errorf("selectConfig(%s) failed: %v", tc.path, err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("selectConfig(%s) = %v, expected %v", tc.path, err, tc.wantErr)
			}
		})
	}
}

func TestRootRejectsInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	if err := os.WriteFile(path, []byte("board: {height: 5, width: 5}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		flagConfig = ""
		snake.SetConfigPath("")
		rootCmd.SetArgs(nil)
	})

	rootCmd.SetArgs([]string{"list", "--config", path})
	rootCmd.SetOut(io.Discard)
	rootCmd.SetErr(io.Discard)
	if err := rootCmd.Execute(); !errors.Is(err, config.ErrInvalid) {
		t.Errorf("Execute() = %v, expected %v", err, config.ErrInvalid)
	}
}
