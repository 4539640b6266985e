package controller

import "testing"

func TestStartOptions(t *testing.T) {
	cfg := &StartConfig{}
	if cfg.mode != ModePlain {
		t.Fatalf("zero config mode = %v, want %v", cfg.mode, ModePlain)
	}

	WithBrowseMode()(cfg)
	if cfg.mode != ModeBrowse {
		t.Fatalf("WithBrowseMode() mode = %v, want %v", cfg.mode, ModeBrowse)
	}
}
