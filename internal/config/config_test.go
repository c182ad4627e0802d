package config

import (
	"os"
	"testing"
)

func TestGetIntBool(t *testing.T) {
	os.Setenv("X_INT", "42")
	t.Cleanup(func() { os.Unsetenv("X_INT") })
	if v := getInt("X_INT", 1); v != 42 {
		t.Fatalf("want 42, got %d", v)
	}

	os.Setenv("X_BOOL_T", "true")
	os.Setenv("X_BOOL_F", "false")
	t.Cleanup(func() { os.Unsetenv("X_BOOL_T"); os.Unsetenv("X_BOOL_F") })
	if !getBool("X_BOOL_T", false) {
		t.Fatalf("want true")
	}
	if getBool("X_BOOL_F", true) {
		t.Fatalf("want false")
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, store, _, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Addr == "" {
		t.Fatalf("server addr default missing")
	}
	if cfg.JWT.AccessMin <= 0 || cfg.JWT.RefreshDays <= 0 {
		t.Fatalf("jwt lifetimes not defaulted: %+v", cfg.JWT)
	}
	if store.Get() != cfg {
		t.Fatalf("store should hold the loaded config")
	}
}

func TestStoreValidatorRejects(t *testing.T) {
	cfg := &Config{}
	cfg.PG.MaxOpenConns = 10
	cfg.PG.MaxIdleConns = 5
	store := NewStore(cfg)
	store.AddValidator(func(newCfg *Config, changed map[string]bool) error {
		if newCfg.PG.MaxIdleConns > newCfg.PG.MaxOpenConns {
			return os.ErrInvalid
		}
		return nil
	})

	bad := cloneConfig(cfg)
	bad.PG.MaxIdleConns = 99
	if store.UpdateValidated(bad, map[string]bool{"pg.max_idle": true}) {
		t.Fatalf("expected rejected update")
	}
	if store.Get().PG.MaxIdleConns != 5 {
		t.Fatalf("rejected update must not be applied")
	}

	good := cloneConfig(cfg)
	good.PG.MaxIdleConns = 8
	if !store.UpdateValidated(good, map[string]bool{"pg.max_idle": true}) {
		t.Fatalf("expected accepted update")
	}
	if store.Get().PG.MaxIdleConns != 8 {
		t.Fatalf("accepted update must be visible")
	}
}
