package config

import (
	"testing"
	"time"
)

func pointHome(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("OPSDESK_API_URL", "")
	t.Setenv("OPSDESK_POLL_INTERVAL", "")
	t.Setenv("OPSDESK_PAGE_SIZE", "")
}

func TestDefaults(t *testing.T) {
	pointHome(t)

	if got := GetAPIURL(); got != defaultAPIURL {
		t.Errorf("GetAPIURL = %q, want default", got)
	}
	if got := GetPollInterval(); got != 5*time.Second {
		t.Errorf("GetPollInterval = %v, want 5s", got)
	}
	if got := GetPageSize(); got != 10 {
		t.Errorf("GetPageSize = %d, want 10", got)
	}
}

func TestEnvOverrides(t *testing.T) {
	pointHome(t)
	t.Setenv("OPSDESK_API_URL", "http://localhost:9090")
	t.Setenv("OPSDESK_POLL_INTERVAL", "250ms")
	t.Setenv("OPSDESK_PAGE_SIZE", "25")

	if got := GetAPIURL(); got != "http://localhost:9090" {
		t.Errorf("GetAPIURL = %q", got)
	}
	if got := GetPollInterval(); got != 250*time.Millisecond {
		t.Errorf("GetPollInterval = %v", got)
	}
	if got := GetPageSize(); got != 25 {
		t.Errorf("GetPageSize = %d", got)
	}
}

func TestInvalidEnvFallsBack(t *testing.T) {
	pointHome(t)
	t.Setenv("OPSDESK_POLL_INTERVAL", "often")
	t.Setenv("OPSDESK_PAGE_SIZE", "-3")

	if got := GetPollInterval(); got != 5*time.Second {
		t.Errorf("GetPollInterval = %v, want default for invalid env", got)
	}
	if got := GetPageSize(); got != 10 {
		t.Errorf("GetPageSize = %d, want default for invalid env", got)
	}
}

func TestConfigFileValues(t *testing.T) {
	pointHome(t)

	cfg := &Config{
		APIURL: "https://staging.example.net",
		Console: ConsoleConfig{
			PollInterval: "2s",
			PageSize:     15,
		},
	}
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if got := GetAPIURL(); got != "https://staging.example.net" {
		t.Errorf("GetAPIURL = %q", got)
	}
	if got := GetPollInterval(); got != 2*time.Second {
		t.Errorf("GetPollInterval = %v", got)
	}
	if got := GetPageSize(); got != 15 {
		t.Errorf("GetPageSize = %d", got)
	}
}

func TestViewStateRoundTrip(t *testing.T) {
	pointHome(t)

	want := ViewState{SearchTerm: "airtel", SortKey: "Amount", SortDesc: true}
	if err := SetViewState(want); err != nil {
		t.Fatalf("SetViewState: %v", err)
	}

	got, err := GetViewState()
	if err != nil {
		t.Fatalf("GetViewState: %v", err)
	}
	if got != want {
		t.Errorf("view state = %+v, want %+v", got, want)
	}

	// Saving view state must not clobber other settings.
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cfg.APIURL = "https://staging.example.net"
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := SetViewState(ViewState{SearchTerm: "jio"}); err != nil {
		t.Fatalf("SetViewState: %v", err)
	}
	if got := GetAPIURL(); got != "https://staging.example.net" {
		t.Errorf("API URL lost after SetViewState: %q", got)
	}
}
