package debug

import (
	"testing"

	"orbit-backdrop/internal/config"
)

func TestNewFollowsConfig(t *testing.T) {
	cases := []struct {
		cfg     config.Debug
		enabled bool
	}{
		{config.Debug{}, false},
		{config.Debug{ShowFPS: true}, true},
		{config.Debug{ShowHover: true}, true},
		{config.Debug{ShowStats: true}, true},
	}
	for _, tc := range cases {
		o := New(tc.cfg, Probe{})
		if o.Enabled() != tc.enabled {
			t.Errorf("%+v: expected enabled=%v, got %v", tc.cfg, tc.enabled, o.Enabled())
		}
	}
}

func TestDrawDisabledIsNoop(t *testing.T) {
	o := New(config.Debug{}, Probe{})
	o.Draw()
	if o.frameCount != 0 || o.fpsText != "" {
		t.Errorf("Expected disabled overlay to skip refresh, got frame %d text %q", o.frameCount, o.fpsText)
	}
}

func TestCount(t *testing.T) {
	if got := count(nil); got != 0 {
		t.Errorf("Expected 0 for missing probe, got %d", got)
	}
	if got := count(func() uint64 { return 7 }); got != 7 {
		t.Errorf("Expected 7, got %d", got)
	}
}
