package cycle

import (
	"testing"
	"time"
)

func TestBootstrap(t *testing.T) {
	tests := []struct {
		name   string
		cursor int
		want   Phase
	}{
		{
			name:   "fresh cursor forces a generate before the first display",
			cursor: 0,
			want:   PhaseGenerating,
		},
		{
			name:   "recovered cursor starts with a display",
			cursor: 1,
			want:   PhaseDisplaying,
		},
		{
			name:   "mid-ring cursor starts with a display",
			cursor: 37,
			want:   PhaseDisplaying,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Bootstrap(tt.cursor)
			if got.Next != tt.want {
				t.Errorf("Bootstrap(%d).Next = %q, want %q", tt.cursor, got.Next, tt.want)
			}
			if got.Delay != 0 {
				t.Errorf("Bootstrap(%d).Delay = %v, want 0 (first phase runs immediately)", tt.cursor, got.Delay)
			}
		})
	}
}

func TestAfterGenerate(t *testing.T) {
	tests := []struct {
		name      string
		ok        bool
		wantNext  Phase
		wantDelay time.Duration
	}{
		{
			name:      "success moves to display after the long pause",
			ok:        true,
			wantNext:  PhaseDisplaying,
			wantDelay: DelayAfterGenerate,
		},
		{
			name:     "failure stops the cycle",
			ok:       false,
			wantNext: PhaseStopped,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AfterGenerate(tt.ok)
			if got.Next != tt.wantNext {
				t.Errorf("AfterGenerate(%v).Next = %q, want %q", tt.ok, got.Next, tt.wantNext)
			}
			if got.Delay != tt.wantDelay {
				t.Errorf("AfterGenerate(%v).Delay = %v, want %v", tt.ok, got.Delay, tt.wantDelay)
			}
		})
	}
}

func TestAfterDisplay(t *testing.T) {
	tests := []struct {
		name      string
		ok        bool
		wantNext  Phase
		wantDelay time.Duration
	}{
		{
			name:      "success moves to generate after the short pause",
			ok:        true,
			wantNext:  PhaseGenerating,
			wantDelay: DelayAfterDisplay,
		},
		{
			name:     "failure stops the cycle",
			ok:       false,
			wantNext: PhaseStopped,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AfterDisplay(tt.ok)
			if got.Next != tt.wantNext {
				t.Errorf("AfterDisplay(%v).Next = %q, want %q", tt.ok, got.Next, tt.wantNext)
			}
			if got.Delay != tt.wantDelay {
				t.Errorf("AfterDisplay(%v).Delay = %v, want %v", tt.ok, got.Delay, tt.wantDelay)
			}
		})
	}
}

func TestTerminal(t *testing.T) {
	for _, p := range []Phase{PhaseIdle, PhaseBootstrapping, PhaseGenerating, PhaseDisplaying} {
		if Terminal(p) {
			t.Errorf("Terminal(%q) = true, want false", p)
		}
	}
	if !Terminal(PhaseStopped) {
		t.Error("Terminal(stopped) = false, want true")
	}
}

func TestDutyCycleConstants(t *testing.T) {
	if DelayAfterDisplay != 5*time.Minute {
		t.Errorf("DelayAfterDisplay = %v, want 5m", DelayAfterDisplay)
	}
	if DelayAfterGenerate != time.Hour {
		t.Errorf("DelayAfterGenerate = %v, want 1h", DelayAfterGenerate)
	}
}
