package log

import "testing"

// TestParseLevel tests textual level parsing
func TestParseLevel(t *testing.T) {
	tests := []struct {
		value string
		want  Level
	}{
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"", LevelInfo},
		{"verbose", LevelInfo},
	}

	for _, tt := range tests {
		t.Run("value="+tt.value, func(t *testing.T) {
			if got := ParseLevel(tt.value); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

// TestGet_InitializesDefault tests lazy initialization
func TestGet_InitializesDefault(t *testing.T) {
	Reset()
	defer Reset()

	if Get() == nil {
		t.Fatal("Get() should initialize a default logger")
	}
}

// TestInit tests explicit initialization
func TestInit(t *testing.T) {
	Reset()
	defer Reset()

	Init(LevelDebug)
	if Get() == nil {
		t.Fatal("Init() should set the global logger")
	}
}
