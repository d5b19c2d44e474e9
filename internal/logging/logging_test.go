package logging

import "testing"

// TestParseLevel verifies level name mapping and the Info default.
func TestParseLevel(t *testing.T) {
	tests := []struct {
		name string
		want Level
	}{
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"bogus", LevelInfo},
		{"", LevelInfo},
	}

	for _, tt := range tests {
		t.Run("level "+tt.name, func(t *testing.T) {
			if got := ParseLevel(tt.name); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

// TestInitLogger verifies the global logger is replaced for each format.
func TestInitLogger(t *testing.T) {
	InitLogger(LevelDebug, FormatJSON)
	if GetLogger() == nil {
		t.Fatal("GetLogger returned nil after InitLogger")
	}
	InitLogger(LevelInfo, FormatText)
	if GetLogger() == nil {
		t.Fatal("GetLogger returned nil after re-init")
	}
}
