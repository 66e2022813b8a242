package progress

import "testing"

func TestClamp(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		value float64
		want  float64
	}{
		{"negative clamps to zero", -0.5, 0.0},
		{"zero passes through", 0.0, 0.0},
		{"mid-range passes through", 0.42, 0.42},
		{"one passes through", 1.0, 1.0},
		{"overshoot clamps to one", 1.7, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Clamp(tt.value); got != tt.want {
				t.Errorf("Clamp(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestNewChannelCallback(t *testing.T) {
	t.Parallel()

	t.Run("forwards tagged updates", func(t *testing.T) {
		t.Parallel()
		ch := make(chan ProgressUpdate, 1)
		cb := NewChannelCallback(ch, 3)

		cb(0.5)

		update := <-ch
		if update.CalculatorIndex != 3 {
			t.Errorf("CalculatorIndex = %d, want 3", update.CalculatorIndex)
		}
		if update.Value != 0.5 {
			t.Errorf("Value = %v, want 0.5", update.Value)
		}
	})

	t.Run("clamps out-of-range values", func(t *testing.T) {
		t.Parallel()
		ch := make(chan ProgressUpdate, 1)
		cb := NewChannelCallback(ch, 0)

		cb(2.0)

		if update := <-ch; update.Value != 1.0 {
			t.Errorf("Value = %v, want 1.0", update.Value)
		}
	})

	t.Run("drops updates when the buffer is full", func(t *testing.T) {
		t.Parallel()
		ch := make(chan ProgressUpdate, 1)
		cb := NewChannelCallback(ch, 0)

		cb(0.1)
		cb(0.2) // buffer full, must not block

		if update := <-ch; update.Value != 0.1 {
			t.Errorf("Value = %v, want 0.1", update.Value)
		}
		select {
		case update := <-ch:
			t.Errorf("unexpected second update: %+v", update)
		default:
		}
	})
}
