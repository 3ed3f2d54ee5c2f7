package models

import (
	"testing"
	"time"
)

func TestWeekdaysCodec(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		w := &Weekdays{Monday: true, Wednesday: true, Friday: true}

		encoded, err := EncodeWeekdays(w)
		if err != nil {
			t.Fatalf("EncodeWeekdays() failed: %v", err)
		}

		decoded, err := DecodeWeekdays(encoded)
		if err != nil {
			t.Fatalf("DecodeWeekdays() failed: %v", err)
		}
		if *decoded != *w {
			t.Errorf("got %+v, want %+v", decoded, w)
		}
	})

	t.Run("nil encodes to empty string", func(t *testing.T) {
		encoded, err := EncodeWeekdays(nil)
		if err != nil {
			t.Fatalf("EncodeWeekdays(nil) failed: %v", err)
		}
		if encoded != "" {
			t.Errorf("got %q, want empty string", encoded)
		}
	})

	t.Run("empty string decodes to nil", func(t *testing.T) {
		decoded, err := DecodeWeekdays("")
		if err != nil {
			t.Fatalf("DecodeWeekdays(\"\") failed: %v", err)
		}
		if decoded != nil {
			t.Errorf("got %+v, want nil", decoded)
		}
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		if _, err := DecodeWeekdays("{not json"); err == nil {
			t.Error("DecodeWeekdays() accepted malformed input")
		}
	})
}

func TestWeekdaysContains(t *testing.T) {
	w := Weekdays{Tuesday: true, Sunday: true}

	if !w.Contains(time.Tuesday) || !w.Contains(time.Sunday) {
		t.Error("selected days not reported")
	}
	if w.Contains(time.Monday) || w.Contains(time.Saturday) {
		t.Error("unselected days reported")
	}
}

func TestHabitHasTarget(t *testing.T) {
	target, current := 8.0, 2.0

	cases := []struct {
		name  string
		habit Habit
		want  bool
	}{
		{"both set", Habit{Target: &target, Current: &current}, true},
		{"neither set", Habit{}, false},
		{"target only", Habit{Target: &target}, false},
		{"current only", Habit{Current: &current}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.habit.HasTarget(); got != tc.want {
				t.Errorf("HasTarget() = %v, want %v", got, tc.want)
			}
		})
	}
}
