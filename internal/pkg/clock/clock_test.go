package clock

import (
	"math"
	"testing"
)

func fp(v float64) *float64 { return &v }

func TestFractionToClock(t *testing.T) {
	cases := []struct {
		name  string
		input *float64
		want  string
	}{
		{"midnight", fp(0), "00:00"},
		{"noon", fp(0.5), "12:00"},
		{"six am", fp(0.25), "06:00"},
		{"three pm", fp(0.625), "15:00"},
		{"ten pm", fp(0.9167), "22:00"},
		{"eight thirty", fp(0.3541666667), "08:30"},
		{"nil", nil, ""},
		{"nan", fp(math.NaN()), ""},
	}
	for _, c := range cases {
		if got := FractionToClock(c.input); got != c.want {
			t.Errorf("%s: FractionToClock = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestShiftHours(t *testing.T) {
	const eps = 1e-6
	cases := []struct {
		name   string
		logIn  *float64
		logOut *float64
		want   float64
	}{
		{"regular nine hour shift loses lunch", fp(0.25), fp(0.625), 8},
		{"crosses midnight", fp(0.9167), fp(0.25), 6.9992},
		{"short shift keeps lunch", fp(0.25), fp(0.4167), 4.0008},
		{"zero duration", fp(0.5), fp(0.5), 0},
		{"missing login", nil, fp(0.5), 0},
		{"missing logout", fp(0.25), nil, 0},
		{"both missing", nil, nil, 0},
	}
	for _, c := range cases {
		got := ShiftHours(c.logIn, c.logOut)
		if math.Abs(got-c.want) > eps {
			t.Errorf("%s: ShiftHours = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestShiftHoursMidnightExact(t *testing.T) {
	// 22:00 to 06:00: raw -16h, +24 rollover, minus lunch.
	got := ShiftHours(fp(22.0/24), fp(6.0/24))
	if math.Abs(got-7) > 1e-9 {
		t.Errorf("ShiftHours(22:00, 06:00) = %v, want 7", got)
	}
}

func TestDisplayHours(t *testing.T) {
	if got := DisplayHours(-0.5); got != 0 {
		t.Errorf("DisplayHours(-0.5) = %v, want 0", got)
	}
	if got := DisplayHours(7.25); got != 7.25 {
		t.Errorf("DisplayHours(7.25) = %v, want 7.25", got)
	}
}
