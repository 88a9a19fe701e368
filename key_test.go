package lunar

import "testing"

func TestParseKeyLetters(t *testing.T) {
	cases := []struct {
		label string
		want  Key
	}{
		{"a", KeyA},
		{"A", KeyA},
		{"d", KeyD},
		{"D", KeyD},
		{"q", KeyQ},
		{"w", KeyW},
		{"z", KeyZ},
		{"Z", KeyZ},
	}
	for _, c := range cases {
		if got := ParseKey(c.label); got != c.want {
			t.Errorf("ParseKey(%q) = %v, want %v", c.label, got, c.want)
		}
	}
}

func TestParseKeyDigits(t *testing.T) {
	for d := byte('0'); d <= '9'; d++ {
		label := string(d)
		want := Key0 + Key(d-'0')
		if got := ParseKey(label); got != want {
			t.Errorf("ParseKey(%q) = %v, want %v", label, got, want)
		}
	}
}

func TestParseKeySpace(t *testing.T) {
	for _, label := range []string{"Space", "space", "SPACE", " "} {
		if got := ParseKey(label); got != KeySpace {
			t.Errorf("ParseKey(%q) = %v, want KeySpace", label, got)
		}
	}
}

func TestParseKeyUnknown(t *testing.T) {
	labels := []string{
		"", "Escape", "F1", "ArrowLeft", "Shift", "Tab", "Enter",
		"aa", "10", "!", "ß", "Spacebar",
	}
	for _, label := range labels {
		if got := ParseKey(label); got != KeyUnknown {
			t.Errorf("ParseKey(%q) = %v, want KeyUnknown", label, got)
		}
	}
}

func TestKeyString(t *testing.T) {
	cases := []struct {
		key  Key
		want string
	}{
		{KeyA, "A"},
		{KeyZ, "Z"},
		{Key0, "0"},
		{Key9, "9"},
		{KeySpace, "Space"},
		{KeyUnknown, "Unknown"},
		{Key(200), "Unknown"},
	}
	for _, c := range cases {
		if got := c.key.String(); got != c.want {
			t.Errorf("Key(%d).String() = %q, want %q", c.key, got, c.want)
		}
	}
}

// Canonicalization round-trips through String for the whole closed set.
func TestParseKeyRoundTrip(t *testing.T) {
	for k := KeyA; k <= KeySpace; k++ {
		if got := ParseKey(k.String()); got != k {
			t.Errorf("ParseKey(%q) = %v, want %v", k.String(), got, k)
		}
	}
}
