package telegram

import "testing"

func TestTranslate(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"/roll 2d6+1", "roll 2d6+1"},
		{"/roll@dicast_bot 2d6", "roll 2d6"},
		{"2d6+1", "roll 2d6+1"},
		{"stats", "roll stats"},
		{"/list", "list"},
		{"/start", "help"},
		{"  ", ""},
		{"/", ""},
	}

	for _, c := range cases {
		if got := translate(c.in); got != c.want {
			t.Errorf("translate(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
