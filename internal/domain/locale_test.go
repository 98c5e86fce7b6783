package domain

import "testing"

func TestParseLocale(t *testing.T) {
	cases := []struct {
		in   string
		want Locale
	}{
		{"en", LocaleEN},
		{"EN", LocaleEN},
		{" english ", LocaleEN},
		{"no", LocaleNO},
		{"NO", LocaleNO},
		{"nb", LocaleNO},
	}
	for _, c := range cases {
		got, err := ParseLocale(c.in)
		if err != nil {
			t.Fatalf("ParseLocale(%q) error: %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("ParseLocale(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestParseLocaleUnknown(t *testing.T) {
	_, err := ParseLocale("de")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !IsKind(err, KindInvalidArgument) {
		t.Fatalf("expected invalid_argument, got %v", err)
	}
}

func TestLocaleToggle(t *testing.T) {
	if LocaleEN.Toggle() != LocaleNO {
		t.Fatalf("expected en -> no")
	}
	if LocaleNO.Toggle() != LocaleEN {
		t.Fatalf("expected no -> en")
	}
	if Locale("xx").Toggle() != LocaleEN {
		t.Fatalf("expected unknown -> en")
	}
	if LocaleNO.Label() != "NO" {
		t.Fatalf("expected label NO")
	}
}
