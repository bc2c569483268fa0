package baseline

import (
	"errors"
	"testing"
)

func TestMethodTagsRoundTrip(t *testing.T) {
	want := []string{"snip", "als", "poly", "rolling_ball", "modpoly", "anchor"}

	for i, m := range Methods() {
		if m.String() != want[i] {
			t.Fatalf("Methods()[%d].String() = %q, want %q", i, m.String(), want[i])
		}
		got, err := ParseMethod(want[i])
		if err != nil {
			t.Fatalf("ParseMethod(%q): %v", want[i], err)
		}
		if got != m {
			t.Fatalf("ParseMethod(%q) = %v, want %v", want[i], got, m)
		}
	}
}

func TestParseMethodNormalisesCase(t *testing.T) {
	m, err := ParseMethod("  Rolling_Ball ")
	if err != nil {
		t.Fatal(err)
	}
	if m != MethodRollingBall {
		t.Fatalf("got %v, want rolling_ball", m)
	}
}

func TestParseMethodUnknown(t *testing.T) {
	if _, err := ParseMethod("wavelet"); !errors.Is(err, ErrUnsupportedMethod) {
		t.Fatalf("err = %v, want ErrUnsupportedMethod", err)
	}
	if got := Method(42).String(); got != "Method(42)" {
		t.Fatalf("String() = %q", got)
	}
}
