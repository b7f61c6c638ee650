package vars

import "testing"

func TestFirstNonZero(t *testing.T) {
	if v, i := FirstNonZero("", "a", "b"); v != "a" || i != 1 {
		t.Fatalf("got %v %v", v, i)
	}
	if v, i := FirstNonZero(0, 0); v != 0 || i != -1 {
		t.Fatalf("got %v %v", v, i)
	}
	if v, i := FirstNonZero[int](); v != 0 || i != -1 {
		t.Fatalf("got %v %v", v, i)
	}
}

func TestStrToBool(t *testing.T) {
	for str, expected := range map[string]bool{
		"true": true,
		"Yes":  true,
		"on":   true,
		"1":    true,
		"f":    false,
		"NO":   false,
		" 0 ":  false,
	} {
		got, err := StrToBool(str)
		if err != nil {
			t.Fatal(err)
		}
		if got != expected {
			t.Fatalf("got %v for %q", got, str)
		}
	}
	if _, err := StrToBool("maybe"); err == nil {
		t.Fatal("should fail")
	}
}
