package leetscan

import (
	"errors"
	"testing"
)

func TestDefaultTable(t *testing.T) {
	m, err := Build(nil)
	if err != nil {
		t.Fatal(err)
	}
	for letter, want := range map[byte]string{'o': "0", 's': "5", 'a': "4", 'b': "8", 'e': "3", 'i': "1", 'd': "17", 'r': "12"} {
		digits, ok := m.Expansion(letter)
		if !ok {
			t.Fatalf("%c should be mappable by default", letter)
		}
		if digits != want {
			t.Fatalf("%c should expand to %s, is %s", letter, want, digits)
		}
	}
	if _, ok := m.Expansion('z'); ok {
		t.Fatal("z should be unmappable by default")
	}
	if _, ok := m.Expansion('A'); ok {
		t.Fatal("uppercase letters should be unmappable")
	}
}

func TestBuildOverrides(t *testing.T) {
	m, err := Build(map[string]string{"l": "1", "t": "7", "d": "0"})
	if err != nil {
		t.Fatal(err)
	}
	if digits, _ := m.Expansion('l'); digits != "1" {
		t.Fatalf("l should expand to 1, is %s", digits)
	}
	if digits, _ := m.Expansion('d'); digits != "0" {
		t.Fatalf("override should replace the default for d, got %s", digits)
	}
	if digits, _ := m.Expansion('e'); digits != "3" {
		t.Fatalf("defaults without override should survive, e is %s", digits)
	}
}

func TestBuildRejectsBadEntries(t *testing.T) {
	cases := map[string]map[string]string{
		"two-letter key":  {"ss": "5"},
		"empty key":       {"": "5"},
		"uppercase key":   {"S": "5"},
		"non-letter key":  {"4": "5"},
		"empty value":     {"s": ""},
		"non-digit value": {"s": "5x"},
	}
	for name, overrides := range cases {
		if _, err := Build(overrides); !errors.Is(err, ErrInvalidMapping) {
			t.Fatalf("%s should fail with ErrInvalidMapping, got %v", name, err)
		}
	}
}

func TestLetters(t *testing.T) {
	m, err := Build(map[string]string{"l": "1"})
	if err != nil {
		t.Fatal(err)
	}
	letters := string(m.Letters())
	if letters != "abdeilors" {
		t.Fatalf("mapped letters should be abdeilors, are %s", letters)
	}
}
