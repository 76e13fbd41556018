package logger

import "testing"

func TestInit_ValidLevel(t *testing.T) {
	l := New()
	if err := l.Init("Info"); err != nil {
		t.Fatalf("Init returned error: %v", err)
	}
	if l.Log == nil {
		t.Fatal("expected a configured logger")
	}
}

func TestInit_InvalidLevel(t *testing.T) {
	l := New()
	if err := l.Init("loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}
