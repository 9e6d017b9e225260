package logging

import "testing"

func TestNew_AssignsSessionID(t *testing.T) {
	lg, err := New(false)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer lg.Sync()

	if lg.SessionID() == "" {
		t.Error("expected non-empty session id")
	}

	other, err := New(true)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer other.Sync()
	if lg.SessionID() == other.SessionID() {
		t.Error("session ids should be unique per logger")
	}
}

func TestFor_ReturnsNamedChild(t *testing.T) {
	lg := Nop()
	if lg.For(CategoryLoader) == nil {
		t.Fatal("expected a child logger")
	}
	// Must not panic on the nop logger.
	lg.For(CategoryExport).Debug("noop")
	lg.Sync()
}
