package main

import (
	"strings"
	"testing"
)

func TestOpenFrontendUnknownBackend(t *testing.T) {
	f, err := openFrontend("curses")
	if err == nil {
		f.close()
		t.Fatal("Expected error for unknown backend")
	}
	if !strings.Contains(err.Error(), "curses") {
		t.Errorf("Error should name the backend, got %v", err)
	}
}

func TestCrashCleanupRestoresThenClosesLog(t *testing.T) {
	var order []string
	f := &frontend{close: func() { order = append(order, "terminal") }}
	cleanup := crashCleanup(f, func() { order = append(order, "log") })

	cleanup()

	if len(order) != 2 || order[0] != "terminal" || order[1] != "log" {
		t.Errorf("Expected terminal restore then log close, got %v", order)
	}
}
