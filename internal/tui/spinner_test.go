package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func TestSpinner(t *testing.T) {
	// Test the ShowSpinner function with a simple operation
	err := ShowSpinner(context.Background(), "Testing", func(ctx context.Context) error {
		// Simulate some work
		time.Sleep(100 * time.Millisecond)
		return nil
	})

	if err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	wantErr := errors.New("lookup failed")
	err = ShowSpinner(context.Background(), "Testing Error", func(ctx context.Context) error {
		return wantErr
	})

	if !errors.Is(err, wantErr) {
		t.Errorf("Expected %v, got %v", wantErr, err)
	}
}

func TestSpinnerModel_Done(t *testing.T) {
	model := NewSpinner("Resolving")

	updated, cmd := model.Update(doneMsg{})
	m := updated.(SpinnerModel)
	if !m.done {
		t.Error("Expected spinner to be done")
	}
	if cmd == nil {
		t.Error("Expected a quit command")
	}
	if !strings.Contains(m.View(), "Resolving") {
		t.Errorf("Expected view to mention the message, got %q", m.View())
	}
}

func TestSpinnerModel_Interrupt(t *testing.T) {
	model := NewSpinner("Resolving")

	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	m := updated.(SpinnerModel)
	if !m.interrupted {
		t.Error("Expected spinner to be interrupted")
	}
}
