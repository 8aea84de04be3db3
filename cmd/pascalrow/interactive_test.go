package main

import (
	"strconv"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func newTestModel(value string) interactiveModel {
	ti := textinput.New()
	ti.SetValue(value)
	return interactiveModel{input: ti}
}

func TestInteractiveCompute(t *testing.T) {
	m := newTestModel("6")
	m.compute()

	if m.err != nil {
		t.Fatalf("compute(6) error: %v", m.err)
	}
	if !m.hasRow {
		t.Fatal("compute(6) produced no row")
	}
	want := []uint32{1, 5, 10, 10, 5, 1}
	if len(m.row) != len(want) {
		t.Fatalf("row length = %d, want %d", len(m.row), len(want))
	}
	for i, v := range want {
		if m.row[i] != v {
			t.Errorf("row[%d] = %d, want %d", i, m.row[i], v)
		}
	}
}

func TestInteractiveComputeRejectsExcessiveLength(t *testing.T) {
	m := newTestModel(strconv.Itoa(maxInteractiveLen + 1))
	m.compute()

	if m.err == nil {
		t.Fatalf("compute(%d) did not return an error", maxInteractiveLen+1)
	}
	if m.hasRow {
		t.Error("row produced despite length cap")
	}

	m = newTestModel(strconv.Itoa(maxInteractiveLen))
	m.compute()
	if m.err != nil {
		t.Fatalf("compute(%d) error: %v", maxInteractiveLen, m.err)
	}
	if len(m.row) != maxInteractiveLen {
		t.Errorf("row length = %d, want %d", len(m.row), maxInteractiveLen)
	}
}

func TestInteractiveUpdateEnforcesCap(t *testing.T) {
	m := newTestModel("9999")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	got, ok := next.(interactiveModel)
	if !ok {
		t.Fatalf("Update returned %T, want interactiveModel", next)
	}
	if got.err == nil {
		t.Fatal("enter on an over-cap length did not set an error")
	}
	if !strings.Contains(got.err.Error(), strconv.Itoa(maxInteractiveLen)) {
		t.Errorf("error %q does not mention the cap %d", got.err, maxInteractiveLen)
	}
	if got.hasRow {
		t.Error("row produced despite length cap")
	}
}

func TestInteractiveCheckedOverflow(t *testing.T) {
	m := newTestModel("36")
	m.checked = true
	m.compute()

	if m.err == nil {
		t.Fatal("checked compute(36) did not report overflow")
	}
	if m.hasRow {
		t.Error("row produced despite overflow")
	}
}
