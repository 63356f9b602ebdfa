package task

import "testing"

func TestBandEnd(t *testing.T) {
	b := Band{Rows: 24, Start: 48}
	if b.End() != 72 {
		t.Fatalf("expected end row 72, got %d", b.End())
	}
}

func TestTaskString(t *testing.T) {
	task := NewTask(3, Band{Rows: 10, Start: 20})
	if task.ID != 3 || task.Band.Start != 20 || len(task.Pixels) != 0 {
		t.Fatalf("unexpected task: %s", task.String())
	}
}
