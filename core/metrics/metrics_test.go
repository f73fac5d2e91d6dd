package metrics

import (
	"errors"
	"testing"
)

type recordSink struct {
	count int
}

func (r *recordSink) RecordRunResult([]RunResult) error {
	r.count++
	return nil
}

type failingSink struct{}

func (failingSink) RecordRunResult([]RunResult) error {
	return errors.New("sink down")
}

func TestMultiSinkForwardsToAll(t *testing.T) {
	s1 := &recordSink{}
	s2 := &recordSink{}
	m := NewMultiSink(s1, s2)
	if err := m.RecordRunResult(nil); err != nil {
		t.Fatalf("record: %v", err)
	}
	if s1.count != 1 || s2.count != 1 {
		t.Fatal("results not forwarded to all sinks")
	}
}

func TestMultiSinkReturnsFirstError(t *testing.T) {
	after := &recordSink{}
	m := NewMultiSink(failingSink{}, after)
	if err := m.RecordRunResult(nil); err == nil {
		t.Fatal("expected sink error")
	}
	if after.count != 0 {
		t.Fatal("sinks after the failing one must not be reached")
	}
}

func TestNopSink(t *testing.T) {
	if err := (NopSink{}).RecordRunResult([]RunResult{{Strategy: "x"}}); err != nil {
		t.Fatalf("nop sink: %v", err)
	}
}
