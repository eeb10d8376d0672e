package tweener

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

func observedScheduler(debug bool) (*Scheduler, *ManualClock, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	clock := &ManualClock{}
	s := NewScheduler(Config{Capacity: 2, Clock: clock, Logger: zap.New(core), Debug: debug})
	return s, clock, logs
}

// ---- Debug mode tests ------------------------------------------------------

func TestDebugMode_FaultPanics(t *testing.T) {
	s, _, _ := observedScheduler(true)
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on contract violation, got none")
		}
		msg := fmt.Sprint(r)
		if !strings.Contains(msg, "free slot") || !strings.Contains(msg, "double free") {
			t.Errorf("panic message = %s", msg)
		}
	}()
	s.fault("free slot", fmt.Errorf("slot 3: %w", ErrDoubleFree))
}

func TestDebugMode_StaleSlotPanics(t *testing.T) {
	s, _, _ := observedScheduler(true)
	tw, _ := Float(s, "x", 0, 1).Build()
	tw.Cancel()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on stale lookup")
		}
	}()
	advanceSlot[float64, string](s, tw.id)
}

func TestReleaseMode_FaultLogs(t *testing.T) {
	s, _, logs := observedScheduler(false)
	tw, _ := Float(s, "x", 0, 1).Build()
	tw.Cancel()
	advanceSlot[float64, string](s, tw.id)

	entries := logs.FilterMessage("contract violation").All()
	if len(entries) != 1 {
		t.Fatalf("logged %d violations, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["op"] != "lookup" {
		t.Errorf("op = %v", fields["op"])
	}
	if entries[0].Level != zapcore.ErrorLevel {
		t.Errorf("level = %v", entries[0].Level)
	}
}

func TestReleaseMode_RecordTypeMismatch(t *testing.T) {
	s, _, logs := observedScheduler(false)
	tw, _ := Float(s, "x", 0, 1).Build()
	if _, ok := lookupStale[Vec3, string](s, tw.id); ok {
		t.Fatal("mismatched lookup succeeded")
	}
	if logs.FilterMessage("contract violation").Len() != 1 {
		t.Error("type mismatch not reported")
	}
	// A stale slot is expected during a parallel commit and is not reported.
	tw.Cancel()
	if _, ok := lookupStale[float64, string](s, tw.id); ok {
		t.Fatal("stale lookup succeeded")
	}
	if logs.FilterMessage("contract violation").Len() != 1 {
		t.Error("stale slot reported as a violation")
	}
}

func TestDebugMode_AdvanceLogsStats(t *testing.T) {
	s, clock, logs := observedScheduler(true)
	_, _ = Float(s, "x", 0, 1).Play()
	clock.Set(0.25, 0.5)
	s.Advance(PhaseUpdate)

	entries := logs.FilterMessage("advance").All()
	if len(entries) != 1 {
		t.Fatalf("advance logs = %d, want 1", len(entries))
	}
	m := entries[0].ContextMap()
	if m["phase"] != "update" || m["visited"] != int64(1) || m["slots"] != int64(1) {
		t.Errorf("fields = %v", m)
	}
	if m["dt"] != 0.25 || m["unscaled_dt"] != 0.5 {
		t.Errorf("deltas = %v / %v", m["dt"], m["unscaled_dt"])
	}

	s.SetDebugMode(false)
	s.Advance(PhaseUpdate)
	if logs.FilterMessage("advance").Len() != 1 {
		t.Error("advance logged outside debug mode")
	}
}

func TestCapacityExhaustedWarns(t *testing.T) {
	s, _, logs := observedScheduler(false)
	_, _ = Float(s, "a", 0, 1).Build()
	_, _ = Float(s, "b", 0, 1).Build()
	if _, err := Float(s, "c", 0, 1).Build(); !errors.Is(err, ErrOutOfCapacity) {
		t.Fatalf("err = %v", err)
	}
	entries := logs.FilterMessage("capacity exhausted").All()
	if len(entries) != 1 || entries[0].ContextMap()["table"] != "arena" {
		t.Errorf("entries = %v", entries)
	}
}

func TestNestedAdvanceWarns(t *testing.T) {
	s, clock, logs := observedScheduler(false)
	_, _ = Float(s, "x", 0, 1).SetOnValueChange(func(string, float64) {
		s.Advance(PhaseFixedUpdate)
	}).Play()
	clock.Set(0.1, 0.1)
	s.Advance(PhaseUpdate)
	if logs.FilterMessage("nested advance ignored").Len() != 1 {
		t.Error("nested advance not reported")
	}
}

func TestDisposeLogsSummary(t *testing.T) {
	logger := zaptest.NewLogger(t)
	s := NewScheduler(Config{Capacity: 4, Logger: logger})
	_, _ = Float(s, "x", 0, 1).Play()
	s.Dispose()
	if !s.Disposed() {
		t.Error("scheduler not disposed")
	}

	core, logs := observer.New(zapcore.InfoLevel)
	s = NewScheduler(Config{Capacity: 4, Logger: zap.New(core)})
	var tok CancellationToken
	_, _ = Float(s, "x", 0, 1).SetCancellationToken(&tok).Play()
	s.Dispose()
	entries := logs.FilterMessage("scheduler disposed").All()
	if len(entries) != 1 {
		t.Fatalf("entries = %d", len(entries))
	}
	m := entries[0].ContextMap()
	if m["slots"] != int64(1) || m["tokens"] != int64(0) {
		t.Errorf("fields = %v", m)
	}
	if m["scheduler"] != s.ID().String() {
		t.Errorf("scheduler field = %v, want %v", m["scheduler"], s.ID())
	}
}

func TestDisposeFromOnCompleteLogsNoFault(t *testing.T) {
	s, clock, logs := observedScheduler(false)
	var tok CancellationToken
	_, err := Float(s, "x", 0, 1).
		SetDuration(0.25).
		SetCancellationToken(&tok).
		SetOnComplete(func(string) { s.Dispose() }).
		Play()
	if err != nil {
		t.Fatal(err)
	}
	clock.Set(0.25, 0.25)
	s.Advance(PhaseUpdate)

	if n := logs.FilterLevelExact(zapcore.ErrorLevel).Len(); n != 0 {
		t.Errorf("error logs = %d, want 0: %v", n, logs.All())
	}
	entries := logs.FilterMessage("scheduler disposed").All()
	if len(entries) != 1 {
		t.Fatalf("entries = %d", len(entries))
	}
	if m := entries[0].ContextMap(); m["slots"] != int64(1) || m["tokens"] != int64(0) {
		t.Errorf("fields = %v", m)
	}
}
