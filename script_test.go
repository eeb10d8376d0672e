package tweener

import (
	"errors"
	"strings"
	"testing"
)

func runScript(t *testing.T, src string) *Script {
	t.Helper()
	sc, err := LoadScript([]byte(src))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	if err := sc.Run(NewScheduler(Config{Capacity: 16, Debug: true})); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return sc
}

func TestLoadScript(t *testing.T) {
	sc, err := LoadScript([]byte(`{
		"steps": [
			{"action": "spawn", "label": "a", "from": 0, "to": 1, "ease": "outQuad"},
			{"action": "advance", "dt": 0.1, "frames": 3},
			{"action": "cancel", "label": "a"}
		]
	}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sc.steps) != 3 {
		t.Fatalf("expected 3 steps, got %d", len(sc.steps))
	}
	if sc.steps[0].Action != "spawn" || sc.steps[0].Ease != "outQuad" || sc.steps[0].Duration != nil {
		t.Error("step 0 mismatch")
	}
	if sc.steps[1].DT != 0.1 || sc.steps[1].Frames != 3 {
		t.Error("step 1 mismatch")
	}
}

func TestLoadScriptInvalid(t *testing.T) {
	cases := map[string]string{
		"not json":      `not json`,
		"empty":         `{"steps": []}`,
		"unknown":       `{"steps": [{"action": "teleport"}]}`,
		"no label":      `{"steps": [{"action": "spawn"}]}`,
		"bad ease":      `{"steps": [{"action": "spawn", "label": "a", "ease": "wobble"}]}`,
		"bad update":    `{"steps": [{"action": "spawn", "label": "a", "update": "sometimes"}]}`,
		"bad phase":     `{"steps": [{"action": "advance", "dt": 1, "phase": "late"}]}`,
		"no token":      `{"steps": [{"action": "cancelToken"}]}`,
		"no link":       `{"steps": [{"action": "dispose"}]}`,
		"pause unnamed": `{"steps": [{"action": "pause"}]}`,
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadScript([]byte(src)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestScriptTrace(t *testing.T) {
	sc := runScript(t, `{"steps": [
		{"action": "spawn", "label": "fade", "from": 0, "to": 1, "duration": 0.5},
		{"action": "advance", "dt": 0.25, "frames": 2},
		{"action": "wait", "frames": 2}
	]}`)
	trace := sc.Trace()
	if len(trace) != 3 {
		t.Fatalf("trace = %v", trace)
	}
	want := []TraceEvent{
		{Frame: 1, Label: "fade", Kind: "value", Value: 0.5},
		{Frame: 2, Label: "fade", Kind: "value", Value: 1},
		{Frame: 2, Label: "fade", Kind: "complete"},
	}
	for i := range want {
		if trace[i] != want[i] {
			t.Errorf("event %d = %+v, want %+v", i, trace[i], want[i])
		}
	}
	if sc.Frames() != 4 {
		t.Errorf("frames = %d, want 4", sc.Frames())
	}
	if got := trace[0].String(); !strings.Contains(got, "value 0.5000") {
		t.Errorf("String = %q", got)
	}
	if got := trace[2].String(); !strings.HasSuffix(got, "complete") {
		t.Errorf("String = %q", got)
	}
}

func TestScriptTokenAndLink(t *testing.T) {
	sc := runScript(t, `{"steps": [
		{"action": "spawn", "label": "a", "to": 1, "token": "round"},
		{"action": "spawn", "label": "b", "to": 1, "token": "round"},
		{"action": "spawn", "label": "c", "to": 1, "link": "hero"},
		{"action": "spawn", "label": "d", "to": 1, "link": "enemy"},
		{"action": "advance", "dt": 0.25},
		{"action": "cancelToken", "token": "round"},
		{"action": "dispose", "link": "hero"},
		{"action": "completeLink", "link": "enemy"},
		{"action": "advance", "dt": 0.25, "frames": 3}
	]}`)
	counts := map[string]int{}
	for _, ev := range sc.Trace() {
		counts[ev.Label+" "+ev.Kind]++
	}
	if counts["a value"] != 1 || counts["b value"] != 1 || counts["c value"] != 1 {
		t.Errorf("cancelled tweens kept running: %v", counts)
	}
	if counts["d value"] != 2 || counts["d complete"] != 1 {
		t.Errorf("completeLink: %v", counts)
	}
}

func TestScriptPauseResumeAndFixed(t *testing.T) {
	sc := runScript(t, `{"steps": [
		{"action": "spawn", "label": "p", "to": 1, "update": "fixed"},
		{"action": "advance", "dt": 0.25},
		{"action": "advance", "dt": 0.25, "phase": "fixed"},
		{"action": "pause", "label": "p"},
		{"action": "advance", "dt": 0.25, "phase": "fixed", "frames": 4},
		{"action": "resume", "label": "p"},
		{"action": "advance", "dt": 0.25, "phase": "fixed"}
	]}`)
	trace := sc.Trace()
	if len(trace) != 2 || trace[0].Value != 0.25 || trace[1].Value != 0.5 {
		t.Errorf("trace = %v", trace)
	}
}

func TestScriptUnknownLabel(t *testing.T) {
	sc, err := LoadScript([]byte(`{"steps": [{"action": "complete", "label": "ghost"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	err = sc.Run(NewScheduler(Config{}))
	if !errors.Is(err, errUnknownLabel) {
		t.Errorf("err = %v, want errUnknownLabel", err)
	}
}
