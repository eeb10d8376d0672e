package tweener

import (
	"encoding/json"
	"errors"
	"fmt"
)

// scriptStep is a single action in a script.
type scriptStep struct {
	Action   string   `json:"action"`
	Label    string   `json:"label,omitempty"`
	From     float64  `json:"from,omitempty"`
	To       float64  `json:"to,omitempty"`
	Duration *float64 `json:"duration,omitempty"`
	Delay    float64  `json:"delay,omitempty"`
	Ease     string   `json:"ease,omitempty"`
	Update   string   `json:"update,omitempty"`
	Link     string   `json:"link,omitempty"`
	Token    string   `json:"token,omitempty"`
	DT       float64  `json:"dt,omitempty"`
	Frames   int      `json:"frames,omitempty"`
	Phase    string   `json:"phase,omitempty"`
}

// scriptFile is the top-level JSON structure of a script.
type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// TraceEvent is one callback recorded while running a script.
type TraceEvent struct {
	Frame int
	Label string
	Kind  string // "value" or "complete"
	Value float64
}

func (e TraceEvent) String() string {
	if e.Kind == "complete" {
		return fmt.Sprintf("%4d %-12s complete", e.Frame, e.Label)
	}
	return fmt.Sprintf("%4d %-12s value %.4f", e.Frame, e.Label, e.Value)
}

// Script replays a sequence of scheduler operations against float tweens and
// records every callback, for scripted regression scenarios.
//
// Steps:
//
//	spawn        label from to [duration delay ease update link token]
//	advance      dt [frames phase]
//	wait         frames (at the last advance dt)
//	pause        label
//	resume       label
//	cancel       label
//	complete     label
//	cancelToken  token
//	dispose      link
//	cancelLink   link
//	completeLink link
type Script struct {
	steps []scriptStep

	clock  *ManualClock
	frame  int
	lastDT float64

	tweens map[string]Tween[float64, string]
	owners map[string]*Owner
	tokens map[string]*CancellationToken
	events []TraceEvent
}

var errUnknownLabel = errors.New("unknown label")

// LoadScript parses a JSON script. Actions, eases, update types and phases are
// validated here; labels are resolved when the script runs.
func LoadScript(data []byte) (*Script, error) {
	var f scriptFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range f.Steps {
		if err := st.validate(); err != nil {
			return nil, fmt.Errorf("parse script: step %d: %w", i, err)
		}
	}
	return &Script{steps: f.Steps}, nil
}

func (st scriptStep) validate() error {
	switch st.Action {
	case "spawn":
		if st.Label == "" {
			return fmt.Errorf("spawn without label")
		}
		if _, err := ParseEase(orDefault(st.Ease, "linear")); err != nil {
			return err
		}
		if _, err := parseUpdateType(st.Update); err != nil {
			return err
		}
	case "advance":
		if _, err := parsePhase(st.Phase); err != nil {
			return err
		}
	case "wait":
	case "pause", "resume", "cancel", "complete":
		if st.Label == "" {
			return fmt.Errorf("%s without label", st.Action)
		}
	case "cancelToken":
		if st.Token == "" {
			return fmt.Errorf("cancelToken without token")
		}
	case "dispose", "cancelLink", "completeLink":
		if st.Link == "" {
			return fmt.Errorf("%s without link", st.Action)
		}
	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}
	return nil
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func parseUpdateType(name string) (UpdateType, error) {
	switch name {
	case "", "update":
		return Update, nil
	case "fixed":
		return FixedUpdate, nil
	case "unscaled":
		return UnscaledUpdate, nil
	case "unscaled-fixed":
		return UnscaledFixedUpdate, nil
	}
	return Update, fmt.Errorf("unknown update type %q", name)
}

func parsePhase(name string) (Phase, error) {
	switch name {
	case "", "update":
		return PhaseUpdate, nil
	case "fixed":
		return PhaseFixedUpdate, nil
	}
	return PhaseUpdate, fmt.Errorf("unknown phase %q", name)
}

// Run executes every step against s, replacing s's clock with one the script
// controls. It stops at the first failing step.
func (r *Script) Run(s *Scheduler) error {
	r.clock = &ManualClock{}
	r.frame = 0
	r.lastDT = 0
	r.tweens = make(map[string]Tween[float64, string])
	r.owners = make(map[string]*Owner)
	r.tokens = make(map[string]*CancellationToken)
	r.events = r.events[:0]
	s.SetClock(r.clock)

	for i, st := range r.steps {
		if err := r.step(s, st); err != nil {
			return fmt.Errorf("step %d (%s): %w", i, st.Action, err)
		}
	}
	return nil
}

// Trace returns the events recorded by the last Run.
func (r *Script) Trace() []TraceEvent {
	return r.events
}

// Frames returns the number of passes run by the last Run.
func (r *Script) Frames() int { return r.frame }

func (r *Script) step(s *Scheduler, st scriptStep) error {
	switch st.Action {
	case "spawn":
		return r.spawn(s, st)
	case "advance":
		frames := max(st.Frames, 1)
		phase, _ := parsePhase(st.Phase)
		r.lastDT = st.DT
		r.run(s, phase, st.DT, frames)
	case "wait":
		r.run(s, PhaseUpdate, r.lastDT, st.Frames)
	case "pause", "resume", "cancel", "complete":
		tw, ok := r.tweens[st.Label]
		if !ok {
			return fmt.Errorf("%q: %w", st.Label, errUnknownLabel)
		}
		switch st.Action {
		case "pause":
			tw.Pause()
		case "resume":
			return tw.Play()
		case "cancel":
			tw.Cancel()
		case "complete":
			tw.Complete()
		}
	case "cancelToken":
		tok, ok := r.tokens[st.Token]
		if !ok {
			return fmt.Errorf("token %q: %w", st.Token, errUnknownLabel)
		}
		tok.Cancel()
	case "dispose", "cancelLink", "completeLink":
		o, ok := r.owners[st.Link]
		if !ok {
			return fmt.Errorf("link %q: %w", st.Link, errUnknownLabel)
		}
		switch st.Action {
		case "dispose":
			o.Dispose()
		case "cancelLink":
			s.CancelAllWithLink(o)
		case "completeLink":
			s.CompleteAllWithLink(o)
		}
	}
	return nil
}

func (r *Script) run(s *Scheduler, phase Phase, dt float64, frames int) {
	for range frames {
		r.frame++
		r.clock.Set(dt, dt)
		s.Advance(phase)
	}
}

func (r *Script) spawn(s *Scheduler, st scriptStep) error {
	e, _ := ParseEase(orDefault(st.Ease, "linear"))
	u, _ := parseUpdateType(st.Update)
	b := Float(s, st.Label, st.From, st.To).
		SetDelay(st.Delay).
		SetEase(e).
		SetUpdateType(u).
		SetOnValueChange(r.onValue).
		SetOnComplete(r.onComplete)
	if st.Duration != nil {
		b.SetDuration(*st.Duration)
	}
	if st.Link != "" {
		o, ok := r.owners[st.Link]
		if !ok {
			o = NewOwner(st.Link)
			r.owners[st.Link] = o
		}
		b.SetLink(o)
	}
	if st.Token != "" {
		tok, ok := r.tokens[st.Token]
		if !ok {
			tok = &CancellationToken{}
			r.tokens[st.Token] = tok
		}
		b.SetCancellationToken(tok)
	}
	tw, err := b.Play()
	if err != nil {
		return err
	}
	r.tweens[st.Label] = tw
	return nil
}

func (r *Script) onValue(label string, v float64) {
	r.events = append(r.events, TraceEvent{Frame: r.frame, Label: label, Kind: "value", Value: v})
}

func (r *Script) onComplete(label string) {
	r.events = append(r.events, TraceEvent{Frame: r.frame, Label: label, Kind: "complete"})
}
