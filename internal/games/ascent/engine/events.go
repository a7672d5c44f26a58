package engine

import "github.com/vovakirdan/neon-ascent/internal/core"

// EventKind identifies what happened during a tick.
type EventKind int

const (
	EventScoreChanged EventKind = iota
	EventCoinsCollected
	EventRoundEnded
	EventCue
)

// Event is one notification raised by a tick.
type Event struct {
	Kind  EventKind
	Score int      // EventScoreChanged: new score
	Coins int      // EventCoinsCollected: coins gained, always 1 per coin
	Cue   core.Cue // EventCue
}

// Listener receives events as they happen, on the goroutine calling Tick.
type Listener interface {
	OnScoreChange(score int)
	OnCoinsCollected(count int)
	OnRoundEnd()
	OnCue(cue core.Cue)
}

// Hooks adapts optional callbacks to a Listener. Nil fields are skipped.
type Hooks struct {
	ScoreChange    func(score int)
	CoinsCollected func(count int)
	RoundEnd       func()
	Cue            func(cue core.Cue)
}

func (h Hooks) OnScoreChange(score int) {
	if h.ScoreChange != nil {
		h.ScoreChange(score)
	}
}

func (h Hooks) OnCoinsCollected(count int) {
	if h.CoinsCollected != nil {
		h.CoinsCollected(count)
	}
}

func (h Hooks) OnRoundEnd() {
	if h.RoundEnd != nil {
		h.RoundEnd()
	}
}

func (h Hooks) OnCue(cue core.Cue) {
	if h.Cue != nil {
		h.Cue(cue)
	}
}

// dispatch forwards an event to a listener.
func dispatch(l Listener, e Event) {
	if l == nil {
		return
	}
	switch e.Kind {
	case EventScoreChanged:
		l.OnScoreChange(e.Score)
	case EventCoinsCollected:
		l.OnCoinsCollected(e.Coins)
	case EventRoundEnded:
		l.OnRoundEnd()
	case EventCue:
		l.OnCue(e.Cue)
	}
}

// Cues returns the sound cues among events, in order.
func Cues(events []Event) []core.Cue {
	var cues []core.Cue
	for _, e := range events {
		if e.Kind == EventCue {
			cues = append(cues, e.Cue)
		}
	}
	return cues
}
