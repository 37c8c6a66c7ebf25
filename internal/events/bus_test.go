package events

import "testing"

func TestBusDeliversInOrder(t *testing.T) {
	var order []string
	b := NewBus(func(Event) { order = append(order, "first") })
	b.Subscribe(func(Event) { order = append(order, "second") })

	b.Publish(ScoreChanged{Score: 10, Delta: 10})

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("delivery order = %v", order)
	}
}

func TestNilBusDiscards(t *testing.T) {
	var b *Bus
	b.Publish(LevelLost{Reason: ReasonCaught})
}

func TestRecorder(t *testing.T) {
	var rec Recorder
	b := NewBus(rec.Listen)

	b.Publish(TimerTicked{SecondsLeft: 3})
	b.Publish(LevelLost{Reason: ReasonTimeUp})

	if len(rec.Events) != 2 {
		t.Fatalf("recorded %d events, expected 2", len(rec.Events))
	}
	lost, ok := rec.Events[1].(LevelLost)
	if !ok || lost.Reason != ReasonTimeUp {
		t.Errorf("second event = %#v", rec.Events[1])
	}

	rec.Reset()
	if len(rec.Events) != 0 {
		t.Error("Reset should drop events")
	}
}
