package testutils

import (
	"io"
	"log/slog"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"
)

func NoOpLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// FakePublisher is a programmable fake for message.Publisher
type FakePublisher struct {
	PublishFunc func(topic string, messages ...*message.Message) error

	mu        sync.Mutex
	Published map[string][]*message.Message
}

func (f *FakePublisher) Publish(topic string, messages ...*message.Message) error {
	f.mu.Lock()
	if f.Published == nil {
		f.Published = make(map[string][]*message.Message)
	}
	f.Published[topic] = append(f.Published[topic], messages...)
	f.mu.Unlock()

	if f.PublishFunc != nil {
		return f.PublishFunc(topic, messages...)
	}
	return nil
}

func (f *FakePublisher) Close() error {
	return nil
}

// Messages returns what was published on topic so far.
func (f *FakePublisher) Messages(topic string) []*message.Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*message.Message(nil), f.Published[topic]...)
}

// ScoreCall is one SetScore observed by FakeMetrics.
type ScoreCall struct {
	Player int
	Score  int
}

// FakeMetrics records every call for assertions.
type FakeMetrics struct {
	mu            sync.Mutex
	Triggers      []string
	Updates       [][2]int
	SurfaceErrors []string
	Scores        []ScoreCall
}

func (f *FakeMetrics) RecordTrigger(line string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Triggers = append(f.Triggers, line)
}

func (f *FakeMetrics) RecordUpdate(player int, delta int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Updates = append(f.Updates, [2]int{player, delta})
}

func (f *FakeMetrics) RecordSurfaceError(surface string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.SurfaceErrors = append(f.SurfaceErrors, surface)
}

func (f *FakeMetrics) SetScore(player int, score int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Scores = append(f.Scores, ScoreCall{Player: player, Score: score})
}

// ScoreCalls returns a copy of the SetScore calls.
func (f *FakeMetrics) ScoreCalls() []ScoreCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]ScoreCall(nil), f.Scores...)
}

// TriggerCalls returns a copy of the RecordTrigger calls.
func (f *FakeMetrics) TriggerCalls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.Triggers...)
}
