package scoreboard

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/Black-And-White-Club/pingpong-scoreboard/app/display"
	"github.com/Black-And-White-Club/pingpong-scoreboard/app/display/mocks"
	"github.com/Black-And-White-Club/pingpong-scoreboard/app/ledger"
	"github.com/Black-And-White-Club/pingpong-scoreboard/app/scoreevents"
	"github.com/Black-And-White-Club/pingpong-scoreboard/app/shared/logging"
	"github.com/Black-And-White-Club/pingpong-scoreboard/app/shared/testutils"
	"github.com/Black-And-White-Club/pingpong-scoreboard/config"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/mock/gomock"
)

type fakePublisher struct {
	err     error
	started []scoreevents.GameStartedPayloadV1
	updated []scoreevents.ScoreUpdatedPayloadV1
}

func (f *fakePublisher) PublishGameStarted(_ context.Context, p scoreevents.GameStartedPayloadV1) error {
	f.started = append(f.started, p)
	return f.err
}

func (f *fakePublisher) PublishScoreUpdated(_ context.Context, p scoreevents.ScoreUpdatedPayloadV1) error {
	f.updated = append(f.updated, p)
	return f.err
}

func newController(t *testing.T, pub EventPublisher, m *testutils.FakeMetrics, screens ...Screen) *Controller {
	t.Helper()
	c, err := NewController(testutils.NoOpLogger(), noop.NewTracerProvider().Tracer("test"), m, pub, ledger.New(), screens)
	require.NoError(t, err)
	return c
}

func expectBody(s *mocks.MockSurface, scores string) []any {
	return []any{
		s.EXPECT().DrawRect(BodyRect.X, BodyRect.Y, BodyRect.W, BodyRect.H, false).Return(nil),
		s.EXPECT().DrawText("P1 - P2", int16(32), int16(32)).Return(nil),
		s.EXPECT().DrawText(scores, int16(32), int16(48)).Return(nil),
	}
}

func TestController_DrawScreens(t *testing.T) {
	ctrl := gomock.NewController(t)
	left := mocks.NewMockSurface(ctrl)
	right := mocks.NewMockSurface(ctrl)
	left.EXPECT().Name().Return("oled1").AnyTimes()
	right.EXPECT().Name().Return("oled2").AnyTimes()

	for _, tc := range []struct {
		s     *mocks.MockSurface
		label string
	}{{left, "Player 1"}, {right, "Player 2"}} {
		calls := []any{
			tc.s.EXPECT().DrawRect(int16(0), int16(0), int16(128), int16(24), false).Return(nil),
			tc.s.EXPECT().DrawText(tc.label, int16(30), int16(8)).Return(nil),
		}
		calls = append(calls, expectBody(tc.s, "00   00")...)
		calls = append(calls, tc.s.EXPECT().Flush().Return(nil))
		gomock.InOrder(calls...)
	}

	pub := &fakePublisher{}
	c := newController(t, pub, &testutils.FakeMetrics{},
		Screen{Surface: left, Label: "Player 1"},
		Screen{Surface: right, Label: "Player 2"},
	)

	assert.False(t, c.Ready())
	require.NoError(t, c.DrawScreens(context.Background()))
	assert.True(t, c.Ready())

	require.Len(t, pub.started, 1)
	assert.Equal(t, c.GameID(), pub.started[0].GameID)
	if diff := cmp.Diff([]string{"oled1", "oled2"}, pub.started[0].Surfaces); diff != "" {
		t.Fatalf("surfaces mismatch (-want +got):\n%s", diff)
	}
}

func TestController_UpdateRedrawsBodyOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	left := mocks.NewMockSurface(ctrl)
	right := mocks.NewMockSurface(ctrl)
	left.EXPECT().Name().Return("oled1").AnyTimes()
	right.EXPECT().Name().Return("oled2").AnyTimes()

	for _, s := range []*mocks.MockSurface{left, right} {
		calls := []any{s.EXPECT().ClearRect(int16(0), int16(25), int16(128), int16(39)).Return(nil)}
		calls = append(calls, expectBody(s, "01   00")...)
		calls = append(calls, s.EXPECT().Flush().Return(nil))
		gomock.InOrder(calls...)
	}

	m := &testutils.FakeMetrics{}
	pub := &fakePublisher{}
	c := newController(t, pub, m,
		Screen{Surface: left, Label: "Player 1"},
		Screen{Surface: right, Label: "Player 2"},
	)

	require.NoError(t, c.Update(context.Background(), ledger.Player1, ledger.Increment))

	assert.Equal(t, ledger.Scores{Player1: 1, Player2: 0}, c.Scores())
	assert.Equal(t, [2]string{"01", "00"}, c.Text())
	assert.Equal(t, [][2]int{{1, 1}}, m.Updates)

	require.Len(t, pub.updated, 1)
	got := pub.updated[0]
	assert.Equal(t, 1, got.Player)
	assert.Equal(t, 1, got.Delta)
	assert.Equal(t, 1, got.Score)
	assert.Equal(t, "01   00", got.FormattedText)
}

func TestController_Update(t *testing.T) {
	type press struct {
		player ledger.Player
		delta  ledger.Delta
	}
	tests := []struct {
		name    string
		presses []press
		want    ledger.Scores
		text    [2]string
	}{
		{
			name:    "decrement at zero stays zero",
			presses: []press{{ledger.Player1, ledger.Decrement}},
			want:    ledger.Scores{},
			text:    [2]string{"00", "00"},
		},
		{
			name: "players are independent",
			presses: []press{
				{ledger.Player2, ledger.Increment},
				{ledger.Player2, ledger.Increment},
				{ledger.Player1, ledger.Increment},
				{ledger.Player2, ledger.Decrement},
			},
			want: ledger.Scores{Player1: 1, Player2: 1},
			text: [2]string{"01", "01"},
		},
		{
			name: "two digit scores",
			presses: func() []press {
				ps := make([]press, 12)
				for i := range ps {
					ps[i] = press{ledger.Player1, ledger.Increment}
				}
				return ps
			}(),
			want: ledger.Scores{Player1: 12},
			text: [2]string{"12", "00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb := display.NewFramebuffer(128, 64)
			c := newController(t, nil, &testutils.FakeMetrics{}, Screen{Surface: display.NewPanel("oled1", fb), Label: "Player 1"})
			require.NoError(t, c.DrawScreens(context.Background()))

			for _, p := range tt.presses {
				require.NoError(t, c.Update(context.Background(), p.player, p.delta))
			}
			assert.Equal(t, tt.want, c.Scores())
			assert.Equal(t, tt.text, c.Text())
			assert.Equal(t, 1+len(tt.presses), fb.Flushes())
		})
	}
}

func TestController_HeaderSurvivesUpdates(t *testing.T) {
	left := display.NewFramebuffer(128, 64)
	right := display.NewFramebuffer(128, 64)
	c := newController(t, nil, &testutils.FakeMetrics{},
		Screen{Surface: display.NewPanel("oled1", left), Label: "Player 1"},
		Screen{Surface: display.NewPanel("oled2", right), Label: "Player 2"},
	)
	require.NoError(t, c.DrawScreens(context.Background()))

	headers := func(fb *display.Framebuffer) []bool {
		return fb.Frame()[:int(HeaderRect.H)*128]
	}
	bodies := func(fb *display.Framebuffer) []bool {
		return fb.Frame()[int(BodyRect.Y)*128:]
	}
	leftHeader, rightHeader := headers(left), headers(right)
	bodyBefore := bodies(left)

	require.NoError(t, c.Update(context.Background(), ledger.Player2, ledger.Increment))

	if diff := cmp.Diff(leftHeader, headers(left)); diff != "" {
		t.Fatalf("left header changed:\n%s", diff)
	}
	if diff := cmp.Diff(rightHeader, headers(right)); diff != "" {
		t.Fatalf("right header changed:\n%s", diff)
	}
	assert.NotEqual(t, bodyBefore, bodies(left), "body should show the new score")
	assert.Equal(t, bodies(left), bodies(right), "both bodies should mirror each other")
	assert.NotEqual(t, leftHeader, rightHeader, "labels differ per surface")
}

func TestController_SurfaceFailure(t *testing.T) {
	left := display.NewFramebuffer(128, 64)
	right := display.NewFramebuffer(128, 64)
	m := &testutils.FakeMetrics{}
	pub := &fakePublisher{}
	c := newController(t, pub, m,
		Screen{Surface: display.NewPanel("oled1", left), Label: "Player 1"},
		Screen{Surface: display.NewPanel("oled2", right), Label: "Player 2"},
	)
	require.NoError(t, c.DrawScreens(context.Background()))

	busErr := errors.New("i2c nack")
	left.Fail(busErr)

	err := c.Update(context.Background(), ledger.Player1, ledger.Increment)
	require.Error(t, err)
	assert.True(t, IsSurfaceError(err))
	assert.ErrorIs(t, err, busErr)

	var se *SurfaceError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "oled1", se.Surface)
	assert.Equal(t, "flush", se.Op)

	assert.Equal(t, 2, right.Flushes(), "healthy surface is still redrawn")
	assert.Equal(t, []string{"oled1"}, m.SurfaceErrors)
	assert.Empty(t, pub.updated)
}

func TestController_SurfaceFailureLogsSurface(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWithWriter(&buf, config.LogConfig{Level: "warn"})
	left := display.NewFramebuffer(128, 64)
	right := display.NewFramebuffer(128, 64)
	c, err := NewController(logger, nil, nil, nil, ledger.New(), []Screen{
		{Surface: display.NewPanel("oled1", left), Label: "Player 1"},
		{Surface: display.NewPanel("oled2", right), Label: "Player 2"},
	})
	require.NoError(t, err)
	require.NoError(t, c.DrawScreens(context.Background()))

	right.Fail(errors.New("i2c nack"))
	require.Error(t, c.Update(context.Background(), ledger.Player2, ledger.Increment))

	out := buf.String()
	assert.Contains(t, out, "surface=oled2")
	assert.NotContains(t, out, "surface=oled1")
}

func TestController_DrawScreensFailureNotReady(t *testing.T) {
	fb := display.NewFramebuffer(128, 64)
	fb.Fail(errors.New("no ack"))
	c := newController(t, nil, &testutils.FakeMetrics{}, Screen{Surface: display.NewPanel("oled1", fb), Label: "Player 1"})

	err := c.DrawScreens(context.Background())
	require.Error(t, err)
	assert.True(t, IsSurfaceError(err))
	assert.False(t, c.Ready())
}

func TestController_PublishFailureIsNotFatal(t *testing.T) {
	pub := &fakePublisher{err: errors.New("bus closed")}
	fb := display.NewFramebuffer(128, 64)
	c := newController(t, pub, &testutils.FakeMetrics{}, Screen{Surface: display.NewPanel("oled1", fb), Label: "Player 1"})

	require.NoError(t, c.DrawScreens(context.Background()))
	require.NoError(t, c.Update(context.Background(), ledger.Player1, ledger.Increment))
	assert.Len(t, pub.updated, 1)
}

func TestController_InvalidUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := mocks.NewMockSurface(ctrl)
	c := newController(t, nil, &testutils.FakeMetrics{}, Screen{Surface: s, Label: "Player 1"})

	require.Error(t, c.Update(context.Background(), ledger.Player(3), ledger.Increment))
	require.Error(t, c.Update(context.Background(), ledger.Player1, ledger.Delta(2)))
	assert.Equal(t, ledger.Scores{}, c.Scores())
}

func TestNewController_Validation(t *testing.T) {
	tracer := noop.NewTracerProvider().Tracer("test")
	_, err := NewController(testutils.NoOpLogger(), tracer, nil, nil, ledger.New(), nil)
	require.Error(t, err)

	_, err = NewController(testutils.NoOpLogger(), tracer, nil, nil, ledger.New(), []Screen{{Label: "Player 1"}})
	require.Error(t, err)
}
