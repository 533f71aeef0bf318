package captcha_test

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Fivegen-LLC/wol-agent/internal/domains/captcha"
	"github.com/Fivegen-LLC/wol-agent/internal/domains/captcha/captcha_mocks"
)

var errTestError = errors.New("test error")

type testClock struct {
	mx  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2026, 5, 6, 7, 8, 9, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mx.Lock()
	defer c.mx.Unlock()

	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mx.Lock()
	defer c.mx.Unlock()

	c.now = c.now.Add(d)
}

type serviceFields struct {
	imageRenderer *captcha_mocks.MockIImageRenderer
	clock         *testClock
	rendered      []string
	mx            sync.Mutex
}

func newServiceFields(t *testing.T) *serviceFields {
	f := &serviceFields{
		imageRenderer: captcha_mocks.NewMockIImageRenderer(t),
		clock:         newTestClock(),
	}

	return f
}

func (f *serviceFields) expectRender() {
	f.imageRenderer.EXPECT().
		Render(mock.Anything).
		RunAndReturn(func(text string) (string, error) {
			f.mx.Lock()
			defer f.mx.Unlock()

			f.rendered = append(f.rendered, text)
			return "data:image/png;base64,AAAA", nil
		})
}

func (f *serviceFields) lastText() string {
	f.mx.Lock()
	defer f.mx.Unlock()

	return f.rendered[len(f.rendered)-1]
}

func (f *serviceFields) service(maxChallenges int) *captcha.Service {
	return captcha.NewService(f.imageRenderer, 5*time.Minute, maxChallenges, time.Millisecond, f.clock.Now)
}

func TestService_Create(t *testing.T) {
	t.Parallel()

	f := newServiceFields(t)
	f.expectRender()
	service := f.service(100)

	issued, err := service.Create()
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,AAAA", issued.ImageURL)

	rawID, err := base64.RawURLEncoding.DecodeString(issued.ID)
	require.NoError(t, err)
	assert.Len(t, rawID, 16)

	text := f.lastText()
	require.Len(t, text, captcha.TextLength)
	for _, char := range text {
		assert.True(t, strings.ContainsRune(captcha.Alphabet, char), "unexpected char %q", char)
	}
	assert.Equal(t, 1, service.Count())

	second, err := service.Create()
	require.NoError(t, err)
	assert.NotEqual(t, issued.ID, second.ID)
}

func TestService_Create_RenderError(t *testing.T) {
	t.Parallel()

	f := newServiceFields(t)
	f.imageRenderer.EXPECT().
		Render(mock.Anything).
		Return("", errTestError).
		Times(1)

	service := f.service(100)
	_, err := service.Create()
	require.ErrorIs(t, err, errTestError)
	assert.Zero(t, service.Count())
}

func TestService_Verify(t *testing.T) {
	t.Parallel()

	testTable := []struct {
		name     string
		answer   func(text string) string
		advance  time.Duration
		expected bool
	}{
		{name: "exact", answer: func(text string) string { return text }, expected: true},
		{name: "lower case", answer: strings.ToLower, expected: true},
		{name: "surrounding spaces", answer: func(text string) string { return " " + text + " " }, expected: true},
		{name: "wrong", answer: func(text string) string { return text + "X" }, expected: false},
		{name: "expired", answer: func(text string) string { return text }, advance: 5*time.Minute + time.Second, expected: false},
	}

	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			f := newServiceFields(t)
			f.expectRender()
			service := f.service(100)

			issued, err := service.Create()
			require.NoError(t, err)
			f.clock.Advance(testCase.advance)

			assert.Equal(t, testCase.expected, service.Verify(issued.ID, testCase.answer(f.lastText())))
			assert.Zero(t, service.Count())
		})
	}
}

func TestService_Verify_OneShot(t *testing.T) {
	t.Parallel()

	for _, firstAnswerCorrect := range []bool{true, false} {
		f := newServiceFields(t)
		f.expectRender()
		service := f.service(100)

		issued, err := service.Create()
		require.NoError(t, err)
		text := f.lastText()

		first := "WRONG"
		if firstAnswerCorrect {
			first = text
		}
		assert.Equal(t, firstAnswerCorrect, service.Verify(issued.ID, first))
		assert.False(t, service.Verify(issued.ID, text))
	}
}

func TestService_Verify_Unknown(t *testing.T) {
	t.Parallel()

	f := newServiceFields(t)
	assert.False(t, f.service(100).Verify("missing", "ABCD"))
}

func TestService_CleanupExpired(t *testing.T) {
	t.Parallel()

	f := newServiceFields(t)
	f.expectRender()
	service := f.service(100)

	_, err := service.Create()
	require.NoError(t, err)
	f.clock.Advance(3 * time.Minute)
	_, err = service.Create()
	require.NoError(t, err)

	f.clock.Advance(3 * time.Minute)
	assert.Equal(t, 1, service.CleanupExpired())
	assert.Equal(t, 1, service.Count())
}

func TestService_Create_BoundedEvictsOldest(t *testing.T) {
	t.Parallel()

	f := newServiceFields(t)
	f.expectRender()
	service := f.service(2)

	oldest, err := service.Create()
	require.NoError(t, err)
	oldestText := f.lastText()
	f.clock.Advance(time.Second)

	middle, err := service.Create()
	require.NoError(t, err)
	middleText := f.lastText()
	f.clock.Advance(time.Second)

	_, err = service.Create()
	require.NoError(t, err)
	assert.Equal(t, 2, service.Count())

	assert.False(t, service.Verify(oldest.ID, oldestText))
	assert.True(t, service.Verify(middle.ID, middleText))
}

func TestService_Start(t *testing.T) {
	t.Parallel()

	f := newServiceFields(t)
	f.expectRender()
	service := f.service(100)

	_, err := service.Create()
	require.NoError(t, err)
	f.clock.Advance(10 * time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		service.Start(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		return service.Count() == 0
	}, 2*time.Second, 5*time.Millisecond)

	cancel()
	<-done
}
