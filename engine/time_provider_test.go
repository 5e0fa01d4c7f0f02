package engine

import (
	"testing"
	"time"
)

func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := provider.Now()

	if !t2.After(t1) {
		t.Errorf("Expected t2 to be after t1, but got t1=%v, t2=%v", t1, t2)
	}

	diff := t2.Sub(t1)
	if diff < 10*time.Millisecond {
		t.Errorf("Expected at least 10ms difference, got %v", diff)
	}
}

func TestMockTimeProvider(t *testing.T) {
	startTime := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(startTime)

	if now := mock.Now(); !now.Equal(startTime) {
		t.Errorf("Expected initial time to be %v, got %v", startTime, now)
	}

	newTime := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	mock.SetTime(newTime)
	if now := mock.Now(); !now.Equal(newTime) {
		t.Errorf("Expected time to be %v after SetTime, got %v", newTime, now)
	}

	mock.Advance(30 * time.Minute)
	mock.Advance(15 * time.Minute)
	expected := newTime.Add(45 * time.Minute)
	if now := mock.Now(); !now.Equal(expected) {
		t.Errorf("Expected time to be %v after multiple advances, got %v", expected, now)
	}
}

func TestFrameClockDelta(t *testing.T) {
	mock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	clock := NewFrameClock(mock, 100*time.Millisecond)

	mock.Advance(16 * time.Millisecond)
	if dt := clock.Delta(); dt != 16*time.Millisecond {
		t.Errorf("Expected 16ms delta, got %v", dt)
	}

	// Second call measures from the previous one
	mock.Advance(20 * time.Millisecond)
	if dt := clock.Delta(); dt != 20*time.Millisecond {
		t.Errorf("Expected 20ms delta, got %v", dt)
	}

	if dt := clock.Delta(); dt != 0 {
		t.Errorf("Expected zero delta without time passing, got %v", dt)
	}
}

func TestFrameClockCapsStalls(t *testing.T) {
	mock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	clock := NewFrameClock(mock, 100*time.Millisecond)

	mock.Advance(5 * time.Second)
	if dt := clock.Delta(); dt != 100*time.Millisecond {
		t.Errorf("Expected capped 100ms delta, got %v", dt)
	}

	uncapped := NewFrameClock(mock, 0)
	mock.Advance(5 * time.Second)
	if dt := uncapped.Delta(); dt != 5*time.Second {
		t.Errorf("Expected uncapped 5s delta, got %v", dt)
	}
}

func TestFrameClockBackwards(t *testing.T) {
	mock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	clock := NewFrameClock(mock, 0)

	mock.Advance(-time.Second)
	if dt := clock.Delta(); dt != 0 {
		t.Errorf("Expected zero delta when time goes backwards, got %v", dt)
	}
}
