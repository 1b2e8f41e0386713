package domain

import (
	"testing"
	"time"
)

func TestNow_MillisecondPrecisionUTC(t *testing.T) {
	now := Now()
	if now.Location() != time.UTC {
		t.Errorf("expected UTC, got %v", now.Location())
	}
	if now.Nanosecond()%int(time.Millisecond) != 0 {
		t.Errorf("expected millisecond precision, got %d ns", now.Nanosecond())
	}
	if !now.Equal(now.Truncate(time.Millisecond)) {
		t.Error("truncating again must not change the value")
	}
}
