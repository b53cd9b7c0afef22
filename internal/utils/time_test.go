package util_test

import (
	"encoding/json"
	"testing"
	"time"

	util "github.com/okrflow/okrflow-lambda/internal/utils"
)

func TestLocalDateJSON(t *testing.T) {
	t.Run("Unmarshal", func(t *testing.T) {
		var d util.LocalDate
		if err := json.Unmarshal([]byte(`"2026-03-15"`), &d); err != nil {
			t.Fatalf("Unmarshal failed: %v", err)
		}
		if !d.Equal(util.NewLocalDate(2026, time.March, 15)) {
			t.Errorf("Wrong date: %v", d)
		}
	})

	t.Run("UnmarshalNull", func(t *testing.T) {
		var d util.LocalDate
		if err := json.Unmarshal([]byte(`null`), &d); err != nil {
			t.Fatalf("Unmarshal failed: %v", err)
		}
		if !d.IsZero() {
			t.Errorf("Expected zero date, got: %v", d)
		}
	})

	t.Run("UnmarshalInvalid", func(t *testing.T) {
		var d util.LocalDate
		if err := json.Unmarshal([]byte(`"15/03/2026"`), &d); err == nil {
			t.Error("Expected an error for a non-ISO date")
		}
	})

	t.Run("Marshal", func(t *testing.T) {
		d := util.NewLocalDate(2026, time.March, 15)
		b, err := json.Marshal(d)
		if err != nil {
			t.Fatalf("Marshal failed: %v", err)
		}
		if string(b) != `"2026-03-15"` {
			t.Errorf("Wrong JSON: %s", b)
		}
	})

	t.Run("MarshalZero", func(t *testing.T) {
		b, err := json.Marshal(util.LocalDate{})
		if err != nil {
			t.Fatalf("Marshal failed: %v", err)
		}
		if string(b) != `null` {
			t.Errorf("Expected null, got: %s", b)
		}
	})
}

func TestDateOf(t *testing.T) {
	ts := time.Date(2026, time.March, 15, 23, 45, 12, 0, time.UTC)
	d := util.DateOf(ts)
	if !d.Equal(util.NewLocalDate(2026, time.March, 15)) {
		t.Errorf("DateOf did not truncate to the calendar date: %v", d)
	}
}

func TestLocalDateScan(t *testing.T) {
	t.Run("FromTime", func(t *testing.T) {
		var d util.LocalDate
		if err := d.Scan(time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC)); err != nil {
			t.Fatalf("Scan failed: %v", err)
		}
		if !d.Equal(util.NewLocalDate(2026, time.March, 15)) {
			t.Errorf("Wrong date after scan: %v", d)
		}
	})

	t.Run("FromNil", func(t *testing.T) {
		var d util.LocalDate
		if err := d.Scan(nil); err != nil {
			t.Fatalf("Scan failed: %v", err)
		}
		if !d.IsZero() {
			t.Errorf("Expected zero date, got: %v", d)
		}
	})

	t.Run("FromUnsupported", func(t *testing.T) {
		var d util.LocalDate
		if err := d.Scan(42); err == nil {
			t.Error("Expected an error for an unsupported scan type")
		}
	})
}
