package observation

import (
	"math"
	"testing"
	"time"

	"github.com/knagasaki/spectra/internal/errors"
)

var testTime = time.Date(2026, 8, 14, 10, 30, 0, 0, time.UTC)

func validParams() Params {
	return Params{
		Location:         "Zakimi Castle Ruins",
		Latitude:         26.408,
		Longitude:        127.742,
		HardAuthenticity: 30,
		HardEmotion:      -10,
		SoftAuthenticity: 20,
		SoftEmotion:      15,
	}
}

func TestNew_HappyPath(t *testing.T) {
	p := validParams()
	rec, err := New("01ARZ3NDEKTSV4RRFFQ69G5FAV", testTime, p, -50, 50)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	// Fields equal inputs exactly, no coercion.
	if rec.Location != p.Location {
		t.Errorf("Location = %q, want %q", rec.Location, p.Location)
	}
	if rec.HardAuthenticity != 30 || rec.HardEmotion != -10 {
		t.Errorf("hard scores = (%g, %g), want (30, -10)", rec.HardAuthenticity, rec.HardEmotion)
	}
	if rec.SoftAuthenticity != 20 || rec.SoftEmotion != 15 {
		t.Errorf("soft scores = (%g, %g), want (20, 15)", rec.SoftAuthenticity, rec.SoftEmotion)
	}
	if !rec.RecordedAt.Equal(testTime) {
		t.Errorf("RecordedAt = %v, want %v", rec.RecordedAt, testTime)
	}
}

func TestNew_BoundsInclusive(t *testing.T) {
	for _, v := range []float64{-50, 50} {
		p := validParams()
		p.HardAuthenticity = v
		if _, err := New("id1", testTime, p, -50, 50); err != nil {
			t.Errorf("score exactly at bound %g should be valid: %v", v, err)
		}
	}
}

func TestNew_OutOfRange(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Params)
	}{
		{"hard_authenticity high", func(p *Params) { p.HardAuthenticity = 50.001 }},
		{"hard_emotion low", func(p *Params) { p.HardEmotion = -51 }},
		{"soft_authenticity high", func(p *Params) { p.SoftAuthenticity = 999 }},
		{"soft_emotion NaN", func(p *Params) { p.SoftEmotion = math.NaN() }},
		{"hard_emotion inf", func(p *Params) { p.HardEmotion = math.Inf(1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validParams()
			tt.mutate(&p)
			_, err := New("id1", testTime, p, -50, 50)
			if !errors.Is(err, errors.ErrOutOfRange) {
				t.Errorf("want OUT_OF_RANGE, got %v", err)
			}
		})
	}
}

func TestNew_InvalidCoordinate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Params)
	}{
		{"latitude high", func(p *Params) { p.Latitude = 90.5 }},
		{"latitude low", func(p *Params) { p.Latitude = -91 }},
		{"longitude high", func(p *Params) { p.Longitude = 180.1 }},
		{"longitude NaN", func(p *Params) { p.Longitude = math.NaN() }},
		{"latitude inf", func(p *Params) { p.Latitude = math.Inf(-1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validParams()
			tt.mutate(&p)
			_, err := New("id1", testTime, p, -50, 50)
			if !errors.Is(err, errors.ErrInvalidCoordinate) {
				t.Errorf("want INVALID_COORDINATE, got %v", err)
			}
		})
	}
}

func TestNew_CoordinateBoundsInclusive(t *testing.T) {
	p := validParams()
	p.Latitude = -90
	p.Longitude = 180
	if _, err := New("id1", testTime, p, -50, 50); err != nil {
		t.Errorf("coordinates exactly at bounds should be valid: %v", err)
	}
}

func TestNew_RequiredFields(t *testing.T) {
	p := validParams()

	if _, err := New("", testTime, p, -50, 50); !errors.Is(err, errors.ErrInvalidRequest) {
		t.Errorf("empty id: want INVALID_REQUEST, got %v", err)
	}
	if _, err := New("id1", time.Time{}, p, -50, 50); !errors.Is(err, errors.ErrInvalidRequest) {
		t.Errorf("zero time: want INVALID_REQUEST, got %v", err)
	}

	p.Location = "   "
	if _, err := New("id1", testTime, p, -50, 50); !errors.Is(err, errors.ErrInvalidRequest) {
		t.Errorf("blank location: want INVALID_REQUEST, got %v", err)
	}
}

func TestNew_TimestampNormalizedToUTCSeconds(t *testing.T) {
	jst := time.FixedZone("JST", 9*3600)
	local := time.Date(2026, 8, 14, 19, 30, 0, 123456789, jst)

	rec, err := New("id1", local, validParams(), -50, 50)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	want := time.Date(2026, 8, 14, 10, 30, 0, 0, time.UTC)
	if !rec.RecordedAt.Equal(want) {
		t.Errorf("RecordedAt = %v, want %v", rec.RecordedAt, want)
	}
	if rec.RecordedAt.Location() != time.UTC {
		t.Errorf("RecordedAt zone = %v, want UTC", rec.RecordedAt.Location())
	}
}

func TestValidateRange(t *testing.T) {
	v, err := ValidateRange("score", 7.25, 0, 10)
	if err != nil {
		t.Fatalf("ValidateRange failed: %v", err)
	}
	if v != 7.25 {
		t.Errorf("value = %g, want 7.25 (unchanged)", v)
	}

	if _, err := ValidateRange("score", 10.0001, 0, 10); err == nil {
		t.Error("value above max should fail")
	}
	if _, err := ValidateRange("score", 0, 0, 10); err != nil {
		t.Errorf("value at min should pass: %v", err)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"  Zakimi   Castle  ", "zakimi castle"},
		{"AMERICAN VILLAGE", "american village"},
		{"\tNaha\nPort\t", "naha port"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
