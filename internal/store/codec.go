package store

import (
	"fmt"
	"strconv"
	"time"

	"github.com/knagasaki/spectra/internal/observation"
	"github.com/knagasaki/spectra/internal/rowlog"
)

// encodeRow serializes a record into the row log's fixed column order.
func encodeRow(rec *observation.Record) []string {
	return []string{
		rec.ID,
		rec.Location,
		formatFloat(rec.Latitude),
		formatFloat(rec.Longitude),
		formatFloat(rec.HardAuthenticity),
		formatFloat(rec.HardEmotion),
		formatFloat(rec.SoftAuthenticity),
		formatFloat(rec.SoftEmotion),
		rec.RecordedAt.UTC().Format(time.RFC3339),
		rec.PhotoRef,
		rec.Note,
	}
}

// decodeRow reconstructs a record from a stored row, re-running full record
// validation so historical data that violates today's invariants is caught
// rather than carried.
func decodeRow(row []string, min, max float64) (*observation.Record, error) {
	if len(row) != len(rowlog.Columns) {
		return nil, fmt.Errorf("row has %d fields, want %d", len(row), len(rowlog.Columns))
	}

	fields := map[string]float64{}
	for _, col := range []struct {
		name string
		idx  int
	}{
		{"latitude", 2},
		{"longitude", 3},
		{"hard_authenticity", 4},
		{"hard_emotion", 5},
		{"soft_authenticity", 6},
		{"soft_emotion", 7},
	} {
		v, err := strconv.ParseFloat(row[col.idx], 64)
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", col.name, err)
		}
		fields[col.name] = v
	}

	recordedAt, err := time.Parse(time.RFC3339, row[8])
	if err != nil {
		return nil, fmt.Errorf("column timestamp: %w", err)
	}

	return observation.New(row[0], recordedAt, observation.Params{
		Location:         row[1],
		Latitude:         fields["latitude"],
		Longitude:        fields["longitude"],
		HardAuthenticity: fields["hard_authenticity"],
		HardEmotion:      fields["hard_emotion"],
		SoftAuthenticity: fields["soft_authenticity"],
		SoftEmotion:      fields["soft_emotion"],
		PhotoRef:         row[9],
		Note:             row[10],
	}, min, max)
}

// formatFloat keeps the shortest representation that round-trips exactly.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
