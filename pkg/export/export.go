package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/kilianp07/packtherm/core/model"
)

// WriteJSON writes the sample sequence to w in JSON format.
func WriteJSON(w io.Writer, samples []model.Sample) error {
	enc := json.NewEncoder(w)
	return enc.Encode(samples)
}

// WriteCSV writes the sample sequence to w in CSV format, one row per
// sample.
func WriteCSV(w io.Writer, samples []model.Sample) error {
	cw := csv.NewWriter(w)
	header := []string{"time_min", "battery_temp_c", "heat_generated_w", "heat_dissipated_w", "efficiency_pct"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, s := range samples {
		rec := []string{
			strconv.Itoa(s.TimeMinutes),
			strconv.FormatFloat(s.BatteryTempC, 'f', -1, 64),
			strconv.FormatFloat(s.HeatGeneratedW, 'f', -1, 64),
			strconv.FormatFloat(s.HeatDissipatedW, 'f', -1, 64),
			strconv.FormatFloat(s.EfficiencyPct, 'f', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
