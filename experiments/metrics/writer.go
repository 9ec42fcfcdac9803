package metrics

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// Writer reports experiment results as CSV tables.
type Writer struct {
	out io.Writer
}

func NewWriter(out io.Writer) *Writer {
	return &Writer{
		out: out,
	}
}

func (w *Writer) WriteStrategyConfigs(configs []StrategyConfig) error {
	header := []string{"id", "kind", "epsilon", "decay", "c2"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Kind,
			formatFloat(config.Epsilon),
			formatFloat(config.Decay),
			formatFloat(config.C2),
		})
	}

	if err := w.write(header, rows); err != nil {
		return fmt.Errorf("failed to write strategy configs: %w", err)
	}
	return nil
}

func (w *Writer) WriteRunRecords(records []RunRecord) error {
	header := []string{"strategy", "name", "steps", "rewards", "explorations", "exploitations", "best_arm_pulls", "regret", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Strategy),
			record.Name,
			strconv.FormatInt(record.Steps, 10),
			strconv.FormatInt(record.Rewards, 10),
			strconv.FormatInt(record.Explorations, 10),
			strconv.FormatInt(record.Exploitations, 10),
			strconv.Itoa(record.BestArmPulls),
			formatFloat(record.Regret),
			record.Duration.String(),
		})
	}

	if err := w.write(header, rows); err != nil {
		return fmt.Errorf("failed to write run records: %w", err)
	}
	return nil
}

func (w *Writer) WriteStepRecords(records []StepRecord) error {
	header := []string{"strategy", "step", "arm", "regret"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Strategy),
			strconv.Itoa(record.Step),
			strconv.Itoa(record.Arm),
			formatFloat(record.Regret),
		})
	}

	if err := w.write(header, rows); err != nil {
		return fmt.Errorf("failed to write step records: %w", err)
	}
	return nil
}

func (w *Writer) write(header []string, rows [][]string) error {
	writer := csv.NewWriter(w.out)

	// Write header
	if err := writer.Write(header); err != nil {
		return err
	}
	if err := writer.WriteAll(rows); err != nil {
		return err
	}

	// Blank line between tables
	_, err := io.WriteString(w.out, "\n")
	return err
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
