// Package report renders a PDF summary of tasks, sessions and presets.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/akyairhashvil/tasktimer/internal/models"
	"github.com/akyairhashvil/tasktimer/internal/timing"
	"github.com/go-pdf/fpdf"
)

// Data is everything the report covers.
type Data struct {
	GeneratedAt time.Time
	Tasks       []models.StandaloneTask
	Sessions    []models.Session
	Presets     []models.TimerPreset
}

// Build lays out the report.
func Build(d Data) *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Task Timer Report", false)
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Task Timer Report")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 8, "Generated "+d.GeneratedAt.Format("2006-01-02 15:04"))
	pdf.Ln(12)

	writeTasks(pdf, d.Tasks)
	writeSessions(pdf, d.Sessions)
	writePresets(pdf, d.Presets)
	return pdf
}

// Write builds the report and saves it to path, creating parent directories.
func Write(path string, d Data) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return Build(d).OutputFileAndClose(path)
}

func heading(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, title)
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 12)
}

func writeTasks(pdf *fpdf.Fpdf, tasks []models.StandaloneTask) {
	heading(pdf, "Tasks")
	if len(tasks) == 0 {
		pdf.Cell(0, 8, "  - No tasks.")
		pdf.Ln(10)
		return
	}
	done := 0
	for _, t := range tasks {
		status := "[ ]"
		if t.IsCompleted {
			status = "[x]"
			done++
		}
		line := fmt.Sprintf("  %s %s", status, t.Text)
		if t.TotalSeconds > 0 {
			line += fmt.Sprintf("  (%s / %s)", timing.FormatClock(t.RemainingSeconds), timing.FormatClock(t.TotalSeconds))
		}
		if t.Priority > 0 {
			line += "  " + strings.Repeat("*", t.Priority)
		}
		pdf.MultiCell(0, 7, line, "", "", false)
	}
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Completed: %d/%d", done, len(tasks)))
	pdf.Ln(12)
}

func writeSessions(pdf *fpdf.Fpdf, sessions []models.Session) {
	heading(pdf, "Sessions")
	if len(sessions) == 0 {
		pdf.Cell(0, 8, "  - No sessions.")
		pdf.Ln(10)
		return
	}
	for _, s := range sessions {
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(0, 8, fmt.Sprintf("%s  (%d x %s, total %s)", s.Name, s.Cycles,
			timing.FormatShort(s.CycleDuration()), timing.FormatShort(s.TotalDuration())))
		pdf.Ln(7)
		pdf.SetFont("Arial", "", 11)
		for _, iv := range s.Intervals {
			pdf.Cell(0, 6, fmt.Sprintf("    %s - %s (%s)", iv.Name, timing.FormatShort(iv.DurationSeconds), iv.SoundID.Name()))
			pdf.Ln(6)
			for _, t := range iv.Tasks {
				pdf.MultiCell(0, 6, "        - "+t.Text, "", "", false)
			}
		}
		pdf.Ln(4)
	}
	pdf.Ln(4)
}

func writePresets(pdf *fpdf.Fpdf, presets []models.TimerPreset) {
	heading(pdf, "Timer Presets")
	if len(presets) == 0 {
		pdf.Cell(0, 8, "  - No presets.")
		pdf.Ln(10)
		return
	}
	for _, p := range presets {
		pdf.Cell(0, 7, fmt.Sprintf("  %s  %s", p.Name, timing.FormatClock(p.DurationSeconds)))
		pdf.Ln(7)
	}
}
