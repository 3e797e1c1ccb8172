package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/akyairhashvil/tasktimer/internal/models"
	"github.com/akyairhashvil/tasktimer/internal/testutil"
)

func sampleData() Data {
	return Data{
		GeneratedAt: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
		Tasks: []models.StandaloneTask{
			testutil.NewStandaloneTask("t1").WithText("Write docs").WithDuration(1500).WithPriority(3).Build(),
			testutil.NewStandaloneTask("t2").WithText("Ship").Completed().Build(),
		},
		Sessions: []models.Session{
			testutil.NewSession().WithName("Pomodoro").WithCycles(4).
				WithInterval("Work", 1500, models.SoundBell, "focus").
				WithInterval("Break", 300, models.SoundSuccess).Build(),
		},
		Presets: []models.TimerPreset{{ID: "p", Name: "Tea", DurationSeconds: 180}},
	}
}

func TestWriteCreatesPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "summary.pdf")
	if err := Write(path, sampleData()); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if !bytes.HasPrefix(raw, []byte("%PDF")) {
		t.Fatalf("output is not a PDF")
	}
}

func TestBuildEmptyData(t *testing.T) {
	pdf := Build(Data{GeneratedAt: time.Now()})
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		t.Fatalf("Output failed: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatalf("expected PDF bytes")
	}
}
