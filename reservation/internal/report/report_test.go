package report

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Astemirdum/table-reservation/reservation/internal/model"
)

func TestWriter_Observe(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	w := NewWriter(zap.New(core))

	at := time.Date(2024, 7, 20, 12, 0, 0, 0, time.UTC)
	require.NoError(t, w.Observe(context.Background(), model.Report{
		Kind:        model.ReportByPeriod,
		GeneratedAt: at,
		Params:      map[string]string{"dateStart": "2024-07-01", "dateEnd": "2024-07-31"},
		Reservations: []model.Reservation{
			{ID: 1, Date: "2024-07-20", Time: "19:00", TableNumber: 5, Status: model.StatusPending},
		},
	}))
	require.NoError(t, w.Observe(context.Background(), model.Report{
		Kind:   model.ReportByLatestStatus,
		Params: map[string]string{"status": "Cancelled"},
		Tables: []model.TableStatus{},
	}))

	entries := logs.All()
	require.Len(t, entries, 2)

	first := entries[0].ContextMap()
	require.Equal(t, "by_period", first["kind"])
	require.Equal(t, int64(1), first["count"])
	require.Equal(t, at, first["generatedAt"])
	require.Contains(t, first, "reservations")

	second := entries[1].ContextMap()
	require.Equal(t, int64(0), second["count"])
	require.Contains(t, second, "tables")
	require.NotContains(t, second, "reservations")
}

func TestNewFileWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports.log")
	w, err := NewFileWriter(path)
	require.NoError(t, err)

	require.NoError(t, w.Observe(context.Background(), model.Report{
		Kind:   model.ReportByTable,
		Params: map[string]string{"tableNumber": "5"},
	}))
	_ = w.Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, 1, strings.Count(string(data), "\n"))
	require.Contains(t, string(data), `"kind":"by_table"`)
	require.Contains(t, string(data), `"logger":"report"`)
}
