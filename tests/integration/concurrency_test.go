package integration

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIntegration_ConcurrentImports uploads several files in parallel and
// verifies every job reaches COMPLETED with all rows persisted. Exercises
// the dispatcher queue and both pool workers at once.
func TestIntegration_ConcurrentImports(t *testing.T) {
	app := newTestApp(t)

	const (
		files       = 8
		rowsPerFile = 5
	)

	ids := make([]string, files)
	var wg sync.WaitGroup
	for f := 0; f < files; f++ {
		wg.Add(1)
		go func(f int) {
			defer wg.Done()
			content := csvHeader
			for r := 0; r < rowsPerFile; r++ {
				ref := fmt.Sprintf("ref-%d-%d", f, r)
				content += csvRow("mbank", ref, "PL61109010140000071219812874",
					"2024-02-10T10:00:00Z", "PLN", "groceries", "DEBIT", "10.00")
			}
			data := app.uploadCSV(t, fmt.Sprintf("file-%d.csv", f), content)
			ids[f] = data["id"].(string)
		}(f)
	}
	wg.Wait()

	for _, id := range ids {
		details := app.waitForTerminal(t, id)
		assert.Equal(t, "COMPLETED", details["status"])
		assert.Equal(t, float64(rowsPerFile), details["successful_rows"])
	}

	require.Equal(t, files*rowsPerFile, app.txRepo.count())
}
