// CSV export of the collected listings. Write-once artifact, overwrites the
// previous run's file.

package export

import (
	"fmt"
	"os"
	"strings"

	"go-jobharvest-automation/internal/scraper"
)

// Header is the fixed column order of the export document.
var Header = []string{"title", "company", "location", "description"}

// Render builds the document: header row plus one row per job, every value
// wrapped in double quotes and comma-joined, rows newline-joined. Embedded
// quote characters are NOT escaped; a value containing `"` corrupts its row.
// Zero jobs renders the header alone.
func Render(jobs []scraper.Job) string {
	lines := make([]string, 0, len(jobs)+1)
	lines = append(lines, strings.Join(Header, ","))
	for _, job := range jobs {
		values := []string{job.Title, job.Company, job.Location, job.Description}
		quoted := make([]string, len(values))
		for i, v := range values {
			quoted[i] = `"` + v + `"`
		}
		lines = append(lines, strings.Join(quoted, ","))
	}
	return strings.Join(lines, "\n")
}

// WriteFile renders jobs and overwrites path with the document.
func WriteFile(path string, jobs []scraper.Job) error {
	if err := os.WriteFile(path, []byte(Render(jobs)+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
