package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/ukaji3/workhours-go/pkg/workhours/models"
)

var stateLabels = map[models.FileState]string{
	models.StatePending: "Processing...",
	models.StateSuccess: "Success",
	models.StateFailed:  "Failed",
}

// StatusLine renders one file status for display.
func StatusLine(s models.FileStatus) string {
	label := stateLabels[s.State]
	if s.State == models.StateSuccess {
		label = fmt.Sprintf("%s (%d records)", label, s.Records)
	}
	return fmt.Sprintf("%s\t%s", s.Name, label)
}

// WriteStatus writes the per-file status list.
func WriteStatus(w io.Writer, b *models.Batch) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	n := len(b.Files)
	suffix := "s"
	if n == 1 {
		suffix = ""
	}
	fmt.Fprintf(tw, "%d File%s\n", n, suffix)
	for _, s := range b.Files {
		fmt.Fprintln(tw, StatusLine(s))
	}
	return tw.Flush()
}

// WriteTable writes the records as an aligned text table.
// Nothing is written for an empty dataset.
func WriteTable(w io.Writer, b *models.Batch) error {
	if !b.ExportEnabled() {
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	titles := make([]string, len(Columns))
	for i, c := range Columns {
		titles[i] = c.Title
	}
	fmt.Fprintln(tw, strings.Join(titles, "\t"))

	for _, rec := range b.Dataset.Records() {
		fields := []string{
			strconv.Itoa(rec.SequenceNumber),
			rec.Date,
			rec.SafetyPassNo,
			rec.EmployeeName,
			rec.VendorCode,
			rec.ShiftCode,
			rec.ShiftStart,
			rec.ShiftEnd,
			rec.InTime,
			rec.OutTime,
			rec.Lunch,
			strconv.FormatFloat(rec.WorkingHours, 'f', -1, 64),
		}
		fmt.Fprintln(tw, strings.Join(fields, "\t"))
	}
	return tw.Flush()
}
