package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	domain "github.com/Katos24/crosslist-pro/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter() *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printListingsTable(listings []domain.Listing) error {
	tw := newTabWriter()
	tw.writef("ID\tTITLE\tPRICE\tEBAY\tFACEBOOK\tSOLD\n")
	for i := range listings {
		l := &listings[i]
		sold := "-"
		if l.SoldAt != nil {
			sold = l.SoldAt.Format("2006-01-02")
		}
		tw.writef("%s\t%s\t$%.2f\t%s\t%s\t%s\n",
			l.ID,
			truncate(l.Title, 40),
			l.Price,
			l.Ebay.Status,
			l.Facebook.Status,
			sold,
		)
	}
	return tw.finish()
}

func printListingDetail(l *domain.Listing) error {
	tw := newTabWriter()
	tw.writef("ID:\t%s\n", l.ID)
	tw.writef("Title:\t%s\n", l.Title)
	tw.writef("Price:\t$%.2f %s\n", l.Price, l.Currency)
	tw.writef("Category:\t%s\n", l.Category)
	tw.writef("Condition:\t%s\n", l.Condition)
	tw.writef("Quantity:\t%d\n", l.Quantity)
	tw.writef("Images:\t%d\n", len(l.Images))
	tw.writef("eBay:\t%s\n", formatPlatform(l.Ebay))
	tw.writef("Facebook:\t%s\n", formatPlatform(l.Facebook))
	if l.SoldAt != nil {
		tw.writef("Sold at:\t%s\n", l.SoldAt.Format("2006-01-02 15:04:05"))
	}
	return tw.finish()
}

func formatPlatform(s domain.PlatformState) string {
	switch {
	case s.Error != "":
		return fmt.Sprintf("%s (%s)", s.Status, truncate(s.Error, 60))
	case s.URL != "":
		return fmt.Sprintf("%s (%s)", s.Status, s.URL)
	default:
		return string(s.Status)
	}
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
