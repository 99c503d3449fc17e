// Package reports exports registry lists as spreadsheets.
package reports

import (
	"io"
	"time"

	"github.com/tealeg/xlsx/v3"
)

const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Column[T any] struct {
	Header string
	Value  func(T) interface{}
}

type Report[T any] struct {
	Sheet   string
	Columns []Column[T]
}

// Generate writes a header row followed by one row per record.
func (r Report[T]) Generate(records []T) (*xlsx.File, error) {
	file := xlsx.NewFile()
	sh, err := file.AddSheet(r.Sheet)
	if err != nil {
		return nil, err
	}

	header := sh.AddRow()
	for _, c := range r.Columns {
		header.AddCell().SetValue(c.Header)
	}
	for _, record := range records {
		row := sh.AddRow()
		for _, c := range r.Columns {
			row.AddCell().SetValue(c.Value(record))
		}
	}
	return file, nil
}

func (r Report[T]) Write(w io.Writer, records []T) error {
	file, err := r.Generate(records)
	if err != nil {
		return err
	}
	return file.Write(w)
}

// Filename returns the download name for a report generated at t.
func Filename(name string, t time.Time) string {
	return name + "-" + t.Format("2006-01-02") + ".xlsx"
}
