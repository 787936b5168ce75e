// Package export writes catalog snapshots to spreadsheet files, the same
// dated list files the latest-export lookup goes hunting for.
package export

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/hojoonlee/toondex/internal/catalog"
	"github.com/hojoonlee/toondex/internal/library"
	"github.com/hojoonlee/toondex/internal/models"
)

// SheetName is the single worksheet holding the catalog records.
const SheetName = "Webtoons"

// timestampLayout embeds the creation instant in the file name so plain
// string order on names matches chronological order.
const timestampLayout = "20060102150405"

// header is the first spreadsheet row, one column per record field.
var header = []interface{}{"Platform", "Title", "Authors", "Completed", "Creation Time", "Extension", "Size"}

// Filename returns the export file name for the given instant, e.g.
// "Webtoons_20240701093015.xlsx".
func Filename(at time.Time) string {
	return fmt.Sprintf("%s_%s.%s", catalog.ExportPrefix, at.Format(timestampLayout), catalog.ExportExtension)
}

// Write creates a new export spreadsheet in dir and returns its file
// name. Records are written in catalog order, one row each, below a
// header row.
func Write(dir string, webtoons []models.Webtoon, at time.Time) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return "", fmt.Errorf("rename sheet: %w", err)
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return "", fmt.Errorf("write header: %w", err)
	}

	for i, w := range webtoons {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return "", err
		}
		row := []interface{}{w.Platform, w.Title, w.Authors, w.Completed, w.CreationTime, w.FileExtension, w.Size}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return "", fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	name := Filename(at)
	if err := f.SaveAs(filepath.Join(dir, name)); err != nil {
		return "", fmt.Errorf("save export: %w", err)
	}
	return name, nil
}

// LatestIn enumerates dir and returns the name of the most recent export
// spreadsheet in it. The boolean is false when the directory holds no
// export; that is not an error.
func LatestIn(dir string) (string, bool, error) {
	entries, err := library.ListEntries(dir)
	if err != nil {
		return "", false, err
	}
	name, ok := catalog.FindLatestExport(entries)
	return name, ok, nil
}
