package xlsexport

import (
	"bytes"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	printprovider "ob-forms-backend/lib/printform"
)

type Provider interface {
	ExportReleaseLog(rows []printprovider.ReleaseRow, period string) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var releaseHeaders = []string{"No.", "Name", "Position", "Destination", "Date of Official Business", "Signature", "Date Received"}

// ExportReleaseLog writes the release log rows into a spreadsheet mirroring the
// printable release form, blank padding rows included.
func (i impl) ExportReleaseLog(rows []printprovider.ReleaseRow, period string) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("failed to close xlsx file")
		}
	}()
	sheet := "Sheet1"
	row := 0
	if err := writeColumn(f, sheet, 1, 1, "RECORDS APPROVED OFFICIAL BUSINESS - RELEASED FORM"); err != nil {
		return nil, errors.Wrap(err, "failed to write xlsx title")
	}
	row++
	if err := writeColumn(f, sheet, 1, 2, "Months/Period: "+period); err != nil {
		return nil, errors.Wrap(err, "failed to write xlsx period")
	}
	row++
	row, err := writeHeader(f, sheet, row, releaseHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "failed to write xlsx header")
	}
	if len(rows) != 0 {
		row, err = writeReleaseData(f, sheet, rows, row)
		if err != nil {
			return nil, errors.Wrap(err, "failed to write xlsx data")
		}
	}
	f.SetSheetName(sheet, "Release Log")
	return f.WriteToBuffer()
}

func writeReleaseData(f *excelize.File, sheet string, rows []printprovider.ReleaseRow, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(releaseHeaders), row+len(rows)); err != nil {
		return row, err
	}
	for _, item := range rows {
		row++
		col := 1
		if err := writeColumn(f, sheet, col, row, item.Number); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.Name); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.Position); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.Destination); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.DateDisplay); err != nil {
			return row, err
		}
	}
	return row, nil
}
