package printprovider

import (
	"bytes"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

// renderPDF draws a compact OB slip per employee, one per page. The printable
// HTML stays the primary output, the PDF is for archiving and mail attachments.
func renderPDF(doc printDocument) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("renderPDF panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Official Business Form - "+doc.Title, true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, block := range doc.Blocks {
		pdf.AddPage()

		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(0, 5, "HRDSPAD Form No. 07 (Revised, January 2015)", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 14)
		pdf.CellFormat(0, 8, "OFFICIAL BUSINESS FORM", "", 1, "C", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 5, "Republic of the Philippines", "", 1, "C", false, 0, "")
		pdf.CellFormat(0, 5, "DEPARTMENT OF LABOR AND EMPLOYMENT", "", 1, "C", false, 0, "")
		pdf.Ln(4)

		writeField(pdf, tr, "Name of Employee", block.EmployeeName)
		writeField(pdf, tr, "Position", block.EmployeePosition)
		writeField(pdf, tr, "Office", block.OfficeDisplay)
		writeField(pdf, tr, "Division", block.DivisionDisplay)
		writeField(pdf, tr, "Date of Official Business", block.DateDisplay)
		writeField(pdf, tr, "From", block.LocationFrom)
		writeField(pdf, tr, "To", block.LocationTo)
		writeField(pdf, tr, "Departure", block.Departure)
		writeField(pdf, tr, "Expected Return", block.Return)

		pdf.Ln(2)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(0, 6, "Purpose:", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, tr(block.Purpose), "", "L", false)

		pdf.Ln(14)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(95, 5, tr(block.EmployeeName), "T", 0, "C", false, 0, "")
		pdf.CellFormat(95, 5, tr(block.ApprovedBy), "T", 1, "C", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(95, 5, "Employee's Signature", "", 0, "C", false, 0, "")
		pdf.CellFormat(95, 5, tr(block.ApprovedByPosition), "", 1, "C", false, 0, "")
	}

	if pdf.Error() != nil {
		return nil, pdf.Error()
	}
	buf := new(bytes.Buffer)
	if err = pdf.Output(buf); err != nil {
		return nil, errors.Wrap(err, "pdf output")
	}
	return buf.Bytes(), nil
}

func writeField(pdf *fpdf.Fpdf, tr func(string) string, label, value string) {
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(60, 6, label+":", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 6, tr(value), "", 1, "L", false, 0, "")
}
