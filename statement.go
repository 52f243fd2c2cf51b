package minibank

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"
)

var statementCols = []struct {
	title string
	width float64
	align string
}{
	{"Account", 30, "L"},
	{"Type", 30, "L"},
	{"Balance", 40, "R"},
	{"Limit", 40, "R"},
	{"Available", 40, "R"},
}

// WriteStatement renders a one-page PDF summary of accts as of at.
func WriteStatement(w io.Writer, accts []*Account, at time.Time) error {
	return writeStatement(w, accts, at, true)
}

func writeStatement(w io.Writer, accts []*Account, at time.Time, compress bool) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(compress)
	pdf.SetTitle("Account statement", false)
	pdf.SetCreationDate(at)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 10, "Account statement")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 9)
	pdf.Cell(0, 6, at.Format(time.RFC1123))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 10)
	for _, c := range statementCols {
		pdf.CellFormat(c.width, 7, c.title, "B", 0, c.align, false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, a := range accts {
		limit := "-"
		if a.Kind != KindBasic {
			limit = a.Limit().StringFixed(2)
		}
		row := []string{
			fmt.Sprintf("%d", a.Num),
			a.Kind.String(),
			a.Balance().StringFixed(2),
			limit,
			a.Available().StringFixed(2),
		}
		for i, c := range statementCols {
			pdf.CellFormat(c.width, 6, row[i], "", 0, c.align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	return pdf.Output(w)
}
