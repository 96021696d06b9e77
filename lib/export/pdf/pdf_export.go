package pdfexport

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
	candidateapimodels "job-board-backend/models/api/candidate"
)

// GenerateResume печатает резюме кандидата встроенным шрифтом Helvetica (cp1252)
func GenerateResume(candidate candidateapimodels.CandidateView, resume candidateapimodels.ResumeView) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateResume panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Resume of %s", candidate.Name), true)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, tr(candidate.Name), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Age: %d", candidate.Age)), "", 1, "L", false, 0, "")
	if resume.Title != "" {
		pdf.SetFont("Helvetica", "I", 13)
		pdf.CellFormat(0, 8, tr(resume.Title), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	writeSection(pdf, tr, "Experience", resume.Experience)
	writeSection(pdf, tr, "Education", resume.Education)
	if len(resume.Skills) > 0 {
		writeSection(pdf, tr, "Skills", strings.Join(resume.Skills, ", "))
	}
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeSection(pdf *fpdf.Fpdf, tr func(string) string, title, body string) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, tr(title), "B", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, tr(body), "", "L", false)
	pdf.Ln(3)
}
