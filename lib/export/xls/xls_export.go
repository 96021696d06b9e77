package xlsexport

import (
	"bytes"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	applicationapimodels "job-board-backend/models/api/application"
)

type Provider interface {
	ExportApplicationList(jobTitle string, list []applicationapimodels.ApplicationView) (*bytes.Buffer, error)
}

func NewHandler() Provider {
	return impl{}
}

type impl struct{}

const applicationSheet = "Applications"

var applicationHeaders = []string{"ID", "Candidate", "Job", "Resume ID", "Date", "Status"}

func (i impl) ExportApplicationList(jobTitle string, list []applicationapimodels.ApplicationView) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, applicationHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(list) != 0 {
		_, err = writeApplicationData(f, sheet, jobTitle, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
	}
	if err = f.SetSheetName(sheet, applicationSheet); err != nil {
		return nil, errors.Wrap(err, "ошибка переименования листа xlsx")
	}
	return f.WriteToBuffer()
}

func writeApplicationData(f *excelize.File, sheet, jobTitle string, list []applicationapimodels.ApplicationView, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(applicationHeaders), row+len(list)); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		title := item.JobTitle
		if title == "" {
			title = jobTitle
		}
		values := []interface{}{item.ID, item.CandidateName, title, item.ResumeID, item.Date, item.Status}
		for idx, value := range values {
			if err := writeColumn(f, sheet, idx+1, row, value); err != nil {
				return row, err
			}
		}
	}
	return row, nil
}
