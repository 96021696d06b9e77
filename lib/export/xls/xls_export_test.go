package xlsexport

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	applicationapimodels "job-board-backend/models/api/application"
)

func TestExportApplicationList(t *testing.T) {
	t.Run(`rows follow header`, func(t *testing.T) {
		list := []applicationapimodels.ApplicationView{
			{
				ApplicationData: applicationapimodels.ApplicationData{ResumeID: 3, Date: "2024-05-01", Status: "Submitted"},
				ID:              1,
				CandidateName:   "Ann",
				JobTitle:        "Go developer",
			},
			{
				ApplicationData: applicationapimodels.ApplicationData{ResumeID: 4, Date: "2024-05-02", Status: "Rejected"},
				ID:              2,
				CandidateName:   "Bob",
			},
		}
		buf, err := NewHandler().ExportApplicationList("Go developer", list)
		require.NoError(t, err)

		f, err := excelize.OpenReader(buf)
		require.NoError(t, err)
		defer f.Close()

		rows, err := f.GetRows(applicationSheet)
		require.NoError(t, err)
		require.Len(t, rows, 3)
		require.Equal(t, applicationHeaders, rows[0])
		require.Equal(t, []string{"1", "Ann", "Go developer", "3", "2024-05-01", "Submitted"}, rows[1])
		require.Equal(t, []string{"2", "Bob", "Go developer", "4", "2024-05-02", "Rejected"}, rows[2])
	})

	t.Run(`empty list has header only`, func(t *testing.T) {
		buf, err := NewHandler().ExportApplicationList("Go developer", nil)
		require.NoError(t, err)
		f, err := excelize.OpenReader(buf)
		require.NoError(t, err)
		defer f.Close()
		rows, err := f.GetRows(applicationSheet)
		require.NoError(t, err)
		require.Len(t, rows, 1)
	})
}
