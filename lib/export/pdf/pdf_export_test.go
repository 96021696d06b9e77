package pdfexport

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	candidateapimodels "job-board-backend/models/api/candidate"
)

func TestGenerateResume(t *testing.T) {
	t.Run(`resume renders to pdf`, func(t *testing.T) {
		candidate := candidateapimodels.CandidateView{
			CandidateData: candidateapimodels.CandidateData{Name: "Ann", Age: 30},
			ID:            1,
		}
		resume := candidateapimodels.ResumeView{
			ResumeData: candidateapimodels.ResumeData{
				CandidateID: 1,
				Title:       "Backend developer",
				Experience:  "2y",
				Education:   "BS",
				Skills:      []string{"Go", "SQL"},
			},
			ID: 1,
		}
		body, err := GenerateResume(candidate, resume)
		require.NoError(t, err)
		require.True(t, bytes.HasPrefix(body, []byte("%PDF-")))
	})
}
