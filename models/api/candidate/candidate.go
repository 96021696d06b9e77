package candidateapimodels

import (
	"strings"

	"job-board-backend/lib/utils/errs"
	dbmodels "job-board-backend/models/db"
)

type CandidateData struct {
	Name string `json:"name"` // Имя кандидата
	Age  int    `json:"age"`  // Возраст
}

type CandidateView struct {
	CandidateData
	ID uint `json:"id"`
}

func (c CandidateData) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return errs.NewValidation("не указано имя кандидата")
	}
	if c.Age < 0 {
		return errs.NewValidation("некорректный возраст кандидата")
	}
	return nil
}

func CandidateConvert(rec dbmodels.Candidate) CandidateView {
	return CandidateView{
		CandidateData: CandidateData{
			Name: rec.Name,
			Age:  rec.Age,
		},
		ID: rec.ID,
	}
}
