package jobapimodels

import (
	"strings"

	"job-board-backend/lib/utils/errs"
	dbmodels "job-board-backend/models/db"
)

type JobData struct {
	Title      string `json:"title"`       // Название вакансии
	Salary     int    `json:"salary"`      // Зарплата
	Time       string `json:"time"`        // Занятость
	Experience string `json:"experience"`  // Требуемый опыт
	EmployerID uint   `json:"employer_id"` // Идентификатор работодателя
}

type JobView struct {
	JobData
	ID           uint   `json:"id"`
	EmployerName string `json:"employer_name,omitempty"`
}

func (j JobData) Validate() error {
	if strings.TrimSpace(j.Title) == "" {
		return errs.NewValidation("не указано название вакансии")
	}
	if j.Salary < 0 {
		return errs.NewValidation("зарплата не может быть отрицательной")
	}
	if strings.TrimSpace(j.Time) == "" {
		return errs.NewValidation("не указана занятость")
	}
	if strings.TrimSpace(j.Experience) == "" {
		return errs.NewValidation("не указан требуемый опыт")
	}
	if j.EmployerID == 0 {
		return errs.NewValidation("не указан работодатель")
	}
	return nil
}

func JobConvert(rec dbmodels.Job) JobView {
	result := JobView{
		JobData: JobData{
			Title:      rec.Title,
			Salary:     rec.Salary,
			Time:       rec.Time,
			Experience: rec.Experience,
			EmployerID: rec.EmployerID,
		},
		ID: rec.ID,
	}
	if rec.Employer != nil {
		result.EmployerName = rec.Employer.Name
	}
	return result
}
