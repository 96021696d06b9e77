package applicationapimodels

import (
	"fmt"
	"strings"
	"time"

	"job-board-backend/lib/utils/errs"
	"job-board-backend/lib/utils/helpers"
	dbmodels "job-board-backend/models/db"
)

const DateLayout = "2006-01-02"

type ApplicationData struct {
	CandidateID uint   `json:"candidate_id"` // Идентификатор кандидата
	JobID       uint   `json:"job_id"`       // Идентификатор вакансии
	ResumeID    uint   `json:"resume_id"`    // Идентификатор резюме
	Date        string `json:"date"`         // Дата отклика ГГГГ-ММ-ДД
	Status      string `json:"status"`       // Статус, по умолчанию Submitted
}

type ApplicationView struct {
	ApplicationData
	ID            uint   `json:"id"`
	CandidateName string `json:"candidate_name,omitempty"`
	JobTitle      string `json:"job_title,omitempty"`
}

func (a ApplicationData) Validate() error {
	if a.CandidateID == 0 {
		return errs.NewValidation("не указан кандидат")
	}
	if a.JobID == 0 {
		return errs.NewValidation("не указана вакансия")
	}
	if a.ResumeID == 0 {
		return errs.NewValidation("не указано резюме")
	}
	if _, err := a.GetDate(); err != nil {
		return errs.NewValidation("некорректный формат даты отклика, ожидается ГГГГ-ММ-ДД")
	}
	return nil
}

func (a ApplicationData) GetDate() (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(a.Date))
}

func (a ApplicationData) GetStatus() string {
	status := strings.TrimSpace(a.Status)
	if status == "" {
		return dbmodels.ApplicationStatusSubmitted
	}
	return status
}

func (a ApplicationView) String() string {
	return fmt.Sprintf("Application(id=%d, job_id=%d, resume_id=%d, date=%s, status=%s)",
		a.ID, a.JobID, a.ResumeID, a.Date, a.Status)
}

type StatusUpdate struct {
	ApplicationID uint
	Status        string
}

func (s StatusUpdate) Validate() error {
	if s.ApplicationID == 0 {
		return errs.NewValidation("не указан отклик")
	}
	if strings.TrimSpace(s.Status) == "" {
		return errs.NewValidation("не указан статус")
	}
	return nil
}

func ApplicationConvert(rec dbmodels.Application) ApplicationView {
	result := ApplicationView{
		ApplicationData: ApplicationData{
			CandidateID: rec.CandidateID,
			JobID:       rec.JobID,
			ResumeID:    rec.ResumeID,
			Status:      rec.Status,
		},
		ID: rec.ID,
	}
	if !rec.Date.IsZero() {
		result.Date = rec.Date.Format(DateLayout)
	}
	if rec.Candidate != nil {
		result.CandidateName = rec.Candidate.Name
	}
	if rec.Job != nil {
		result.JobTitle = rec.Job.Title
	}
	return result
}

func ApplicationListConvert(list []dbmodels.Application) []ApplicationView {
	result := make([]ApplicationView, 0, len(list))
	for _, rec := range list {
		result = append(result, ApplicationConvert(rec))
	}
	return result
}

// CandidateApplicationsText ответ со списком откликов кандидата
func CandidateApplicationsText(candidateName string, list []ApplicationView) string {
	return fmt.Sprintf("Jobs that is %s applied: %s", candidateName, helpers.FormatList(list))
}
