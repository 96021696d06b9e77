package employerapimodels

import (
	"strings"

	"job-board-backend/lib/utils/errs"
	dbmodels "job-board-backend/models/db"
)

type EmployerData struct {
	Name     string `json:"name"`     // Название
	Location string `json:"location"` // Местоположение
}

type EmployerView struct {
	EmployerData
	ID uint `json:"id"`
}

func (e EmployerData) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return errs.NewValidation("не указано название работодателя")
	}
	if strings.TrimSpace(e.Location) == "" {
		return errs.NewValidation("не указано местоположение работодателя")
	}
	return nil
}

func EmployerConvert(rec dbmodels.Employer) EmployerView {
	return EmployerView{
		EmployerData: EmployerData{
			Name:     rec.Name,
			Location: rec.Location,
		},
		ID: rec.ID,
	}
}
