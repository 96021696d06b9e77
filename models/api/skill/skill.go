package skillapimodels

import (
	"fmt"
	"strings"

	"job-board-backend/lib/utils/errs"
	"job-board-backend/lib/utils/helpers"
	dbmodels "job-board-backend/models/db"
)

type SkillData struct {
	Title string `json:"title"`
}

type SkillView struct {
	SkillData
	ID uint `json:"id"`
}

func (s SkillData) Validate() error {
	if strings.TrimSpace(s.Title) == "" {
		return errs.NewValidation("не указано название навыка")
	}
	return nil
}

func (s SkillView) String() string {
	return fmt.Sprintf("Skill(id=%d, title=%s)", s.ID, s.Title)
}

func SkillConvert(rec dbmodels.Skill) SkillView {
	return SkillView{
		SkillData: SkillData{
			Title: rec.Title,
		},
		ID: rec.ID,
	}
}

func SkillListConvert(list []dbmodels.Skill) []SkillView {
	result := make([]SkillView, 0, len(list))
	for _, rec := range list {
		result = append(result, SkillConvert(rec))
	}
	return result
}

func SkillTitles(list []dbmodels.Skill) []string {
	result := make([]string, 0, len(list))
	for _, rec := range list {
		result = append(result, rec.Title)
	}
	return result
}

// JobSkillsText ответ со списком навыков вакансии
func JobSkillsText(jobTitle string, list []SkillView) string {
	return fmt.Sprintf("Skills that is %s required: %s", jobTitle, helpers.FormatList(list))
}

// ResumeSkillsText ответ со списком навыков резюме
func ResumeSkillsText(resumeTitle string, list []SkillView) string {
	return fmt.Sprintf("Skills listed in resume %s: %s", resumeTitle, helpers.FormatList(list))
}
