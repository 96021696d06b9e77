package candidateapimodels

import (
	"fmt"
	"strings"

	"job-board-backend/lib/utils/errs"
	"job-board-backend/lib/utils/helpers"
	skillapimodels "job-board-backend/models/api/skill"
	dbmodels "job-board-backend/models/db"
)

type ResumeData struct {
	CandidateID uint     `json:"candidate_id"`     // Идентификатор кандидата
	Title       string   `json:"title"`            // Заголовок, необязательно
	Experience  string   `json:"experience"`       // Опыт
	Education   string   `json:"education"`        // Образование
	Skills      []string `json:"skills,omitempty"` // Названия навыков, должны существовать
}

type ResumeView struct {
	ResumeData
	ID       uint   `json:"id"`
	FileName string `json:"file_name,omitempty"` // Имя вложенного файла
}

func (r ResumeData) Validate() error {
	if r.CandidateID == 0 {
		return errs.NewValidation("не указан кандидат")
	}
	if strings.TrimSpace(r.Experience) == "" {
		return errs.NewValidation("не указан опыт")
	}
	if strings.TrimSpace(r.Education) == "" {
		return errs.NewValidation("не указано образование")
	}
	for _, title := range r.Skills {
		if strings.TrimSpace(title) == "" {
			return errs.NewValidation("пустое название навыка")
		}
	}
	return nil
}

func (r ResumeView) String() string {
	return fmt.Sprintf("Resume(id=%d, title=%s, experience=%s, education=%s, skills=[%s])",
		r.ID, r.Title, r.Experience, r.Education, strings.Join(r.Skills, ", "))
}

func ResumeConvert(rec dbmodels.Resume) ResumeView {
	return ResumeView{
		ResumeData: ResumeData{
			CandidateID: rec.CandidateID,
			Title:       rec.Title,
			Experience:  rec.Experience,
			Education:   rec.Education,
			Skills:      skillapimodels.SkillTitles(rec.Skills),
		},
		ID:       rec.ID,
		FileName: rec.FileName,
	}
}

// ResumeListText ответ со списком резюме кандидата
func ResumeListText(candidate CandidateView, list []ResumeView) string {
	return fmt.Sprintf("%s's resumes: %s", candidate.Name, helpers.FormatList(list))
}

func (r ResumeView) GetTitle() string {
	if r.Title != "" {
		return r.Title
	}
	return fmt.Sprintf("#%d", r.ID)
}
