package dbmodels

type Resume struct {
	BaseModel
	CandidateID uint `gorm:"index"`
	Candidate   *Candidate
	Title       string `gorm:"type:varchar(255)"`
	Experience  string
	Education   string
	Skills      []Skill `gorm:"many2many:resume_skills;"`
	// вложение в S3
	FileKey         string `gorm:"type:varchar(255)"`
	FileName        string `gorm:"type:varchar(255)"`
	FileContentType string `gorm:"type:varchar(255)"`
}

// GetTitle заголовок для текстовых ответов, у резюме без заголовка - номер
func (r Resume) GetTitle() string {
	if r.Title != "" {
		return r.Title
	}
	return "#" + uintToString(r.ID)
}
