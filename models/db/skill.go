package dbmodels

type Skill struct {
	BaseModel
	Title   string   `gorm:"index;type:varchar(255)"`
	Jobs    []Job    `gorm:"many2many:job_skills;"`
	Resumes []Resume `gorm:"many2many:resume_skills;"`
}
