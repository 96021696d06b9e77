package dbmodels

type Job struct {
	BaseModel
	Title        string `gorm:"type:varchar(255)"`
	Salary       int
	Time         string `gorm:"type:varchar(100)"` // Занятость (full-time, part-time ...)
	Experience   string `gorm:"type:varchar(255)"` // Требуемый опыт
	EmployerID   uint   `gorm:"index"`
	Employer     *Employer
	Skills       []Skill `gorm:"many2many:job_skills;"`
	Applications []Application
}
