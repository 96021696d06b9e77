package dbmodels

type Candidate struct {
	BaseModel
	Name         string `gorm:"type:varchar(255)"`
	Age          int
	Resumes      []Resume
	Applications []Application
}
