package dbmodels

type Employer struct {
	BaseModel
	Name     string `gorm:"type:varchar(255)"` // Название работодателя
	Location string `gorm:"type:varchar(255)"` // Местоположение
	Jobs     []Job
}
