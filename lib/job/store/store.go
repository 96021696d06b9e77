package jobstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "job-board-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Job) (id uint, err error)
	List() ([]dbmodels.Job, error)
	GetByID(id uint) (*dbmodels.Job, error)
	AddSkill(job *dbmodels.Job, skill *dbmodels.Skill) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Job) (id uint, err error) {
	err = i.db.Omit("Employer", "Skills", "Applications").Create(&rec).Error
	if err != nil {
		return 0, errors.Wrap(err, "ошибка добавления вакансии")
	}
	return rec.ID, nil
}

func (i impl) List() ([]dbmodels.Job, error) {
	var result []dbmodels.Job
	err := i.db.Model(dbmodels.Job{}).
		Preload("Employer").
		Order("id").
		Find(&result).
		Error
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка вакансий")
	}
	return result, nil
}

func (i impl) GetByID(id uint) (*dbmodels.Job, error) {
	var rec dbmodels.Job
	err := i.db.
		Preload("Employer").
		First(&rec, id).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "ошибка получения вакансии")
	}
	return &rec, nil
}

// AddSkill строка в job_skills видна с обеих сторон связи, повторная привязка игнорируется
func (i impl) AddSkill(job *dbmodels.Job, skill *dbmodels.Skill) error {
	err := i.db.Model(job).
		Omit("Skills.*").
		Association("Skills").
		Append(skill)
	if err != nil {
		return errors.Wrap(err, "ошибка привязки навыка к вакансии")
	}
	return nil
}
