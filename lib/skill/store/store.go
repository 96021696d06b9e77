package skillstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "job-board-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Skill) (id uint, err error)
	List() ([]dbmodels.Skill, error)
	GetByID(id uint) (*dbmodels.Skill, error)
	GetByTitle(title string) (*dbmodels.Skill, error)
	ListByJob(jobID uint) ([]dbmodels.Skill, error)
	ListByResume(resumeID uint) ([]dbmodels.Skill, error)
	ListJobs(skillID uint) ([]dbmodels.Job, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Skill) (id uint, err error) {
	err = i.db.Create(&rec).Error
	if err != nil {
		return 0, errors.Wrap(err, "ошибка добавления навыка")
	}
	return rec.ID, nil
}

func (i impl) List() ([]dbmodels.Skill, error) {
	var result []dbmodels.Skill
	err := i.db.Model(dbmodels.Skill{}).
		Order("id").
		Find(&result).
		Error
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка навыков")
	}
	return result, nil
}

func (i impl) GetByID(id uint) (*dbmodels.Skill, error) {
	var rec dbmodels.Skill
	err := i.db.First(&rec, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "ошибка получения навыка")
	}
	return &rec, nil
}

// GetByTitle точное совпадение названия; при дублях - первый добавленный
func (i impl) GetByTitle(title string) (*dbmodels.Skill, error) {
	var rec dbmodels.Skill
	err := i.db.
		Where("title = ?", title).
		Order("id").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "ошибка получения навыка по названию")
	}
	return &rec, nil
}

func (i impl) ListByJob(jobID uint) ([]dbmodels.Skill, error) {
	var result []dbmodels.Skill
	err := i.db.Model(dbmodels.Skill{}).
		Joins("JOIN job_skills ON job_skills.skill_id = skills.id").
		Where("job_skills.job_id = ?", jobID).
		Order("skills.id").
		Find(&result).
		Error
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения навыков вакансии")
	}
	return result, nil
}

func (i impl) ListByResume(resumeID uint) ([]dbmodels.Skill, error) {
	var result []dbmodels.Skill
	err := i.db.Model(dbmodels.Skill{}).
		Joins("JOIN resume_skills ON resume_skills.skill_id = skills.id").
		Where("resume_skills.resume_id = ?", resumeID).
		Order("skills.id").
		Find(&result).
		Error
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения навыков резюме")
	}
	return result, nil
}

// ListJobs обратная сторона связи job_skills
func (i impl) ListJobs(skillID uint) ([]dbmodels.Job, error) {
	var result []dbmodels.Job
	err := i.db.Model(dbmodels.Job{}).
		Joins("JOIN job_skills ON job_skills.job_id = jobs.id").
		Where("job_skills.skill_id = ?", skillID).
		Order("jobs.id").
		Find(&result).
		Error
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения вакансий навыка")
	}
	return result, nil
}
