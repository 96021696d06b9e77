package applicationstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "job-board-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Application) (id uint, err error)
	GetByID(id uint) (*dbmodels.Application, error)
	UpdateStatus(id uint, status string) error
	ListByCandidate(candidateID uint) ([]dbmodels.Application, error)
	ListByJob(jobID uint) ([]dbmodels.Application, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Application) (id uint, err error) {
	err = i.db.Omit("Candidate", "Job", "Resume").Create(&rec).Error
	if err != nil {
		return 0, errors.Wrap(err, "ошибка добавления отклика")
	}
	return rec.ID, nil
}

func (i impl) GetByID(id uint) (*dbmodels.Application, error) {
	var rec dbmodels.Application
	err := i.db.
		Preload("Candidate").
		Preload("Job").
		First(&rec, id).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "ошибка получения отклика")
	}
	return &rec, nil
}

func (i impl) UpdateStatus(id uint, status string) error {
	err := i.db.Model(&dbmodels.Application{}).
		Where("id = ?", id).
		Update("status", status).
		Error
	if err != nil {
		return errors.Wrap(err, "ошибка изменения статуса отклика")
	}
	return nil
}

func (i impl) ListByCandidate(candidateID uint) ([]dbmodels.Application, error) {
	return i.list("candidate_id = ?", candidateID)
}

func (i impl) ListByJob(jobID uint) ([]dbmodels.Application, error) {
	return i.list("job_id = ?", jobID)
}

func (i impl) list(query string, args ...interface{}) ([]dbmodels.Application, error) {
	var result []dbmodels.Application
	err := i.db.Model(dbmodels.Application{}).
		Preload("Candidate").
		Preload("Job").
		Where(query, args...).
		Order("id").
		Find(&result).
		Error
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка откликов")
	}
	return result, nil
}
