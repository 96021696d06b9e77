package candidatestore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "job-board-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Candidate) (id uint, err error)
	GetByID(id uint) (*dbmodels.Candidate, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Candidate) (id uint, err error) {
	err = i.db.Create(&rec).Error
	if err != nil {
		return 0, errors.Wrap(err, "ошибка добавления кандидата")
	}
	return rec.ID, nil
}

func (i impl) GetByID(id uint) (*dbmodels.Candidate, error) {
	var rec dbmodels.Candidate
	err := i.db.First(&rec, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "ошибка получения кандидата")
	}
	return &rec, nil
}
