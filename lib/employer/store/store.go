package employerstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "job-board-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Employer) (id uint, err error)
	List() ([]dbmodels.Employer, error)
	GetByID(id uint) (*dbmodels.Employer, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Employer) (id uint, err error) {
	err = i.db.Create(&rec).Error
	if err != nil {
		return 0, errors.Wrap(err, "ошибка добавления работодателя")
	}
	return rec.ID, nil
}

func (i impl) List() ([]dbmodels.Employer, error) {
	var result []dbmodels.Employer
	err := i.db.Model(dbmodels.Employer{}).
		Order("id").
		Find(&result).
		Error
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка работодателей")
	}
	return result, nil
}

func (i impl) GetByID(id uint) (*dbmodels.Employer, error) {
	var rec dbmodels.Employer
	err := i.db.First(&rec, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "ошибка получения работодателя")
	}
	return &rec, nil
}
