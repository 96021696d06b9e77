package resumestore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "job-board-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Resume) (id uint, err error)
	GetByID(id uint) (*dbmodels.Resume, error)
	ListByCandidate(candidateID uint) ([]dbmodels.Resume, error)
	AddSkill(resume *dbmodels.Resume, skill *dbmodels.Skill) error
	SetFile(id uint, key, fileName, contentType string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Resume) (id uint, err error) {
	err = i.db.Omit("Candidate", "Skills").Create(&rec).Error
	if err != nil {
		return 0, errors.Wrap(err, "ошибка добавления резюме")
	}
	return rec.ID, nil
}

func (i impl) GetByID(id uint) (*dbmodels.Resume, error) {
	var rec dbmodels.Resume
	err := i.db.
		Preload("Skills", orderByID("skills")).
		First(&rec, id).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "ошибка получения резюме")
	}
	return &rec, nil
}

func (i impl) ListByCandidate(candidateID uint) ([]dbmodels.Resume, error) {
	var result []dbmodels.Resume
	err := i.db.Model(dbmodels.Resume{}).
		Preload("Skills", orderByID("skills")).
		Where("candidate_id = ?", candidateID).
		Order("id").
		Find(&result).
		Error
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка резюме кандидата")
	}
	return result, nil
}

func (i impl) AddSkill(resume *dbmodels.Resume, skill *dbmodels.Skill) error {
	err := i.db.Model(resume).
		Omit("Skills.*").
		Association("Skills").
		Append(skill)
	if err != nil {
		return errors.Wrap(err, "ошибка привязки навыка к резюме")
	}
	return nil
}

func (i impl) SetFile(id uint, key, fileName, contentType string) error {
	err := i.db.Model(&dbmodels.Resume{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"file_key":          key,
			"file_name":         fileName,
			"file_content_type": contentType,
		}).
		Error
	if err != nil {
		return errors.Wrap(err, "ошибка сохранения вложения резюме")
	}
	return nil
}

func orderByID(table string) func(tx *gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Order(table + ".id")
	}
}
