package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	dbmodels "job-board-backend/models/db"
)

// AutoMigrateDB создает таблицы сущностей и таблицы связей job_skills, resume_skills.
// Модели передаются одним вызовом, gorm сам упорядочивает их по зависимостям.
func AutoMigrateDB(tx *gorm.DB) error {
	log.Info("Запуск миграций")
	err := tx.AutoMigrate(
		&dbmodels.Employer{},
		&dbmodels.Candidate{},
		&dbmodels.Skill{},
		&dbmodels.Job{},
		&dbmodels.Resume{},
		&dbmodels.Application{},
	)
	if err != nil {
		return errors.Wrap(err, "ошибка создания структуры БД")
	}
	log.Info("Миграция прошла успешно")
	return nil
}
