package employerhandler

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	employerstore "job-board-backend/lib/employer/store"
	initchecker "job-board-backend/lib/utils/init-checker"
	employerapimodels "job-board-backend/models/api/employer"
	dbmodels "job-board-backend/models/db"
)

type Provider interface {
	Create(ctx context.Context, data employerapimodels.EmployerData) (msg string, err error)
	List(ctx context.Context) (list []employerapimodels.EmployerView, err error)
}

func NewHandler(DB *gorm.DB) Provider {
	instance := impl{
		db: DB,
	}
	initchecker.CheckInit(
		"db", instance.db,
	)
	return instance
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(ctx context.Context, data employerapimodels.EmployerData) (msg string, err error) {
	if err = data.Validate(); err != nil {
		return "", err
	}
	rec := dbmodels.Employer{
		Name:     data.Name,
		Location: data.Location,
	}
	id, err := employerstore.NewInstance(i.db.WithContext(ctx)).Create(rec)
	if err != nil {
		return "", err
	}
	log.WithField("employer_id", id).Info("работодатель добавлен")
	return fmt.Sprintf("%s was added", data.Name), nil
}

func (i impl) List(ctx context.Context) (list []employerapimodels.EmployerView, err error) {
	recList, err := employerstore.NewInstance(i.db.WithContext(ctx)).List()
	if err != nil {
		return nil, err
	}
	result := make([]employerapimodels.EmployerView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, employerapimodels.EmployerConvert(rec))
	}
	return result, nil
}
