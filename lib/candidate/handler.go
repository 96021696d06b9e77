package candidatehandler

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	candidatestore "job-board-backend/lib/candidate/store"
	"job-board-backend/lib/utils/errs"
	initchecker "job-board-backend/lib/utils/init-checker"
	candidateapimodels "job-board-backend/models/api/candidate"
	dbmodels "job-board-backend/models/db"
)

type Provider interface {
	Create(ctx context.Context, data candidateapimodels.CandidateData) (msg string, err error)
	Get(ctx context.Context, id uint) (item candidateapimodels.CandidateView, err error)
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

func (i impl) Create(ctx context.Context, data candidateapimodels.CandidateData) (msg string, err error) {
	if err = data.Validate(); err != nil {
		return "", err
	}
	rec := dbmodels.Candidate{
		Name: data.Name,
		Age:  data.Age,
	}
	id, err := candidatestore.NewInstance(i.db.WithContext(ctx)).Create(rec)
	if err != nil {
		return "", err
	}
	log.WithField("candidate_id", id).Info("кандидат добавлен")
	return fmt.Sprintf("%s was added", data.Name), nil
}

func (i impl) Get(ctx context.Context, id uint) (item candidateapimodels.CandidateView, err error) {
	rec, err := GetCandidate(candidatestore.NewInstance(i.db.WithContext(ctx)), id)
	if err != nil {
		return candidateapimodels.CandidateView{}, err
	}
	return candidateapimodels.CandidateConvert(*rec), nil
}

// GetCandidate запись кандидата или NotFoundError
func GetCandidate(store candidatestore.Provider, id uint) (*dbmodels.Candidate, error) {
	rec, err := store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, errs.NewNotFound("кандидат не найден: %d", id)
	}
	return rec, nil
}
