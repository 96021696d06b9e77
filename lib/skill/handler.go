package skillhandler

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	skillstore "job-board-backend/lib/skill/store"
	"job-board-backend/lib/utils/errs"
	initchecker "job-board-backend/lib/utils/init-checker"
	jobapimodels "job-board-backend/models/api/job"
	skillapimodels "job-board-backend/models/api/skill"
	dbmodels "job-board-backend/models/db"
)

type Provider interface {
	Create(ctx context.Context, data skillapimodels.SkillData) (msg string, err error)
	List(ctx context.Context) (list []skillapimodels.SkillView, err error)
	GetByTitle(ctx context.Context, title string) (item skillapimodels.SkillView, err error)
	JobList(ctx context.Context, title string) (list []jobapimodels.JobView, err error)
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

func (i impl) Create(ctx context.Context, data skillapimodels.SkillData) (msg string, err error) {
	if err = data.Validate(); err != nil {
		return "", err
	}
	id, err := skillstore.NewInstance(i.db.WithContext(ctx)).Create(dbmodels.Skill{Title: data.Title})
	if err != nil {
		return "", err
	}
	log.WithField("skill_id", id).Info("навык добавлен")
	return fmt.Sprintf("%s was added", data.Title), nil
}

func (i impl) List(ctx context.Context) (list []skillapimodels.SkillView, err error) {
	recList, err := skillstore.NewInstance(i.db.WithContext(ctx)).List()
	if err != nil {
		return nil, err
	}
	return skillapimodels.SkillListConvert(recList), nil
}

func (i impl) GetByTitle(ctx context.Context, title string) (item skillapimodels.SkillView, err error) {
	rec, err := GetSkillByTitle(skillstore.NewInstance(i.db.WithContext(ctx)), title)
	if err != nil {
		return skillapimodels.SkillView{}, err
	}
	return skillapimodels.SkillConvert(*rec), nil
}

// JobList вакансии, к которым привязан навык
func (i impl) JobList(ctx context.Context, title string) (list []jobapimodels.JobView, err error) {
	store := skillstore.NewInstance(i.db.WithContext(ctx))
	rec, err := GetSkillByTitle(store, title)
	if err != nil {
		return nil, err
	}
	jobList, err := store.ListJobs(rec.ID)
	if err != nil {
		return nil, err
	}
	result := make([]jobapimodels.JobView, 0, len(jobList))
	for _, job := range jobList {
		result = append(result, jobapimodels.JobConvert(job))
	}
	return result, nil
}

// GetSkillByTitle запись навыка или NotFoundError
func GetSkillByTitle(store skillstore.Provider, title string) (*dbmodels.Skill, error) {
	rec, err := store.GetByTitle(title)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, errs.NewNotFound("навык не найден: %s", title)
	}
	return rec, nil
}
