package jobhandler

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	employerstore "job-board-backend/lib/employer/store"
	jobstore "job-board-backend/lib/job/store"
	skillhandler "job-board-backend/lib/skill"
	skillstore "job-board-backend/lib/skill/store"
	"job-board-backend/lib/utils/errs"
	initchecker "job-board-backend/lib/utils/init-checker"
	jobapimodels "job-board-backend/models/api/job"
	skillapimodels "job-board-backend/models/api/skill"
	dbmodels "job-board-backend/models/db"
)

type Provider interface {
	Create(ctx context.Context, data jobapimodels.JobData) (item jobapimodels.JobView, err error)
	List(ctx context.Context) (list []jobapimodels.JobView, err error)
	AddSkill(ctx context.Context, jobID uint, skillTitle string) (msg string, err error)
	SkillList(ctx context.Context, jobID uint) (job jobapimodels.JobView, list []skillapimodels.SkillView, err error)
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

func (i impl) Create(ctx context.Context, data jobapimodels.JobData) (item jobapimodels.JobView, err error) {
	if err = data.Validate(); err != nil {
		return jobapimodels.JobView{}, err
	}
	var rec dbmodels.Job
	err = i.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		employer, err := employerstore.NewInstance(tx).GetByID(data.EmployerID)
		if err != nil {
			return err
		}
		if employer == nil {
			return errs.NewNotFound("работодатель не найден: %d", data.EmployerID)
		}
		rec = dbmodels.Job{
			Title:      data.Title,
			Salary:     data.Salary,
			Time:       data.Time,
			Experience: data.Experience,
			EmployerID: employer.ID,
		}
		rec.ID, err = jobstore.NewInstance(tx).Create(rec)
		if err != nil {
			return err
		}
		rec.Employer = employer
		return nil
	})
	if err != nil {
		if errs.IsForeignKeyViolation(err) {
			return jobapimodels.JobView{}, errs.NewNotFound("работодатель не найден: %d", data.EmployerID)
		}
		return jobapimodels.JobView{}, err
	}
	log.WithField("job_id", rec.ID).Info("вакансия добавлена")
	return jobapimodels.JobConvert(rec), nil
}

func (i impl) List(ctx context.Context) (list []jobapimodels.JobView, err error) {
	recList, err := jobstore.NewInstance(i.db.WithContext(ctx)).List()
	if err != nil {
		return nil, err
	}
	result := make([]jobapimodels.JobView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, jobapimodels.JobConvert(rec))
	}
	return result, nil
}

func (i impl) AddSkill(ctx context.Context, jobID uint, skillTitle string) (msg string, err error) {
	var job *dbmodels.Job
	err = i.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		store := jobstore.NewInstance(tx)
		job, err = GetJob(store, jobID)
		if err != nil {
			return err
		}
		skill, err := skillhandler.GetSkillByTitle(skillstore.NewInstance(tx), skillTitle)
		if err != nil {
			return err
		}
		return store.AddSkill(job, skill)
	})
	if err != nil {
		return "", err
	}
	log.WithFields(log.Fields{"job_id": jobID, "skill_title": skillTitle}).Info("навык привязан к вакансии")
	return fmt.Sprintf("%s was added to candidate: %s", skillTitle, job.Title), nil
}

func (i impl) SkillList(ctx context.Context, jobID uint) (job jobapimodels.JobView, list []skillapimodels.SkillView, err error) {
	tx := i.db.WithContext(ctx)
	rec, err := GetJob(jobstore.NewInstance(tx), jobID)
	if err != nil {
		return jobapimodels.JobView{}, nil, err
	}
	skillList, err := skillstore.NewInstance(tx).ListByJob(rec.ID)
	if err != nil {
		return jobapimodels.JobView{}, nil, errors.Wrapf(err, "вакансия %d", jobID)
	}
	return jobapimodels.JobConvert(*rec), skillapimodels.SkillListConvert(skillList), nil
}

// GetJob запись вакансии или NotFoundError
func GetJob(store jobstore.Provider, id uint) (*dbmodels.Job, error) {
	rec, err := store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, errs.NewNotFound("вакансия не найдена: %d", id)
	}
	return rec, nil
}
