package applicationhandler

import (
	"bytes"
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	applicationstore "job-board-backend/lib/application/store"
	candidatehandler "job-board-backend/lib/candidate"
	candidatestore "job-board-backend/lib/candidate/store"
	xlsexport "job-board-backend/lib/export/xls"
	jobhandler "job-board-backend/lib/job"
	jobstore "job-board-backend/lib/job/store"
	resumehandler "job-board-backend/lib/resume"
	resumestore "job-board-backend/lib/resume/store"
	"job-board-backend/lib/utils/errs"
	initchecker "job-board-backend/lib/utils/init-checker"
	applicationapimodels "job-board-backend/models/api/application"
	candidateapimodels "job-board-backend/models/api/candidate"
	dbmodels "job-board-backend/models/db"
)

type Provider interface {
	Create(ctx context.Context, data applicationapimodels.ApplicationData) (msg string, err error)
	ListByCandidate(ctx context.Context, candidateID uint) (candidate candidateapimodels.CandidateView, list []applicationapimodels.ApplicationView, err error)
	ListByJob(ctx context.Context, jobID uint) (list []applicationapimodels.ApplicationView, err error)
	UpdateStatus(ctx context.Context, data applicationapimodels.StatusUpdate) (item applicationapimodels.ApplicationView, err error)
	ExportByJob(ctx context.Context, jobID uint) (*bytes.Buffer, error)
}

func NewHandler(DB *gorm.DB, xlsExport xlsexport.Provider) Provider {
	instance := impl{
		db:        DB,
		xlsExport: xlsExport,
	}
	initchecker.CheckInit(
		"db", instance.db,
		"xlsExport", instance.xlsExport,
	)
	return instance
}

type impl struct {
	db        *gorm.DB
	xlsExport xlsexport.Provider
}

func (i impl) Create(ctx context.Context, data applicationapimodels.ApplicationData) (msg string, err error) {
	if err = data.Validate(); err != nil {
		return "", err
	}
	date, _ := data.GetDate()
	var (
		candidate *dbmodels.Candidate
		job       *dbmodels.Job
		resume    *dbmodels.Resume
		id        uint
	)
	err = i.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var txErr error
		candidate, txErr = candidatehandler.GetCandidate(candidatestore.NewInstance(tx), data.CandidateID)
		if txErr != nil {
			return txErr
		}
		job, txErr = jobhandler.GetJob(jobstore.NewInstance(tx), data.JobID)
		if txErr != nil {
			return txErr
		}
		resume, txErr = resumehandler.GetResume(resumestore.NewInstance(tx), data.ResumeID)
		if txErr != nil {
			return txErr
		}
		if resume.CandidateID != candidate.ID {
			return errs.NewValidation("резюме %d не принадлежит кандидату %d", resume.ID, candidate.ID)
		}
		id, txErr = applicationstore.NewInstance(tx).Create(dbmodels.Application{
			CandidateID: candidate.ID,
			JobID:       job.ID,
			ResumeID:    resume.ID,
			Date:        date,
			Status:      data.GetStatus(),
		})
		return txErr
	})
	if err != nil {
		if errs.IsForeignKeyViolation(err) {
			return "", errs.NewNotFound("связанная запись отклика не найдена")
		}
		return "", err
	}
	log.WithFields(log.Fields{
		"application_id": id,
		"candidate_id":   candidate.ID,
		"job_id":         job.ID,
	}).Info("отклик добавлен")
	return fmt.Sprintf("%s applied to the job: %s with resume %s", candidate.Name, job.Title, resume.GetTitle()), nil
}

func (i impl) ListByCandidate(ctx context.Context, candidateID uint) (candidate candidateapimodels.CandidateView, list []applicationapimodels.ApplicationView, err error) {
	tx := i.db.WithContext(ctx)
	rec, err := candidatehandler.GetCandidate(candidatestore.NewInstance(tx), candidateID)
	if err != nil {
		return candidateapimodels.CandidateView{}, nil, err
	}
	recList, err := applicationstore.NewInstance(tx).ListByCandidate(rec.ID)
	if err != nil {
		return candidateapimodels.CandidateView{}, nil, err
	}
	return candidateapimodels.CandidateConvert(*rec), applicationapimodels.ApplicationListConvert(recList), nil
}

func (i impl) ListByJob(ctx context.Context, jobID uint) (list []applicationapimodels.ApplicationView, err error) {
	_, list, err = i.listByJob(ctx, jobID)
	return list, err
}

func (i impl) UpdateStatus(ctx context.Context, data applicationapimodels.StatusUpdate) (item applicationapimodels.ApplicationView, err error) {
	if err = data.Validate(); err != nil {
		return applicationapimodels.ApplicationView{}, err
	}
	var rec *dbmodels.Application
	err = i.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		store := applicationstore.NewInstance(tx)
		var txErr error
		rec, txErr = getApplication(store, data.ApplicationID)
		if txErr != nil {
			return txErr
		}
		if txErr = store.UpdateStatus(rec.ID, data.Status); txErr != nil {
			return txErr
		}
		rec.Status = data.Status
		return nil
	})
	if err != nil {
		return applicationapimodels.ApplicationView{}, err
	}
	log.WithFields(log.Fields{"application_id": rec.ID, "status": data.Status}).Info("статус отклика изменен")
	return applicationapimodels.ApplicationConvert(*rec), nil
}

func (i impl) ExportByJob(ctx context.Context, jobID uint) (*bytes.Buffer, error) {
	job, list, err := i.listByJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	return i.xlsExport.ExportApplicationList(job.Title, list)
}

func (i impl) listByJob(ctx context.Context, jobID uint) (*dbmodels.Job, []applicationapimodels.ApplicationView, error) {
	tx := i.db.WithContext(ctx)
	job, err := jobhandler.GetJob(jobstore.NewInstance(tx), jobID)
	if err != nil {
		return nil, nil, err
	}
	recList, err := applicationstore.NewInstance(tx).ListByJob(job.ID)
	if err != nil {
		return nil, nil, err
	}
	return job, applicationapimodels.ApplicationListConvert(recList), nil
}

func getApplication(store applicationstore.Provider, id uint) (*dbmodels.Application, error) {
	rec, err := store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, errs.NewNotFound("отклик не найден: %d", id)
	}
	return rec, nil
}
