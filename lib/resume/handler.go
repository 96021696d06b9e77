package resumehandler

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	candidatehandler "job-board-backend/lib/candidate"
	candidatestore "job-board-backend/lib/candidate/store"
	pdfexport "job-board-backend/lib/export/pdf"
	filestorage "job-board-backend/lib/file-storage"
	resumestore "job-board-backend/lib/resume/store"
	skillhandler "job-board-backend/lib/skill"
	skillstore "job-board-backend/lib/skill/store"
	"job-board-backend/lib/utils/errs"
	initchecker "job-board-backend/lib/utils/init-checker"
	candidateapimodels "job-board-backend/models/api/candidate"
	skillapimodels "job-board-backend/models/api/skill"
	dbmodels "job-board-backend/models/db"
)

type Provider interface {
	Create(ctx context.Context, data candidateapimodels.ResumeData) (msg string, err error)
	ListByCandidate(ctx context.Context, candidateID uint) (candidate candidateapimodels.CandidateView, list []candidateapimodels.ResumeView, err error)
	AddSkill(ctx context.Context, resumeID uint, skillTitle string) (msg string, err error)
	SkillList(ctx context.Context, resumeID uint) (resume candidateapimodels.ResumeView, list []skillapimodels.SkillView, err error)
	ExportPdf(ctx context.Context, resumeID uint) (body []byte, err error)
	UploadFile(ctx context.Context, resumeID uint, data ResumeFile) error
	GetFile(ctx context.Context, resumeID uint) (file ResumeFile, err error)
}

type ResumeFile struct {
	FileName    string
	ContentType string
	Body        []byte
}

func NewHandler(DB *gorm.DB, fileStorage filestorage.Provider) Provider {
	instance := impl{
		db:          DB,
		fileStorage: fileStorage,
	}
	initchecker.CheckInit(
		"db", instance.db,
		"fileStorage", instance.fileStorage,
	)
	return instance
}

type impl struct {
	db          *gorm.DB
	fileStorage filestorage.Provider
}

func (i impl) Create(ctx context.Context, data candidateapimodels.ResumeData) (msg string, err error) {
	if err = data.Validate(); err != nil {
		return "", err
	}
	var candidate *dbmodels.Candidate
	var resumeID uint
	err = i.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var txErr error
		candidate, txErr = candidatehandler.GetCandidate(candidatestore.NewInstance(tx), data.CandidateID)
		if txErr != nil {
			return txErr
		}
		// навыки проверяются до создания резюме
		skills := make([]*dbmodels.Skill, 0, len(data.Skills))
		for _, title := range data.Skills {
			skill, txErr := skillhandler.GetSkillByTitle(skillstore.NewInstance(tx), title)
			if txErr != nil {
				return txErr
			}
			skills = append(skills, skill)
		}
		store := resumestore.NewInstance(tx)
		rec := dbmodels.Resume{
			CandidateID: candidate.ID,
			Title:       data.Title,
			Experience:  data.Experience,
			Education:   data.Education,
		}
		resumeID, txErr = store.Create(rec)
		if txErr != nil {
			return txErr
		}
		rec.ID = resumeID
		for _, skill := range skills {
			if txErr = store.AddSkill(&rec, skill); txErr != nil {
				return txErr
			}
		}
		return nil
	})
	if err != nil {
		if errs.IsForeignKeyViolation(err) {
			return "", errs.NewNotFound("кандидат не найден: %d", data.CandidateID)
		}
		return "", err
	}
	log.WithFields(log.Fields{"resume_id": resumeID, "candidate_id": candidate.ID}).Info("резюме добавлено")
	return fmt.Sprintf("New resume was added to candidate: %s", candidate.Name), nil
}

func (i impl) ListByCandidate(ctx context.Context, candidateID uint) (candidate candidateapimodels.CandidateView, list []candidateapimodels.ResumeView, err error) {
	tx := i.db.WithContext(ctx)
	rec, err := candidatehandler.GetCandidate(candidatestore.NewInstance(tx), candidateID)
	if err != nil {
		return candidateapimodels.CandidateView{}, nil, err
	}
	recList, err := resumestore.NewInstance(tx).ListByCandidate(rec.ID)
	if err != nil {
		return candidateapimodels.CandidateView{}, nil, err
	}
	result := make([]candidateapimodels.ResumeView, 0, len(recList))
	for _, resume := range recList {
		result = append(result, candidateapimodels.ResumeConvert(resume))
	}
	return candidateapimodels.CandidateConvert(*rec), result, nil
}

func (i impl) AddSkill(ctx context.Context, resumeID uint, skillTitle string) (msg string, err error) {
	var resume *dbmodels.Resume
	err = i.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var txErr error
		store := resumestore.NewInstance(tx)
		resume, txErr = GetResume(store, resumeID)
		if txErr != nil {
			return txErr
		}
		skill, txErr := skillhandler.GetSkillByTitle(skillstore.NewInstance(tx), skillTitle)
		if txErr != nil {
			return txErr
		}
		return store.AddSkill(resume, skill)
	})
	if err != nil {
		return "", err
	}
	log.WithFields(log.Fields{"resume_id": resumeID, "skill_title": skillTitle}).Info("навык привязан к резюме")
	return fmt.Sprintf("%s was added to resume: %s", skillTitle, resume.GetTitle()), nil
}

func (i impl) SkillList(ctx context.Context, resumeID uint) (resume candidateapimodels.ResumeView, list []skillapimodels.SkillView, err error) {
	tx := i.db.WithContext(ctx)
	rec, err := GetResume(resumestore.NewInstance(tx), resumeID)
	if err != nil {
		return candidateapimodels.ResumeView{}, nil, err
	}
	skillList, err := skillstore.NewInstance(tx).ListByResume(rec.ID)
	if err != nil {
		return candidateapimodels.ResumeView{}, nil, err
	}
	return candidateapimodels.ResumeConvert(*rec), skillapimodels.SkillListConvert(skillList), nil
}

func (i impl) ExportPdf(ctx context.Context, resumeID uint) (body []byte, err error) {
	tx := i.db.WithContext(ctx)
	resume, err := GetResume(resumestore.NewInstance(tx), resumeID)
	if err != nil {
		return nil, err
	}
	candidate, err := candidatehandler.GetCandidate(candidatestore.NewInstance(tx), resume.CandidateID)
	if err != nil {
		return nil, err
	}
	return pdfexport.GenerateResume(candidateapimodels.CandidateConvert(*candidate), candidateapimodels.ResumeConvert(*resume))
}

func (i impl) UploadFile(ctx context.Context, resumeID uint, data ResumeFile) error {
	if len(data.Body) == 0 {
		return errs.NewValidation("пустой файл резюме")
	}
	store := resumestore.NewInstance(i.db.WithContext(ctx))
	resume, err := GetResume(store, resumeID)
	if err != nil {
		return err
	}
	key, err := i.fileStorage.UploadResume(ctx, resume.ID, data.Body, data.ContentType)
	if err != nil {
		return err
	}
	if err = store.SetFile(resume.ID, key, data.FileName, data.ContentType); err != nil {
		return err
	}
	log.WithFields(log.Fields{"resume_id": resumeID, "file_key": key}).Info("файл резюме загружен")
	return nil
}

func (i impl) GetFile(ctx context.Context, resumeID uint) (file ResumeFile, err error) {
	resume, err := GetResume(resumestore.NewInstance(i.db.WithContext(ctx)), resumeID)
	if err != nil {
		return ResumeFile{}, err
	}
	if resume.FileKey == "" {
		return ResumeFile{}, errs.NewNotFound("файл резюме не загружен: %d", resumeID)
	}
	body, err := i.fileStorage.GetFile(ctx, resume.FileKey)
	if err != nil {
		return ResumeFile{}, err
	}
	return ResumeFile{
		FileName:    resume.FileName,
		ContentType: resume.FileContentType,
		Body:        body,
	}, nil
}

// GetResume запись резюме или NotFoundError
func GetResume(store resumestore.Provider, id uint) (*dbmodels.Resume, error) {
	rec, err := store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, errs.NewNotFound("резюме не найдено: %d", id)
	}
	return rec, nil
}
