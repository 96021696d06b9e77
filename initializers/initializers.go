package initializers

import (
	"context"

	"job-board-backend/config"
	"job-board-backend/db"
	"job-board-backend/fiberlog"
	applicationhandler "job-board-backend/lib/application"
	candidatehandler "job-board-backend/lib/candidate"
	employerhandler "job-board-backend/lib/employer"
	xlsexport "job-board-backend/lib/export/xls"
	filestorage "job-board-backend/lib/file-storage"
	jobhandler "job-board-backend/lib/job"
	resumehandler "job-board-backend/lib/resume"
	skillhandler "job-board-backend/lib/skill"
	"job-board-backend/metrics"
	s3client "job-board-backend/s3"
)

var LoggerConfig *fiberlog.Config

// Services обработчики, собранные при старте и передаваемые в контроллеры
type Services struct {
	Employers    employerhandler.Provider
	Jobs         jobhandler.Provider
	Candidates   candidatehandler.Provider
	Skills       skillhandler.Provider
	Resumes      resumehandler.Provider
	Applications applicationhandler.Provider
	Metrics      *metrics.Manager
}

func InitAllServices(ctx context.Context) Services {
	LoggerConfig = InitLogger()
	config.InitConfig()
	SetLogLevel(config.Conf.Log.Level)
	InitDBConnection()
	InitS3(ctx)

	return Services{
		Employers:    employerhandler.NewHandler(db.DB),
		Jobs:         jobhandler.NewHandler(db.DB),
		Candidates:   candidatehandler.NewHandler(db.DB),
		Skills:       skillhandler.NewHandler(db.DB),
		Resumes:      resumehandler.NewHandler(db.DB, filestorage.NewInstance(s3client.Client)),
		Applications: applicationhandler.NewHandler(db.DB, xlsexport.NewHandler()),
		Metrics:      metrics.NewManager(),
	}
}
