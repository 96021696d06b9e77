package applicationhandler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	xlsexport "job-board-backend/lib/export/xls"
	"job-board-backend/lib/utils/errs"
	testdb "job-board-backend/lib/utils/test-db"
	applicationapimodels "job-board-backend/models/api/application"
	dbmodels "job-board-backend/models/db"
)

type fixture struct {
	candidate dbmodels.Candidate
	other     dbmodels.Candidate
	job       dbmodels.Job
	resume    dbmodels.Resume
}

func prepare(t *testing.T, db *gorm.DB) fixture {
	f := fixture{
		candidate: dbmodels.Candidate{Name: "Ann", Age: 30},
		other:     dbmodels.Candidate{Name: "Bob", Age: 40},
	}
	require.NoError(t, db.Create(&f.candidate).Error)
	require.NoError(t, db.Create(&f.other).Error)
	employer := dbmodels.Employer{Name: "Acme", Location: "Berlin"}
	require.NoError(t, db.Create(&employer).Error)
	f.job = dbmodels.Job{Title: "Backend", Salary: 100, Time: "full-time", Experience: "3y", EmployerID: employer.ID}
	require.NoError(t, db.Omit("Skills").Create(&f.job).Error)
	f.resume = dbmodels.Resume{CandidateID: f.candidate.ID, Experience: "5y", Education: "MSU"}
	require.NoError(t, db.Omit("Skills").Create(&f.resume).Error)
	return f
}

func TestApplicationHandler(t *testing.T) {
	ctx := context.Background()

	t.Run(`отклик на вакансию`, func(t *testing.T) {
		db := testdb.New(t)
		f := prepare(t, db)
		handler := NewHandler(db, xlsexport.NewHandler())

		msg, err := handler.Create(ctx, applicationapimodels.ApplicationData{
			CandidateID: f.candidate.ID,
			JobID:       f.job.ID,
			ResumeID:    f.resume.ID,
			Date:        "2024-05-01",
		})
		require.NoError(t, err)
		require.Equal(t, "Ann applied to the job: Backend with resume #1", msg)

		candidate, list, err := handler.ListByCandidate(ctx, f.candidate.ID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.Equal(t, dbmodels.ApplicationStatusSubmitted, list[0].Status)
		require.Equal(t, "2024-05-01", list[0].Date)
		require.Equal(t,
			"Jobs that is Ann applied: [Application(id=1, job_id=1, resume_id=1, date=2024-05-01, status=Submitted)]",
			applicationapimodels.CandidateApplicationsText(candidate.Name, list))

		byJob, err := handler.ListByJob(ctx, f.job.ID)
		require.NoError(t, err)
		require.Len(t, byJob, 1)
		require.Equal(t, "Ann", byJob[0].CandidateName)
		require.Equal(t, "Backend", byJob[0].JobTitle)
	})
	t.Run(`резюме другого кандидата`, func(t *testing.T) {
		db := testdb.New(t)
		f := prepare(t, db)
		handler := NewHandler(db, xlsexport.NewHandler())

		_, err := handler.Create(ctx, applicationapimodels.ApplicationData{
			CandidateID: f.other.ID,
			JobID:       f.job.ID,
			ResumeID:    f.resume.ID,
			Date:        "2024-05-01",
		})
		require.True(t, errs.IsValidation(err))
	})
	t.Run(`связанные записи не найдены`, func(t *testing.T) {
		db := testdb.New(t)
		f := prepare(t, db)
		handler := NewHandler(db, xlsexport.NewHandler())

		_, err := handler.Create(ctx, applicationapimodels.ApplicationData{
			CandidateID: f.candidate.ID,
			JobID:       77,
			ResumeID:    f.resume.ID,
			Date:        "2024-05-01",
		})
		require.True(t, errs.IsNotFound(err))

		_, err = handler.ListByJob(ctx, 77)
		require.True(t, errs.IsNotFound(err))
		_, _, err = handler.ListByCandidate(ctx, 77)
		require.True(t, errs.IsNotFound(err))
	})
	t.Run(`изменение статуса идемпотентно`, func(t *testing.T) {
		db := testdb.New(t)
		f := prepare(t, db)
		handler := NewHandler(db, xlsexport.NewHandler())
		_, err := handler.Create(ctx, applicationapimodels.ApplicationData{
			CandidateID: f.candidate.ID,
			JobID:       f.job.ID,
			ResumeID:    f.resume.ID,
			Date:        "2024-05-01",
			Status:      "New",
		})
		require.NoError(t, err)

		for i := 0; i < 2; i++ {
			item, err := handler.UpdateStatus(ctx, applicationapimodels.StatusUpdate{ApplicationID: 1, Status: "Interview"})
			require.NoError(t, err)
			require.Equal(t, "Interview", item.Status)
		}
		list, err := handler.ListByJob(ctx, f.job.ID)
		require.NoError(t, err)
		require.Equal(t, "Interview", list[0].Status)

		_, err = handler.UpdateStatus(ctx, applicationapimodels.StatusUpdate{ApplicationID: 5, Status: "Interview"})
		require.True(t, errs.IsNotFound(err))
		_, err = handler.UpdateStatus(ctx, applicationapimodels.StatusUpdate{ApplicationID: 1, Status: ""})
		require.True(t, errs.IsValidation(err))
	})
	t.Run(`выгрузка откликов`, func(t *testing.T) {
		db := testdb.New(t)
		f := prepare(t, db)
		handler := NewHandler(db, xlsexport.NewHandler())
		_, err := handler.Create(ctx, applicationapimodels.ApplicationData{
			CandidateID: f.candidate.ID,
			JobID:       f.job.ID,
			ResumeID:    f.resume.ID,
			Date:        "2024-05-01",
		})
		require.NoError(t, err)

		buf, err := handler.ExportByJob(ctx, f.job.ID)
		require.NoError(t, err)
		require.NotZero(t, buf.Len())
	})
}
