package skillhandler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	jobstore "job-board-backend/lib/job/store"
	"job-board-backend/lib/utils/errs"
	testdb "job-board-backend/lib/utils/test-db"
	skillapimodels "job-board-backend/models/api/skill"
	dbmodels "job-board-backend/models/db"
)

func TestSkillHandler(t *testing.T) {
	ctx := context.Background()

	t.Run(`получение по названию`, func(t *testing.T) {
		handler := NewHandler(testdb.New(t))
		msg, err := handler.Create(ctx, skillapimodels.SkillData{Title: "Go"})
		require.NoError(t, err)
		require.Equal(t, "Go was added", msg)

		item, err := handler.GetByTitle(ctx, "Go")
		require.NoError(t, err)
		require.Equal(t, "Go", item.Title)
		require.NotZero(t, item.ID)
	})
	t.Run(`неизвестный навык`, func(t *testing.T) {
		handler := NewHandler(testdb.New(t))
		_, err := handler.GetByTitle(ctx, "Cobol")
		require.True(t, errs.IsNotFound(err))
	})
	t.Run(`дубли названия - первый добавленный`, func(t *testing.T) {
		handler := NewHandler(testdb.New(t))
		_, err := handler.Create(ctx, skillapimodels.SkillData{Title: "SQL"})
		require.NoError(t, err)
		_, err = handler.Create(ctx, skillapimodels.SkillData{Title: "SQL"})
		require.NoError(t, err)

		list, err := handler.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)

		item, err := handler.GetByTitle(ctx, "SQL")
		require.NoError(t, err)
		require.Equal(t, list[0].ID, item.ID)
	})
	t.Run(`вакансии навыка`, func(t *testing.T) {
		db := testdb.New(t)
		handler := NewHandler(db)
		_, err := handler.Create(ctx, skillapimodels.SkillData{Title: "Go"})
		require.NoError(t, err)
		skill, err := handler.GetByTitle(ctx, "Go")
		require.NoError(t, err)

		employer := dbmodels.Employer{Name: "Acme", Location: "Berlin"}
		require.NoError(t, db.Create(&employer).Error)
		store := jobstore.NewInstance(db)
		jobID, err := store.Create(dbmodels.Job{Title: "Backend", Salary: 100, Time: "full-time", Experience: "3y", EmployerID: employer.ID})
		require.NoError(t, err)
		job, err := store.GetByID(jobID)
		require.NoError(t, err)
		require.NoError(t, store.AddSkill(job, &dbmodels.Skill{BaseModel: dbmodels.BaseModel{ID: skill.ID}, Title: skill.Title}))

		jobs, err := handler.JobList(ctx, "Go")
		require.NoError(t, err)
		require.Len(t, jobs, 1)
		require.Equal(t, "Backend", jobs[0].Title)

		_, err = handler.JobList(ctx, "Rust")
		require.True(t, errs.IsNotFound(err))
	})
}
