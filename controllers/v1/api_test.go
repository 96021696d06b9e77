package apiv1

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	applicationhandler "job-board-backend/lib/application"
	candidatehandler "job-board-backend/lib/candidate"
	employerhandler "job-board-backend/lib/employer"
	xlsexport "job-board-backend/lib/export/xls"
	filestorage "job-board-backend/lib/file-storage"
	jobhandler "job-board-backend/lib/job"
	resumehandler "job-board-backend/lib/resume"
	skillhandler "job-board-backend/lib/skill"
	testdb "job-board-backend/lib/utils/test-db"
)

type testResponse struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestApp(t *testing.T) *fiber.App {
	db := testdb.New(t)
	applications := applicationhandler.NewHandler(db, xlsexport.NewHandler())
	app := fiber.New()
	InitEmployerApiRouters(app, employerhandler.NewHandler(db))
	InitJobApiRouters(app, jobhandler.NewHandler(db), applications)
	InitSkillApiRouters(app, skillhandler.NewHandler(db))
	InitCandidateApiRouters(app, candidatehandler.NewHandler(db),
		resumehandler.NewHandler(db, filestorage.NewInstance(nil)), applications)
	InitApplicationApiRouters(app, applications)
	return app
}

func call(t *testing.T, app *fiber.App, method, target string, body string) (int, testResponse) {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var result testResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return resp.StatusCode, result
}

func dataString(t *testing.T, resp testResponse) string {
	var result string
	require.NoError(t, json.Unmarshal(resp.Data, &result))
	return result
}

func TestEmployerApi(t *testing.T) {
	app := newTestApp(t)

	t.Run(`добавленный работодатель есть в списке`, func(t *testing.T) {
		status, resp := call(t, app, "POST", "/employers", `{"name":"Acme","location":"Berlin"}`)
		require.Equal(t, fiber.StatusOK, status)
		require.Equal(t, "Acme was added", dataString(t, resp))

		status, resp = call(t, app, "POST", "/employers", `{"name":"Acme","location":"Berlin"}`)
		require.Equal(t, fiber.StatusOK, status)

		status, resp = call(t, app, "GET", "/employers", "")
		require.Equal(t, fiber.StatusOK, status)
		var list []struct {
			ID       uint   `json:"id"`
			Name     string `json:"name"`
			Location string `json:"location"`
		}
		require.NoError(t, json.Unmarshal(resp.Data, &list))
		require.Len(t, list, 2)
		require.Equal(t, "Acme", list[0].Name)
		require.Equal(t, "Berlin", list[0].Location)
		require.NotEqual(t, list[0].ID, list[1].ID)
	})
	t.Run(`нет обязательного поля`, func(t *testing.T) {
		status, resp := call(t, app, "POST", "/employers", `{"name":"Acme"}`)
		require.Equal(t, fiber.StatusUnprocessableEntity, status)
		require.Equal(t, "fail", resp.Status)
	})
	t.Run(`неверный тип поля`, func(t *testing.T) {
		status, _ := call(t, app, "POST", "/employers", `{"name":1,"location":"Berlin"}`)
		require.Equal(t, fiber.StatusUnprocessableEntity, status)
	})
	t.Run(`некорректный JSON`, func(t *testing.T) {
		status, resp := call(t, app, "POST", "/employers", `{"name":`)
		require.Contains(t, []int{fiber.StatusBadRequest, fiber.StatusUnprocessableEntity}, status)
		require.Equal(t, "fail", resp.Status)
	})
}

func TestNumericFields(t *testing.T) {
	app := newTestApp(t)

	t.Run(`целое число с дробной частью`, func(t *testing.T) {
		status, resp := call(t, app, "POST", "/candidates", `{"name":"Ann","age":30.0}`)
		require.Equal(t, fiber.StatusUnprocessableEntity, status)
		require.Equal(t, "fail", resp.Status)
	})
	t.Run(`возраст вне диапазона`, func(t *testing.T) {
		status, resp := call(t, app, "POST", "/candidates", `{"name":"Ann","age":99999999999999999999}`)
		require.Equal(t, fiber.StatusUnprocessableEntity, status)
		require.Equal(t, "fail", resp.Status)
	})
	t.Run(`идентификатор вне диапазона`, func(t *testing.T) {
		status, _ := call(t, app, "POST", "/candidates/resumes",
			`{"candidate_id":99999999999999999999,"experience":"5 years","education":"MSU"}`)
		require.Equal(t, fiber.StatusUnprocessableEntity, status)
	})
	t.Run(`зарплата вне диапазона`, func(t *testing.T) {
		status, _ := call(t, app, "POST", "/jobs",
			`{"title":"Backend","salary":1e30,"time":"full-time","experience":"3y","employer_id":1}`)
		require.Equal(t, fiber.StatusUnprocessableEntity, status)
	})
	t.Run(`кандидат не создан`, func(t *testing.T) {
		status, _ := call(t, app, "GET", "/candidates?id=1", "")
		require.Equal(t, fiber.StatusNotFound, status)
	})
}

func TestSkillApi(t *testing.T) {
	app := newTestApp(t)

	t.Run(`получение по названию`, func(t *testing.T) {
		status, resp := call(t, app, "POST", "/skills", `{"title":"Go"}`)
		require.Equal(t, fiber.StatusOK, status)
		require.Equal(t, "Go was added", dataString(t, resp))

		status, resp = call(t, app, "GET", "/skills/Go", "")
		require.Equal(t, fiber.StatusOK, status)
		var skill struct {
			Title string `json:"title"`
		}
		require.NoError(t, json.Unmarshal(resp.Data, &skill))
		require.Equal(t, "Go", skill.Title)
	})
	t.Run(`название с пробелом`, func(t *testing.T) {
		status, _ := call(t, app, "POST", "/skills", `{"title":"Machine Learning"}`)
		require.Equal(t, fiber.StatusOK, status)

		status, _ = call(t, app, "GET", "/skills/"+url.PathEscape("Machine Learning"), "")
		require.Equal(t, fiber.StatusOK, status)
	})
	t.Run(`неизвестный навык`, func(t *testing.T) {
		status, resp := call(t, app, "GET", "/skills/Cobol", "")
		require.Equal(t, fiber.StatusNotFound, status)
		require.Equal(t, "fail", resp.Status)
		require.NotEmpty(t, resp.Message)
	})
}

func TestJobApi(t *testing.T) {
	app := newTestApp(t)
	call(t, app, "POST", "/employers", `{"name":"Acme","location":"Berlin"}`)
	call(t, app, "POST", "/skills", `{"title":"Go"}`)

	t.Run(`работодатель не найден`, func(t *testing.T) {
		status, _ := call(t, app, "POST", "/jobs",
			`{"title":"Backend","salary":100,"time":"full-time","experience":"3y","employer_id":9}`)
		require.Equal(t, fiber.StatusNotFound, status)
	})
	t.Run(`привязка навыка видна с обеих сторон`, func(t *testing.T) {
		status, resp := call(t, app, "POST", "/jobs",
			`{"title":"Backend","salary":100,"time":"full-time","experience":"3y","employer_id":1}`)
		require.Equal(t, fiber.StatusOK, status)
		var job struct {
			ID    uint   `json:"id"`
			Title string `json:"title"`
		}
		require.NoError(t, json.Unmarshal(resp.Data, &job))
		require.Equal(t, "Backend", job.Title)

		status, resp = call(t, app, "POST", "/jobs/skills?job_id=1&skill_title=Go", "")
		require.Equal(t, fiber.StatusOK, status)
		require.Equal(t, "Go was added to candidate: Backend", dataString(t, resp))

		status, resp = call(t, app, "GET", "/jobs/skills?job_id=1", "")
		require.Equal(t, fiber.StatusOK, status)
		require.Equal(t, "Skills that is Backend required: [Skill(id=1, title=Go)]", dataString(t, resp))

		status, resp = call(t, app, "GET", "/jobs/skills?job_id=1&format=json", "")
		require.Equal(t, fiber.StatusOK, status)
		var skills []struct {
			Title string `json:"title"`
		}
		require.NoError(t, json.Unmarshal(resp.Data, &skills))
		require.Len(t, skills, 1)

		status, resp = call(t, app, "GET", "/skills/Go/jobs", "")
		require.Equal(t, fiber.StatusOK, status)
		var jobs []struct {
			ID uint `json:"id"`
		}
		require.NoError(t, json.Unmarshal(resp.Data, &jobs))
		require.Len(t, jobs, 1)
		require.Equal(t, job.ID, jobs[0].ID)
	})
	t.Run(`некорректные параметры`, func(t *testing.T) {
		status, _ := call(t, app, "POST", "/jobs/skills?job_id=abc&skill_title=Go", "")
		require.Equal(t, fiber.StatusUnprocessableEntity, status)
		status, _ = call(t, app, "GET", "/jobs/skills", "")
		require.Equal(t, fiber.StatusUnprocessableEntity, status)
		status, _ = call(t, app, "POST", "/jobs/skills?job_id=1&skill_title=Cobol", "")
		require.Equal(t, fiber.StatusNotFound, status)
	})
}

func TestCandidateScenario(t *testing.T) {
	app := newTestApp(t)

	status, resp := call(t, app, "POST", "/candidates", `{"name":"Ann","age":30}`)
	require.Equal(t, fiber.StatusOK, status)
	require.Equal(t, "Ann was added", dataString(t, resp))

	status, resp = call(t, app, "POST", "/candidates/resumes",
		`{"candidate_id":1,"title":"Backend","experience":"5 years","education":"MSU"}`)
	require.Equal(t, fiber.StatusOK, status)
	require.Equal(t, "New resume was added to candidate: Ann", dataString(t, resp))

	status, resp = call(t, app, "GET", "/candidates/resumes?candidate_id=1", "")
	require.Equal(t, fiber.StatusOK, status)
	require.Equal(t,
		"Ann's resumes: [Resume(id=1, title=Backend, experience=5 years, education=MSU, skills=[])]",
		dataString(t, resp))

	status, _ = call(t, app, "GET", "/candidates?id=2", "")
	require.Equal(t, fiber.StatusNotFound, status)

	call(t, app, "POST", "/employers", `{"name":"Acme","location":"Berlin"}`)
	call(t, app, "POST", "/jobs", `{"title":"Backend","salary":100,"time":"full-time","experience":"3y","employer_id":1}`)

	status, resp = call(t, app, "POST", "/candidates/applications",
		`{"candidate_id":1,"job_id":1,"resume_id":1,"date":"2024-05-01"}`)
	require.Equal(t, fiber.StatusOK, status)
	require.Equal(t, "Ann applied to the job: Backend with resume Backend", dataString(t, resp))

	status, _ = call(t, app, "POST", "/candidates/applications",
		`{"candidate_id":1,"job_id":1,"resume_id":1,"date":"01.05.2024"}`)
	require.Equal(t, fiber.StatusUnprocessableEntity, status)

	for i := 0; i < 2; i++ {
		status, resp = call(t, app, "PUT", "/applications?application_id=1&status=Rejected", "")
		require.Equal(t, fiber.StatusOK, status)
		var item struct {
			Status string `json:"status"`
		}
		require.NoError(t, json.Unmarshal(resp.Data, &item))
		require.Equal(t, "Rejected", item.Status)
	}

	status, resp = call(t, app, "GET", "/candidates/applications?candidate_id=1", "")
	require.Equal(t, fiber.StatusOK, status)
	require.Equal(t,
		"Jobs that is Ann applied: [Application(id=1, job_id=1, resume_id=1, date=2024-05-01, status=Rejected)]",
		dataString(t, resp))

	status, _ = call(t, app, "PUT", "/applications?application_id=3&status=Rejected", "")
	require.Equal(t, fiber.StatusNotFound, status)
}

func TestResumeFileWithoutStorage(t *testing.T) {
	app := newTestApp(t)
	call(t, app, "POST", "/candidates", `{"name":"Ann","age":30}`)
	call(t, app, "POST", "/candidates/resumes", `{"candidate_id":1,"experience":"5 years","education":"MSU"}`)

	status, _ := call(t, app, "GET", "/candidates/resumes/file?resume_id=1", "")
	require.Equal(t, fiber.StatusNotFound, status)

	req := httptest.NewRequest("GET", "/candidates/resumes/pdf?resume_id=1", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	require.NoError(t, resp.Body.Close())
}
