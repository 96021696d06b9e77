package schema

import (
	"embed"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/xeipuuv/gojsonschema"
	"job-board-backend/lib/utils/errs"
)

const (
	Employer    = "employer"
	Job         = "job"
	Candidate   = "candidate"
	Skill       = "skill"
	Resume      = "resume"
	Application = "application"
)

//go:embed schemas/*.json
var schemaFS embed.FS

var (
	loadOnce sync.Once
	loaded   map[string]*gojsonschema.Schema
	loadErr  error
)

func load() {
	loaded = make(map[string]*gojsonschema.Schema)
	for _, name := range []string{Employer, Job, Candidate, Skill, Resume, Application} {
		body, err := schemaFS.ReadFile("schemas/" + name + ".json")
		if err != nil {
			loadErr = errors.Wrapf(err, "ошибка чтения схемы %s", name)
			return
		}
		s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(body))
		if err != nil {
			loadErr = errors.Wrapf(err, "ошибка разбора схемы %s", name)
			return
		}
		loaded[name] = s
	}
}

// Validate проверяет тело запроса по схеме сущности.
// Несоответствие схеме возвращается как errs.ValidationError.
func Validate(name string, body []byte) error {
	loadOnce.Do(load)
	if loadErr != nil {
		return loadErr
	}
	s, ok := loaded[name]
	if !ok {
		return errors.Errorf("схема не найдена: %s", name)
	}
	res, err := s.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return errs.NewValidation("некорректный формат данных: %s", err.Error())
	}
	if res.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return errs.NewValidation("некорректные данные запроса: %s", strings.Join(msgs, "; "))
}
