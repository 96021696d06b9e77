package schema

import (
	"testing"

	"github.com/stretchr/testify/require"
	"job-board-backend/lib/utils/errs"
)

func TestValidate(t *testing.T) {
	t.Run(`valid payloads`, func(t *testing.T) {
		require.NoError(t, Validate(Employer, []byte(`{"name":"Acme","location":"Almaty"}`)))
		require.NoError(t, Validate(Job, []byte(`{"title":"Go dev","salary":1000,"time":"full-time","experience":"3y","employer_id":1}`)))
		require.NoError(t, Validate(Candidate, []byte(`{"name":"Ann","age":30}`)))
		require.NoError(t, Validate(Skill, []byte(`{"title":"Go"}`)))
		require.NoError(t, Validate(Resume, []byte(`{"candidate_id":1,"experience":"2y","education":"BS"}`)))
		require.NoError(t, Validate(Resume, []byte(`{"candidate_id":1,"experience":"2y","education":"BS","skills":["Go","SQL"]}`)))
		require.NoError(t, Validate(Application, []byte(`{"candidate_id":1,"job_id":2,"resume_id":3,"date":"2024-05-01"}`)))
	})

	t.Run(`missing field`, func(t *testing.T) {
		err := Validate(Employer, []byte(`{"name":"Acme"}`))
		require.Error(t, err)
		require.True(t, errs.IsValidation(err))
		require.Contains(t, err.Error(), "location")
	})

	t.Run(`mistyped field`, func(t *testing.T) {
		err := Validate(Candidate, []byte(`{"name":"Ann","age":"thirty"}`))
		require.True(t, errs.IsValidation(err))
		require.Contains(t, err.Error(), "age")

		err = Validate(Job, []byte(`{"title":"Go dev","salary":10.5,"time":"full-time","experience":"3y","employer_id":1}`))
		require.True(t, errs.IsValidation(err))

		err = Validate(Resume, []byte(`{"candidate_id":0,"experience":"2y","education":"BS"}`))
		require.True(t, errs.IsValidation(err))
	})

	t.Run(`out of range integers`, func(t *testing.T) {
		require.True(t, errs.IsValidation(Validate(Candidate, []byte(`{"name":"Ann","age":99999999999999999999}`))))
		require.True(t, errs.IsValidation(Validate(Resume, []byte(`{"candidate_id":99999999999999999999,"experience":"2y","education":"BS"}`))))
		require.True(t, errs.IsValidation(Validate(Job, []byte(`{"title":"Go dev","salary":2147483648,"time":"full-time","experience":"3y","employer_id":1}`))))
		require.NoError(t, Validate(Candidate, []byte(`{"name":"Ann","age":2147483647}`)))
	})

	t.Run(`not an object`, func(t *testing.T) {
		require.True(t, errs.IsValidation(Validate(Skill, []byte(`["Go"]`))))
		require.True(t, errs.IsValidation(Validate(Skill, []byte(`{`))))
	})

	t.Run(`unknown schema`, func(t *testing.T) {
		err := Validate("unknown", []byte(`{}`))
		require.Error(t, err)
		require.False(t, errs.IsValidation(err))
	})
}
