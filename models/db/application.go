package dbmodels

import (
	"strconv"
	"time"
)

const ApplicationStatusSubmitted = "Submitted"

type Application struct {
	BaseModel
	CandidateID uint `gorm:"index"`
	Candidate   *Candidate
	JobID       uint `gorm:"index"`
	Job         *Job
	ResumeID    uint `gorm:"index"`
	Resume      *Resume
	Date        time.Time
	Status      string `gorm:"type:varchar(100)"`
}

func uintToString(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}
