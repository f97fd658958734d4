package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"
)

// Company - снимок данных компании внутри вакансии.
// Копируется из профиля автора при создании и дальше живёт своей жизнью.
type Company struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Website     string `json:"website,omitempty"`
	Logo        string `json:"logo,omitempty"`
}

// Salary - вилка зарплаты; суммы хранятся строками как ввёл автор
type Salary struct {
	Min      string `json:"min,omitempty"`
	Max      string `json:"max,omitempty"`
	Currency string `json:"currency,omitempty"`
}

func (c Company) Value() (driver.Value, error) {
	return json.Marshal(c)
}

func (c *Company) Scan(src interface{}) error {
	return scanJSON(src, c)
}

func (s Salary) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *Salary) Scan(src interface{}) error {
	return scanJSON(src, s)
}

func scanJSON(src, dst interface{}) error {
	if src == nil {
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	}
	return fmt.Errorf("unsupported scan type %T", src)
}

// Job - вакансия
type Job struct {
	BaseModel
	Title            string                      `gorm:"not null" json:"title"`
	Description      string                      `gorm:"type:text;not null" json:"description"`
	Company          Company                     `gorm:"type:jsonb" json:"company"`
	Location         datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"location"`
	JobType          string                      `gorm:"default:'Full-time'" json:"jobType"`
	InterviewType    string                      `json:"interviewType,omitempty"`
	WorkType         string                      `json:"workType,omitempty"`
	MinEducation     string                      `json:"minEducation,omitempty"`
	Salary           Salary                      `gorm:"type:jsonb" json:"salary"`
	Requirements     datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"requirements,omitempty"`
	Responsibilities datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"responsibilities,omitempty"`
	Skills           datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"skills,omitempty"`
	ExperienceLevel  string                      `json:"experienceLevel,omitempty"`
	NoticePeriod     string                      `json:"noticePeriod,omitempty"`
	PostedBy         string                      `gorm:"type:uuid;not null;index" json:"postedBy"`
	IsActive         bool                        `gorm:"default:true" json:"isActive"`
	Deadline         *time.Time                  `gorm:"column:application_deadline" json:"applicationDeadline,omitempty"`
	Category         string                      `gorm:"index" json:"category"`
	NumberOfOpenings *int                        `json:"numberOfOpenings,omitempty"`
	YearOfPassing    string                      `json:"yearOfPassing,omitempty"`
	Shift            string                      `json:"shift,omitempty"`
	WalkInDate       *time.Time                  `json:"walkInDate,omitempty"`
	WalkInTime       string                      `json:"walkInTime,omitempty"`
	// "verified" / "not verified"
	VerificationStatus string `gorm:"default:'not verified';index" json:"verificationStatus"`
}

// IsWalkIn - собеседование очное по записи
func (j *Job) IsWalkIn() bool {
	return j.InterviewType == InterviewTypeWalkIn
}
