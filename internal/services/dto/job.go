package dto

import (
	"time"

	"elitejobs_backend/internal/models"
	"elitejobs_backend/internal/repositories"
)

// CompanyInput - компания в payload (admin и eliteTeam указывают явно)
type CompanyInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Website     string `json:"website"`
	Logo        string `json:"logo"`
}

// SalaryInput - вилка зарплаты как в запросе
type SalaryInput struct {
	Min      string `json:"min"`
	Max      string `json:"max"`
	Currency string `json:"currency"`
}

// CreateJobRequest - создание вакансии.
// Типы собеседования/работы/смены - свободный текст, справочники
// не навязываются.
type CreateJobRequest struct {
	Title            string        `json:"title" validate:"required"`
	Description      string        `json:"description" validate:"required"`
	Company          *CompanyInput `json:"company"`
	Location         []string      `json:"location" validate:"required,min=1"`
	JobType          string        `json:"jobType"`
	InterviewType    string        `json:"interviewType"`
	WorkType         string        `json:"workType"`
	MinEducation     string        `json:"minEducation"`
	Salary           *SalaryInput  `json:"salary"`
	Requirements     []string      `json:"requirements"`
	Responsibilities []string      `json:"responsibilities"`
	Skills           []string      `json:"skills"`
	ExperienceLevel  string        `json:"experienceLevel"`
	NoticePeriod     string        `json:"noticePeriod"`
	Deadline         *time.Time    `json:"applicationDeadline"`
	Category         string        `json:"category" validate:"required"`
	NumberOfOpenings *int          `json:"numberOfOpenings"`
	YearOfPassing    string        `json:"yearOfPassing"`
	Shift            string        `json:"shift"`
	WalkInDate       *time.Time    `json:"walkInDate"`
	WalkInTime       string        `json:"walkInTime"`
}

// UpdateJobRequest - частичное обновление; nil поля не трогаются,
// массивы заменяются целиком
type UpdateJobRequest struct {
	Title            *string       `json:"title"`
	Description      *string       `json:"description"`
	Company          *CompanyInput `json:"company"`
	Location         *[]string     `json:"location"`
	JobType          *string       `json:"jobType"`
	InterviewType    *string       `json:"interviewType"`
	WorkType         *string       `json:"workType"`
	MinEducation     *string       `json:"minEducation"`
	Salary           *SalaryInput  `json:"salary"`
	Requirements     *[]string     `json:"requirements"`
	Responsibilities *[]string     `json:"responsibilities"`
	Skills           *[]string     `json:"skills"`
	ExperienceLevel  *string       `json:"experienceLevel"`
	NoticePeriod     *string       `json:"noticePeriod"`
	Deadline         *time.Time    `json:"applicationDeadline"`
	Category         *string       `json:"category"`
	NumberOfOpenings *int          `json:"numberOfOpenings"`
	YearOfPassing    *string       `json:"yearOfPassing"`
	Shift            *string       `json:"shift"`
	WalkInDate       *time.Time    `json:"walkInDate"`
	WalkInTime       *string       `json:"walkInTime"`
	IsActive         *bool         `json:"isActive"`
}

// JobListQuery - параметры публичного списка вакансий
type JobListQuery struct {
	Search             string `form:"search"`
	Location           string `form:"location"`
	JobType            string `form:"jobType"`
	ExperienceLevel    string `form:"experienceLevel"`
	Category           string `form:"category"`
	VerificationStatus string `form:"verificationStatus"`
	PostedBy           string `form:"postedBy"`
	PostedByAdmin      bool   `form:"postedByAdmin"`
	Sort               string `form:"sort" validate:"omitempty,oneof=newest oldest salary_desc salary_asc company_asc"`
	Page               int    `form:"page" validate:"omitempty,min=1"`
	Limit              int    `form:"limit" validate:"omitempty,min=1,max=100"`
}

// JobListResponse - страница вакансий
type JobListResponse struct {
	Jobs  []models.Job `json:"jobs"`
	Total int64        `json:"total"`
	Page  int          `json:"page"`
	Limit int          `json:"limit"`
}

// VerifyJobRequest - смена статуса верификации
type VerifyJobRequest struct {
	VerificationStatus string `json:"verificationStatus" validate:"required"`
}

// JobAggregatesResponse - сводные счетчики по вакансиям
type JobAggregatesResponse struct {
	ByCategory           map[string]int64            `json:"byCategory"`
	ByVerificationStatus map[string]int64            `json:"byVerificationStatus"`
	ByElitePoster        []repositories.PosterCount  `json:"byElitePoster,omitempty"`
	Companies            []repositories.CompanyCount `json:"companies,omitempty"`
}
