package models

// Application - отклик соискателя на вакансию.
// Уникальный индекс (job_id, applicant_id) страхует от двойной подачи
// при гонке параллельных запросов.
type Application struct {
	BaseModel
	JobID       string            `gorm:"type:uuid;not null;uniqueIndex:idx_applications_job_applicant" json:"jobId"`
	ApplicantID string            `gorm:"type:uuid;not null;uniqueIndex:idx_applications_job_applicant;index" json:"applicantId"`
	Resume      string            `gorm:"not null" json:"resume"`
	CoverLetter string            `gorm:"type:text" json:"coverLetter,omitempty"`
	Status      ApplicationStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`

	// Relations
	Job       *Job  `gorm:"foreignKey:JobID" json:"job,omitempty"`
	Applicant *User `gorm:"foreignKey:ApplicantID" json:"applicant,omitempty"`
}
