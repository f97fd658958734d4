package dto

import "elitejobs_backend/internal/models"

// ProfileUpdate - частичное обновление профиля любой роли.
// Поле отсутствует в JSON - значение сохраняется; поле прислано
// (в том числе пустое) - значение перезаписывается. Массивы
// заменяются целиком. Сервис применяет только поля активного
// варианта, остальные молча игнорируются.
type ProfileUpdate struct {
	// jobSeeker
	Age               *int                      `json:"age"`
	Address           *string                   `json:"address"`
	GithubURL         *string                   `json:"githubUrl"`
	LinkedinURL       *string                   `json:"linkedinUrl"`
	Education         *[]models.EducationEntry  `json:"education"`
	Experience        *[]models.ExperienceEntry `json:"experience"`
	Skills            *[]string                 `json:"skills"`
	Resume            *string                   `json:"resume"`
	Gender            *string                   `json:"gender"`
	NoticePeriod      *string                   `json:"noticePeriod"`
	PreferredLocation *string                   `json:"preferredLocation"`
	Designation       *string                   `json:"designation"`
	ExpInWork         *string                   `json:"expInWork"`
	SalaryExpectation *string                   `json:"salaryExpectation"`
	PreferredCategory *string                   `json:"preferredCategory"`
	HighestEducation  *string                   `json:"highestEducation"`

	// jobHoster / recruiter
	CompanyName        *string   `json:"companyName"`
	CompanyDescription *string   `json:"companyDescription"`
	CompanyWebsite     *string   `json:"companyWebsite"`
	CompanyEmail       *string   `json:"companyEmail" validate:"omitempty,email"`
	NumberOfEmployees  *int      `json:"numberOfEmployees"`
	CompanyPhone       *string   `json:"companyPhone"`
	CompanyLogo        *string   `json:"companyLogo"`
	CompanyDocument    *[]string `json:"companyDocument"`
	PanCardNumber      *string   `json:"panCardNumber"`
	GstNumber          *string   `json:"gstNumber"`

	// Общие для обоих вариантов
	Photo *string `json:"photo"`
	Phone *string `json:"phone"`
}

// RemoveDocumentRequest - удаление документа компании по его URL
type RemoveDocumentRequest struct {
	URL string `json:"url" validate:"required"`
}

// ApplyToSeeker накладывает присланные поля на профиль соискателя
func (u *ProfileUpdate) ApplyToSeeker(p *models.SeekerProfile) {
	if u.Age != nil {
		p.Age = *u.Age
	}
	if u.Address != nil {
		p.Address = *u.Address
	}
	if u.Phone != nil {
		p.Phone = *u.Phone
	}
	if u.GithubURL != nil {
		p.GithubURL = *u.GithubURL
	}
	if u.LinkedinURL != nil {
		p.LinkedinURL = *u.LinkedinURL
	}
	if u.Education != nil {
		p.Education = *u.Education
	}
	if u.Experience != nil {
		p.Experience = *u.Experience
	}
	if u.Skills != nil {
		p.Skills = *u.Skills
	}
	if u.Photo != nil {
		p.Photo = *u.Photo
	}
	if u.Resume != nil {
		p.Resume = *u.Resume
	}
	if u.Gender != nil {
		p.Gender = *u.Gender
	}
	if u.NoticePeriod != nil {
		p.NoticePeriod = *u.NoticePeriod
	}
	if u.PreferredLocation != nil {
		p.PreferredLocation = *u.PreferredLocation
	}
	if u.Designation != nil {
		p.Designation = *u.Designation
	}
	if u.ExpInWork != nil {
		p.ExpInWork = *u.ExpInWork
	}
	if u.SalaryExpectation != nil {
		p.SalaryExpectation = *u.SalaryExpectation
	}
	if u.PreferredCategory != nil {
		p.PreferredCategory = *u.PreferredCategory
	}
	if u.HighestEducation != nil {
		p.HighestEducation = *u.HighestEducation
	}
}

// ApplyToCompany накладывает присланные поля на профиль работодателя
func (u *ProfileUpdate) ApplyToCompany(p *models.CompanyProfile) {
	if u.CompanyName != nil {
		p.CompanyName = *u.CompanyName
	}
	if u.CompanyDescription != nil {
		p.CompanyDescription = *u.CompanyDescription
	}
	if u.CompanyWebsite != nil {
		p.CompanyWebsite = *u.CompanyWebsite
	}
	if u.CompanyEmail != nil {
		p.CompanyEmail = *u.CompanyEmail
	}
	if u.NumberOfEmployees != nil {
		p.NumberOfEmployees = *u.NumberOfEmployees
	}
	if u.CompanyPhone != nil {
		p.CompanyPhone = *u.CompanyPhone
	}
	if u.CompanyLogo != nil {
		p.CompanyLogo = *u.CompanyLogo
	}
	if u.CompanyDocument != nil {
		p.CompanyDocument = *u.CompanyDocument
	}
	if u.Photo != nil {
		p.Photo = *u.Photo
	}
	if u.Phone != nil {
		p.Phone = *u.Phone
	}
	if u.PanCardNumber != nil {
		p.PanCardNumber = *u.PanCardNumber
	}
	if u.GstNumber != nil {
		p.GstNumber = *u.GstNumber
	}
}

// Apply применяет обновление к активному варианту профиля
func (u *ProfileUpdate) Apply(profile *models.Profile) {
	switch {
	case profile.Seeker != nil:
		u.ApplyToSeeker(profile.Seeker)
	case profile.Company != nil:
		u.ApplyToCompany(profile.Company)
	}
}
