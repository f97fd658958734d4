package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// EducationEntry - запись об образовании соискателя
type EducationEntry struct {
	Degree      string `json:"degree,omitempty"`
	Institution string `json:"institution,omitempty"`
	Field       string `json:"field,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
}

// ExperienceEntry - запись об опыте работы соискателя
type ExperienceEntry struct {
	Position    string `json:"position,omitempty"`
	Company     string `json:"company,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	Description string `json:"description,omitempty"`
}

// SeekerProfile - профиль соискателя (роль jobSeeker)
type SeekerProfile struct {
	Age               int               `json:"age,omitempty"`
	Address           string            `json:"address,omitempty"`
	Phone             string            `json:"phone,omitempty"`
	GithubURL         string            `json:"githubUrl,omitempty"`
	LinkedinURL       string            `json:"linkedinUrl,omitempty"`
	Education         []EducationEntry  `json:"education,omitempty"`
	Experience        []ExperienceEntry `json:"experience,omitempty"`
	Skills            []string          `json:"skills,omitempty"`
	Photo             string            `json:"photo,omitempty"`
	Resume            string            `json:"resume,omitempty"`
	Gender            string            `json:"gender,omitempty"`
	NoticePeriod      string            `json:"noticePeriod,omitempty"`
	PreferredLocation string            `json:"preferredLocation,omitempty"`
	Designation       string            `json:"designation,omitempty"`
	ExpInWork         string            `json:"expInWork,omitempty"`
	SalaryExpectation string            `json:"salaryExpectation,omitempty"`
	PreferredCategory string            `json:"preferredCategory,omitempty"`
	HighestEducation  string            `json:"highestEducation,omitempty"`
}

// CompanyProfile - профиль работодателя (роли jobHoster и recruiter)
type CompanyProfile struct {
	CompanyName        string   `json:"companyName,omitempty"`
	CompanyDescription string   `json:"companyDescription,omitempty"`
	CompanyWebsite     string   `json:"companyWebsite,omitempty"`
	CompanyEmail       string   `json:"companyEmail,omitempty"`
	NumberOfEmployees  int      `json:"numberOfEmployees,omitempty"`
	CompanyPhone       string   `json:"companyPhone,omitempty"`
	CompanyLogo        string   `json:"companyLogo,omitempty"`
	CompanyDocument    []string `json:"companyDocument,omitempty"`
	Photo              string   `json:"photo,omitempty"`
	Phone              string   `json:"phone,omitempty"`
	PanCardNumber      string   `json:"panCardNumber,omitempty"`
	GstNumber          string   `json:"gstNumber,omitempty"`
}

// Profile - профиль пользователя в колонке jsonb.
// Ровно один вариант заполнен в зависимости от роли;
// у admin и eliteTeam оба варианта nil.
type Profile struct {
	Seeker  *SeekerProfile
	Company *CompanyProfile
}

// profileEnvelope - форма хранения профиля в базе
type profileEnvelope struct {
	Kind    string          `json:"kind"`
	Seeker  *SeekerProfile  `json:"seeker,omitempty"`
	Company *CompanyProfile `json:"company,omitempty"`
}

const (
	profileKindNone    = "none"
	profileKindSeeker  = "seeker"
	profileKindCompany = "company"
)

// NewProfileForRole - пустой профиль нужного варианта для роли
func NewProfileForRole(role UserRole) Profile {
	switch role {
	case UserRoleJobSeeker:
		return Profile{Seeker: &SeekerProfile{}}
	case UserRoleJobHoster, UserRoleRecruiter:
		return Profile{Company: &CompanyProfile{}}
	}
	return Profile{}
}

func (p Profile) Value() (driver.Value, error) {
	env := profileEnvelope{Kind: profileKindNone}
	switch {
	case p.Seeker != nil:
		env.Kind = profileKindSeeker
		env.Seeker = p.Seeker
	case p.Company != nil:
		env.Kind = profileKindCompany
		env.Company = p.Company
	}
	return json.Marshal(env)
}

func (p *Profile) Scan(src interface{}) error {
	if src == nil {
		*p = Profile{}
		return nil
	}

	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("profile: unsupported scan type %T", src)
	}

	var env profileEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return err
	}

	switch env.Kind {
	case profileKindSeeker:
		if env.Seeker == nil {
			env.Seeker = &SeekerProfile{}
		}
		*p = Profile{Seeker: env.Seeker}
	case profileKindCompany:
		if env.Company == nil {
			env.Company = &CompanyProfile{}
		}
		*p = Profile{Company: env.Company}
	case profileKindNone, "":
		*p = Profile{}
	default:
		return errors.New("profile: unknown variant " + env.Kind)
	}
	return nil
}

// MarshalJSON - наружу профиль отдаётся плоским объектом активного варианта
func (p Profile) MarshalJSON() ([]byte, error) {
	switch {
	case p.Seeker != nil:
		return json.Marshal(p.Seeker)
	case p.Company != nil:
		return json.Marshal(p.Company)
	}
	return []byte("{}"), nil
}
