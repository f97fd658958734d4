package models

type UserRole string
type ApplicationStatus string

const (
	UserRoleJobSeeker UserRole = "jobSeeker"
	UserRoleJobHoster UserRole = "jobHoster"
	UserRoleRecruiter UserRole = "recruiter"
	UserRoleAdmin     UserRole = "admin"
	UserRoleEliteTeam UserRole = "eliteTeam"

	ApplicationStatusPending   ApplicationStatus = "pending"
	ApplicationStatusReviewed  ApplicationStatus = "reviewed"
	ApplicationStatusInterview ApplicationStatus = "interview"
	ApplicationStatusAccepted  ApplicationStatus = "accepted"
	ApplicationStatusRejected  ApplicationStatus = "rejected"

	VerificationStatusVerified    = "verified"
	VerificationStatusNotVerified = "not verified"
)

// IsValidRole - проверяет, что роль входит в известный список
func IsValidRole(r UserRole) bool {
	switch r {
	case UserRoleJobSeeker, UserRoleJobHoster, UserRoleRecruiter, UserRoleAdmin, UserRoleEliteTeam:
		return true
	}
	return false
}

// IsValidApplicationStatus - проверяет статус отклика
func IsValidApplicationStatus(s ApplicationStatus) bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusReviewed, ApplicationStatusInterview,
		ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	}
	return false
}
