package auth

import "elitejobs_backend/internal/models"

// Capabilities - что роль может делать с вакансиями и откликами.
// Сервисы сверяются с таблицей вместо проверок вида role == "admin",
// разбросанных по коду.
type Capabilities struct {
	// Вакансии
	CanPostJobs bool
	// Компания берется из payload, а не из профиля автора
	NeedsExplicitCompany bool
	CanEditAnyJob        bool
	CanDeleteAnyJob      bool
	CanDeleteOwnJob      bool
	CanVerifyJobs        bool

	// Отклики
	CanApply bool
	// Чтение и смена статуса откликов чужих вакансий
	CanReviewAllApplications bool
}

var roleCapabilities = map[models.UserRole]Capabilities{
	models.UserRoleJobSeeker: {
		CanApply: true,
	},
	models.UserRoleJobHoster: {
		CanPostJobs:     true,
		CanDeleteOwnJob: true,
	},
	models.UserRoleRecruiter: {
		CanPostJobs:              true,
		CanDeleteOwnJob:          true,
		CanReviewAllApplications: true,
	},
	models.UserRoleAdmin: {
		CanPostJobs:              true,
		NeedsExplicitCompany:     true,
		CanEditAnyJob:            true,
		CanDeleteAnyJob:          true,
		CanDeleteOwnJob:          true,
		CanVerifyJobs:            true,
		CanReviewAllApplications: true,
	},
	// eliteTeam публикует и верифицирует, но удалять не может
	// даже собственные вакансии
	models.UserRoleEliteTeam: {
		CanPostJobs:              true,
		NeedsExplicitCompany:     true,
		CanEditAnyJob:            true,
		CanVerifyJobs:            true,
		CanReviewAllApplications: true,
	},
}

// CapabilitiesFor возвращает таблицу возможностей для роли.
// Неизвестная роль не может ничего.
func CapabilitiesFor(role models.UserRole) Capabilities {
	return roleCapabilities[role]
}

// CanMutateJob - можно ли роли менять данную вакансию
func CanMutateJob(role models.UserRole, actorID, postedBy string) bool {
	caps := CapabilitiesFor(role)
	if caps.CanEditAnyJob {
		return true
	}
	return caps.CanPostJobs && actorID == postedBy
}

// CanDeleteJob - можно ли роли удалить данную вакансию
func CanDeleteJob(role models.UserRole, actorID, postedBy string) bool {
	caps := CapabilitiesFor(role)
	if caps.CanDeleteAnyJob {
		return true
	}
	return caps.CanDeleteOwnJob && actorID == postedBy
}

// CanReviewApplications - можно ли роли смотреть и менять отклики вакансии
func CanReviewApplications(role models.UserRole, actorID, postedBy string) bool {
	caps := CapabilitiesFor(role)
	if caps.CanReviewAllApplications {
		return true
	}
	return caps.CanPostJobs && actorID == postedBy
}
