package apperrors

import (
	"net/http"
)

/*
Фабрики и предопределенные переменные для ошибок
бизнес-логики: аккаунты, вакансии, отклики, файлы, OTP.
*/

// --- Фабрики (оборачивают ошибки репозиториев) ---

// ErrNotFound - фабрика для ошибки "не найдено" (404).
// Используется, когда ошибка репозитория (типа gorm.ErrRecordNotFound)
// должна быть преобразована в AppError.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists - фабрика для ошибки "уже существует" (409)
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrConflict - общая фабрика для конфликтов (409)
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidOperation - фабрика для невалидных операций (400)
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// ErrExternalService - фабрика для сбоев внешних сервисов (502)
func ErrExternalService(err error, domain, message string) *AppError {
	return Wrap(err, CodeExternalServiceError, domain, message, http.StatusBadGateway)
}

// --- Auth ---

// ErrInvalidCredentials - неверная комбинация email/role/пароль
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

// ErrInvalidToken - токен не разбирается или подпись не сходится
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid token",
	http.StatusUnauthorized,
)

// ErrTokenExpired - срок действия токена вышел
var ErrTokenExpired = New(
	CodeTokenExpired,
	"auth",
	"Token has expired",
	http.StatusUnauthorized,
)

// ErrEmailAlreadyExists - email уже занят для этой роли
var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"User with this email and role already exists",
	http.StatusConflict,
)

// ErrSeekerEmailTaken - email закреплён за соискателем и недоступен другим ролям
var ErrSeekerEmailTaken = New(
	CodeAlreadyExists,
	"auth",
	"Email is already registered",
	http.StatusConflict,
)

// ErrInvalidUserRole - операция не предусмотрена для роли пользователя
var ErrInvalidUserRole = New(
	CodeInvalidOperation,
	"auth",
	"Invalid user role for this operation",
	http.StatusBadRequest,
)

// ErrInsufficientPermissions - у роли нет прав на действие
var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

// --- Password reset (OTP) ---

// ErrOTPInvalid - код не совпадает
var ErrOTPInvalid = New(
	CodeInvalidToken,
	"otp",
	"Invalid OTP code",
	http.StatusUnauthorized,
)

// ErrOTPExpired - код просрочен
var ErrOTPExpired = New(
	CodeTokenExpired,
	"otp",
	"OTP code has expired",
	http.StatusUnauthorized,
)

// ErrOTPCooldown - повторная отправка запрошена слишком рано
var ErrOTPCooldown = New(
	CodeLimitExceeded,
	"otp",
	"Please wait before requesting another code",
	http.StatusConflict,
)

// --- Jobs ---

// ErrJobOwnership - вакансия принадлежит другому пользователю
var ErrJobOwnership = New(
	CodeForbidden,
	"job",
	"You can only modify your own jobs",
	http.StatusForbidden,
)

// ErrWalkInDetails - для Walk-in собеседования нужны и дата, и время
var ErrWalkInDetails = New(
	CodeValidationFailed,
	"job",
	"Walk-in date and time are required for walk-in interviews",
	http.StatusBadRequest,
)

// ErrCompanyNameRequired - у вакансии должна быть компания с именем
var ErrCompanyNameRequired = New(
	CodeValidationFailed,
	"job",
	"Company name is required",
	http.StatusBadRequest,
)

// --- Applications ---

// ErrAlreadyApplied - отклик на эту вакансию уже существует
var ErrAlreadyApplied = New(
	CodeConflict,
	"application",
	"You have already applied for this job",
	http.StatusConflict,
)

// ErrProfileIncomplete - в профиле не хватает имени или email для отклика
var ErrProfileIncomplete = New(
	CodeValidationFailed,
	"application",
	"Complete your name and email before applying",
	http.StatusBadRequest,
)

// ErrResumeRequired - резюме нет ни в запросе, ни в профиле
var ErrResumeRequired = New(
	CodeValidationFailed,
	"application",
	"Resume is required to apply",
	http.StatusBadRequest,
)

// ErrDocumentNotFound - такого документа в профиле нет
var ErrDocumentNotFound = New(
	CodeNotFound,
	"profile",
	"Document not found in profile",
	http.StatusNotFound,
)

// --- Uploads & Files ---

// ErrFileTooLarge - файл превышает максимальный размер
var ErrFileTooLarge = New(
	CodeLimitExceeded,
	"file",
	"File size exceeds the allowed limit",
	http.StatusRequestEntityTooLarge,
)

// ErrInvalidFileType - MIME-тип файла не разрешен
var ErrInvalidFileType = New(
	CodeValidationFailed,
	"file",
	"The provided file type is not allowed",
	http.StatusUnsupportedMediaType,
)
