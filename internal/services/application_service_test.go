package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elitejobs_backend/internal/models"
	"elitejobs_backend/internal/services/dto"
	"elitejobs_backend/pkg/apperrors"
)

func newApplicationFixture() (ApplicationService, *fakeAppRepo, *fakeJobRepo, *fakeUserRepo) {
	setupTestConfig()
	appRepo := newFakeAppRepo()
	jobRepo := newFakeJobRepo()
	userRepo := newFakeUserRepo()
	appRepo.jobs = jobRepo
	return NewApplicationService(appRepo, jobRepo, userRepo), appRepo, jobRepo, userRepo
}

func seedSeeker(repo *fakeUserRepo, resume string) *models.User {
	return repo.add(&models.User{
		Name:  "Seeker",
		Email: "seeker@example.com",
		Role:  models.UserRoleJobSeeker,
		Profile: models.Profile{Seeker: &models.SeekerProfile{
			Resume: resume,
		}},
	})
}

func seedJob(repo *fakeJobRepo, postedBy string, active bool) *models.Job {
	return repo.add(&models.Job{
		Title:    "Go Developer",
		PostedBy: postedBy,
		IsActive: active,
		Company:  models.Company{Name: "Acme"},
	})
}

func TestApply_Success(t *testing.T) {
	svc, _, jobRepo, userRepo := newApplicationFixture()
	seeker := seedSeeker(userRepo, "")
	job := seedJob(jobRepo, "hoster-1", true)

	app, err := svc.Apply(seeker.ID, models.UserRoleJobSeeker, job.ID, &dto.ApplyRequest{
		Resume:      "/files/job-files/resumes/cv.pdf",
		CoverLetter: "Hello",
	})

	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusPending, app.Status)
	assert.Equal(t, job.ID, app.JobID)
}

func TestApply_ResumeFallbackFromProfile(t *testing.T) {
	svc, _, jobRepo, userRepo := newApplicationFixture()
	seeker := seedSeeker(userRepo, "/files/job-files/resumes/profile-cv.pdf")
	job := seedJob(jobRepo, "hoster-1", true)

	app, err := svc.Apply(seeker.ID, models.UserRoleJobSeeker, job.ID, &dto.ApplyRequest{})

	require.NoError(t, err)
	assert.Equal(t, "/files/job-files/resumes/profile-cv.pdf", app.Resume)
}

func TestApply_NoResumeAnywhere(t *testing.T) {
	svc, _, jobRepo, userRepo := newApplicationFixture()
	seeker := seedSeeker(userRepo, "")
	job := seedJob(jobRepo, "hoster-1", true)

	_, err := svc.Apply(seeker.ID, models.UserRoleJobSeeker, job.ID, &dto.ApplyRequest{})

	assert.ErrorIs(t, err, apperrors.ErrResumeRequired)
}

func TestApply_IncompleteProfileRejected(t *testing.T) {
	svc, _, jobRepo, userRepo := newApplicationFixture()
	// Google-аккаунт мог остаться без имени
	seeker := userRepo.add(&models.User{
		Email: "noname@example.com",
		Role:  models.UserRoleJobSeeker,
		Profile: models.Profile{Seeker: &models.SeekerProfile{
			Resume: "/files/job-files/resumes/cv.pdf",
		}},
	})
	job := seedJob(jobRepo, "hoster-1", true)

	_, err := svc.Apply(seeker.ID, models.UserRoleJobSeeker, job.ID, &dto.ApplyRequest{})

	assert.ErrorIs(t, err, apperrors.ErrProfileIncomplete)
}

func TestApply_DuplicateRejected(t *testing.T) {
	svc, _, jobRepo, userRepo := newApplicationFixture()
	seeker := seedSeeker(userRepo, "/cv.pdf")
	job := seedJob(jobRepo, "hoster-1", true)

	_, err := svc.Apply(seeker.ID, models.UserRoleJobSeeker, job.ID, &dto.ApplyRequest{})
	require.NoError(t, err)

	_, err = svc.Apply(seeker.ID, models.UserRoleJobSeeker, job.ID, &dto.ApplyRequest{})
	assert.ErrorIs(t, err, apperrors.ErrAlreadyApplied)
}

func TestApply_InactiveJobLooksAbsent(t *testing.T) {
	svc, _, jobRepo, userRepo := newApplicationFixture()
	seeker := seedSeeker(userRepo, "/cv.pdf")
	job := seedJob(jobRepo, "hoster-1", false)

	_, err := svc.Apply(seeker.ID, models.UserRoleJobSeeker, job.ID, &dto.ApplyRequest{})

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestApply_NonSeekerForbidden(t *testing.T) {
	svc, _, jobRepo, _ := newApplicationFixture()
	job := seedJob(jobRepo, "hoster-1", true)

	_, err := svc.Apply("hoster-1", models.UserRoleJobHoster, job.ID, &dto.ApplyRequest{Resume: "/cv.pdf"})

	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)
}

func TestUpdateStatus_Permissions(t *testing.T) {
	svc, _, jobRepo, userRepo := newApplicationFixture()
	seeker := seedSeeker(userRepo, "/cv.pdf")
	job := seedJob(jobRepo, "hoster-1", true)

	created, err := svc.Apply(seeker.ID, models.UserRoleJobSeeker, job.ID, &dto.ApplyRequest{})
	require.NoError(t, err)

	// Чужой jobHoster - отказ
	_, err = svc.UpdateStatus("stranger", models.UserRoleJobHoster, created.ID, models.ApplicationStatusReviewed)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)

	// Владелец вакансии меняет статус
	updated, err := svc.UpdateStatus("hoster-1", models.UserRoleJobHoster, created.ID, models.ApplicationStatusReviewed)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusReviewed, updated.Status)

	// Рекрутер видит и меняет любые отклики
	_, err = svc.UpdateStatus("recruiter-1", models.UserRoleRecruiter, created.ID, models.ApplicationStatusRejected)
	assert.NoError(t, err)
}

func TestListAll_ScopedForHoster(t *testing.T) {
	svc, _, jobRepo, userRepo := newApplicationFixture()
	seeker := seedSeeker(userRepo, "/cv.pdf")
	myJob := seedJob(jobRepo, "hoster-1", true)
	otherJob := seedJob(jobRepo, "hoster-2", true)

	_, err := svc.Apply(seeker.ID, models.UserRoleJobSeeker, myJob.ID, &dto.ApplyRequest{})
	require.NoError(t, err)
	_, err = svc.Apply(seeker.ID, models.UserRoleJobSeeker, otherJob.ID, &dto.ApplyRequest{})
	require.NoError(t, err)

	// jobHoster видит только отклики на свои вакансии
	apps, total, err := svc.ListAll("hoster-1", models.UserRoleJobHoster, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, apps, 1)
	assert.Equal(t, myJob.ID, apps[0].JobID)

	// admin видит все
	_, total, err = svc.ListAll("admin-1", models.UserRoleAdmin, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	// Соискателю список недоступен
	_, _, err = svc.ListAll(seeker.ID, models.UserRoleJobSeeker, 0, 0)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)
}

func TestStats_Scoping(t *testing.T) {
	svc, _, jobRepo, userRepo := newApplicationFixture()
	seeker := seedSeeker(userRepo, "/cv.pdf")
	myJob := seedJob(jobRepo, "hoster-1", true)
	otherJob := seedJob(jobRepo, "hoster-2", true)

	_, err := svc.Apply(seeker.ID, models.UserRoleJobSeeker, myJob.ID, &dto.ApplyRequest{})
	require.NoError(t, err)
	_, err = svc.Apply(seeker.ID, models.UserRoleJobSeeker, otherJob.ID, &dto.ApplyRequest{})
	require.NoError(t, err)

	// jobHoster считает только свое
	stats, err := svc.Stats("hoster-1", models.UserRoleJobHoster, "")
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.Total)

	// admin считает все
	stats, err = svc.Stats("admin-1", models.UserRoleAdmin, "")
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.Total)

	// Сужение до вакансии требует права на нее
	_, err = svc.Stats("hoster-1", models.UserRoleJobHoster, otherJob.ID)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)

	stats, err = svc.Stats("hoster-1", models.UserRoleJobHoster, myJob.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.Total)
}

func TestListForApplicant_RecruiterOnly(t *testing.T) {
	svc, _, jobRepo, userRepo := newApplicationFixture()
	seeker := seedSeeker(userRepo, "/cv.pdf")
	job := seedJob(jobRepo, "hoster-1", true)
	_, err := svc.Apply(seeker.ID, models.UserRoleJobSeeker, job.ID, &dto.ApplyRequest{})
	require.NoError(t, err)

	apps, err := svc.ListForApplicant(models.UserRoleRecruiter, seeker.ID)
	require.NoError(t, err)
	assert.Len(t, apps, 1)

	_, err = svc.ListForApplicant(models.UserRoleJobHoster, seeker.ID)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)
}
