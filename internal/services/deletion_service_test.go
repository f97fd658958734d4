package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elitejobs_backend/internal/models"
	"elitejobs_backend/internal/repositories"
	"elitejobs_backend/pkg/apperrors"
)

func newDeletionFixture() (DeletionService, *fakeUserRepo, *fakeJobRepo, *fakeAppRepo, *fakeStorage) {
	setupTestConfig()
	userRepo := newFakeUserRepo()
	jobRepo := newFakeJobRepo()
	appRepo := newFakeAppRepo()
	store := newFakeStorage()
	return NewDeletionService(userRepo, jobRepo, appRepo, store), userRepo, jobRepo, appRepo, store
}

func TestDeleteUser_SeekerCascade(t *testing.T) {
	svc, userRepo, _, appRepo, store := newDeletionFixture()

	seeker := userRepo.add(&models.User{
		Name:  "Seeker",
		Email: "seeker@example.com",
		Role:  models.UserRoleJobSeeker,
		Profile: models.Profile{Seeker: &models.SeekerProfile{
			Photo:  "/files/job-files/photos/p.png",
			Resume: "/files/job-files/resumes/cv.pdf",
		}},
	})
	appRepo.add(&models.Application{JobID: "job-1", ApplicantID: seeker.ID, Resume: "/cv.pdf"})
	appRepo.add(&models.Application{JobID: "job-2", ApplicantID: seeker.ID, Resume: "/cv.pdf"})

	require.NoError(t, svc.DeleteUser(context.Background(), seeker.ID))

	_, err := userRepo.FindByID(seeker.ID)
	assert.ErrorIs(t, err, repositories.ErrUserNotFound)

	remaining, _ := appRepo.FindByApplicant(seeker.ID)
	assert.Empty(t, remaining)

	assert.ElementsMatch(t, []string{
		"/files/job-files/photos/p.png",
		"/files/job-files/resumes/cv.pdf",
	}, store.deleted)
}

func TestDeleteUser_HosterCascade(t *testing.T) {
	svc, userRepo, jobRepo, appRepo, store := newDeletionFixture()

	hoster := userRepo.add(&models.User{
		Name:  "Hoster",
		Email: "hoster@example.com",
		Role:  models.UserRoleJobHoster,
		Profile: models.Profile{Company: &models.CompanyProfile{
			CompanyLogo:     "/files/job-files/logos/logo.png",
			CompanyDocument: []string{"/files/job-files/company-docs/doc1.pdf"},
		}},
	})
	job := jobRepo.add(&models.Job{Title: "Go Dev", PostedBy: hoster.ID, IsActive: true})
	foreignJob := jobRepo.add(&models.Job{Title: "Other", PostedBy: "someone-else", IsActive: true})

	appRepo.add(&models.Application{JobID: job.ID, ApplicantID: "seeker-1", Resume: "/cv.pdf"})
	appRepo.add(&models.Application{JobID: foreignJob.ID, ApplicantID: "seeker-1", Resume: "/cv.pdf"})

	require.NoError(t, svc.DeleteUser(context.Background(), hoster.ID))

	// Вакансии автора и отклики на них удалены, чужие не тронуты
	_, err := jobRepo.FindByID(job.ID)
	assert.ErrorIs(t, err, repositories.ErrJobNotFound)
	_, err = jobRepo.FindByID(foreignJob.ID)
	assert.NoError(t, err)

	left, _ := appRepo.FindByJob(job.ID)
	assert.Empty(t, left)
	foreignLeft, _ := appRepo.FindByJob(foreignJob.ID)
	assert.Len(t, foreignLeft, 1)

	assert.ElementsMatch(t, []string{
		"/files/job-files/logos/logo.png",
		"/files/job-files/company-docs/doc1.pdf",
	}, store.deleted)
}

func TestDeleteUser_StorageFailureDoesNotAbort(t *testing.T) {
	svc, userRepo, _, _, store := newDeletionFixture()
	store.failURL = "/files/job-files/photos/p.png"

	seeker := userRepo.add(&models.User{
		Name:  "Seeker",
		Email: "seeker@example.com",
		Role:  models.UserRoleJobSeeker,
		Profile: models.Profile{Seeker: &models.SeekerProfile{
			Photo:  "/files/job-files/photos/p.png",
			Resume: "/files/job-files/resumes/cv.pdf",
		}},
	})

	require.NoError(t, svc.DeleteUser(context.Background(), seeker.ID))

	_, err := userRepo.FindByID(seeker.ID)
	assert.ErrorIs(t, err, repositories.ErrUserNotFound)
	assert.Equal(t, []string{"/files/job-files/resumes/cv.pdf"}, store.deleted)
}

func TestDeleteUser_Unknown(t *testing.T) {
	svc, _, _, _, _ := newDeletionFixture()

	err := svc.DeleteUser(context.Background(), "ghost")

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}
