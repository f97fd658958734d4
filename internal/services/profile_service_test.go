package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elitejobs_backend/internal/models"
	"elitejobs_backend/internal/services/dto"
	"elitejobs_backend/pkg/apperrors"
)

func newProfileFixture() (ProfileService, *fakeUserRepo, *fakeJobRepo) {
	setupTestConfig()
	userRepo := newFakeUserRepo()
	jobRepo := newFakeJobRepo()
	return NewProfileService(userRepo, jobRepo), userRepo, jobRepo
}

func strptr(s string) *string { return &s }

func TestUpdateProfile_PartialMerge(t *testing.T) {
	svc, userRepo, _ := newProfileFixture()
	seeker := userRepo.add(&models.User{
		Name:  "Seeker",
		Email: "seeker@example.com",
		Role:  models.UserRoleJobSeeker,
		Profile: models.Profile{Seeker: &models.SeekerProfile{
			Address: "Old Address",
			Phone:   "111",
			Skills:  []string{"go", "sql"},
		}},
	})

	age := 30
	updated, err := svc.UpdateProfile(seeker.ID, &dto.ProfileUpdate{
		Age:    &age,
		Phone:  strptr("222"),
		Skills: &[]string{"go"},
	})

	require.NoError(t, err)
	sp := updated.Profile.Seeker
	require.NotNil(t, sp)
	assert.Equal(t, 30, sp.Age)
	assert.Equal(t, "222", sp.Phone)
	// Не присланное поле не тронуто, массив заменен целиком
	assert.Equal(t, "Old Address", sp.Address)
	assert.Equal(t, []string{"go"}, sp.Skills)
}

func TestUpdateProfile_ExplicitEmptyOverwrites(t *testing.T) {
	svc, userRepo, _ := newProfileFixture()
	seeker := userRepo.add(&models.User{
		Name:    "Seeker",
		Email:   "seeker@example.com",
		Role:    models.UserRoleJobSeeker,
		Profile: models.Profile{Seeker: &models.SeekerProfile{Address: "Old Address"}},
	})

	updated, err := svc.UpdateProfile(seeker.ID, &dto.ProfileUpdate{Address: strptr("")})

	require.NoError(t, err)
	assert.Empty(t, updated.Profile.Seeker.Address)
}

func TestUpdateProfile_ForeignVariantFieldsIgnored(t *testing.T) {
	svc, userRepo, _ := newProfileFixture()
	hoster := userRepo.add(&models.User{
		Name:    "Hoster",
		Email:   "hoster@example.com",
		Role:    models.UserRoleJobHoster,
		Profile: models.NewProfileForRole(models.UserRoleJobHoster),
	})

	// Поля соискателя на профиле работодателя молча игнорируются
	updated, err := svc.UpdateProfile(hoster.ID, &dto.ProfileUpdate{
		Resume:      strptr("/cv.pdf"),
		CompanyName: strptr("Acme"),
	})

	require.NoError(t, err)
	assert.Nil(t, updated.Profile.Seeker)
	assert.Equal(t, "Acme", updated.Profile.Company.CompanyName)
}

func TestSetResume_CompanyAccountRejected(t *testing.T) {
	svc, userRepo, _ := newProfileFixture()
	hoster := userRepo.add(&models.User{
		Name:    "Hoster",
		Email:   "hoster@example.com",
		Role:    models.UserRoleJobHoster,
		Profile: models.NewProfileForRole(models.UserRoleJobHoster),
	})

	err := svc.SetResume(hoster.ID, "/cv.pdf")

	assert.ErrorIs(t, err, apperrors.ErrInvalidUserRole)
}

func TestSetCompanyLogo_ResyncsJobs(t *testing.T) {
	svc, userRepo, jobRepo := newProfileFixture()
	hoster := userRepo.add(&models.User{
		Name:    "Hoster",
		Email:   "hoster@example.com",
		Role:    models.UserRoleJobHoster,
		Profile: models.NewProfileForRole(models.UserRoleJobHoster),
	})
	jobRepo.add(&models.Job{Title: "Go Dev", PostedBy: hoster.ID, IsActive: true})

	require.NoError(t, svc.SetCompanyLogo(hoster.ID, "/files/new-logo.png"))

	stored, _ := userRepo.FindByID(hoster.ID)
	assert.Equal(t, "/files/new-logo.png", stored.Profile.Company.CompanyLogo)
	assert.Equal(t, "/files/new-logo.png", jobRepo.logoUpdates[hoster.ID])
}

func TestRemoveCompanyDocument(t *testing.T) {
	svc, userRepo, _ := newProfileFixture()
	hoster := userRepo.add(&models.User{
		Name:  "Hoster",
		Email: "hoster@example.com",
		Role:  models.UserRoleJobHoster,
		Profile: models.Profile{Company: &models.CompanyProfile{
			CompanyDocument: []string{"/files/doc-1.pdf", "/files/doc-2.pdf"},
		}},
	})

	require.NoError(t, svc.RemoveCompanyDocument(hoster.ID, "/files/doc-1.pdf"))

	stored, _ := userRepo.FindByID(hoster.ID)
	assert.Equal(t, []string{"/files/doc-2.pdf"}, stored.Profile.Company.CompanyDocument)

	// Неизвестный URL - NotFound
	err := svc.RemoveCompanyDocument(hoster.ID, "/files/ghost.pdf")
	assert.ErrorIs(t, err, apperrors.ErrDocumentNotFound)

	// У соискателя документов компании нет
	seeker := userRepo.add(&models.User{
		Name:    "Seeker",
		Email:   "seeker@example.com",
		Role:    models.UserRoleJobSeeker,
		Profile: models.NewProfileForRole(models.UserRoleJobSeeker),
	})
	assert.ErrorIs(t, svc.RemoveCompanyDocument(seeker.ID, "/files/doc-2.pdf"), apperrors.ErrInvalidUserRole)
}

func TestProfileOptions_Catalogs(t *testing.T) {
	svc, _, _ := newProfileFixture()

	options := svc.ProfileOptions()

	assert.Equal(t, models.GenderOptions, options["gender"])
	assert.Equal(t, models.NoticePeriodOptions, options["noticePeriod"])
	assert.Contains(t, options["category"], "IT & Networking")
}
