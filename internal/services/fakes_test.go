package services

import (
	"context"
	"fmt"
	"io"
	"sync"

	"elitejobs_backend/internal/config"
	"elitejobs_backend/internal/models"
	"elitejobs_backend/internal/pkg/email"
	"elitejobs_backend/internal/repositories"
)

// Фейки репозиториев и внешних зависимостей: сервисы тестируются
// без живой базы и SMTP.

func setupTestConfig() {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 1
	cfg.Admin.Name = "Admin"
	cfg.Admin.Email = "admin@example.com"
	cfg.Admin.Password = "admin-password"
	cfg.Upload.MaxSize = 5 * 1024 * 1024
	config.AppConfig = cfg
}

// --- UserRepository ---

type fakeUserRepo struct {
	mu     sync.Mutex
	users  map[string]*models.User
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}}
}

func (f *fakeUserRepo) add(u *models.User) *models.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u.ID == "" {
		f.nextID++
		u.ID = fmt.Sprintf("user-%d", f.nextID)
	}
	cp := *u
	f.users[u.ID] = &cp
	return u
}

func (f *fakeUserRepo) FindByID(id string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) FindByEmailAndRole(email string, role models.UserRole) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email && u.Role == role {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) FindByEmail(email string) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.User
	for _, u := range f.users {
		if u.Email == email {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) FindByGoogleID(googleID string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.GoogleID != nil && *u.GoogleID == googleID {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) Create(user *models.User) error {
	f.mu.Lock()
	for _, u := range f.users {
		if u.Email == user.Email && u.Role == user.Role {
			f.mu.Unlock()
			return repositories.ErrUserAlreadyExists
		}
	}
	f.mu.Unlock()
	f.add(user)
	return nil
}

func (f *fakeUserRepo) Update(user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[user.ID]; !ok {
		return repositories.ErrUserNotFound
	}
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserRepo) Delete(userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[userID]; !ok {
		return repositories.ErrUserNotFound
	}
	delete(f.users, userID)
	return nil
}

func (f *fakeUserRepo) FindByRole(role models.UserRole) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.User
	for _, u := range f.users {
		if u.Role == role {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) FindSeekers(search string, limit, offset int) ([]models.User, int64, error) {
	users, _ := f.FindByRole(models.UserRoleJobSeeker)
	return users, int64(len(users)), nil
}

// --- JobRepository ---

type fakeJobRepo struct {
	mu     sync.Mutex
	jobs   map[string]*models.Job
	nextID int

	logoUpdates map[string]string
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{
		jobs:        map[string]*models.Job{},
		logoUpdates: map[string]string{},
	}
}

func (f *fakeJobRepo) add(j *models.Job) *models.Job {
	f.mu.Lock()
	defer f.mu.Unlock()
	if j.ID == "" {
		f.nextID++
		j.ID = fmt.Sprintf("job-%d", f.nextID)
	}
	cp := *j
	f.jobs[j.ID] = &cp
	return j
}

func (f *fakeJobRepo) Create(job *models.Job) error {
	f.add(job)
	return nil
}

func (f *fakeJobRepo) FindByID(id string) (*models.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if j, ok := f.jobs[id]; ok {
		cp := *j
		return &cp, nil
	}
	return nil, repositories.ErrJobNotFound
}

func (f *fakeJobRepo) Update(job *models.Job) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.jobs[job.ID]; !ok {
		return repositories.ErrJobNotFound
	}
	cp := *job
	f.jobs[job.ID] = &cp
	return nil
}

func (f *fakeJobRepo) Delete(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.jobs[id]; !ok {
		return repositories.ErrJobNotFound
	}
	delete(f.jobs, id)
	return nil
}

func (f *fakeJobRepo) Find(filter repositories.JobFilter) ([]models.Job, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Job
	for _, j := range f.jobs {
		if !filter.IncludeInactive && !j.IsActive {
			continue
		}
		if filter.PostedBy != "" && j.PostedBy != filter.PostedBy {
			continue
		}
		if filter.Category != "" && j.Category != filter.Category {
			continue
		}
		if filter.VerificationStatus != "" && j.VerificationStatus != filter.VerificationStatus {
			continue
		}
		out = append(out, *j)
	}
	return out, int64(len(out)), nil
}

func (f *fakeJobRepo) FindIDsByPoster(posterID string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var ids []string
	for _, j := range f.jobs {
		if j.PostedBy == posterID {
			ids = append(ids, j.ID)
		}
	}
	return ids, nil
}

func (f *fakeJobRepo) DeleteByPoster(posterID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, j := range f.jobs {
		if j.PostedBy == posterID {
			delete(f.jobs, id)
		}
	}
	return nil
}

func (f *fakeJobRepo) SetActiveByPoster(posterID string, active bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, j := range f.jobs {
		if j.PostedBy == posterID {
			j.IsActive = active
		}
	}
	return nil
}

func (f *fakeJobRepo) SetVerificationStatus(id string, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	j, ok := f.jobs[id]
	if !ok {
		return repositories.ErrJobNotFound
	}
	j.VerificationStatus = status
	return nil
}

func (f *fakeJobRepo) BackfillVerificationStatus() (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, j := range f.jobs {
		if j.VerificationStatus == "" {
			j.VerificationStatus = models.VerificationStatusNotVerified
			n++
		}
	}
	return n, nil
}

func (f *fakeJobRepo) UpdateCompanyLogoByPoster(posterID, logo string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logoUpdates[posterID] = logo
	var n int64
	for _, j := range f.jobs {
		if j.PostedBy == posterID {
			j.Company.Logo = logo
			n++
		}
	}
	return n, nil
}

func (f *fakeJobRepo) CountByCategory() (map[string]int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := map[string]int64{}
	for _, j := range f.jobs {
		if j.IsActive {
			out[j.Category]++
		}
	}
	return out, nil
}

func (f *fakeJobRepo) CountByVerificationStatus() (map[string]int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := map[string]int64{}
	for _, j := range f.jobs {
		out[j.VerificationStatus]++
	}
	return out, nil
}

func (f *fakeJobRepo) CountByPosterWithRole(role models.UserRole) ([]repositories.PosterCount, error) {
	return nil, nil
}

func (f *fakeJobRepo) DistinctCompanies() ([]repositories.CompanyCount, error) {
	return nil, nil
}

// --- ApplicationRepository ---

type fakeAppRepo struct {
	mu     sync.Mutex
	apps   map[string]*models.Application
	nextID int

	// Имитация Preload("Job") в FindByID
	jobs *fakeJobRepo
}

func newFakeAppRepo() *fakeAppRepo {
	return &fakeAppRepo{apps: map[string]*models.Application{}}
}

func (f *fakeAppRepo) add(a *models.Application) *models.Application {
	f.mu.Lock()
	defer f.mu.Unlock()
	if a.ID == "" {
		f.nextID++
		a.ID = fmt.Sprintf("app-%d", f.nextID)
	}
	cp := *a
	f.apps[a.ID] = &cp
	return a
}

func (f *fakeAppRepo) Create(app *models.Application) error {
	f.mu.Lock()
	for _, a := range f.apps {
		if a.JobID == app.JobID && a.ApplicantID == app.ApplicantID {
			f.mu.Unlock()
			return repositories.ErrDuplicateApplication
		}
	}
	f.mu.Unlock()
	f.add(app)
	return nil
}

func (f *fakeAppRepo) FindByID(id string) (*models.Application, error) {
	f.mu.Lock()
	a, ok := f.apps[id]
	if !ok {
		f.mu.Unlock()
		return nil, repositories.ErrApplicationNotFound
	}
	cp := *a
	f.mu.Unlock()

	if f.jobs != nil {
		if job, err := f.jobs.FindByID(cp.JobID); err == nil {
			cp.Job = job
		}
	}
	return &cp, nil
}

func (f *fakeAppRepo) FindByJobAndApplicant(jobID, applicantID string) (*models.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.apps {
		if a.JobID == jobID && a.ApplicantID == applicantID {
			cp := *a
			return &cp, nil
		}
	}
	return nil, repositories.ErrApplicationNotFound
}

func (f *fakeAppRepo) FindByApplicant(applicantID string) ([]models.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Application
	for _, a := range f.apps {
		if a.ApplicantID == applicantID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAppRepo) FindByJob(jobID string) ([]models.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Application
	for _, a := range f.apps {
		if a.JobID == jobID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAppRepo) FindByJobIDs(jobIDs []string) ([]models.Application, error) {
	set := map[string]bool{}
	for _, id := range jobIDs {
		set[id] = true
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Application
	for _, a := range f.apps {
		if set[a.JobID] {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAppRepo) FindAll(limit, offset int) ([]models.Application, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Application
	for _, a := range f.apps {
		out = append(out, *a)
	}
	return out, int64(len(out)), nil
}

func (f *fakeAppRepo) UpdateStatus(id string, status models.ApplicationStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.apps[id]
	if !ok {
		return repositories.ErrApplicationNotFound
	}
	a.Status = status
	return nil
}

func (f *fakeAppRepo) DeleteByApplicant(applicantID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, a := range f.apps {
		if a.ApplicantID == applicantID {
			delete(f.apps, id)
		}
	}
	return nil
}

func (f *fakeAppRepo) DeleteByJobIDs(jobIDs []string) error {
	set := map[string]bool{}
	for _, id := range jobIDs {
		set[id] = true
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, a := range f.apps {
		if set[a.JobID] {
			delete(f.apps, id)
		}
	}
	return nil
}

func (f *fakeAppRepo) Count(scoped bool, jobIDs []string) (int64, error) {
	if scoped && len(jobIDs) == 0 {
		return 0, nil
	}
	set := map[string]bool{}
	for _, id := range jobIDs {
		set[id] = true
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, a := range f.apps {
		if !scoped || set[a.JobID] {
			n++
		}
	}
	return n, nil
}

func (f *fakeAppRepo) DailyCounts(days int, scoped bool, jobIDs []string) ([]repositories.DailyCount, error) {
	return []repositories.DailyCount{}, nil
}

func (f *fakeAppRepo) WeeklyCounts(weeks int, scoped bool, jobIDs []string) ([]repositories.WeeklyCount, error) {
	return []repositories.WeeklyCount{}, nil
}

func (f *fakeAppRepo) CountByJob(jobID string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, a := range f.apps {
		if a.JobID == jobID {
			n++
		}
	}
	return n, nil
}

// --- Storage ---

type fakeStorage struct {
	mu      sync.Mutex
	saved   map[string]string
	deleted []string
	failURL string
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{saved: map[string]string{}}
}

func (f *fakeStorage) Save(ctx context.Context, path string, reader io.Reader, contentType string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saved[path] = contentType
	return nil
}

func (f *fakeStorage) Get(ctx context.Context, path string) (io.ReadCloser, error) {
	return nil, fmt.Errorf("not implemented")
}

func (f *fakeStorage) Delete(ctx context.Context, path string) error {
	return nil
}

func (f *fakeStorage) DeleteByURL(ctx context.Context, fileURL string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failURL != "" && fileURL == f.failURL {
		return fmt.Errorf("simulated storage failure")
	}
	f.deleted = append(f.deleted, fileURL)
	return nil
}

func (f *fakeStorage) Exists(ctx context.Context, path string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.saved[path]
	return ok, nil
}

func (f *fakeStorage) GetURL(ctx context.Context, path string) (string, error) {
	return "/files/" + path, nil
}

func (f *fakeStorage) GetSize(ctx context.Context, path string) (int64, error) {
	return 0, nil
}

// --- Email sender ---

type fakeSender struct {
	mu       sync.Mutex
	otps     []string
	welcomes []string
}

func newFakeSender() *fakeSender {
	return &fakeSender{}
}

func (f *fakeSender) Send(e *email.Email) error {
	return nil
}

func (f *fakeSender) SendOTP(to, name, code string, expiresMinutes int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.otps = append(f.otps, code)
	return nil
}

func (f *fakeSender) SendWelcome(to, name, role string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.welcomes = append(f.welcomes, to)
	return nil
}
