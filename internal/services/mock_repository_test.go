package services

import (
	"context"
	"sort"
	"time"

	"github.com/lacpaorocelyn/cpsunav/internal/models"
	"github.com/lacpaorocelyn/cpsunav/internal/repositories"
)

// In-memory Repository used by the service tests.
type mockRepository struct {
	users     *mockUserRepository
	buildings *mockBuildingRepository
	reports   *mockReportRepository
}

func newMockRepository() *mockRepository {
	users := &mockUserRepository{byID: map[uint]*models.User{}}
	return &mockRepository{
		users:     users,
		buildings: &mockBuildingRepository{},
		reports:   &mockReportRepository{byID: map[uint]*models.Report{}, users: users},
	}
}

func (m *mockRepository) User() repositories.UserRepository         { return m.users }
func (m *mockRepository) Building() repositories.BuildingRepository { return m.buildings }
func (m *mockRepository) Report() repositories.ReportRepository     { return m.reports }
func (m *mockRepository) WithTransaction(ctx context.Context, fn func(repositories.Repository) error) error {
	return fn(m)
}
func (m *mockRepository) Ping(ctx context.Context) error { return nil }
func (m *mockRepository) Close() error                   { return nil }

type mockUserRepository struct {
	byID   map[uint]*models.User
	nextID uint

	// existsOverride forces ExistsByStudentID results when set.
	existsOverride func(studentID string) bool
}

func (m *mockUserRepository) Create(ctx context.Context, user *models.User) error {
	m.nextID++
	user.ID = m.nextID
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	stored := *user
	m.byID[user.ID] = &stored
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	user, ok := m.byID[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (m *mockUserRepository) GetByStudentID(ctx context.Context, studentID string) (*models.User, error) {
	for _, user := range m.byID {
		if user.StudentID == studentID {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *mockUserRepository) ExistsByStudentID(ctx context.Context, studentID string) (bool, error) {
	if m.existsOverride != nil {
		return m.existsOverride(studentID), nil
	}
	_, err := m.GetByStudentID(ctx, studentID)
	if err != nil {
		return false, nil
	}
	return true, nil
}

func (m *mockUserRepository) Update(ctx context.Context, user *models.User) error {
	if _, ok := m.byID[user.ID]; !ok {
		return repositories.ErrNotFound
	}
	user.UpdatedAt = time.Now()
	stored := *user
	m.byID[user.ID] = &stored
	return nil
}

type mockBuildingRepository struct {
	buildings []models.Building
}

func (m *mockBuildingRepository) List(ctx context.Context) ([]*models.Building, error) {
	out := make([]*models.Building, len(m.buildings))
	for i := range m.buildings {
		copied := m.buildings[i]
		out[i] = &copied
	}
	return out, nil
}

func (m *mockBuildingRepository) GetByID(ctx context.Context, id uint) (*models.Building, error) {
	for i := range m.buildings {
		if m.buildings[i].ID == id {
			copied := m.buildings[i]
			return &copied, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *mockBuildingRepository) Count(ctx context.Context) (int64, error) {
	return int64(len(m.buildings)), nil
}

func (m *mockBuildingRepository) CreateBatch(ctx context.Context, buildings []models.Building) error {
	for i := range buildings {
		b := buildings[i]
		if b.ID == 0 {
			b.ID = uint(len(m.buildings) + 1)
		}
		m.buildings = append(m.buildings, b)
	}
	return nil
}

type mockReportRepository struct {
	byID   map[uint]*models.Report
	nextID uint
	users  *mockUserRepository
}

func (m *mockReportRepository) Create(ctx context.Context, report *models.Report) error {
	m.nextID++
	report.ID = m.nextID
	report.CreatedAt = time.Now()
	stored := *report
	m.byID[report.ID] = &stored
	return nil
}

func (m *mockReportRepository) GetByID(ctx context.Context, id uint) (*models.Report, error) {
	report, ok := m.byID[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *report
	m.preloadUser(&copied)
	return &copied, nil
}

func (m *mockReportRepository) List(ctx context.Context, filters repositories.ReportFilters) ([]*models.Report, error) {
	var out []*models.Report
	for _, report := range m.byID {
		if filters.Category != nil && report.Category != *filters.Category {
			continue
		}
		if filters.Status != nil && report.Status != *filters.Status {
			continue
		}
		copied := *report
		m.preloadUser(&copied)
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *mockReportRepository) Update(ctx context.Context, report *models.Report) error {
	if _, ok := m.byID[report.ID]; !ok {
		return repositories.ErrNotFound
	}
	stored := *report
	m.byID[report.ID] = &stored
	return nil
}

func (m *mockReportRepository) Delete(ctx context.Context, id uint) error {
	delete(m.byID, id)
	return nil
}

func (m *mockReportRepository) preloadUser(report *models.Report) {
	if report.UserID == nil || m.users == nil {
		return
	}
	if user, ok := m.users.byID[*report.UserID]; ok {
		copied := *user
		report.User = &copied
	}
}
