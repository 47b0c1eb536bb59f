package services

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/lacpaorocelyn/cpsunav/internal/events"
	"github.com/lacpaorocelyn/cpsunav/internal/models"
	"github.com/lacpaorocelyn/cpsunav/internal/repositories"
	"github.com/lacpaorocelyn/cpsunav/internal/validator"
)

func newTestReportService(repo *mockRepository) (ReportService, *events.MockEventPublisher) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	publisher := events.NewMockEventPublisher(logger)
	return NewReportService(repo, logger, validator.New(), publisher), publisher
}

func TestReportService_Create(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepository()
	service, publisher := newTestReportService(repo)

	category := "maintenance"
	report, err := service.Create(ctx, &ReportCreateRequest{
		Title:       "Broken faucet",
		Description: "Leaking near the canteen entrance",
		Latitude:    9.8515,
		Longitude:   122.8907,
		Category:    &category,
	}, nil)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if report.ID == 0 {
		t.Error("Expected an assigned ID")
	}
	if report.Status != models.ReportPending {
		t.Errorf("Expected pending status, got %s", report.Status)
	}
	if report.Category != models.CategoryMaintenance {
		t.Errorf("Expected maintenance category, got %s", report.Category)
	}
	if report.UserID != nil {
		t.Error("Anonymous report should have no owner")
	}

	published := publisher.GetPublishedEvents()
	if len(published) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(published))
	}
	if published[0].Topic != events.TopicReportCreated {
		t.Errorf("Expected topic %s, got %s", events.TopicReportCreated, published[0].Topic)
	}
	if published[0].Event.ReportID != report.ID {
		t.Errorf("Event carries wrong report ID: %d", published[0].Event.ReportID)
	}
}

func TestReportService_Create_DefaultCategory(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestReportService(newMockRepository())

	report, err := service.Create(ctx, &ReportCreateRequest{
		Title:       "Untagged issue",
		Description: "No category supplied",
		Latitude:    9.8512,
		Longitude:   122.8902,
	}, nil)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if report.Category != models.CategoryOther {
		t.Errorf("Expected default category other, got %s", report.Category)
	}
}

func TestReportService_Create_WithOwner(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepository()
	service, _ := newTestReportService(repo)
	owner := seedUser(t, repo, "2026-1234", "4321")

	report, err := service.Create(ctx, &ReportCreateRequest{
		Title:       "Flickering lights",
		Description: "Second floor hallway",
		Latitude:    9.8518,
		Longitude:   122.8899,
	}, &owner.ID)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if report.User == nil || report.User.StudentID != owner.StudentID {
		t.Errorf("Expected owner %s attached, got %+v", owner.StudentID, report.User)
	}
}

func TestReportService_List(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepository()
	service, _ := newTestReportService(repo)

	for _, title := range []string{"first", "second", "third"} {
		if _, err := service.Create(ctx, &ReportCreateRequest{
			Title:       title,
			Description: "test",
			Latitude:    9.85,
			Longitude:   122.89,
		}, nil); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	reports, err := service.List(ctx, repositories.ReportFilters{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(reports) != 3 {
		t.Fatalf("Expected 3 reports, got %d", len(reports))
	}
	// Newest first.
	if reports[0].Title != "third" || reports[2].Title != "first" {
		t.Errorf("Reports out of order: %s .. %s", reports[0].Title, reports[2].Title)
	}

	status := models.ReportPending
	filtered, err := service.List(ctx, repositories.ReportFilters{Status: &status})
	if err != nil {
		t.Fatalf("Filtered list failed: %v", err)
	}
	if len(filtered) != 3 {
		t.Errorf("Expected all pending reports, got %d", len(filtered))
	}
}

func TestReportService_Update(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepository()
	service, publisher := newTestReportService(repo)

	report, err := service.Create(ctx, &ReportCreateRequest{
		Title:       "Clogged drain",
		Description: "Near gymnasium",
		Latitude:    9.8507,
		Longitude:   122.8898,
	}, nil)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	status := "resolved"
	updated, err := service.Update(ctx, report.ID, &ReportUpdateRequest{Status: &status})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Status != models.ReportResolved {
		t.Errorf("Expected resolved, got %s", updated.Status)
	}
	if updated.Title != "Clogged drain" {
		t.Errorf("Untouched field changed: %s", updated.Title)
	}

	published := publisher.GetPublishedEvents()
	if len(published) != 2 || published[1].Topic != events.TopicReportUpdated {
		t.Errorf("Expected created+updated events, got %+v", published)
	}

	t.Run("InvalidStatus", func(t *testing.T) {
		bad := "escalated"
		if _, err := service.Update(ctx, report.ID, &ReportUpdateRequest{Status: &bad}); err == nil {
			t.Fatal("Expected validation error for unknown status")
		}
	})

	t.Run("Missing", func(t *testing.T) {
		if _, err := service.Update(ctx, 404, &ReportUpdateRequest{Status: &status}); !errors.Is(err, ErrReportNotFound) {
			t.Fatalf("Expected ErrReportNotFound, got %v", err)
		}
	})
}

func TestReportService_Delete(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepository()
	service, publisher := newTestReportService(repo)

	report, err := service.Create(ctx, &ReportCreateRequest{
		Title:       "Fallen branch",
		Description: "Blocking the walkway",
		Latitude:    9.8510,
		Longitude:   122.8905,
	}, nil)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := service.Delete(ctx, report.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := service.GetByID(ctx, report.ID); !errors.Is(err, ErrReportNotFound) {
		t.Fatalf("Expected report gone, got %v", err)
	}

	// Second delete is a no-op, and publishes nothing new.
	before := len(publisher.GetPublishedEvents())
	if err := service.Delete(ctx, report.ID); err != nil {
		t.Fatalf("Repeat delete failed: %v", err)
	}
	if after := len(publisher.GetPublishedEvents()); after != before {
		t.Errorf("Repeat delete published %d extra events", after-before)
	}
}
