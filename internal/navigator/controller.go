package navigator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/lacpaorocelyn/cpsunav/internal/models"
	"github.com/lacpaorocelyn/cpsunav/internal/routing"
)

const (
	selectZoom   = 18
	routePadding = 60
)

// ErrDirectionsBusy is returned when a directions request is triggered
// while a previous one is still in flight.
var ErrDirectionsBusy = errors.New("directions request already in progress")

// ReportStore is the backend surface the authoring flow talks to.
type ReportStore interface {
	ListReports(ctx context.Context) ([]*models.Report, error)
	CreateReport(ctx context.Context, draft ReportDraft) (*models.Report, error)
	UpdateReport(ctx context.Context, draft ReportDraft) (*models.Report, error)
}

// Controller owns a Session and applies every user interaction to it.
type Controller struct {
	mu      sync.Mutex
	session Session

	view     MapView
	locator  Locator
	routes   RouteFetcher
	notifier Notifier
	reports  ReportStore
	logger   *slog.Logger

	directionsInFlight bool

	// selectionGen increments whenever the selection a route would
	// attach to is replaced. In-flight directions results from an older
	// generation are dropped.
	selectionGen uint64
}

func NewController(view MapView, locator Locator, routes RouteFetcher, notifier Notifier, reports ReportStore, logger *slog.Logger) *Controller {
	return &Controller{
		view:     view,
		locator:  locator,
		routes:   routes,
		notifier: notifier,
		reports:  reports,
		logger:   logger,
	}
}

// Session returns a snapshot of the current state.
func (c *Controller) Session() Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

func buildingCoords(b *models.Building) routing.LatLng {
	return routing.LatLng{Lat: b.Latitude, Lng: b.Longitude}
}

// SelectBuilding handles a building marker or search result click.
func (c *Controller) SelectBuilding(b *models.Building) {
	c.mu.Lock()
	defer c.mu.Unlock()

	sameBuilding := c.session.Current != nil && c.session.Current.ID == b.ID

	// Re-selecting the routed building just brings the viewport back.
	if sameBuilding && c.session.Route != nil {
		c.session.PanelOpen = true
		c.view.SetView(buildingCoords(b), selectZoom)
		return
	}

	if !sameBuilding {
		c.session.Route = nil
		c.session.RouteSummary = nil
		c.session.Directions = Idle
		c.selectionGen++
	}
	c.session.LabelFor = nil

	c.session.Current = b
	c.session.PanelOpen = true
	c.session.LabelFor = b

	// The user marker is untouched here; it persists across selections.
	c.view.SetView(buildingCoords(b), selectZoom)
}

// CloseInfoPanel hides the panel and discards the route and label. The
// user marker stays.
func (c *Controller) CloseInfoPanel() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.session.PanelOpen = false
	c.session.LabelFor = nil
	c.session.Route = nil
	c.session.RouteSummary = nil
	c.session.Directions = Idle
	c.selectionGen++
}

// GetDirections runs the locate-then-route workflow for the selected
// building. Errors are surfaced through the notifier; a route displayed
// by an earlier success is kept.
func (c *Controller) GetDirections(ctx context.Context) error {
	c.mu.Lock()
	if c.session.Current == nil {
		c.mu.Unlock()
		return nil
	}
	if c.directionsInFlight {
		c.mu.Unlock()
		return ErrDirectionsBusy
	}
	c.directionsInFlight = true
	c.session.Directions = LocatingUser
	destination := buildingCoords(c.session.Current)
	gen := c.selectionGen
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.directionsInFlight = false
		c.mu.Unlock()
	}()

	userPos, err := c.locator.Locate(ctx)
	if err != nil {
		c.failDirections("Directions Error", LocationErrorMessage(err))
		return fmt.Errorf("failed to locate user: %w", err)
	}

	c.mu.Lock()
	c.session.UserLocation = &userPos
	if c.selectionGen == gen {
		c.session.Directions = RoutingQuery
	}
	c.mu.Unlock()

	route, err := c.routes.WalkingRoute(ctx, userPos, destination)
	if err != nil {
		msg := "Could not find a route."
		if !errors.Is(err, routing.ErrNoRoute) {
			msg = err.Error()
		}
		c.failDirections("Directions Error", msg)
		return fmt.Errorf("failed to fetch route: %w", err)
	}

	c.mu.Lock()
	// The selection this route was computed for may have been replaced
	// while the fetch was in flight; the result is discarded then.
	if c.selectionGen != gen {
		c.mu.Unlock()
		return nil
	}
	c.session.Route = route
	c.session.RouteSummary = &RouteSummary{
		Distance: route.KmText(),
		Duration: fmt.Sprintf("%d min walk", route.WalkMinutes()),
	}
	c.session.Directions = RouteDisplayed
	c.mu.Unlock()

	c.view.FitBounds(BoundsOf(route.Polyline), routePadding)

	if c.logger != nil {
		c.logger.Info("Route displayed", "distance_m", route.Distance, "duration_s", route.Duration)
	}
	return nil
}

// failDirections reports a workflow failure and returns to Idle without
// touching a previously displayed route.
func (c *Controller) failDirections(title, message string) {
	c.mu.Lock()
	if c.session.Route != nil {
		c.session.Directions = RouteDisplayed
	} else {
		c.session.Directions = Idle
	}
	c.mu.Unlock()

	c.notifier.Alert(title, message)
}

// LocateMe places the user marker and centers on it, outside the
// directions workflow.
func (c *Controller) LocateMe(ctx context.Context) error {
	userPos, err := c.locator.Locate(ctx)
	if err != nil {
		c.notifier.Alert("Location Error", LocationErrorMessage(err))
		return fmt.Errorf("failed to locate user: %w", err)
	}

	c.mu.Lock()
	c.session.UserLocation = &userPos
	c.mu.Unlock()

	c.view.SetView(userPos, selectZoom)
	return nil
}

// ===== REPORT AUTHORING =====

// ToggleAuthoring flips between browsing and authoring mode.
func (c *Controller) ToggleAuthoring() {
	c.mu.Lock()
	authoring := c.session.Authoring
	c.mu.Unlock()

	if authoring {
		c.ExitAuthoring()
	} else {
		c.EnterAuthoring()
	}
}

// EnterAuthoring starts a fresh report and suppresses the info panel
// and label.
func (c *Controller) EnterAuthoring() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.session.Authoring = true
	c.session.Draft = &ReportDraft{}
	c.session.PanelOpen = false
	c.session.LabelFor = nil
}

// ExitAuthoring leaves authoring mode and removes the temp marker.
func (c *Controller) ExitAuthoring() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.session.Authoring = false
	c.session.TempMarker = nil
	c.session.FormOpen = false
}

// MapClick handles a click on empty map space. Outside authoring mode
// it has no effect.
func (c *Controller) MapClick(at routing.LatLng) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.session.Authoring {
		return
	}

	c.session.TempMarker = &at
	if c.session.Draft == nil {
		c.session.Draft = &ReportDraft{}
	}
	c.session.Draft.Latitude = at.Lat
	c.session.Draft.Longitude = at.Lng
	c.session.FormOpen = true
}

// EditReport opens the form pre-filled from an existing report marker,
// retaining its id so submission becomes an update.
func (c *Controller) EditReport(id uint) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, report := range c.session.ReportMarkers {
		if report.ID != id {
			continue
		}
		c.session.Draft = &ReportDraft{
			ID:          report.ID,
			Title:       report.Title,
			Description: report.Description,
			Category:    string(report.Category),
			Latitude:    report.Latitude,
			Longitude:   report.Longitude,
		}
		c.session.FormOpen = true
		return
	}
}

// SetDraftFields fills in the form fields of the pending report.
func (c *Controller) SetDraftFields(title, description, category string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session.Draft == nil {
		c.session.Draft = &ReportDraft{}
	}
	c.session.Draft.Title = title
	c.session.Draft.Description = description
	c.session.Draft.Category = category
}

// SubmitReport posts the pending draft, refreshes the report layer and
// exits authoring mode. On failure the form stays open for retry.
func (c *Controller) SubmitReport(ctx context.Context) error {
	c.mu.Lock()
	if c.session.Draft == nil {
		c.mu.Unlock()
		return nil
	}
	draft := *c.session.Draft
	c.mu.Unlock()

	var err error
	if draft.ID != 0 {
		_, err = c.reports.UpdateReport(ctx, draft)
	} else {
		_, err = c.reports.CreateReport(ctx, draft)
	}
	if err != nil {
		c.notifier.Alert("Submission Failed", err.Error())
		return fmt.Errorf("failed to submit report: %w", err)
	}

	if draft.ID != 0 {
		c.notifier.Alert("Updated", "Your report has been successfully updated!")
	} else {
		c.notifier.Alert("Submitted", "Thank you! Your report has been submitted to the campus team.")
	}

	c.mu.Lock()
	c.session.Draft = nil
	c.session.FormOpen = false
	c.mu.Unlock()

	if err := c.RefreshReports(ctx); err != nil && c.logger != nil {
		c.logger.Warn("Failed to refresh reports after submit", "error", err)
	}
	c.ExitAuthoring()
	return nil
}

// RefreshReports rebuilds the report marker layer from the backend.
func (c *Controller) RefreshReports(ctx context.Context) error {
	reports, err := c.reports.ListReports(ctx)
	if err != nil {
		return fmt.Errorf("failed to list reports: %w", err)
	}

	c.mu.Lock()
	c.session.ReportMarkers = reports
	c.mu.Unlock()
	return nil
}
