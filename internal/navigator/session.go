package navigator

import (
	"github.com/lacpaorocelyn/cpsunav/internal/models"
	"github.com/lacpaorocelyn/cpsunav/internal/routing"
)

// DirectionsState tracks the directions workflow.
type DirectionsState int

const (
	Idle DirectionsState = iota
	LocatingUser
	RoutingQuery
	RouteDisplayed
)

func (s DirectionsState) String() string {
	switch s {
	case Idle:
		return "idle"
	case LocatingUser:
		return "locating_user"
	case RoutingQuery:
		return "routing_query"
	case RouteDisplayed:
		return "route_displayed"
	default:
		return "unknown"
	}
}

// RouteSummary is the distance/duration text shown in the info panel.
type RouteSummary struct {
	Distance string
	Duration string
}

// ReportDraft is a pending report being authored. A non-zero ID means
// the submission updates an existing report.
type ReportDraft struct {
	ID          uint
	Title       string
	Description string
	Category    string
	Latitude    float64
	Longitude   float64
}

// Session is the whole map UI state. Every field mutation goes through
// the Controller.
type Session struct {
	// Selection and info panel.
	Current      *models.Building
	PanelOpen    bool
	RouteSummary *RouteSummary

	// Persistent name label above the selected building, nil when none.
	LabelFor *models.Building

	// Active route polyline, nil when no route is displayed.
	Route *routing.Route

	// "You are here" marker. Survives selection changes and panel
	// closes; only replaced by the next successful locate.
	UserLocation *routing.LatLng

	// Report layer, rebuilt wholesale on refresh.
	ReportMarkers []*models.Report

	// Authoring mode.
	Authoring  bool
	TempMarker *routing.LatLng
	Draft      *ReportDraft
	FormOpen   bool

	Directions DirectionsState
}
