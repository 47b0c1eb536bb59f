package navigator

import (
	"context"
	"errors"

	"github.com/lacpaorocelyn/cpsunav/internal/routing"
)

// Bounds is a rectangular viewport in map coordinates.
type Bounds struct {
	SouthWest routing.LatLng
	NorthEast routing.LatLng
}

// BoundsOf computes the bounding box of a polyline.
func BoundsOf(points []routing.LatLng) Bounds {
	if len(points) == 0 {
		return Bounds{}
	}
	b := Bounds{SouthWest: points[0], NorthEast: points[0]}
	for _, p := range points[1:] {
		if p.Lat < b.SouthWest.Lat {
			b.SouthWest.Lat = p.Lat
		}
		if p.Lng < b.SouthWest.Lng {
			b.SouthWest.Lng = p.Lng
		}
		if p.Lat > b.NorthEast.Lat {
			b.NorthEast.Lat = p.Lat
		}
		if p.Lng > b.NorthEast.Lng {
			b.NorthEast.Lng = p.Lng
		}
	}
	return b
}

// MapView is the viewport the controller drives.
type MapView interface {
	SetView(center routing.LatLng, zoom float64)
	FitBounds(b Bounds, padding int)
}

// Locator resolves the device position. Implementations are expected to
// request a fresh high-accuracy fix bounded by a 10s timeout, and to
// classify failures into the three location errors below.
type Locator interface {
	Locate(ctx context.Context) (routing.LatLng, error)
}

// RouteFetcher computes a walking route.
type RouteFetcher interface {
	WalkingRoute(ctx context.Context, from, to routing.LatLng) (*routing.Route, error)
}

// osrmFetcher adapts the OSRM client to the RouteFetcher port.
type osrmFetcher struct {
	client *routing.Client
}

func NewOSRMFetcher(client *routing.Client) RouteFetcher {
	return &osrmFetcher{client: client}
}

func (f *osrmFetcher) WalkingRoute(ctx context.Context, from, to routing.LatLng) (*routing.Route, error) {
	return f.client.FootRoute(ctx, from, to)
}

// Notifier surfaces errors and confirmations to the user.
type Notifier interface {
	Alert(title, message string)
}

// Location failure causes, each with its own user-facing message.
var (
	ErrPermissionDenied    = errors.New("please enable location permissions to use this feature")
	ErrPositionUnavailable = errors.New("location unavailable, please try again")
	ErrLocateTimeout       = errors.New("location request timed out, please try again")
)

// LocationErrorMessage maps a location failure to the message shown to
// the user.
func LocationErrorMessage(err error) string {
	switch {
	case errors.Is(err, ErrPermissionDenied):
		return "Please enable location permissions to use this feature."
	case errors.Is(err, ErrPositionUnavailable):
		return "Location unavailable. Please try again."
	case errors.Is(err, ErrLocateTimeout):
		return "Location request timed out. Please try again."
	default:
		return "Could not get your location."
	}
}
