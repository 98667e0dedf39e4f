package tripplanner

import (
	"context"
	"net/url"
	"sort"
	"strconv"
	"time"

	"github.com/transport-nsw/tripplanner-go/models"
)

// Option struct zero values match the API defaults, so nil options or
// an empty literal both mean "the usual query". Booleans that default
// to on are therefore expressed negatively (NoRealtime, NoTfNSWFilter).

// StopSearchOptions narrows a FindStop query.
type StopSearchOptions struct {
	// Type filters results client side; empty means any. The query
	// itself always goes out untyped because the API silently returns
	// zero results for typed free-text searches.
	Type models.LocationType

	// MaxResults caps the result list. Zero means 10.
	MaxResults int

	// NoTfNSWFilter disables the TfNSW-specific result filtering the
	// API applies by default.
	NoTfNSWFilter bool
}

// TripOptions adjusts a PlanTrip query.
type TripOptions struct {
	// When is the search time; zero means now.
	When time.Time

	// ArriveBy treats When as an arrival time instead of a departure
	// time.
	ArriveBy bool

	// OriginType and DestinationType are "stop" (default) or "coord".
	OriginType      string
	DestinationType string

	// NoRealtime excludes realtime estimates.
	NoRealtime bool

	// Wheelchair restricts results to wheelchair accessible journeys.
	Wheelchair bool
}

// CyclingOptions adjusts a PlanCyclingTrip query.
type CyclingOptions struct {
	// Profile selects elevation weighting; empty means MODERATE.
	Profile models.CyclingProfile

	// When is the departure time; zero means now.
	When time.Time

	// MultiModal allows the bicycle as one leg of a transit trip
	// instead of requiring a bike-only route.
	MultiModal bool

	// MaxTimeMinutes caps trip duration. Zero means 240.
	MaxTimeMinutes int

	// CycleSpeed is the assumed speed in km/h. Zero means 16.
	CycleSpeed int
}

// DepartureOptions adjusts a Departures query.
type DepartureOptions struct {
	// When is the base departure time; zero means now.
	When time.Time

	// PlatformID narrows results to a single platform.
	PlatformID string

	// NoRealtime excludes realtime estimates.
	NoRealtime bool
}

// AlertOptions adjusts an Alerts query.
type AlertOptions struct {
	// When filters alerts valid on this date; zero means today.
	When time.Time

	// StopID limits alerts to those affecting one stop.
	StopID string

	// IncludeHistorical also returns alerts no longer current.
	IncludeHistorical bool
}

// NearbyOptions adjusts a FindNearby query.
type NearbyOptions struct {
	// RadiusM is the search radius in metres. Zero means 500.
	RadiusM int

	// TypeFilter is the location type filter. Empty means GIS_POINT.
	TypeFilter string

	// DrawClass filters by draw class; 74 selects Opal resellers.
	// Zero means no filter.
	DrawClass int
}

// queryTime normalizes a search time to Sydney local time, defaulting
// to now.
func queryTime(when time.Time) time.Time {
	if when.IsZero() {
		when = time.Now()
	}
	return when.In(models.Sydney())
}

// FindStop searches stops, POIs and addresses by name. Results come
// back sorted by match quality, best first.
func (c *Client) FindStop(ctx context.Context, query string, opts *StopSearchOptions) ([]models.Location, error) {
	if opts == nil {
		opts = &StopSearchOptions{}
	}
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = 10
	}

	// Over-fetch when filtering by type client side.
	hitListSize := maxResults
	if opts.Type != "" {
		hitListSize = maxResults * 5
	}

	params := url.Values{}
	params.Set("type_sf", "any")
	params.Set("name_sf", query)
	params.Set("anyMaxSizeHitList", strconv.Itoa(hitListSize))
	params.Set("TfNSWSF", strconv.FormatBool(!opts.NoTfNSWFilter))
	params.Set("odvSugMacro", "1")

	data, err := c.get(ctx, "stop_finder", params)
	if err != nil {
		return nil, err
	}

	var locations []models.Location
	for _, raw := range mapList(data, "locations") {
		loc := models.ParseLocation(raw)
		if opts.Type != "" && loc.Type != opts.Type {
			continue
		}
		locations = append(locations, loc)
	}

	sort.SliceStable(locations, func(i, j int) bool {
		return locations[i].MatchQuality > locations[j].MatchQuality
	})
	if len(locations) > maxResults {
		locations = locations[:maxResults]
	}
	return locations, nil
}

// FindStopByID looks up a stop by its numeric ID. Returns nil when no
// matching stop exists.
func (c *Client) FindStopByID(ctx context.Context, stopID string) (*models.Location, error) {
	locations, err := c.FindStop(ctx, stopID, &StopSearchOptions{Type: models.LocationTypeStop, MaxResults: 1})
	if err != nil {
		return nil, err
	}
	if len(locations) == 0 {
		return nil, nil
	}
	return &locations[0], nil
}

// BestStop returns the single best match for query: the result the API
// flagged isBest, else the highest quality match, else nil.
func (c *Client) BestStop(ctx context.Context, query string) (*models.Location, error) {
	locations, err := c.FindStop(ctx, query, nil)
	if err != nil {
		return nil, err
	}
	for i := range locations {
		if locations[i].IsBest {
			return &locations[i], nil
		}
	}
	if len(locations) == 0 {
		return nil, nil
	}
	return &locations[0], nil
}

// PlanTrip plans a journey between two locations, identified by stop
// ID or by wire coordinate string depending on the endpoint types in
// opts.
func (c *Client) PlanTrip(ctx context.Context, originID, destinationID string, opts *TripOptions) ([]models.Journey, error) {
	if opts == nil {
		opts = &TripOptions{}
	}
	originType := opts.OriginType
	if originType == "" {
		originType = "stop"
	}
	destinationType := opts.DestinationType
	if destinationType == "" {
		destinationType = "stop"
	}

	when := queryTime(opts.When)
	params := url.Values{}
	if opts.ArriveBy {
		params.Set("depArrMacro", "arr")
	} else {
		params.Set("depArrMacro", "dep")
	}
	params.Set("itdDate", when.Format("20060102"))
	params.Set("itdTime", when.Format("1504"))
	params.Set("type_origin", originType)
	params.Set("name_origin", originID)
	params.Set("type_destination", destinationType)
	params.Set("name_destination", destinationID)
	params.Set("TfNSWTR", strconv.FormatBool(!opts.NoRealtime))
	if opts.Wheelchair {
		params.Set("wheelchair", "on")
	}

	data, err := c.get(ctx, "trip", params)
	if err != nil {
		return nil, err
	}
	return parseJourneys(data), nil
}

// PlanTripFromCoordinate plans a trip from a GPS position to a
// destination stop.
func (c *Client) PlanTripFromCoordinate(ctx context.Context, origin models.Coordinate, destinationID string, opts *TripOptions) ([]models.Journey, error) {
	coordOpts := TripOptions{}
	if opts != nil {
		coordOpts = *opts
	}
	coordOpts.OriginType = "coord"
	coordOpts.DestinationType = "stop"
	return c.PlanTrip(ctx, origin.APIString(), destinationID, &coordOpts)
}

// PlanCyclingTrip plans a cycling trip, optionally combined with
// transit.
func (c *Client) PlanCyclingTrip(ctx context.Context, originID, destinationID string, opts *CyclingOptions) ([]models.Journey, error) {
	if opts == nil {
		opts = &CyclingOptions{}
	}
	profile := opts.Profile
	if profile == "" {
		profile = models.CyclingModerate
	}
	maxTime := opts.MaxTimeMinutes
	if maxTime <= 0 {
		maxTime = 240
	}
	speed := opts.CycleSpeed
	if speed <= 0 {
		speed = 16
	}

	when := queryTime(opts.When)
	params := url.Values{}
	params.Set("depArrMacro", "dep")
	params.Set("itdDate", when.Format("20060102"))
	params.Set("itdTime", when.Format("1504"))
	params.Set("type_origin", "stop")
	params.Set("name_origin", originID)
	params.Set("type_destination", "stop")
	params.Set("name_destination", destinationID)
	params.Set("TfNSWTR", "true")
	params.Set("cycleSpeed", strconv.Itoa(speed))
	if opts.MultiModal {
		params.Set("computeMonomodalTripBicycle", "0")
	} else {
		params.Set("computeMonomodalTripBicycle", "1")
	}
	params.Set("maxTimeBicycle", strconv.Itoa(maxTime))
	params.Set("onlyITBicycle", "1")
	params.Set("useElevationData", "1")
	params.Set("bikeProfSpeed", string(profile))
	params.Set("elevFac", strconv.Itoa(profile.ElevationFactor()))

	data, err := c.get(ctx, "trip", params)
	if err != nil {
		return nil, err
	}
	return parseJourneys(data), nil
}

// Departures lists upcoming departures from a stop or platform.
func (c *Client) Departures(ctx context.Context, stopID string, opts *DepartureOptions) ([]models.StopEvent, error) {
	if opts == nil {
		opts = &DepartureOptions{}
	}

	when := queryTime(opts.When)
	params := url.Values{}
	params.Set("mode", "direct")
	params.Set("type_dm", "stop")
	params.Set("name_dm", stopID)
	params.Set("depArrMacro", "dep")
	params.Set("itdDate", when.Format("20060102"))
	params.Set("itdTime", when.Format("1504"))
	params.Set("TfNSWDM", strconv.FormatBool(!opts.NoRealtime))
	if opts.PlatformID != "" {
		params.Set("name_dm", opts.PlatformID)
		params.Set("nameKey_dm", "$USEPOINT$")
	}

	data, err := c.get(ctx, "departure_mon", params)
	if err != nil {
		return nil, err
	}

	var events []models.StopEvent
	for _, raw := range mapList(data, "stopEvents") {
		events = append(events, models.ParseStopEvent(raw))
	}
	return events, nil
}

// Alerts retrieves service alerts.
func (c *Client) Alerts(ctx context.Context, opts *AlertOptions) ([]models.ServiceAlert, error) {
	if opts == nil {
		opts = &AlertOptions{}
	}

	when := queryTime(opts.When)
	params := url.Values{}
	params.Set("filterDateValid", when.Format("02-01-2006"))
	if !opts.IncludeHistorical {
		params.Set("filterPublicationStatus", "current")
	}
	if opts.StopID != "" {
		params.Set("itdLPxx_selStop", opts.StopID)
	}

	data, err := c.get(ctx, "add_info", params)
	if err != nil {
		return nil, err
	}

	infos, _ := data["infos"].(map[string]any)
	raw := mapList(infos, "current")
	if opts.IncludeHistorical {
		raw = append(raw, mapList(infos, "previous")...)
	}

	var alerts []models.ServiceAlert
	for _, item := range raw {
		alerts = append(alerts, models.ParseServiceAlert(item))
	}
	return alerts, nil
}

// FindNearby finds stops, POIs or Opal resellers near a coordinate.
func (c *Client) FindNearby(ctx context.Context, centre models.Coordinate, opts *NearbyOptions) ([]models.Location, error) {
	if opts == nil {
		opts = &NearbyOptions{}
	}
	radius := opts.RadiusM
	if radius <= 0 {
		radius = 500
	}
	typeFilter := opts.TypeFilter
	if typeFilter == "" {
		typeFilter = "GIS_POINT"
	}

	params := url.Values{}
	params.Set("coord", centre.APIString())
	params.Set("type_1", typeFilter)
	params.Set("radius_1", strconv.Itoa(radius))
	params.Set("inclFilter", "1")
	if opts.DrawClass != 0 {
		params.Set("inclDrawClasses_1", strconv.Itoa(opts.DrawClass))
	}

	data, err := c.get(ctx, "coord", params)
	if err != nil {
		return nil, err
	}

	var locations []models.Location
	for _, raw := range mapList(data, "locations") {
		locations = append(locations, models.ParseLocation(raw))
	}
	return locations, nil
}

// opalResellerDrawClass is the coord endpoint's draw class for Opal
// ticket resellers.
const opalResellerDrawClass = 74

// FindOpalResellers finds Opal ticket resellers near a coordinate.
func (c *Client) FindOpalResellers(ctx context.Context, centre models.Coordinate, radiusM int) ([]models.Location, error) {
	if radiusM <= 0 {
		radiusM = 1000
	}
	return c.FindNearby(ctx, centre, &NearbyOptions{
		RadiusM:   radiusM,
		DrawClass: opalResellerDrawClass,
	})
}

func parseJourneys(data map[string]any) []models.Journey {
	var journeys []models.Journey
	for _, raw := range mapList(data, "journeys") {
		journeys = append(journeys, models.ParseJourney(raw))
	}
	return journeys
}

// mapList collects the object entries of a list field in a decoded
// response.
func mapList(data map[string]any, key string) []map[string]any {
	list, _ := data[key].([]any)
	var out []map[string]any
	for _, item := range list {
		if obj, ok := item.(map[string]any); ok {
			out = append(out, obj)
		}
	}
	return out
}
