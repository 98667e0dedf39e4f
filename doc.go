/*
Package tripplanner is a client for the Transport for NSW Trip Planner
APIs: stop search, journey planning, departures, service alerts and
nearby location lookup.

# Basic Usage

	client := tripplanner.New(os.Getenv("TRANSPORT_NSW_API_KEY"))

	journeys, err := client.PlanTrip(ctx, "10101331", "10102027", nil)
	if err != nil {
	    log.Fatal(err)
	}
	for _, journey := range journeys {
	    fmt.Println(journey.Summary())
	}

Response payloads are parsed by the models package; see its
documentation for the parsing guarantees. Failures surface as either a
*NetworkError (connectivity) or an *APIError (error status or
non-JSON body), distinguishable with errors.As.
*/
package tripplanner
