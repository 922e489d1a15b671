package domain

import "time"

// Itinerary is one concrete flight result produced by a search and consumed
// immediately by the deal engine; it is never persisted. Dates carry
// calendar-day precision only. StopOvers is 0 or 1 in this design; ViaCity is
// set only when StopOvers is 1.
type Itinerary struct {
	Price         float64
	DepartureCity string
	DepartureCode string
	ArrivalCity   string
	ArrivalCode   string
	OutboundDate  time.Time
	InboundDate   time.Time
	StopOvers     int
	ViaCity       string
}

// Deal pairs a matched itinerary with the destination whose threshold it
// beat. Ephemeral: aggregated per user into one outbound message.
type Deal struct {
	Destination Destination
	Itinerary   Itinerary
}
