package domain

import "time"

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusResolved RequestStatus = "resolved"
)

type Request struct {
	ID       int64
	Type     string
	Subtype  string // may embed a size ("Coat M") or a specific item ("General Hygiene - Soap")
	Quantity int    // persons-per-day for food and water, units otherwise
	Priority int
	Latitude  float64
	Longitude float64
	TCKN      string // optional, format-checked 11 digits
	Notes     string
	Status    RequestStatus
	Timestamp time.Time

	// RelatedDistrict is the nearest district at submission time, advisory
	// only. Zero when no districts were known.
	RelatedDistrict int64
}

var defaultPriorities = map[string]int{
	"water":   3,
	"shelter": 2,
	"medical": 2,
	"food":    1,
}

// DefaultPriority returns the initial priority for a request type.
func DefaultPriority(requestType string) int {
	if p, ok := defaultPriorities[requestType]; ok {
		return p
	}
	return 1
}

// Exponential growth for water is capped so long-pending requests cannot
// overflow the priority column.
const maxWaterEscalationHours = 20

// PriorityIncrease returns how much priority a pending request of the given
// type gains after the given number of whole hours pending. Water escalates
// exponentially, food faster than linear, the rest linearly or slower.
func PriorityIncrease(requestType string, hoursPending int) int {
	if hoursPending <= 0 {
		return 0
	}
	switch requestType {
	case "water":
		h := hoursPending
		if h > maxWaterEscalationHours {
			h = maxWaterEscalationHours
		}
		return 1 << uint(h)
	case "food":
		return hoursPending + hoursPending/2
	case "shelter":
		return hoursPending
	case "clothes", "hygiene":
		return hoursPending / 2
	default:
		return 0
	}
}
