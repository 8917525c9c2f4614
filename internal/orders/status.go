package orders

const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
)

var validNext = map[string]map[string]bool{
	StatusPending:    {StatusProcessing: true, StatusCancelled: true},
	StatusProcessing: {StatusShipped: true, StatusCancelled: true},
	StatusShipped:    {StatusDelivered: true},
	StatusDelivered:  {},
	StatusCancelled:  {},
}

func CanTransition(from, to string) bool {
	return validNext[from][to]
}

func KnownStatuses() []string {
	return []string{StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled}
}
