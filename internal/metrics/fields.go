package metrics

// Metric attribute keys shared by the HTTP and dataset instruments.
const (
	AttrMethod = "method"
	AttrPath   = "path"
	AttrStatus = "status"
	AttrResult = "result"
)

// LookupResults lists every value recorded under AttrResult.
var LookupResults = []string{LookupHit, LookupMiss, LookupNone}
