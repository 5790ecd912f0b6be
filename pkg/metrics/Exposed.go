package metrics

var RuntimeCalls = NewCounter("runtime_calls_total", "Total runtime calls by kind, operation and result", []string{"kind", "operation", "result"})
var RuntimeLatency = NewHistogram("runtime_call_duration_seconds", "Runtime call latency by kind and operation", []string{"kind", "operation"})
var Resources = NewGauge("resources", "Resources returned by the last list of a kind", []string{"kind"})
var HttpRequests = NewCounter("http_requests_total", "Total API requests by route and status", []string{"route", "status"})

const (
	RESULT_SUCCESS = "success"
	RESULT_ERROR   = "error"
)

func Result(err error) string {
	if err != nil {
		return RESULT_ERROR
	}

	return RESULT_SUCCESS
}
