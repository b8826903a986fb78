package state

// Severity buckets a free-text status. Info is the zero value and the
// fallback for anything that is not recognized.
type Severity int

const (
    Info Severity = iota
    Success
    Warning
    Error
)

func (s Severity) String() string {
    switch s {
    case Success:
        return "success"
    case Warning:
        return "warning"
    case Error:
        return "error"
    default:
        return "info"
    }
}

// StatusValue is what callers hand to a status chip. Only the first
// character of Status matters; Message is shown verbatim.
type StatusValue struct {
    Status  string `json:"status" yaml:"status"`
    Message string `json:"message" yaml:"message"`
}
