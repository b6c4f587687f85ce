package models

const (
	SourceGroundStation = "OpenAQ (Ground Station)"
	SourceWeather       = "OpenWeatherMap"
	SourceSatellite     = "TEMPO (Satellite)"
)

const (
	StatusSuccess     = "Success"
	StatusFailed      = "Failed/No data"
	StatusMockSuccess = "Success (Mock)"
	StatusMockFailed  = "Failed (Mock)"
)

// SourceStatus reports what happened to one upstream source. Exactly one of
// Data and Message is set.
type SourceStatus struct {
	Source  string `json:"source" example:"OpenWeatherMap"`
	Status  string `json:"status" example:"Success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// StatusLabels are the strings a source reports in its status record.
type StatusLabels struct {
	Success string
	Failed  string
	// Message replaces the outcome's reason in the status record when set.
	Message string
}

var (
	RealSourceLabels = StatusLabels{Success: StatusSuccess, Failed: StatusFailed}
	MockSourceLabels = StatusLabels{Success: StatusMockSuccess, Failed: StatusMockFailed}
)

// NewSourceStatus builds the status record for an outcome.
func NewSourceStatus[T any](source string, o Outcome[T], labels StatusLabels) SourceStatus {
	if o.OK() {
		return SourceStatus{Source: source, Status: labels.Success, Data: o.Value}
	}

	msg := o.Reason
	if labels.Message != "" {
		msg = labels.Message
	}
	return SourceStatus{Source: source, Status: labels.Failed, Message: msg}
}
