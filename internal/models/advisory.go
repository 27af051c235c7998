package models

// Disclaimer is appended to every advisory response, unconditionally.
const Disclaimer = "Verify recommendations with local agricultural experts before application."

// Query is a single farmer question. Language is echoed back in the
// response and plays no part in routing; Location, when set, triggers a
// per-call suffix pointing at the local extension office.
type Query struct {
	Text     string `json:"query"`
	Language string `json:"language,omitempty"`
	Location string `json:"location,omitempty"`
}

// Response is the advisory answer to a Query. Sources is never nil: a query
// that matches no category carries the fallback's fixed source list.
type Response struct {
	Answer     string   `json:"answer"`
	Sources    []string `json:"sources"`
	Language   string   `json:"language"`
	Disclaimer string   `json:"disclaimer"`
}
