// Package profile holds the military profile record shared by the matching,
// resume, and session flows.
package profile

// MilitaryProfile describes a veteran's service background as entered at the
// start of the transition flow.
type MilitaryProfile struct {
	Branch                string `json:"branch"`
	YearsOfService        int    `json:"yearsOfService"`
	MOSCode               string `json:"mosCode,omitempty"`
	Rank                  string `json:"rank,omitempty"`
	ExperienceDescription string `json:"experienceDescription"`
}
