package training

// Resource is a training or certification offering that closes one skill gap.
type Resource struct {
	SkillName         string `json:"skillName"`
	CertificationName string `json:"certificationName"`
	Provider          string `json:"provider"`
	EstimatedTime     string `json:"estimatedTime"`
	Cost              string `json:"cost"`
	VAEligible        bool   `json:"vaEligible"`
}

// Recommendation pairs a skill gap with the training that closes it. SkillGap
// keeps the caller's original casing so responses echo the veteran's wording.
type Recommendation struct {
	SkillGap      string `json:"skillGap"`
	Certification string `json:"certification"`
	EstimatedTime string `json:"estimatedTime"`
	Cost          string `json:"cost"`
	Provider      string `json:"provider"`
	VAEligible    bool   `json:"vaEligible"`
}
