package training

// SeedResources returns the built-in training resource catalog. Skill names
// are stored in canonical lowercase form.
func SeedResources() []Resource {
	return []Resource{
		{SkillName: "project management", CertificationName: "PMP or CAPM", Provider: "Project Management Institute", EstimatedTime: "3-6 months", Cost: "Often covered by VA benefits", VAEligible: true},
		{SkillName: "data analysis", CertificationName: "Google Data Analytics Certificate", Provider: "Google/Coursera", EstimatedTime: "6 months", Cost: "Free on Coursera", VAEligible: true},
		{SkillName: "cybersecurity", CertificationName: "CompTIA Security+", Provider: "CompTIA", EstimatedTime: "3-4 months", Cost: "$392 exam fee, often VA covered", VAEligible: true},
		{SkillName: "network administration", CertificationName: "CompTIA Network+", Provider: "CompTIA", EstimatedTime: "2-3 months", Cost: "$358 exam fee, often VA covered", VAEligible: true},
		{SkillName: "programming", CertificationName: "Google IT Support Certificate", Provider: "Google/Coursera", EstimatedTime: "6 months", Cost: "Free on Coursera", VAEligible: true},
		{SkillName: "software development", CertificationName: "AWS Certified Developer", Provider: "Amazon Web Services", EstimatedTime: "3-6 months", Cost: "$150 exam fee", VAEligible: true},
		{SkillName: "lean manufacturing", CertificationName: "Six Sigma Green Belt", Provider: "ASQ or IASSC", EstimatedTime: "2-3 months", Cost: "$438 exam fee, often employer paid", VAEligible: true},
		{SkillName: "quality control", CertificationName: "ASQ Certified Quality Inspector", Provider: "American Society for Quality", EstimatedTime: "2-3 months", Cost: "$394 exam fee", VAEligible: true},
		{SkillName: "electrical systems", CertificationName: "Journeyman Electrician License", Provider: "State Licensing Board", EstimatedTime: "4 years apprenticeship", Cost: "Paid apprenticeship", VAEligible: true},
		{SkillName: "hvac", CertificationName: "EPA Section 608 Certification", Provider: "EPA Approved Programs", EstimatedTime: "1-2 weeks", Cost: "$150-300", VAEligible: true},
		{SkillName: "cad software", CertificationName: "Autodesk Certified User", Provider: "Autodesk", EstimatedTime: "2-3 months", Cost: "$125 exam fee", VAEligible: true},
		{SkillName: "healthcare administration", CertificationName: "Certified Medical Manager", Provider: "PAHCOM", EstimatedTime: "6 months", Cost: "$325 exam fee", VAEligible: true},
		{SkillName: "supply chain", CertificationName: "APICS Certified Supply Chain Professional", Provider: "ASCM", EstimatedTime: "6-9 months", Cost: "$595 exam fee, often employer paid", VAEligible: true},
		{SkillName: "forklift operation", CertificationName: "OSHA Forklift Certification", Provider: "OSHA Approved Trainers", EstimatedTime: "1 day", Cost: "$50-150", VAEligible: true},
		{SkillName: "cdl", CertificationName: "Commercial Driver's License", Provider: "State DMV", EstimatedTime: "3-7 weeks", Cost: "$3000-7000, VA eligible", VAEligible: true},
	}
}
