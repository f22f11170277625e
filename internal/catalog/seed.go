package catalog

// Seed data for the occupation catalog, derived from O*NET occupation
// definitions with BLS wage and outlook figures. The serving path treats the
// catalog as read-only; this is the single source populating both the memory
// repo and the Postgres seeder.

func intPtr(v int) *int          { return &v }
func floatPtr(v float64) *float64 { return &v }

// SeedOccupations returns the built-in occupation records in catalog order.
func SeedOccupations() []OccupationRecord {
	return []OccupationRecord{
		{
			OccupationCode:    "17-2112.00",
			OccupationTitle:   "Industrial Engineer",
			Description:       "Design, develop, test, and evaluate integrated systems for managing industrial production processes.",
			MedianWage:        intPtr(95300),
			JobOutlook:        "Faster than average",
			GrowthRate:        floatPtr(10.0),
			Industry:          "manufacturing",
			EducationRequired: "Bachelor's degree",
			RequiredSkills: []string{
				"process improvement", "quality control", "project management", "data analysis",
				"team leadership", "problem solving", "operations management", "lean manufacturing",
			},
		},
		{
			OccupationCode:    "51-1011.00",
			OccupationTitle:   "Production Supervisor",
			Description:       "Directly supervise and coordinate the activities of production and operating workers.",
			MedianWage:        intPtr(62010),
			JobOutlook:        "Average",
			GrowthRate:        floatPtr(5.0),
			Industry:          "manufacturing",
			EducationRequired: "High school diploma or equivalent",
			RequiredSkills: []string{
				"team leadership", "scheduling", "quality control", "safety management",
				"inventory management", "training", "communication", "problem solving",
			},
		},
		{
			OccupationCode:    "51-4041.00",
			OccupationTitle:   "CNC Machine Tool Operator",
			Description:       "Set up and operate computer-controlled machines to fabricate metal or plastic parts.",
			MedianWage:        intPtr(45750),
			JobOutlook:        "Average",
			GrowthRate:        floatPtr(3.0),
			Industry:          "manufacturing",
			EducationRequired: "High school diploma or equivalent",
			RequiredSkills: []string{
				"equipment operation", "precision measurement", "blueprint reading",
				"quality inspection", "maintenance", "safety procedures", "mathematics",
			},
		},
		{
			OccupationCode:    "17-2141.00",
			OccupationTitle:   "Mechanical Engineer",
			Description:       "Perform engineering duties in planning and designing tools, engines, machines, and other mechanically functioning equipment.",
			MedianWage:        intPtr(96310),
			JobOutlook:        "Average",
			GrowthRate:        floatPtr(2.0),
			Industry:          "manufacturing",
			EducationRequired: "Bachelor's degree",
			RequiredSkills: []string{
				"mechanical design", "CAD software", "problem solving", "project management",
				"technical documentation", "quality assurance", "teamwork", "mathematics",
			},
		},
		{
			OccupationCode:    "15-1212.00",
			OccupationTitle:   "Information Security Analyst",
			Description:       "Plan, implement, upgrade, or monitor security measures for the protection of computer networks and information.",
			MedianWage:        intPtr(112000),
			JobOutlook:        "Much faster than average",
			GrowthRate:        floatPtr(32.0),
			Industry:          "technology",
			EducationRequired: "Bachelor's degree",
			RequiredSkills: []string{
				"cybersecurity", "network security", "risk assessment", "security clearance",
				"incident response", "security protocols", "threat analysis", "problem solving",
			},
		},
		{
			OccupationCode:    "15-1232.00",
			OccupationTitle:   "Network Administrator",
			Description:       "Install, configure, and maintain local area networks, wide area networks, and internet systems.",
			MedianWage:        intPtr(90520),
			JobOutlook:        "Average",
			GrowthRate:        floatPtr(3.0),
			Industry:          "technology",
			EducationRequired: "Bachelor's degree",
			RequiredSkills: []string{
				"network administration", "troubleshooting", "system configuration",
				"security management", "documentation", "communication", "problem solving",
			},
		},
		{
			OccupationCode:    "15-1211.00",
			OccupationTitle:   "Computer Systems Analyst",
			Description:       "Analyze science, engineering, business, and other data processing problems to develop and implement solutions.",
			MedianWage:        intPtr(102240),
			JobOutlook:        "Average",
			GrowthRate:        floatPtr(9.0),
			Industry:          "technology",
			EducationRequired: "Bachelor's degree",
			RequiredSkills: []string{
				"systems analysis", "problem solving", "project management", "communication",
				"data analysis", "technical documentation", "teamwork", "requirements gathering",
			},
		},
		{
			OccupationCode:    "15-1251.00",
			OccupationTitle:   "Software Developer",
			Description:       "Research, design, and develop computer and network software or specialized utility programs.",
			MedianWage:        intPtr(127260),
			JobOutlook:        "Much faster than average",
			GrowthRate:        floatPtr(25.0),
			Industry:          "technology",
			EducationRequired: "Bachelor's degree",
			RequiredSkills: []string{
				"programming", "software development", "problem solving", "debugging",
				"system design", "teamwork", "communication", "project management",
			},
		},
		{
			OccupationCode:    "13-1081.00",
			OccupationTitle:   "Logistics Analyst",
			Description:       "Analyze and coordinate the logistical functions of a firm or organization.",
			MedianWage:        intPtr(77520),
			JobOutlook:        "Faster than average",
			GrowthRate:        floatPtr(18.0),
			Industry:          "logistics",
			EducationRequired: "Bachelor's degree",
			RequiredSkills: []string{
				"logistics management", "supply chain", "data analysis", "inventory management",
				"process improvement", "communication", "problem solving", "project management",
			},
		},
		{
			OccupationCode:    "11-3071.00",
			OccupationTitle:   "Transportation Manager",
			Description:       "Plan, direct, or coordinate the transportation operations within an organization.",
			MedianWage:        intPtr(98560),
			JobOutlook:        "Average",
			GrowthRate:        floatPtr(6.0),
			Industry:          "logistics",
			EducationRequired: "Bachelor's degree",
			RequiredSkills: []string{
				"team leadership", "logistics management", "fleet management", "budgeting",
				"scheduling", "compliance", "communication", "problem solving",
			},
		},
		{
			OccupationCode:    "43-5071.00",
			OccupationTitle:   "Shipping and Receiving Supervisor",
			Description:       "Coordinate activities of workers engaged in verifying and keeping records of incoming and outgoing shipments.",
			MedianWage:        intPtr(55230),
			JobOutlook:        "Average",
			GrowthRate:        floatPtr(4.0),
			Industry:          "logistics",
			EducationRequired: "High school diploma or equivalent",
			RequiredSkills: []string{
				"inventory management", "team leadership", "documentation", "scheduling",
				"quality control", "safety procedures", "communication", "organization",
			},
		},
		{
			OccupationCode:    "47-1011.00",
			OccupationTitle:   "Construction Supervisor",
			Description:       "Directly supervise and coordinate activities of construction workers.",
			MedianWage:        intPtr(72290),
			JobOutlook:        "Average",
			GrowthRate:        floatPtr(5.0),
			Industry:          "construction",
			EducationRequired: "High school diploma or equivalent",
			RequiredSkills: []string{
				"team leadership", "project management", "blueprint reading", "safety management",
				"scheduling", "quality control", "budgeting", "communication",
			},
		},
		{
			OccupationCode:    "49-9021.00",
			OccupationTitle:   "HVAC Technician",
			Description:       "Install, maintain, and repair heating, ventilation, and air conditioning systems.",
			MedianWage:        intPtr(51390),
			JobOutlook:        "Much faster than average",
			GrowthRate:        floatPtr(15.0),
			Industry:          "construction",
			EducationRequired: "Postsecondary nondegree award",
			RequiredSkills: []string{
				"equipment maintenance", "troubleshooting", "electrical systems",
				"refrigeration", "safety procedures", "customer service", "blueprint reading",
			},
		},
		{
			OccupationCode:    "47-2111.00",
			OccupationTitle:   "Electrician",
			Description:       "Install, maintain, and repair electrical wiring, equipment, and fixtures.",
			MedianWage:        intPtr(60240),
			JobOutlook:        "Faster than average",
			GrowthRate:        floatPtr(9.0),
			Industry:          "construction",
			EducationRequired: "High school diploma or equivalent",
			RequiredSkills: []string{
				"electrical systems", "troubleshooting", "blueprint reading", "safety procedures",
				"equipment installation", "maintenance", "problem solving", "mathematics",
			},
		},
		{
			OccupationCode:    "51-8013.00",
			OccupationTitle:   "Power Plant Operator",
			Description:       "Control, operate, or maintain machinery to generate electric power.",
			MedianWage:        intPtr(94790),
			JobOutlook:        "Declining",
			GrowthRate:        floatPtr(-15.0),
			Industry:          "energy",
			EducationRequired: "High school diploma or equivalent",
			RequiredSkills: []string{
				"equipment operation", "monitoring systems", "safety procedures",
				"troubleshooting", "maintenance", "documentation", "teamwork",
			},
		},
		{
			OccupationCode:    "47-5013.00",
			OccupationTitle:   "Wind Turbine Technician",
			Description:       "Inspect, diagnose, adjust, or repair wind turbines. Perform maintenance on wind turbine equipment.",
			MedianWage:        intPtr(56260),
			JobOutlook:        "Much faster than average",
			GrowthRate:        floatPtr(44.0),
			Industry:          "energy",
			EducationRequired: "Postsecondary nondegree award",
			RequiredSkills: []string{
				"equipment maintenance", "troubleshooting", "safety procedures",
				"climbing", "electrical systems", "mechanical systems", "documentation",
			},
		},
		{
			OccupationCode:    "29-2042.00",
			OccupationTitle:   "Emergency Medical Technician",
			Description:       "Assess injuries, administer emergency medical care, and transport injured or sick persons to medical facilities.",
			MedianWage:        intPtr(36930),
			JobOutlook:        "Faster than average",
			GrowthRate:        floatPtr(7.0),
			Industry:          "healthcare",
			EducationRequired: "Postsecondary nondegree award",
			RequiredSkills: []string{
				"emergency response", "medical procedures", "patient care", "communication",
				"stress management", "teamwork", "problem solving", "documentation",
			},
		},
		{
			OccupationCode:    "11-9111.00",
			OccupationTitle:   "Medical and Health Services Manager",
			Description:       "Plan, direct, or coordinate medical and health services in hospitals, clinics, or similar organizations.",
			MedianWage:        intPtr(104830),
			JobOutlook:        "Much faster than average",
			GrowthRate:        floatPtr(28.0),
			Industry:          "healthcare",
			EducationRequired: "Bachelor's degree",
			RequiredSkills: []string{
				"team leadership", "healthcare administration", "budgeting", "compliance",
				"communication", "problem solving", "project management", "operations management",
			},
		},
		{
			OccupationCode:    "11-1021.00",
			OccupationTitle:   "General Manager",
			Description:       "Plan, direct, or coordinate operations of companies or organizations.",
			MedianWage:        intPtr(102450),
			JobOutlook:        "Average",
			GrowthRate:        floatPtr(6.0),
			Industry:          "management",
			EducationRequired: "Bachelor's degree",
			RequiredSkills: []string{
				"team leadership", "strategic planning", "budgeting", "operations management",
				"communication", "problem solving", "decision making", "project management",
			},
		},
		{
			OccupationCode:    "11-3051.00",
			OccupationTitle:   "Operations Manager",
			Description:       "Direct administrative and operational activities of business operations.",
			MedianWage:        intPtr(97970),
			JobOutlook:        "Average",
			GrowthRate:        floatPtr(6.0),
			Industry:          "management",
			EducationRequired: "Bachelor's degree",
			RequiredSkills: []string{
				"team leadership", "operations management", "process improvement", "budgeting",
				"scheduling", "quality control", "communication", "problem solving",
			},
		},
		{
			OccupationCode:    "13-1111.00",
			OccupationTitle:   "Management Analyst",
			Description:       "Conduct organizational studies and evaluations, design systems and procedures.",
			MedianWage:        intPtr(95290),
			JobOutlook:        "Faster than average",
			GrowthRate:        floatPtr(11.0),
			Industry:          "management",
			EducationRequired: "Bachelor's degree",
			RequiredSkills: []string{
				"data analysis", "problem solving", "process improvement", "communication",
				"project management", "strategic planning", "documentation", "teamwork",
			},
		},
		{
			OccupationCode:    "13-1151.00",
			OccupationTitle:   "Training and Development Specialist",
			Description:       "Design and conduct training and development programs to improve individual and organizational performance.",
			MedianWage:        intPtr(63080),
			JobOutlook:        "Average",
			GrowthRate:        floatPtr(6.0),
			Industry:          "education",
			EducationRequired: "Bachelor's degree",
			RequiredSkills: []string{
				"training development", "instruction", "curriculum design", "communication",
				"presentation skills", "assessment", "documentation", "teamwork",
			},
		},
		{
			OccupationCode:    "33-1012.00",
			OccupationTitle:   "Fire Chief",
			Description:       "Plan, direct, and coordinate activities of a fire department.",
			MedianWage:        intPtr(78020),
			JobOutlook:        "Average",
			GrowthRate:        floatPtr(4.0),
			Industry:          "emergency_services",
			EducationRequired: "Postsecondary nondegree award",
			RequiredSkills: []string{
				"team leadership", "emergency response", "strategic planning", "budgeting",
				"communication", "decision making", "safety management", "training",
			},
		},
		{
			OccupationCode:    "33-3051.00",
			OccupationTitle:   "Police Officer",
			Description:       "Maintain order and protect life and property by enforcing laws and ordinances.",
			MedianWage:        intPtr(65790),
			JobOutlook:        "Average",
			GrowthRate:        floatPtr(3.0),
			Industry:          "emergency_services",
			EducationRequired: "High school diploma or equivalent",
			RequiredSkills: []string{
				"law enforcement", "communication", "problem solving", "physical fitness",
				"firearms proficiency", "report writing", "teamwork", "decision making",
			},
		},
		{
			OccupationCode:    "11-9199.00",
			OccupationTitle:   "Project Manager",
			Description:       "Plan, direct, and coordinate activities to ensure project goals are accomplished within prescribed time frames and budgets.",
			MedianWage:        intPtr(94500),
			JobOutlook:        "Faster than average",
			GrowthRate:        floatPtr(7.0),
			Industry:          "management",
			EducationRequired: "Bachelor's degree",
			RequiredSkills: []string{
				"project management", "team leadership", "budgeting", "scheduling",
				"risk management", "communication", "problem solving", "stakeholder management",
			},
		},
	}
}

type seedCrosswalk struct {
	mosCode       string
	branch        string
	militaryTitle string
	civilianCodes []string
}

var seedCrosswalks = []seedCrosswalk{
	{"11B", "Army", "Infantryman", []string{"33-3051.00", "33-1012.00", "11-3051.00", "47-1011.00"}},
	{"92A", "Army", "Automated Logistical Specialist", []string{"13-1081.00", "43-5071.00", "11-3071.00"}},
	{"92Y", "Army", "Unit Supply Specialist", []string{"43-5071.00", "13-1081.00", "11-3071.00"}},
	{"15T", "Army", "UH-60 Helicopter Repairer", []string{"49-9021.00", "17-2141.00", "51-4041.00"}},
	{"25B", "Army", "Information Technology Specialist", []string{"15-1232.00", "15-1212.00", "15-1211.00", "15-1251.00"}},
	{"25S", "Army", "Satellite Communication Systems Operator", []string{"15-1232.00", "15-1212.00", "15-1211.00"}},
	{"68W", "Army", "Combat Medic Specialist", []string{"29-2042.00", "11-9111.00"}},
	{"91B", "Army", "Wheeled Vehicle Mechanic", []string{"49-9021.00", "51-4041.00", "47-2111.00"}},
	{"IT", "Navy", "Information Systems Technician", []string{"15-1232.00", "15-1212.00", "15-1211.00", "15-1251.00"}},
	{"MM", "Navy", "Machinist's Mate", []string{"51-4041.00", "17-2141.00", "51-8013.00"}},
	{"HM", "Navy", "Hospital Corpsman", []string{"29-2042.00", "11-9111.00"}},
	{"LS", "Navy", "Logistics Specialist", []string{"13-1081.00", "43-5071.00", "11-3071.00"}},
	{"3D0X2", "Air Force", "Cyber Systems Operations", []string{"15-1212.00", "15-1232.00", "15-1211.00"}},
	{"2A6X1", "Air Force", "Aerospace Propulsion", []string{"17-2141.00", "49-9021.00", "51-4041.00"}},
	{"2T2X1", "Air Force", "Air Transportation", []string{"13-1081.00", "11-3071.00", "43-5071.00"}},
	{"0311", "Marine Corps", "Rifleman", []string{"33-3051.00", "33-1012.00", "11-3051.00"}},
	{"0621", "Marine Corps", "Field Radio Operator", []string{"15-1232.00", "15-1212.00"}},
	{"0481", "Marine Corps", "Landing Support Specialist", []string{"13-1081.00", "11-3071.00", "43-5071.00"}},
	{"3521", "Marine Corps", "Automotive Maintenance Technician", []string{"49-9021.00", "51-4041.00"}},
}

// SeedCrosswalk returns the built-in military-to-civilian crosswalk entries.
// The first civilian code listed for a MOS carries the strongest match.
func SeedCrosswalk() []CrosswalkEntry {
	out := make([]CrosswalkEntry, 0, len(seedCrosswalks)*3)
	for _, entry := range seedCrosswalks {
		for i, code := range entry.civilianCodes {
			strength := 5 - i
			if strength < 1 {
				strength = 1
			}
			out = append(out, CrosswalkEntry{
				MOSCode:                entry.mosCode,
				Branch:                 entry.branch,
				MilitaryTitle:          entry.militaryTitle,
				CivilianOccupationCode: code,
				MatchStrength:          strength,
			})
		}
	}
	return out
}

// NewSeededMemoryRepo builds a MemoryRepo pre-populated with the seed catalog.
func NewSeededMemoryRepo() *MemoryRepo {
	repo := NewMemoryRepo()
	for _, record := range SeedOccupations() {
		repo.Put(record)
	}
	for _, entry := range SeedCrosswalk() {
		repo.PutCrosswalk(entry)
	}
	return repo
}
