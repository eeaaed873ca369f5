package insights

import "time"

// SalaryRange is one role's salary band within an industry.
type SalaryRange struct {
	Role     string  `json:"role"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Median   float64 `json:"median"`
	Location string  `json:"location"`
}

// IndustryInsight is the generated market snapshot for a user's industry.
type IndustryInsight struct {
	UserID            string        `json:"-"`
	Industry          string        `json:"industry"`
	SalaryRanges      []SalaryRange `json:"salaryRanges"`
	GrowthRate        float64       `json:"growthRate"`
	DemandLevel       string        `json:"demandLevel"`
	TopSkills         []string      `json:"topSkills"`
	MarketOutlook     string        `json:"marketOutlook"`
	KeyTrends         []string      `json:"keyTrends"`
	RecommendedSkills []string      `json:"recommendedSkills"`
	LastUpdated       time.Time     `json:"lastUpdated"`
	NextUpdate        time.Time     `json:"nextUpdate"`
}

// refreshInterval is how far ahead NextUpdate is set at creation. The stored
// value is not consulted on reads: an existing row is returned as-is.
const refreshInterval = 7 * 24 * time.Hour
