package domain

type SubjectStats struct {
	Subject  string  `json:"subject"`
	Count    int     `json:"count"`
	AvgMarks float64 `json:"avgMarks"`
	Median   float64 `json:"median"`
	StdDev   float64 `json:"stdDev"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
}
