package model

// Stats summarises a collection of school records.
type Stats struct {
	Total            int            `json:"total"`
	Verified         int            `json:"verified"`
	Pending          int            `json:"pending"`
	Unverified       int            `json:"unverified"`
	Rejected         int            `json:"rejected"`
	PublicSchools    int            `json:"public_schools"`
	PrivateSchools   int            `json:"private_schools"`
	VerificationRate int            `json:"verification_rate"`
	ByDistrict       map[string]int `json:"by_district"`
	ByProvince       map[string]int `json:"by_province"`
	ByEducationLevel map[string]int `json:"by_education_level"`
}

// ChartPoint is a single labelled value for chart rendering.
type ChartPoint struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}
