package predictor

const (
	MinAQI = 0
	MaxAQI = 500
)

// Category is one band of the US EPA AQI scale.
type Category struct {
	Name                 string
	MinAQI               int
	MaxAQI               int
	HealthImplications   string
	CautionaryStatements string
}

var categories = []Category{
	{
		Name:                 "Good",
		MinAQI:               0,
		MaxAQI:               50,
		HealthImplications:   "Air quality is satisfactory, and air pollution poses little or no risk.",
		CautionaryStatements: "None.",
	},
	{
		Name:                 "Moderate",
		MinAQI:               51,
		MaxAQI:               100,
		HealthImplications:   "Air quality is acceptable; however, for some pollutants there may be a moderate health concern for a very small number of people who are unusually sensitive to air pollution.",
		CautionaryStatements: "Active children and adults, and people with respiratory disease, such as asthma, should limit prolonged outdoor exertion.",
	},
	{
		Name:                 "Unhealthy for Sensitive Groups",
		MinAQI:               101,
		MaxAQI:               150,
		HealthImplications:   "Members of sensitive groups may experience health effects. The general public is not likely to be affected.",
		CautionaryStatements: "Active children and adults, and people with respiratory disease, such as asthma, should avoid prolonged outdoor exertion; everyone else, especially children, should limit prolonged outdoor exertion.",
	},
	{
		Name:                 "Unhealthy",
		MinAQI:               151,
		MaxAQI:               200,
		HealthImplications:   "Everyone may begin to experience health effects; members of sensitive groups may experience more serious health effects.",
		CautionaryStatements: "Active children and adults, and people with respiratory disease, such as asthma, should avoid all outdoor exertion; everyone else, especially children, should limit outdoor exertion.",
	},
	{
		Name:                 "Very Unhealthy",
		MinAQI:               201,
		MaxAQI:               300,
		HealthImplications:   "Health warnings of emergency conditions. The entire population is more likely to be affected.",
		CautionaryStatements: "Everyone should avoid all outdoor exertion.",
	},
	{
		Name:                 "Hazardous",
		MinAQI:               301,
		MaxAQI:               500,
		HealthImplications:   "Health alert: everyone may experience more serious health effects.",
		CautionaryStatements: "Everyone should avoid all outdoor exertion.",
	},
}

// Categorize returns the band containing aqi. Values above the scale fall
// into the last band and negative values into the first.
func Categorize(aqi int) Category {
	for _, c := range categories {
		if aqi <= c.MaxAQI {
			return c
		}
	}
	return categories[len(categories)-1]
}

// Recommendations lists the health guidance for a band.
func (c Category) Recommendations() []string {
	recs := []string{c.HealthImplications}
	if c.CautionaryStatements != "None." {
		recs = append(recs, c.CautionaryStatements)
	}
	return recs
}
