package model

type StateOption struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

var stateOptions = []StateOption{
	{Code: "AL", Name: "Alabama"},
	{Code: "AK", Name: "Alaska"},
	{Code: "AZ", Name: "Arizona"},
	{Code: "AR", Name: "Arkansas"},
	{Code: "CA", Name: "California"},
	{Code: "CO", Name: "Colorado"},
	{Code: "CT", Name: "Connecticut"},
	{Code: "DE", Name: "Delaware"},
	{Code: "DC", Name: "District of Columbia"},
	{Code: "FL", Name: "Florida"},
	{Code: "GA", Name: "Georgia"},
	{Code: "HI", Name: "Hawaii"},
	{Code: "ID", Name: "Idaho"},
	{Code: "IL", Name: "Illinois"},
	{Code: "IN", Name: "Indiana"},
	{Code: "IA", Name: "Iowa"},
	{Code: "KS", Name: "Kansas"},
	{Code: "KY", Name: "Kentucky"},
	{Code: "LA", Name: "Louisiana"},
	{Code: "ME", Name: "Maine"},
	{Code: "MD", Name: "Maryland"},
	{Code: "MA", Name: "Massachusetts"},
	{Code: "MI", Name: "Michigan"},
	{Code: "MN", Name: "Minnesota"},
	{Code: "MS", Name: "Mississippi"},
	{Code: "MO", Name: "Missouri"},
	{Code: "MT", Name: "Montana"},
	{Code: "NE", Name: "Nebraska"},
	{Code: "NV", Name: "Nevada"},
	{Code: "NH", Name: "New Hampshire"},
	{Code: "NJ", Name: "New Jersey"},
	{Code: "NM", Name: "New Mexico"},
	{Code: "NY", Name: "New York"},
	{Code: "NC", Name: "North Carolina"},
	{Code: "ND", Name: "North Dakota"},
	{Code: "OH", Name: "Ohio"},
	{Code: "OK", Name: "Oklahoma"},
	{Code: "OR", Name: "Oregon"},
	{Code: "PA", Name: "Pennsylvania"},
	{Code: "RI", Name: "Rhode Island"},
	{Code: "SC", Name: "South Carolina"},
	{Code: "SD", Name: "South Dakota"},
	{Code: "TN", Name: "Tennessee"},
	{Code: "TX", Name: "Texas"},
	{Code: "UT", Name: "Utah"},
	{Code: "VT", Name: "Vermont"},
	{Code: "VA", Name: "Virginia"},
	{Code: "WA", Name: "Washington"},
	{Code: "WV", Name: "West Virginia"},
	{Code: "WI", Name: "Wisconsin"},
	{Code: "WY", Name: "Wyoming"},
	{Code: "AS", Name: "American Samoa"},
	{Code: "GU", Name: "Guam"},
	{Code: "MP", Name: "Northern Mariana Islands"},
	{Code: "PR", Name: "Puerto Rico"},
	{Code: "VI", Name: "U.S. Virgin Islands"},
	{Code: "AA", Name: "Armed Forces Americas"},
	{Code: "AE", Name: "Armed Forces Europe"},
	{Code: "AP", Name: "Armed Forces Pacific"},
}

var stateCodes = func() map[string]struct{} {
	codes := make(map[string]struct{}, len(stateOptions))
	for _, opt := range stateOptions {
		codes[opt.Code] = struct{}{}
	}
	return codes
}()

// StateOptions returns a copy of the ordered state/territory table.
func StateOptions() []StateOption {
	out := make([]StateOption, len(stateOptions))
	copy(out, stateOptions)
	return out
}

// IsStateCode reports whether code is an exact, case-sensitive entry in the table.
func IsStateCode(code string) bool {
	_, ok := stateCodes[code]
	return ok
}
