package model

type AnalyzeRequestBody struct {
	Notes       []string `json:"notes"`
	PreferFlats *bool    `json:"prefer_flats"`
}

type AnalyzeResponse struct {
	Result
	Text         string   `json:"text"`
	Alternatives []string `json:"alternatives,omitempty"`
}

type TemplateResponse struct {
	Quality   string   `json:"quality"`
	Symbol    string   `json:"symbol"`
	Intervals []int    `json:"intervals"`
	Names     []string `json:"names"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
