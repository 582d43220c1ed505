package response_models

type FilterOptions struct {
	Categories []string `json:"categories"`
	Regions    []string `json:"regions"`
	Wildcard   string   `json:"wildcard"`
}
