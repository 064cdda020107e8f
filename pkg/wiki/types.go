package wiki

type queryResponse struct {
	Query struct {
		Pages []page `json:"pages"`
	} `json:"query"`
}

type page struct {
	Title     string         `json:"title"`
	Missing   bool           `json:"missing"`
	Extract   string         `json:"extract"`
	PageProps map[string]any `json:"pageprops"`
	Links     []pageLink     `json:"links"`
}

type pageLink struct {
	Title string `json:"title"`
}

func (p page) isDisambiguation() bool {
	_, ok := p.PageProps["disambiguation"]
	return ok
}
