package clarifai

type outputsRequest struct {
	Inputs []input `json:"inputs"`
}

type input struct {
	Data inputData `json:"data"`
}

type inputData struct {
	Image inputImage `json:"image"`
}

type inputImage struct {
	Base64 string `json:"base64"`
}

type outputsResponse struct {
	Outputs []output `json:"outputs"`
}

type output struct {
	Data outputData `json:"data"`
}

type outputData struct {
	Concepts []concept `json:"concepts"`
}

type concept struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}
