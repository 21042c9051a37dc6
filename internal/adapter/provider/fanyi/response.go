package fanyi

// apiResponse is the body of /index/search. Only data.fanyi is used.
type apiResponse struct {
	Data *apiData `json:"data"`
}

type apiData struct {
	Fanyi *string `json:"fanyi"`
}
