package inbound

type StateItem struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

type StatesResponse struct {
	States []StateItem `json:"states"`
}

type CitiesResponse struct {
	Cities []string `json:"cities"`
}
