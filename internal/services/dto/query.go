package dto

type QueryRequest struct {
	Query string `json:"query" validate:"required,max=2000"`
}

type QueryResponse struct {
	Response string `json:"response"`
}
