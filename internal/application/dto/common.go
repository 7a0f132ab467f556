package dto

// ErrorResponse corpo de erro HTTP. Errors carrega as mensagens por campo nas
// falhas de validação.
type ErrorResponse struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}
