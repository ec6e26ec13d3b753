package dto

// Valores de "status" en el sobre de respuesta.
const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// MessageResponse respuesta de operaciones que solo informan el resultado.
type MessageResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ErrorResponse cuerpo de error HTTP 500 (fallas no esperadas).
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
