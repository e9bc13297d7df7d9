package dto

// ErrorResponse cuerpo de error HTTP. Message es opaco hacia el cliente: el
// detalle de errores de store/transporte se loggea server-side, nunca se filtra.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
