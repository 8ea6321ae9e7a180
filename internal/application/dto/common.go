package dto

// ErrorResponse cuerpo de error HTTP. Message es corto y nunca incluye el error interno.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse respuesta simple de texto (GET /).
type MessageResponse struct {
	Message string `json:"message"`
}
