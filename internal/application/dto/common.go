package dto

// Response sobre uniforme de las operaciones de servicio.
// El status replica el código HTTP que la capa externa va a devolver.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message,omitempty"`
	Data       any    `json:"data,omitempty"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
