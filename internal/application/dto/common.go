package dto

// ErrorResponse corpo padrão de erro HTTP.
type ErrorResponse struct {
	Status    int    `json:"status"`
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"`
}

// FieldMessage violação de validação de um campo.
type FieldMessage struct {
	FieldName string `json:"fieldName"`
	Message   string `json:"message"`
}

// ValidationErrorResponse erro de validação com as violações por campo.
type ValidationErrorResponse struct {
	Status    int            `json:"status"`
	Message   string         `json:"message"`
	Timestamp int64          `json:"timestamp"`
	Errors    []FieldMessage `json:"errors"`
}

// MensagemDTO corpo mínimo {"message": ...} usado pelo filtro de autenticação.
type MensagemDTO struct {
	Message string `json:"message"`
}
