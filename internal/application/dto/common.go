package dto

// DefaultPageSize tamaño de página cuando el caller no lo especifica.
const DefaultPageSize = 10

// MaxPageSize tope de tamaño de página.
const MaxPageSize = 100

// PageRequest paginación para listados (offset-based: skip = (page-1)*limit).
type PageRequest struct {
	Page  int `query:"page" validate:"min=1"`
	Limit int `query:"limit" validate:"min=1,max=100"`
}

// Normalize aplica valores por defecto: page >= 1, limit en [1, MaxPageSize].
func (p *PageRequest) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = DefaultPageSize
	}
	if p.Limit > MaxPageSize {
		p.Limit = MaxPageSize
	}
}

// Offset devuelve el desplazamiento para la consulta.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
