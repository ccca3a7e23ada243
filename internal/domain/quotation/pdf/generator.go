package pdf

import "obiene/quotation_backend/internal/domain/quotation"

type Generator interface {
	Generate(rec quotation.Record) ([]byte, error)
}
