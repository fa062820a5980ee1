package ports

import (
	"context"
	"time"

	"github.com/alejandrodnm/betcard/internal/domain"
)

// Storage persiste el histórico de cartas construidas.
type Storage interface {
	// SaveCard persiste el resultado de un build.
	SaveCard(ctx context.Context, card domain.Card) error

	// GetHistory devuelve los runs registrados en el rango de tiempo dado.
	GetHistory(ctx context.Context, from, to time.Time) ([]domain.Card, error)

	// Close cierra la conexión a la base de datos limpiamente.
	Close() error
}
