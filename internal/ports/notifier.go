package ports

import (
	"context"

	"github.com/alejandrodnm/betcard/internal/domain"
)

// Notifier presenta la carta construida al usuario.
type Notifier interface {
	// Notify muestra la carta: picks con stakes, warnings de concentración
	// y la tabla de escenarios. En consola imprime tablas formateadas.
	Notify(ctx context.Context, card domain.Card) error
}
