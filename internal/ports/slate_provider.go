package ports

import (
	"context"

	"github.com/alejandrodnm/betcard/internal/domain"
)

// SlateProvider entrega el pool de candidatos analizados y el snapshot de
// saldos por casa. El análisis (veredictos, probabilidades, best venue)
// ocurre fuera: el core lo consume read-only y nunca muta un veredicto.
type SlateProvider interface {
	// Candidates devuelve el pool del día.
	Candidates(ctx context.Context) ([]domain.Candidate, error)

	// Balances devuelve el snapshot de saldos por casa.
	Balances(ctx context.Context) ([]domain.VenueBalance, error)
}
