package staking

import "github.com/alejandrodnm/betcard/internal/domain"

// Ledger es el acumulador run-scoped de saldos por casa. Se construye desde
// el snapshot externo al empezar el pase de sizing y cada stake asignado
// reserva (decrementa) el saldo restante, de modo que dos picks del mismo
// run nunca gastan dos veces los mismos fondos. Nunca es un singleton: un
// run, un Ledger.
type Ledger struct {
	start map[string]float64
	avail map[string]float64
}

// NewLedger crea un Ledger desde el snapshot de saldos.
func NewLedger(balances []domain.VenueBalance) *Ledger {
	l := &Ledger{
		start: make(map[string]float64, len(balances)),
		avail: make(map[string]float64, len(balances)),
	}
	for _, b := range balances {
		if b.Balance <= 0 {
			continue
		}
		l.start[b.Venue] += b.Balance
		l.avail[b.Venue] += b.Balance
	}
	return l
}

// Bankroll devuelve el bankroll total del snapshot (suma de saldos
// iniciales). No cambia durante el run: las unidades y el Kelly se calculan
// contra el snapshot, no contra lo que va quedando.
func (l *Ledger) Bankroll() float64 {
	total := 0.0
	for _, b := range l.start {
		total += b
	}
	return total
}

// Available devuelve el saldo restante de una casa en este run.
func (l *Ledger) Available(venue string) float64 {
	return l.avail[venue]
}

// Reserve descuenta amount del saldo restante de la casa. Devuelve false si
// no hay fondos suficientes (y no descuenta nada).
func (l *Ledger) Reserve(venue string, amount float64) bool {
	if amount <= 0 {
		return false
	}
	if l.avail[venue] < amount {
		return false
	}
	l.avail[venue] -= amount
	return true
}
