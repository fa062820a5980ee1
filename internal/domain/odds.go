package domain

// odds.go — aritmética de odds americanos.
//
// Todo el core trabaja con odds americanos porque es la notación del feed:
// negativos = favorito (lo que arriesgas para ganar 100), positivos =
// underdog (lo que ganas por cada 100).

import (
	"math"
	"strconv"
	"strings"
)

// DefaultPrice es el precio conservador que se asume cuando una cotización
// llega vacía o malformada (vig estándar). Asumir -110 en vez de fallar
// evita que un gap de parsing infle el profit proyectado.
const DefaultPrice = -110

// ParseAmerican parsea odds americanos desde el string crudo del feed.
// Acepta "+145", "-110", "145". Devuelve ok=false para vacío, no numérico
// o cero (cero no es un precio válido en notación americana).
func ParseAmerican(raw string) (int, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	s = strings.TrimPrefix(s, "+")
	odds, err := strconv.Atoi(s)
	if err != nil || odds == 0 {
		return 0, false
	}
	return odds, true
}

// ParseAmericanOrDefault parsea el precio crudo, cayendo a DefaultPrice si
// no es parseable.
func ParseAmericanOrDefault(raw string) int {
	if odds, ok := ParseAmerican(raw); ok {
		return odds
	}
	return DefaultPrice
}

// ToDecimal convierte odds americanos a decimales.
// +150 → 2.50, -200 → 1.50. Cero (inválido) devuelve 0.
func ToDecimal(american int) float64 {
	switch {
	case american > 0:
		return 1.0 + float64(american)/100.0
	case american < 0:
		return 1.0 + 100.0/math.Abs(float64(american))
	default:
		return 0
	}
}

// ImpliedProbability devuelve la probabilidad implícita (en %) de unas odds
// decimales. Inputs no positivos devuelven 0.
func ImpliedProbability(decimal float64) float64 {
	if decimal <= 0 {
		return 0
	}
	return 100.0 / decimal
}

// Profit devuelve la ganancia neta de una apuesta ganada.
// +150: wager×1.5; -110: wager×(100/110). Odds cero devuelven 0.
func Profit(wager float64, american int) float64 {
	switch {
	case american > 0:
		return wager * float64(american) / 100.0
	case american < 0:
		return wager * 100.0 / math.Abs(float64(american))
	default:
		return 0
	}
}

// CentsBetween devuelve la distancia en cents entre dos precios americanos,
// positiva cuando a es mejor que b para el apostador. La escala elimina el
// salto ±100 de la notación: -110→-10, +120→+20, así -105 vs +105 = 10¢.
func CentsBetween(a, b int) float64 {
	return centsValue(a) - centsValue(b)
}

func centsValue(american int) float64 {
	if american > 0 {
		return float64(american - 100)
	}
	return float64(american + 100)
}
