// Package risk analiza la carta ya seleccionada: concentración de riesgo y
// proyección de la distribución de resultados.
package risk

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alejandrodnm/betcard/internal/domain"
)

// Umbrales de concentración.
const (
	sportWarnPct  = 0.75
	marketMinPct  = 0.60
	marketWarnPct = 0.80
	sidesMinPct   = 0.75
	clusterMin    = 3
)

// AnalyzeConcentration escanea los picks activos buscando sobreexposición.
// Cada check es independiente y se evalúa en cada run; con menos de 2 picks
// no hay nada que concentrar. Stateless: mismo input, mismos warnings.
func AnalyzeConcentration(picks []domain.Pick) []domain.Warning {
	if len(picks) < 2 {
		return nil
	}

	var warnings []domain.Warning
	if w, ok := sportConcentration(picks); ok {
		warnings = append(warnings, w)
	}
	if w, ok := marketConcentration(picks); ok {
		warnings = append(warnings, w)
	}
	if w, ok := totalsDirection(picks); ok {
		warnings = append(warnings, w)
	}
	if w, ok := sidesDirection(picks); ok {
		warnings = append(warnings, w)
	}
	warnings = append(warnings, kickoffClusters(picks)...)
	return warnings
}

// sportConcentration: un deporte con más de la mitad de la carta y al menos
// 3 picks.
func sportConcentration(picks []domain.Pick) (domain.Warning, bool) {
	counts := map[string]int{}
	for _, p := range picks {
		counts[string(p.Sport)]++
	}
	sport, top := topCount(counts)
	n := len(picks)
	if top < 3 || top*2 <= n {
		return domain.Warning{}, false
	}

	sev := domain.SeverityCaution
	if float64(top) >= sportWarnPct*float64(n) {
		sev = domain.SeverityWarning
	}
	return domain.Warning{
		Kind:      "sport",
		Severity:  sev,
		Message:   fmt.Sprintf("%d of %d picks are %s", top, n, sport),
		Breakdown: breakdown(counts),
	}, true
}

// marketConcentration: un tipo de mercado con ≥60% de la carta y ≥3 picks.
func marketConcentration(picks []domain.Pick) (domain.Warning, bool) {
	counts := map[string]int{}
	for _, p := range picks {
		counts[string(p.Market)]++
	}
	market, top := topCount(counts)
	n := len(picks)
	if top < 3 || float64(top) < marketMinPct*float64(n) {
		return domain.Warning{}, false
	}

	sev := domain.SeverityCaution
	if float64(top) >= marketWarnPct*float64(n) {
		sev = domain.SeverityWarning
	}
	return domain.Warning{
		Kind:      "market",
		Severity:  sev,
		Message:   fmt.Sprintf("%d of %d picks are %s", top, n, market),
		Breakdown: breakdown(counts),
	}, true
}

// totalsDirection: todos los totales de la carta al mismo lado (todo Over o
// todo Under) con al menos 2.
func totalsDirection(picks []domain.Pick) (domain.Warning, bool) {
	overs, unders := 0, 0
	for _, p := range picks {
		if !p.IsTotal() {
			continue
		}
		if strings.EqualFold(p.Side, "over") {
			overs++
		} else {
			unders++
		}
	}
	totals := overs + unders
	if totals < 2 || (overs > 0 && unders > 0) {
		return domain.Warning{}, false
	}

	sev := domain.SeverityCaution
	if totals >= 3 {
		sev = domain.SeverityWarning
	}
	direction := "Over"
	if unders > 0 {
		direction = "Under"
	}
	return domain.Warning{
		Kind:      "totals-direction",
		Severity:  sev,
		Message:   fmt.Sprintf("every total on the card is %s", direction),
		Breakdown: fmt.Sprintf("Overs: %d, Unders: %d", overs, unders),
	}, true
}

// sidesDirection: entre los picks de spread/moneyline (≥3), una clase
// (favoritos o underdogs) con ≥75%.
func sidesDirection(picks []domain.Pick) (domain.Warning, bool) {
	favs, dogs := 0, 0
	for _, p := range picks {
		if p.Market != domain.MarketSpread && p.Market != domain.MarketMoneyline {
			continue
		}
		if p.BacksFavorite() {
			favs++
		} else {
			dogs++
		}
	}
	sides := favs + dogs
	if sides < 3 {
		return domain.Warning{}, false
	}

	top, class := favs, "favorites"
	if dogs > favs {
		top, class = dogs, "underdogs"
	}
	if top < 3 || float64(top) < sidesMinPct*float64(sides) {
		return domain.Warning{}, false
	}

	sev := domain.SeverityCaution
	if top == sides {
		sev = domain.SeverityWarning
	}
	return domain.Warning{
		Kind:      "sides-direction",
		Severity:  sev,
		Message:   fmt.Sprintf("%d of %d side picks back %s", top, sides, class),
		Breakdown: fmt.Sprintf("Favorites: %d, Underdogs: %d", favs, dogs),
	}, true
}

// kickoffClusters: una franja horaria con ≥3 picks. Informativo — no puedes
// reaccionar a resultados tempranos si todo arranca a la vez. La hora se
// agrupa en UTC para que el run sea independiente del timezone local.
func kickoffClusters(picks []domain.Pick) []domain.Warning {
	byHour := map[string][]string{}
	for _, p := range picks {
		hour := p.Kickoff.UTC().Format("15:00")
		byHour[hour] = append(byHour[hour], p.Event)
	}

	hours := make([]string, 0, len(byHour))
	for h := range byHour {
		hours = append(hours, h)
	}
	sort.Strings(hours)

	var warnings []domain.Warning
	for _, h := range hours {
		events := byHour[h]
		if len(events) < clusterMin {
			continue
		}
		warnings = append(warnings, domain.Warning{
			Kind:      "kickoff-cluster",
			Severity:  domain.SeverityInfo,
			Message:   fmt.Sprintf("%d picks kick off at %s UTC", len(events), h),
			Breakdown: fmt.Sprintf("%s UTC: %s", h, strings.Join(events, ", ")),
		})
	}
	return warnings
}

// topCount devuelve la clave con mayor cuenta; empate → la menor
// alfabéticamente, por determinismo.
func topCount(counts map[string]int) (string, int) {
	topKey, top := "", 0
	for k, c := range counts {
		if c > top || (c == top && k < topKey) {
			topKey, top = k, c
		}
	}
	return topKey, top
}

// breakdown serializa las cuentas por clave en orden descendente de cuenta
// (empate alfabético): "basketball: 4, hockey: 1".
func breakdown(counts map[string]int) string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s: %d", k, counts[k])
	}
	return strings.Join(parts, ", ")
}
