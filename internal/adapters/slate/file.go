// Package slate lee el pool de candidatos y el snapshot de bankroll desde
// los archivos JSON que produce el colaborador de análisis externo.
package slate

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/alejandrodnm/betcard/internal/domain"
)

// FileProvider implementa ports.SlateProvider sobre archivos locales.
type FileProvider struct {
	slatePath    string
	bankrollPath string
}

// NewFileProvider crea un provider que lee de las rutas dadas.
func NewFileProvider(slatePath, bankrollPath string) *FileProvider {
	return &FileProvider{slatePath: slatePath, bankrollPath: bankrollPath}
}

// slateFile es el envoltorio del archivo de candidatos.
type slateFile struct {
	GeneratedAt time.Time      `json:"generated_at"`
	Candidates  []candidateDTO `json:"candidates"`
}

type candidateDTO struct {
	ID             string     `json:"id"`
	Event          string     `json:"event"`
	Sport          string     `json:"sport"`
	Market         string     `json:"market"`
	Side           string     `json:"side"`
	Kickoff        time.Time  `json:"kickoff"`
	RefLine        float64    `json:"ref_line"`
	RefPrice       string     `json:"ref_price"`
	Decision       string     `json:"decision"`
	Confidence     string     `json:"confidence"`
	LinePoints     float64    `json:"line_points"`
	PriceCents     float64    `json:"price_cents"`
	WinProbability float64    `json:"win_probability"`
	BestVenue      string     `json:"best_venue"`
	Quotes         []quoteDTO `json:"quotes"`
}

type quoteDTO struct {
	Venue string  `json:"venue"`
	Line  float64 `json:"line"`
	Price string  `json:"price"`
}

// bankrollFile es el envoltorio del snapshot de saldos.
type bankrollFile struct {
	Balances []balanceDTO `json:"balances"`
}

type balanceDTO struct {
	Venue   string  `json:"venue"`
	Balance float64 `json:"balance"`
}

// Candidates lee y mapea el pool del día. Un candidato sin id recibe un
// UUID — los precios malformados NO son error aquí: el core los degrada
// con su propia política (-110 / exclusión).
func (p *FileProvider) Candidates(_ context.Context) ([]domain.Candidate, error) {
	data, err := os.ReadFile(p.slatePath)
	if err != nil {
		return nil, fmt.Errorf("slate.Candidates: read %q: %w", p.slatePath, err)
	}

	var file slateFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("slate.Candidates: parse %q: %w", p.slatePath, err)
	}

	candidates := make([]domain.Candidate, 0, len(file.Candidates))
	for _, dto := range file.Candidates {
		candidates = append(candidates, mapCandidate(dto))
	}
	return candidates, nil
}

// Balances lee el snapshot de saldos por casa.
func (p *FileProvider) Balances(_ context.Context) ([]domain.VenueBalance, error) {
	data, err := os.ReadFile(p.bankrollPath)
	if err != nil {
		return nil, fmt.Errorf("slate.Balances: read %q: %w", p.bankrollPath, err)
	}

	var file bankrollFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("slate.Balances: parse %q: %w", p.bankrollPath, err)
	}

	balances := make([]domain.VenueBalance, 0, len(file.Balances))
	for _, dto := range file.Balances {
		balances = append(balances, domain.VenueBalance{Venue: dto.Venue, Balance: dto.Balance})
	}
	return balances, nil
}

// mapCandidate convierte el DTO del feed al tipo de dominio.
func mapCandidate(dto candidateDTO) domain.Candidate {
	id := dto.ID
	if id == "" {
		id = uuid.New().String()
	}

	quotes := make([]domain.VenueQuote, 0, len(dto.Quotes))
	for _, q := range dto.Quotes {
		quotes = append(quotes, domain.VenueQuote{Venue: q.Venue, Line: q.Line, Price: q.Price})
	}

	return domain.Candidate{
		ID:             id,
		Event:          dto.Event,
		Sport:          domain.Sport(dto.Sport),
		Market:         domain.MarketType(dto.Market),
		Side:           dto.Side,
		Kickoff:        dto.Kickoff,
		RefLine:        dto.RefLine,
		RefPrice:       dto.RefPrice,
		Decision:       domain.Decision(dto.Decision),
		Confidence:     domain.Confidence(dto.Confidence),
		LinePoints:     dto.LinePoints,
		PriceCents:     dto.PriceCents,
		WinProbability: dto.WinProbability,
		BestVenue:      dto.BestVenue,
		Quotes:         quotes,
	}
}
