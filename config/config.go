package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/alejandrodnm/betcard/internal/domain"
)

// Config es la configuración completa del builder de cartas.
type Config struct {
	Card    CardConfig    `yaml:"card"`
	Staking StakingConfig `yaml:"staking"`
	Edges   EdgesConfig   `yaml:"edges"`
	Slate   SlateConfig   `yaml:"slate"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
}

// CardConfig controla la selección de la carta diaria.
type CardConfig struct {
	SlotCap         int     `yaml:"slot_cap"`
	JuiceCeiling    int     `yaml:"juice_ceiling"`    // veto: favoritos más allá de -N
	WindowHours     float64 `yaml:"window_hours"`     // 0 = sin ventana de kickoff
	IntervalSeconds int     `yaml:"interval_seconds"` // cadencia del rebuild
}

// StakingConfig controla el sizing de stakes.
type StakingConfig struct {
	Mode            string  `yaml:"mode"` // tiered | kelly
	UnitPercent     float64 `yaml:"unit_percent"`
	KellyMultiplier float64 `yaml:"kelly_multiplier"`
	KellyMaxPercent float64 `yaml:"kelly_max_percent"`
	AltFloorCents   float64 `yaml:"alt_floor_cents"`
}

// EdgesConfig define los floors de puntos por "deporte.mercado". Las keys
// que no aparecen usan los defaults; añadir un deporte nuevo es aditivo,
// nunca un condicional más en el código.
type EdgesConfig struct {
	Premium  map[string]float64 `yaml:"premium"`
	Standard map[string]float64 `yaml:"standard"`
}

// SlateConfig apunta a los archivos que produce el análisis externo.
type SlateConfig struct {
	Candidates string `yaml:"candidates"`
	Bankroll   string `yaml:"bankroll"`
}

// StorageConfig controla dónde se persiste el histórico.
type StorageConfig struct {
	DSN string `yaml:"dsn"` // ruta al archivo SQLite, o ":memory:"
}

// LogConfig controla el formato y nivel de logging.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug | info | warn | error
	Format string `yaml:"format"` // text | json
}

// Load carga la configuración desde el archivo YAML y el archivo .env si
// existe. Los valores del .env sobreescriben los del YAML para las keys que
// correspondan.
func Load(path string) (*Config, error) {
	// Cargar .env si existe (silencia error si no hay archivo)
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config.Load: read %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config.Load: parse YAML: %w", err)
	}

	applyEnvOverrides(&cfg)
	setDefaults(&cfg)

	return &cfg, nil
}

// RebuildInterval devuelve la cadencia de rebuild como time.Duration.
func (c *Config) RebuildInterval() time.Duration {
	return time.Duration(c.Card.IntervalSeconds) * time.Second
}

// FloorTable materializa la tabla de floors: defaults más los overrides del
// YAML. Una key malformada ("basketball" sin mercado) se ignora — la tabla
// degrada a lo conservador, nunca rompe el arranque.
func (c *Config) FloorTable() domain.FloorTable {
	table := domain.DefaultFloorTable()
	applyFloors(table.Premium, c.Edges.Premium)
	applyFloors(table.Standard, c.Edges.Standard)
	return table
}

func applyFloors(dst map[domain.FloorKey]float64, overrides map[string]float64) {
	for key, points := range overrides {
		sport, market, ok := strings.Cut(key, ".")
		if !ok || points <= 0 {
			continue
		}
		dst[domain.FloorKey{
			Sport:  domain.Sport(sport),
			Market: domain.MarketType(market),
		}] = points
	}
}

// applyEnvOverrides sobreescribe valores con variables de entorno si están
// presentes.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv("BETCARD_DSN"); v != "" {
		cfg.Storage.DSN = v
	}
}

// setDefaults asegura que los valores requeridos tengan valores sensatos.
func setDefaults(cfg *Config) {
	if cfg.Card.SlotCap <= 0 {
		cfg.Card.SlotCap = 5
	}
	if cfg.Card.JuiceCeiling <= 0 {
		cfg.Card.JuiceCeiling = 160
	}
	if cfg.Card.IntervalSeconds <= 0 {
		cfg.Card.IntervalSeconds = 300
	}
	if cfg.Staking.Mode == "" {
		cfg.Staking.Mode = "tiered"
	}
	if cfg.Staking.UnitPercent <= 0 {
		cfg.Staking.UnitPercent = 2.0
	}
	if cfg.Staking.KellyMultiplier <= 0 {
		cfg.Staking.KellyMultiplier = 0.25
	}
	if cfg.Staking.KellyMaxPercent <= 0 {
		cfg.Staking.KellyMaxPercent = 5.0
	}
	if cfg.Staking.AltFloorCents <= 0 {
		cfg.Staking.AltFloorCents = 10
	}
	if cfg.Slate.Candidates == "" {
		cfg.Slate.Candidates = "slate.json"
	}
	if cfg.Slate.Bankroll == "" {
		cfg.Slate.Bankroll = "bankroll.json"
	}
	if cfg.Storage.DSN == "" {
		cfg.Storage.DSN = "betcard.db"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
}
