package keywords

import (
	"fmt"
	"os"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/marketpulse/internal/common"
)

// Service is the immutable sector/stock keyword lookup table, loaded once at
// startup from the embedded defaults or a TOML override file.
type Service struct {
	sectors     map[string]*sectorEntry
	sectorOrder []string
	market      []string
	logger      arbor.ILogger
}

// tomlSector mirrors one [sectors.<name>] block in a keyword override file
type tomlSector struct {
	Keywords []string            `toml:"keywords"`
	Stocks   map[string][]string `toml:"stocks"`
}

// tomlTable mirrors a keyword override file
type tomlTable struct {
	MarketKeywords []string              `toml:"market_keywords"`
	Sectors        map[string]tomlSector `toml:"sectors"`
}

// NewService builds the keyword table. When cfg.Keywords.File is set, the
// file replaces the embedded table entirely; otherwise the embedded defaults
// are used.
func NewService(cfg *common.Config, logger arbor.ILogger) (*Service, error) {
	if logger == nil {
		logger = common.GetLogger()
	}

	svc := &Service{
		sectors:     defaultTable,
		sectorOrder: sectorOrder,
		market:      marketKeywords,
		logger:      logger,
	}

	if cfg.Keywords.File != "" {
		if err := svc.loadOverride(cfg.Keywords.File); err != nil {
			return nil, fmt.Errorf("failed to load keyword file %s: %w", cfg.Keywords.File, err)
		}
	}

	for name, entry := range svc.sectors {
		if len(entry.Keywords) == 0 {
			return nil, fmt.Errorf("sector %q has no keywords configured", name)
		}
	}

	logger.Info().
		Int("sectors", len(svc.sectors)).
		Int("market_keywords", len(svc.market)).
		Bool("override", cfg.Keywords.File != "").
		Msg("Keyword table loaded")

	return svc, nil
}

func (s *Service) loadOverride(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var table tomlTable
	if err := toml.Unmarshal(data, &table); err != nil {
		return err
	}
	if len(table.Sectors) == 0 {
		return fmt.Errorf("keyword file defines no sectors")
	}

	sectors := make(map[string]*sectorEntry, len(table.Sectors))
	order := make([]string, 0, len(table.Sectors))
	for name, sec := range table.Sectors {
		entry := &sectorEntry{Keywords: sec.Keywords, Stocks: sec.Stocks}
		for stock := range sec.Stocks {
			entry.stockOrder = append(entry.stockOrder, stock)
		}
		sort.Strings(entry.stockOrder) // TOML maps have no order; keep dropdowns stable
		sectors[name] = entry
		order = append(order, name)
	}
	sort.Strings(order)

	s.sectors = sectors
	s.sectorOrder = order
	if len(table.MarketKeywords) > 0 {
		s.market = table.MarketKeywords
	}
	return nil
}

// SectorNames returns all configured sector names in stable order
func (s *Service) SectorNames() []string {
	out := make([]string, len(s.sectorOrder))
	copy(out, s.sectorOrder)
	return out
}

// SectorKeywords returns the search phrases for a sector
func (s *Service) SectorKeywords(sector string) ([]string, bool) {
	entry, ok := s.sectors[sector]
	if !ok {
		return nil, false
	}
	return entry.Keywords, true
}

// StockKeywords returns the search phrases for a stock within a sector
func (s *Service) StockKeywords(sector, stock string) ([]string, bool) {
	entry, ok := s.sectors[sector]
	if !ok || entry.Stocks == nil {
		return nil, false
	}
	kw, ok := entry.Stocks[stock]
	return kw, ok
}

// StocksForSector returns the configured stock names for a sector in stable order
func (s *Service) StocksForSector(sector string) []string {
	entry, ok := s.sectors[sector]
	if !ok {
		return nil
	}
	out := make([]string, len(entry.stockOrder))
	copy(out, entry.stockOrder)
	return out
}

// MarketKeywords returns the fixed market keyword group
func (s *Service) MarketKeywords() []string {
	out := make([]string, len(s.market))
	copy(out, s.market)
	return out
}
