package interfaces

// KeywordService is the read-only sector/stock keyword lookup table loaded at
// startup. Implementations are immutable for the process lifetime.
type KeywordService interface {
	// SectorNames returns all configured sector names in stable order
	SectorNames() []string

	// SectorKeywords returns the search phrases for a sector; ok is false when
	// the sector is not configured
	SectorKeywords(sector string) (keywords []string, ok bool)

	// StockKeywords returns the search phrases for a stock within a sector;
	// ok is false when the stock is not configured for that sector
	StockKeywords(sector, stock string) (keywords []string, ok bool)

	// StocksForSector returns the configured stock names for a sector in
	// stable order (empty when the sector has no stock map)
	StocksForSector(sector string) []string

	// MarketKeywords returns the fixed market keyword group AND-combined with
	// every entity query
	MarketKeywords() []string
}
