package keywords

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ternarybob/marketpulse/internal/common"
)

func TestEmbeddedTable(t *testing.T) {
	svc, err := NewService(common.NewDefaultConfig(), nil)
	require.NoError(t, err)

	names := svc.SectorNames()
	assert.Len(t, names, 22)
	assert.Equal(t, "Nifty IT", names[0])

	kw, ok := svc.SectorKeywords("Nifty Bank")
	require.True(t, ok)
	assert.Contains(t, kw, "RBI")

	_, ok = svc.SectorKeywords("Nifty Crypto")
	assert.False(t, ok)

	market := svc.MarketKeywords()
	assert.Contains(t, market, "NSE")
	assert.Contains(t, market, "Indian economy")
}

func TestStockLookup(t *testing.T) {
	svc, err := NewService(common.NewDefaultConfig(), nil)
	require.NoError(t, err)

	kw, ok := svc.StockKeywords("Nifty IT", "Infosys")
	require.True(t, ok)
	assert.Contains(t, kw, "INFY")

	_, ok = svc.StockKeywords("Nifty IT", "Unknown Corp")
	assert.False(t, ok)

	// Sectors without a stock map report nothing configured
	_, ok = svc.StockKeywords("Nifty Media", "Zee Entertainment")
	assert.False(t, ok)

	stocks := svc.StocksForSector("Nifty IT")
	assert.Equal(t, []string{"Infosys", "TCS", "Wipro", "HCL Technologies", "Tech Mahindra"}, stocks)
	assert.Empty(t, svc.StocksForSector("Nifty Media"))
}

func TestOverrideFile(t *testing.T) {
	content := `
market_keywords = ["Australia", "ASX"]

[sectors."ASX Mining"]
keywords = ["mining Australia", "BHP", "Rio Tinto"]

[sectors."ASX Mining".stocks]
"BHP" = ["BHP", "BHP results"]

[sectors."ASX Banks"]
keywords = ["banking Australia", "CBA"]
`
	path := filepath.Join(t.TempDir(), "keywords.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg := common.NewDefaultConfig()
	cfg.Keywords.File = path

	svc, err := NewService(cfg, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"ASX Banks", "ASX Mining"}, svc.SectorNames())
	assert.Equal(t, []string{"Australia", "ASX"}, svc.MarketKeywords())

	kw, ok := svc.StockKeywords("ASX Mining", "BHP")
	require.True(t, ok)
	assert.Equal(t, []string{"BHP", "BHP results"}, kw)

	// The embedded table is fully replaced
	_, ok = svc.SectorKeywords("Nifty IT")
	assert.False(t, ok)
}

func TestOverrideFileRejectsEmptySector(t *testing.T) {
	content := `
[sectors."Empty Sector"]
keywords = []
`
	path := filepath.Join(t.TempDir(), "keywords.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg := common.NewDefaultConfig()
	cfg.Keywords.File = path

	_, err := NewService(cfg, nil)
	assert.Error(t, err)
}
