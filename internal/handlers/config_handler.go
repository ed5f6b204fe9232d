package handlers

import (
	"net/http"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/marketpulse/internal/common"
	"github.com/ternarybob/marketpulse/internal/interfaces"
)

// ConfigHandler serves the UI bootstrap payload: which sectors and stocks can
// be selected, plus the system date for the date picker default.
type ConfigHandler struct {
	keywords interfaces.KeywordService
	logger   arbor.ILogger

	// now is replaceable in tests
	now func() time.Time
}

func NewConfigHandler(keywords interfaces.KeywordService, logger arbor.ILogger) *ConfigHandler {
	if logger == nil {
		logger = common.GetLogger()
	}
	return &ConfigHandler{
		keywords: keywords,
		logger:   logger,
		now:      time.Now,
	}
}

// ConfigResponse is the UI bootstrap payload
type ConfigResponse struct {
	Sectors      []string            `json:"sectors"`
	SectorStocks map[string][]string `json:"sector_stocks"`
	SystemDate   string              `json:"system_date"` // YYYY-MM-DD
}

// GetConfig returns the selectable sectors, their stocks and the system date
func (h *ConfigHandler) GetConfig(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	sectors := h.keywords.SectorNames()
	sectorStocks := make(map[string][]string, len(sectors))
	for _, sector := range sectors {
		if stocks := h.keywords.StocksForSector(sector); len(stocks) > 0 {
			sectorStocks[sector] = stocks
		}
	}

	WriteJSON(w, http.StatusOK, ConfigResponse{
		Sectors:      sectors,
		SectorStocks: sectorStocks,
		SystemDate:   h.now().Format("2006-01-02"),
	})
}
