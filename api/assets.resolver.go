package api

import (
	"bytes"
	"findata/internal/domain"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gocarina/gocsv"
)

func (m ApiHandler) listAssets(c *gin.Context) {
	assets, err := m.AssetMetricsRepository.List(c.Request.Context())
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, assets)
}

func (m ApiHandler) exportAssets(c *gin.Context) {
	assets, err := m.AssetMetricsRepository.List(c.Request.Context())
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	buf := &bytes.Buffer{}
	if err := gocsv.Marshal(assets, buf); err != nil {
		returnErrorJson(fmt.Errorf("failed to encode csv: %w", err), c)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="asset_metrics.csv"`)
	c.Data(200, "text/csv; charset=utf-8", buf.Bytes())
}

func (m ApiHandler) getMetrics(c *gin.Context) {
	symbol := strings.TrimSpace(c.Param("symbol"))

	asset, err := m.AssetMetricsRepository.Get(c.Request.Context(), symbol)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, asset)
}

type compareAssetsResponse struct {
	Comparison map[string]domain.AssetMetrics `json:"comparison"`
}

func (m ApiHandler) compareAssets(c *gin.Context) {
	ctx := c.Request.Context()
	asset1 := strings.TrimSpace(c.Query("asset1"))
	asset2 := strings.TrimSpace(c.Query("asset2"))
	if asset1 == "" || asset2 == "" {
		returnErrorJsonCode(fmt.Errorf("asset1 and asset2 are required"), c, 400)
		return
	}

	out := compareAssetsResponse{
		Comparison: map[string]domain.AssetMetrics{},
	}
	for _, symbol := range []string{asset1, asset2} {
		asset, err := m.AssetMetricsRepository.Get(ctx, symbol)
		if err != nil {
			returnErrorJson(fmt.Errorf("one or both assets not found: %w", err), c)
			return
		}
		out.Comparison[symbol] = *asset
	}

	c.JSON(200, out)
}
