package api

import (
	"findata/internal/domain"
	"findata/internal/logger"

	"github.com/gin-gonic/gin"
)

type ingestResponse struct {
	Message       string                  `json:"message"`
	AssetsUpdated int                     `json:"assets_updated"`
	Outcomes      []domain.RefreshOutcome `json:"outcomes"`
}

// ingest refreshes every tracked symbol
func (m ApiHandler) ingest(c *gin.Context) {
	ctx := c.Request.Context()
	profile, endProfile := domain.NewProfile()
	ctx = domain.ContextWithProfile(ctx, profile)

	result, err := m.RefreshService.Refresh(ctx, m.RegistryService.List())
	endProfile()
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	if bytes, err := profile.ToJsonBytes(); err == nil {
		logger.FromContext(ctx).Debugf("ingest profile: %s", string(bytes))
	}

	c.JSON(200, ingestResponse{
		Message:       "Data ingestion successful",
		AssetsUpdated: result.NumUpdated(),
		Outcomes:      result.Outcomes,
	})
}
