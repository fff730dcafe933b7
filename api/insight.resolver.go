package api

import (
	"github.com/gin-gonic/gin"
)

type summaryResponse struct {
	Summary string `json:"summary"`
}

func (m ApiHandler) summary(c *gin.Context) {
	summary, err := m.InsightService.Summary(c.Request.Context())
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, summaryResponse{
		Summary: summary,
	})
}

type analysisRequest struct {
	Question string   `json:"question"`
	Symbols  []string `json:"symbols"`
}

type analysisResponse struct {
	Analysis string `json:"analysis"`
}

func (m ApiHandler) analysis(c *gin.Context) {
	var requestBody analysisRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	analysis, err := m.InsightService.Analyze(c.Request.Context(), requestBody.Question, requestBody.Symbols)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, analysisResponse{
		Analysis: analysis,
	})
}
