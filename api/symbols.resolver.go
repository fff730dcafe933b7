package api

import (
	"github.com/gin-gonic/gin"
)

type allSymbolsResponse struct {
	Symbols []string `json:"symbols"`
}

func (m ApiHandler) allSymbols(c *gin.Context) {
	c.JSON(200, allSymbolsResponse{
		Symbols: m.RegistryService.List(),
	})
}

type addSymbolRequest struct {
	Symbol string `json:"symbol"`
}

type addSymbolResponse struct {
	Message string   `json:"message"`
	Symbols []string `json:"symbols"`
}

// addSymbol accepts ?symbol=X or a JSON body
func (m ApiHandler) addSymbol(c *gin.Context) {
	symbol := c.Query("symbol")
	if symbol == "" && c.Request.ContentLength != 0 {
		var requestBody addSymbolRequest
		if err := c.ShouldBindJSON(&requestBody); err != nil {
			returnErrorJsonCode(err, c, 400)
			return
		}
		symbol = requestBody.Symbol
	}

	symbols, err := m.RegistryService.Add(c.Request.Context(), symbol)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, addSymbolResponse{
		Message: "symbol added successfully",
		Symbols: symbols,
	})
}
