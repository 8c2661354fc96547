package api

import (
	"errors"
	"net/http"

	resdto "tidybook/internal/handler/dto/response"
	"tidybook/internal/handler/httperr"
	"tidybook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogQueries queries.CatalogQueries
}

func NewCatalogHandler(catalogQueries queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{
		catalogQueries: catalogQueries,
	}
}

// @Summary List services
// @Description List every cleaning service in the catalog, disabled ones included
// @Tags services
// @Produce json
// @Success 200 {array} resdto.ServiceListResponse
// @Failure 500 {object} httperr.Response
// @Router /services [get]
func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.catalogQueries.ListServices(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	response := make([]*resdto.ServiceListResponse, len(services))
	for i, svc := range services {
		response[i] = resdto.FromServiceListItem(svc)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Get service detail
// @Description Full configuration surface for one enabled service: items, time windows, recurrence options
// @Tags services
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} resdto.ServiceResponse
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /services/{id} [get]
func (h *CatalogHandler) GetService(c *gin.Context) {
	svc, err := h.catalogQueries.GetService(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, queries.ErrServiceNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Service not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromServiceView(svc))
}
