package httpHandler

import (
	"net/http"

	"starwars-api/usecases"

	"github.com/gin-gonic/gin"
)

// GetAllPlanets handles GET /planet
func (h *CatalogHandler) GetAllPlanets(c *gin.Context) {
	planets, err := h.useCase.ListPlanets(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, planets)
}

// GetPlanet handles GET /planet/:id
func (h *CatalogHandler) GetPlanet(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	planet, err := h.useCase.GetPlanet(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, planet)
}

// CreatePlanet handles POST /planet
func (h *CatalogHandler) CreatePlanet(c *gin.Context) {
	var in usecases.CreatePlanetInput
	if err := bindJSON(c, &in); err != nil {
		respondError(c, err)
		return
	}

	planet, err := h.useCase.CreatePlanet(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, planet)
}
