package httpHandler

import (
	"net/http"

	"starwars-api/usecases"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves people and planets.
type CatalogHandler struct {
	useCase *usecases.CatalogUseCase
}

func NewCatalogHandler(useCase *usecases.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{
		useCase: useCase,
	}
}

// GetAllPeople handles GET /people
func (h *CatalogHandler) GetAllPeople(c *gin.Context) {
	people, err := h.useCase.ListPeople(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, people)
}

// GetPeople handles GET /people/:id
func (h *CatalogHandler) GetPeople(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	people, err := h.useCase.GetPeople(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, people)
}

// CreatePeople handles POST /people
func (h *CatalogHandler) CreatePeople(c *gin.Context) {
	var in usecases.CreatePeopleInput
	if err := bindJSON(c, &in); err != nil {
		respondError(c, err)
		return
	}

	people, err := h.useCase.CreatePeople(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, people)
}
