package httpHandler

import (
	"net/http"

	"starwars-api/usecases"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	useCase *usecases.UserUseCase
}

func NewUserHandler(useCase *usecases.UserUseCase) *UserHandler {
	return &UserHandler{
		useCase: useCase,
	}
}

// GetAllUsers handles GET /user
func (h *UserHandler) GetAllUsers(c *gin.Context) {
	users, err := h.useCase.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// CreateUser handles POST /user
func (h *UserHandler) CreateUser(c *gin.Context) {
	var in usecases.CreateUserInput
	if err := bindJSON(c, &in); err != nil {
		respondError(c, err)
		return
	}

	user, err := h.useCase.CreateUser(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// EditUser handles PUT /user/:id
func (h *UserHandler) EditUser(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	// an unknown user is reported before the body is looked at
	if _, err := h.useCase.GetUser(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	var in usecases.EditUserInput
	if err := bindJSON(c, &in); err != nil {
		respondError(c, err)
		return
	}

	user, err := h.useCase.EditUser(c.Request.Context(), id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
