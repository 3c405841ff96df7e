package httpHandler

import (
	"net/http"

	"starwars-api/usecases"

	"github.com/gin-gonic/gin"
)

type FavoriteHandler struct {
	useCase *usecases.FavoriteUseCase
}

func NewFavoriteHandler(useCase *usecases.FavoriteUseCase) *FavoriteHandler {
	return &FavoriteHandler{
		useCase: useCase,
	}
}

// AddFavoritePlanet handles POST /favorite/planet/:planet_id
func (h *FavoriteHandler) AddFavoritePlanet(c *gin.Context) {
	planetID, err := pathID(c, "planet_id")
	if err != nil {
		respondError(c, err)
		return
	}

	var in usecases.AddFavoriteInput
	if err := bindJSON(c, &in); err != nil {
		respondError(c, err)
		return
	}

	fav, err := h.useCase.AddPlanet(c.Request.Context(), planetID, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, fav)
}

// AddFavoritePeople handles POST /favorite/people/:character_id
func (h *FavoriteHandler) AddFavoritePeople(c *gin.Context) {
	characterID, err := pathID(c, "character_id")
	if err != nil {
		respondError(c, err)
		return
	}

	var in usecases.AddFavoriteInput
	if err := bindJSON(c, &in); err != nil {
		respondError(c, err)
		return
	}

	fav, err := h.useCase.AddPeople(c.Request.Context(), characterID, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, fav)
}

// GetUserFavorites handles GET /user/favorites/:user_id
func (h *FavoriteHandler) GetUserFavorites(c *gin.Context) {
	userID, err := pathID(c, "user_id")
	if err != nil {
		respondError(c, err)
		return
	}

	favs, err := h.useCase.ListFavorites(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, favs)
}

// DeleteFavoritePlanet handles DELETE /user/favorites/:user_id/planet/:planet_id
func (h *FavoriteHandler) DeleteFavoritePlanet(c *gin.Context) {
	userID, planetID, err := favoriteKey(c, "planet_id")
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.useCase.DeletePlanet(c.Request.Context(), userID, planetID); err != nil {
		respondError(c, err)
		return
	}
	// 200 with a body, not 204: clients read the message
	c.JSON(http.StatusOK, gin.H{"message": usecases.MsgFavoritePlanetDeleted})
}

// DeleteFavoritePeople handles DELETE /user/favorites/:user_id/people/:character_id
func (h *FavoriteHandler) DeleteFavoritePeople(c *gin.Context) {
	userID, characterID, err := favoriteKey(c, "character_id")
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.useCase.DeletePeople(c.Request.Context(), userID, characterID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": usecases.MsgFavoritePeopleDeleted})
}

func favoriteKey(c *gin.Context, targetParam string) (uint, uint, error) {
	userID, err := pathID(c, "user_id")
	if err != nil {
		return 0, 0, err
	}
	targetID, err := pathID(c, targetParam)
	if err != nil {
		return 0, 0, err
	}
	return userID, targetID, nil
}
