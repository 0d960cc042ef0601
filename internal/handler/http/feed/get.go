package feed

import (
	"net/http"

	"feedstore/internal/handler/http/respond"
	feedUC "feedstore/internal/usecase/feed"
)

type GetHandler struct{ Svc *feedUC.Store }

// ServeHTTP フィード取得
// @Summary      フィード取得
// @Description  指定されたIDのフィードをJSONで返します
// @Tags         feeds
// @Produce      json
// @Param        id path string true "フィードID"
// @Success      200 {object} DTO "フィード"
// @Failure      404 {object} ErrorResponse "Not found - feed not found"
// @Router       /feeds/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, ok := feedID(w, r)
	if !ok {
		return
	}

	f, err := h.Svc.GetFeed(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(f))
}
