package feed

import (
	"net/http"

	"feedstore/internal/handler/http/respond"
	feedUC "feedstore/internal/usecase/feed"
)

type DeleteHandler struct{ Svc *feedUC.Store }

// ServeHTTP フィード削除
// @Summary      フィード削除
// @Description  指定されたIDのフィードをエントリごと削除します
// @Tags         feeds
// @Produce      json
// @Param        id path string true "フィードID"
// @Success      200 {object} MessageResponse "削除完了"
// @Failure      404 {object} ErrorResponse "Not found - feed not found"
// @Failure      500 {object} ErrorResponse "Storage error"
// @Router       /feeds/{id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, ok := feedID(w, r)
	if !ok {
		return
	}

	if err := h.Svc.DeleteFeed(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, MessageResponse{Message: "Feed deleted successfully"})
}
