package feed

import (
	"net/http"

	"feedstore/internal/domain/entity"
	"feedstore/internal/handler/http/respond"
	feedUC "feedstore/internal/usecase/feed"
)

type UpdateHandler struct{ Svc *feedUC.Store }

// ServeHTTP フィード更新
// @Summary      フィード更新
// @Description  フィードのメタデータを部分更新します。エントリは変更されません
// @Tags         feeds
// @Accept       json
// @Produce      json
// @Param        id path string true "フィードID"
// @Param        feed body entity.FeedUpdate true "更新するフィールド"
// @Success      200 {object} DTO "更新後のフィード"
// @Failure      400 {object} ErrorResponse "Bad request - invalid input"
// @Failure      404 {object} ErrorResponse "Not found - feed not found"
// @Failure      500 {object} ErrorResponse "Storage error"
// @Router       /feeds/{id} [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, ok := feedID(w, r)
	if !ok {
		return
	}

	var u entity.FeedUpdate
	if err := decodeBody(r, &u); err != nil {
		respond.SafeErrorV2(w, http.StatusBadRequest, err)
		return
	}

	f, err := h.Svc.UpdateFeed(r.Context(), id, u)
	if err != nil {
		writeError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(f))
}
