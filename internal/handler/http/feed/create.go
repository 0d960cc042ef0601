package feed

import (
	"net/http"

	"feedstore/internal/domain/entity"
	"feedstore/internal/handler/http/respond"
	feedUC "feedstore/internal/usecase/feed"
)

type CreateHandler struct{ Svc *feedUC.Store }

// ServeHTTP フィード作成
// @Summary      フィード作成
// @Description  新しいフィードを作成します。entries を含めると要求順に先頭へ追加されます
// @Tags         feeds
// @Accept       json
// @Produce      json
// @Param        feed body entity.FeedInput true "作成するフィード"
// @Success      201 {object} CreatedResponse "作成されたフィードID"
// @Failure      400 {object} ErrorResponse "Bad request - invalid input"
// @Failure      413 {object} ErrorResponse "Request body too large"
// @Failure      500 {object} ErrorResponse "Storage error"
// @Router       /feeds [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var in entity.FeedInput
	if err := decodeBody(r, &in); err != nil {
		respond.SafeErrorV2(w, http.StatusBadRequest, err)
		return
	}

	id, err := h.Svc.CreateFeed(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	respond.JSON(w, http.StatusCreated, CreatedResponse{Message: "Feed created successfully", FeedID: id})
}
