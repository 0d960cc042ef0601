package feed

import (
	"net/http"

	"feedstore/internal/domain/entity"
	"feedstore/internal/handler/http/respond"
	feedUC "feedstore/internal/usecase/feed"
)

type AddEntryHandler struct{ Svc *feedUC.Store }

// ServeHTTP エントリ追加
// @Summary      エントリ追加
// @Description  フィードの先頭にエントリを追加します。guid 省略時は自動生成されます
// @Tags         feeds
// @Accept       json
// @Produce      json
// @Param        id path string true "フィードID"
// @Param        entry body entity.EntryInput true "追加するエントリ"
// @Success      201 {object} EntryCreatedResponse "追加されたエントリのGUID"
// @Failure      400 {object} ErrorResponse "Bad request - invalid input"
// @Failure      404 {object} ErrorResponse "Not found - feed not found"
// @Failure      500 {object} ErrorResponse "Storage error"
// @Router       /feeds/{id}/entries [post]
func (h AddEntryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, ok := feedID(w, r)
	if !ok {
		return
	}

	var in entity.EntryInput
	if err := decodeBody(r, &in); err != nil {
		respond.SafeErrorV2(w, http.StatusBadRequest, err)
		return
	}

	guid, err := h.Svc.AddEntry(r.Context(), id, in)
	if err != nil {
		writeError(w, err)
		return
	}
	respond.JSON(w, http.StatusCreated, EntryCreatedResponse{Message: "Entry added successfully", EntryID: guid})
}
