package feed

import (
	"net/http"

	"feedstore/internal/handler/http/respond"
	feedUC "feedstore/internal/usecase/feed"
)

type ListHandler struct{ Svc *feedUC.Store }

// ServeHTTP フィード一覧取得
// @Summary      フィード一覧取得
// @Description  登録されているすべてのフィードをエントリ付きで返します
// @Tags         feeds
// @Produce      json
// @Success      200 {object} ListResponse "フィード一覧"
// @Router       /feeds [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	feeds := h.Svc.GetAllFeeds(r.Context())
	respond.JSON(w, http.StatusOK, ListResponse{Count: len(feeds), Feeds: toDTOs(feeds)})
}
