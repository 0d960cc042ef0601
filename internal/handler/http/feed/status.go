package feed

import (
	"net/http"

	"feedstore/internal/handler/http/respond"
	feedUC "feedstore/internal/usecase/feed"
)

type StatusHandler struct{ Svc *feedUC.Store }

// ServeHTTP サービス状態取得
// @Summary      サービス状態取得
// @Description  フィード数・エントリ数と保持設定を返します
// @Tags         status
// @Produce      json
// @Success      200 {object} StatusResponse "サービス状態"
// @Router       /status [get]
func (h StatusHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	st := h.Svc.Status(r.Context())
	respond.JSON(w, http.StatusOK, StatusResponse{
		Status:            "online",
		FeedCount:         st.FeedCount,
		EntryCount:        st.EntryCount,
		HistoryDays:       st.HistoryDays,
		MaxEntriesPerFeed: st.MaxEntriesPerFeed,
		StoragePath:       st.StoragePath,
	})
}
