package feed

import (
	"net/http"

	"feedstore/internal/handler/http/respond"
	"feedstore/internal/render/rss"
	feedUC "feedstore/internal/usecase/feed"
)

type FeedXMLHandler struct{ Svc *feedUC.Store }

// ServeHTTP フィードのRSS取得
// @Summary      フィードのRSS取得
// @Description  指定されたフィードを RSS 2.0 で返します
// @Tags         feeds
// @Produce      xml
// @Param        id path string true "フィードID"
// @Success      200 {string} string "RSS 2.0 document"
// @Failure      404 {object} ErrorResponse "Not found - feed not found"
// @Router       /feeds/{id}/xml [get]
func (h FeedXMLHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, ok := feedID(w, r)
	if !ok {
		return
	}

	f, err := h.Svc.GetFeed(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	body, err := rss.FeedXML(f)
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	respond.XML(w, http.StatusOK, rss.ContentType, body)
}

type CombinedXMLHandler struct{ Svc *feedUC.Store }

// ServeHTTP 全フィード結合RSS取得
// @Summary      全フィード結合RSS取得
// @Description  全フィードのエントリを "[フィード名] タイトル" 形式で1つのチャンネルにまとめ、新しい順に返します
// @Tags         feeds
// @Produce      xml
// @Success      200 {string} string "RSS 2.0 document"
// @Router       /feeds/xml [get]
func (h CombinedXMLHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ch := rss.Channel{
		Title:       h.Svc.Config().GeneralFeedTitle,
		Link:        baseURL(r) + "/",
		Description: rss.CombinedDescription,
	}
	body, err := rss.CollectionXML(ch, h.Svc.GetAllFeeds(r.Context()))
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	respond.XML(w, http.StatusOK, rss.ContentType, body)
}

// baseURL returns scheme://host of the request as seen by the client.
func baseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto == "http" || proto == "https" {
		scheme = proto
	}
	return scheme + "://" + r.Host
}
