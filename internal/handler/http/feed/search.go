package feed

import (
	"net/http"
	"strings"

	"feedstore/internal/handler/http/respond"
	"feedstore/internal/render/rss"
	feedUC "feedstore/internal/usecase/feed"
)

type SearchHandler struct{ Svc *feedUC.Store }

// ServeHTTP フィード検索
// @Summary      フィード検索
// @Description  タイトル・説明（部分一致、大文字小文字を区別しない）とエントリの公開日で絞り込みます
// @Tags         feeds
// @Produce      json
// @Produce      xml
// @Param        title query string false "フィードタイトルの部分一致"
// @Param        description query string false "フィード説明の部分一致"
// @Param        from_date query string false "公開日の開始（ISO 8601 / RFC 822、境界を含む）"
// @Param        to_date query string false "公開日の終了（日付のみの場合はその日の終わりまで）"
// @Param        limit query int false "フィードごとの最大エントリ数"
// @Param        include_empty query bool false "エントリが残らないフィードも含める"
// @Param        format query string false "json（既定）または xml"
// @Success      200 {object} SearchResponse "検索結果"
// @Failure      400 {object} ErrorResponse "Bad request - invalid parameter"
// @Failure      429 {object} ErrorResponse "Too many requests - rate limit exceeded"
// @Router       /feeds/search [get]
func (h SearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	q, err := feedUC.ParseQuery(params)
	if err != nil {
		writeError(w, err)
		return
	}

	feeds := h.Svc.Search(r.Context(), q)

	if strings.EqualFold(strings.TrimSpace(params.Get("format")), "xml") {
		ch := rss.Channel{
			Title:       "Search Results",
			Link:        baseURL(r) + r.URL.RequestURI(),
			Description: "Feeds filtered by parameters: " + params.Encode(),
		}
		body, err := rss.CollectionXML(ch, feeds)
		if err != nil {
			respond.SafeError(w, http.StatusInternalServerError, err)
			return
		}
		respond.XML(w, http.StatusOK, rss.ContentType, body)
		return
	}

	echo := make(map[string]string, len(params))
	for k, vs := range params {
		if len(vs) > 0 {
			echo[k] = vs[0]
		}
	}
	respond.JSON(w, http.StatusOK, SearchResponse{Count: len(feeds), Query: echo, Feeds: toDTOs(feeds)})
}
