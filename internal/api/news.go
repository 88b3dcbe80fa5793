package api

import (
	"net/http"

	"github.com/aitoolhub/aitoolhub/internal/news"
	"github.com/aitoolhub/aitoolhub/internal/store"
	"go.uber.org/zap"
)

// newsHandler serves the public news feed.
type newsHandler struct {
	news   store.NewsStore
	logger *zap.Logger
}

// List returns up to the 10 most recent news items, newest first.
// GET /api/news
//
// @Summary      Latest AI news
// @Tags         News
// @Produce      json
// @Success      200  {array}   store.NewsItem
// @Failure      500  {object}  ErrorResponse
// @Router       /news [get]
func (h *newsHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.news.Recent(r.Context(), news.ServeLimit)
	if err != nil {
		h.logger.Error("list news", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "server error", "INTERNAL_ERROR")
		return
	}
	if items == nil {
		items = []store.NewsItem{}
	}
	writeJSON(w, http.StatusOK, items)
}
