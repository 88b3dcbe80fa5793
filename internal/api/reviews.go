package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/aitoolhub/aitoolhub/internal/auth"
	"github.com/aitoolhub/aitoolhub/internal/catalog"
	"github.com/aitoolhub/aitoolhub/internal/metrics"
	"github.com/aitoolhub/aitoolhub/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// reviewsHandler provides the review REST handlers, including the aggregate
// rating recomputation that runs after every submission.
type reviewsHandler struct {
	reviews store.ReviewStore
	tools   store.ToolStore
	users   store.UserStore
	logger  *zap.Logger
}

// ListByTool returns all reviews for one tool in submission order.
// GET /api/reviews/{toolId}
//
// @Summary      List reviews for a tool
// @Tags         Reviews
// @Produce      json
// @Param        toolId  path      string  true  "Tool id"
// @Success      200     {array}   store.Review
// @Failure      500     {object}  ErrorResponse
// @Router       /reviews/{toolId} [get]
func (h *reviewsHandler) ListByTool(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviews.ListByTool(r.Context(), chi.URLParam(r, "toolId"))
	if err != nil {
		h.logger.Error("list reviews", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "server error", "INTERNAL_ERROR")
		return
	}
	if reviews == nil {
		reviews = []store.Review{}
	}
	writeJSON(w, http.StatusOK, reviews)
}

// Submit persists a review and recomputes the tool's aggregate rating.
// Authenticated, any role.
// POST /api/reviews
//
// @Summary      Submit a review
// @Description  Persists a review and recomputes the tool's rating as the mean of all its reviews, rounded to one decimal.
// @Tags         Reviews
// @Accept       json
// @Produce      json
// @Param        body  body      SubmitReviewRequest  true  "Review to submit"
// @Success      201   {object}  store.Review
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse
// @Security     BearerToken
// @Router       /reviews [post]
func (h *reviewsHandler) Submit(w http.ResponseWriter, r *http.Request) {
	identity := auth.IdentityFromContext(r.Context())
	if identity == nil {
		writeError(w, http.StatusUnauthorized, "authorization token required", "UNAUTHORIZED")
		return
	}

	var req SubmitReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}
	if req.ToolID == "" {
		writeError(w, http.StatusBadRequest, "toolId is required", "BAD_REQUEST")
		return
	}
	if req.Rating == nil {
		writeError(w, http.StatusBadRequest, "rating is required", "BAD_REQUEST")
		return
	}
	if *req.Rating < 1 || *req.Rating > 5 {
		writeError(w, http.StatusBadRequest, "rating must be an integer between 1 and 5", "BAD_REQUEST")
		return
	}

	// Snapshot the author's display name at submission time. The token
	// only carries id/email/role.
	userName := identity.Email
	if user, err := h.users.GetByID(r.Context(), identity.ID); err == nil {
		userName = user.Name
	}

	review := &store.Review{
		ID:        uuid.New().String(),
		ToolID:    req.ToolID,
		UserID:    identity.ID,
		UserName:  userName,
		Rating:    *req.Rating,
		Text:      req.Text,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.reviews.Create(r.Context(), review); err != nil {
		h.logger.Error("create review", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "server error", "INTERNAL_ERROR")
		return
	}
	metrics.ReviewsSubmittedTotal.Inc()

	if err := h.recomputeAggregate(r, review.ToolID); err != nil {
		// The review itself is already durable; surface the partial
		// failure instead of reporting full success.
		h.logger.Error("recompute rating", zap.String("tool_id", review.ToolID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "server error", "INTERNAL_ERROR")
		return
	}

	writeJSON(w, http.StatusCreated, review)
}

// recomputeAggregate re-derives a tool's rating and count from the full
// review set for that tool. A review against a tool id that no longer
// exists leaves the catalog untouched; the skip is logged rather than
// failing the submission.
func (h *reviewsHandler) recomputeAggregate(r *http.Request, toolID string) error {
	reviews, err := h.reviews.ListByTool(r.Context(), toolID)
	if err != nil {
		return err
	}
	rating, count := catalog.AggregateRating(reviews)
	err = h.tools.SetAggregate(r.Context(), toolID, rating, count)
	if errors.Is(err, store.ErrNotFound) {
		metrics.OrphanReviewsTotal.Inc()
		h.logger.Warn("review stored for unknown tool; aggregate skipped",
			zap.String("tool_id", toolID))
		return nil
	}
	return err
}
