package notifications

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/gocardi/boost-api/internal/dto"
	"github.com/gocardi/boost-api/internal/service/notificationservice"
	pkgauth "github.com/gocardi/boost-api/pkg/auth"
	"github.com/gocardi/boost-api/pkg/utils"
)

type Service interface {
	List(ctx context.Context, userID int, filters dto.NotificationFiltersDTO) (*dto.NotificationListDTO, error)
	MarkRead(ctx context.Context, userID, notificationID int) error
	MarkAllRead(ctx context.Context, userID int) (int, error)
}

type NotificationHandler struct {
	notificationService Service
}

func New(notificationService Service) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// List godoc
//
//	@Summary	List the caller's notifications
//	@Tags		Notifications
//	@Security	BearerAuth
//	@Produce	json
//	@Param		unread	query		bool	false	"Only unread (true) or only read (false)"
//	@Param		type	query		string	false	"Notification type filter"
//	@Success	200		{object}	dto.NotificationListDTO	"Notifications with unread count"
//	@Router		/api/notifications [get]
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := pkgauth.UserIDFromContext(r.Context())
	q := r.URL.Query()

	filters := dto.NotificationFiltersDTO{Type: q.Get("type")}
	if v, err := strconv.ParseBool(q.Get("unread")); err == nil {
		filters.Unread = &v
	}
	filters.Page, _ = strconv.Atoi(q.Get("page"))
	filters.Limit, _ = strconv.Atoi(q.Get("limit"))

	list, err := h.notificationService.List(r.Context(), userID, filters)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, list)
}

// MarkRead godoc
//
//	@Summary	Mark one notification as read
//	@Tags		Notifications
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		int				true	"Notification id"
//	@Success	200	{string}	string			"Marked read"
//	@Failure	404	{object}	utils.Response	"Notification not found"
//	@Router		/api/notifications/{id}/read [put]
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	userID := pkgauth.UserIDFromContext(r.Context())
	notificationID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid notification id")
		return
	}
	if err := h.notificationService.MarkRead(r.Context(), userID, notificationID); err != nil {
		if errors.Is(err, notificationservice.ErrNotificationNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, "notification marked read")
}

// MarkAllRead godoc
//
//	@Summary	Mark every notification as read
//	@Tags		Notifications
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	map[string]int	"How many were marked"
//	@Router		/api/notifications/read-all [put]
func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	userID := pkgauth.UserIDFromContext(r.Context())
	count, err := h.notificationService.MarkAllRead(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]int{"markedCount": count})
}
