package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tair/backoffice/internal/notification/usecase/command"
	"github.com/tair/backoffice/internal/notification/usecase/query"
	"github.com/tair/backoffice/internal/respond"
)

// NotificationHandler handles HTTP requests for the notification feed
type NotificationHandler struct {
	commands *command.NotificationCommandHandler
	list     *query.ListNotificationsHandler
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(commands *command.NotificationCommandHandler, list *query.ListNotificationsHandler) *NotificationHandler {
	return &NotificationHandler{commands: commands, list: list}
}

// ListNotifications handles GET /notifications?unread=true
func (h *NotificationHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	limit, offset := respond.Page(r)
	notifications, err := h.list.Handle(r.Context(), query.ListNotificationsQuery{
		UnreadOnly: r.URL.Query().Get("unread") == "true",
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, notifications)
}

// MarkRead handles PATCH /notifications/{id}/read
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	result, err := h.commands.MarkRead(r.Context(), command.MarkReadCommand{ID: id})
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, result)
}

// MarkAllRead handles PATCH /notifications/read-all
func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	result, err := h.commands.MarkAllRead(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, result)
}

// DeleteNotification handles DELETE /notifications/{id}
func (h *NotificationHandler) DeleteNotification(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	result, err := h.commands.Delete(r.Context(), command.DeleteNotificationCommand{ID: id})
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, result)
}

// RegisterRoutes registers notification routes on the authenticated api router
func (h *NotificationHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/notifications", h.ListNotifications).Methods(http.MethodGet)
	router.HandleFunc("/notifications/read-all", h.MarkAllRead).Methods(http.MethodPatch)
	router.HandleFunc("/notifications/{id:[0-9]+}/read", h.MarkRead).Methods(http.MethodPatch)
	router.HandleFunc("/notifications/{id:[0-9]+}", h.DeleteNotification).Methods(http.MethodDelete)
}
