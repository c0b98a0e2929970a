package http

// ListNotifications godoc
// @Summary List the caller's notifications
// @Tags Notifications
// @Security BearerAuth
// @Produce json
// @Param unread query bool false "Only unread"
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {array} object{id=int,userId=string,type=string,message=string,read=bool,createdAt=string}
// @Failure 401 {object} object{error=string}
// @Router /api/notifications [get]
func (h *NotificationHandler) ListNotificationsDoc() {}

// MarkRead godoc
// @Summary Mark a notification read
// @Tags Notifications
// @Security BearerAuth
// @Produce json
// @Param id path int true "Notification ID"
// @Success 200 {object} object{message=string,data=object}
// @Failure 404 {object} object{error=string}
// @Router /api/notifications/{id}/read [patch]
func (h *NotificationHandler) MarkReadDoc() {}

// MarkAllRead godoc
// @Summary Mark every notification read
// @Tags Notifications
// @Security BearerAuth
// @Produce json
// @Success 200 {object} object{message=string,data=object{updated=int}}
// @Router /api/notifications/read-all [patch]
func (h *NotificationHandler) MarkAllReadDoc() {}

// DeleteNotification godoc
// @Summary Delete a notification
// @Tags Notifications
// @Security BearerAuth
// @Produce json
// @Param id path int true "Notification ID"
// @Success 200 {object} object{message=string,data=int}
// @Failure 403 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /api/notifications/{id} [delete]
func (h *NotificationHandler) DeleteNotificationDoc() {}
