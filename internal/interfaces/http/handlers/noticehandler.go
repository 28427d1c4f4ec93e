package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/notice/usecases"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

// NoticeHandler handles the announcement endpoints. Reading is public,
// writing is admin-only (gated at the router).
type NoticeHandler struct {
	createNoticeUseCase usecases.CreateNoticeExecutor
	updateNoticeUseCase usecases.UpdateNoticeExecutor
	deleteNoticeUseCase usecases.DeleteNoticeExecutor
	getNoticeUseCase    usecases.GetNoticeExecutor
	listNoticesUseCase  usecases.ListNoticesExecutor
	logger              logger.Interface
}

func NewNoticeHandler(
	createNoticeUseCase usecases.CreateNoticeExecutor,
	updateNoticeUseCase usecases.UpdateNoticeExecutor,
	deleteNoticeUseCase usecases.DeleteNoticeExecutor,
	getNoticeUseCase usecases.GetNoticeExecutor,
	listNoticesUseCase usecases.ListNoticesExecutor,
	logger logger.Interface,
) *NoticeHandler {
	return &NoticeHandler{
		createNoticeUseCase: createNoticeUseCase,
		updateNoticeUseCase: updateNoticeUseCase,
		deleteNoticeUseCase: deleteNoticeUseCase,
		getNoticeUseCase:    getNoticeUseCase,
		listNoticesUseCase:  listNoticesUseCase,
		logger:              logger,
	}
}

// List handles GET /api/notices
func (h *NoticeHandler) List(c *gin.Context) {
	result, err := h.listNoticesUseCase.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Get handles GET /api/notices/:id
func (h *NoticeHandler) Get(c *gin.Context) {
	noticeID, err := utils.ParseUintParam(c, "id", "notice")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getNoticeUseCase.Execute(c.Request.Context(), usecases.GetNoticeQuery{
		NoticeID: noticeID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

type noticeRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// Create handles POST /api/notices
func (h *NoticeHandler) Create(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var req noticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.createNoticeUseCase.Execute(c.Request.Context(), usecases.CreateNoticeCommand{
		Title:    req.Title,
		Content:  req.Content,
		AuthorID: userID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "notice created")
}

// Update handles PUT /api/notices/:id
func (h *NoticeHandler) Update(c *gin.Context) {
	noticeID, err := utils.ParseUintParam(c, "id", "notice")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req noticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.updateNoticeUseCase.Execute(c.Request.Context(), usecases.UpdateNoticeCommand{
		NoticeID: noticeID,
		Title:    req.Title,
		Content:  req.Content,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "notice updated", result)
}

// Delete handles DELETE /api/notices/:id
func (h *NoticeHandler) Delete(c *gin.Context) {
	noticeID, err := utils.ParseUintParam(c, "id", "notice")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if _, err := h.deleteNoticeUseCase.Execute(c.Request.Context(), usecases.DeleteNoticeCommand{
		NoticeID: noticeID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
