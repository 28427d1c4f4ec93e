package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

// ReplyHandler handles the conversation endpoints under a ticket.
type ReplyHandler struct {
	addReplyUseCase        usecases.AddReplyExecutor
	editReplyUseCase       usecases.EditReplyExecutor
	deleteReplyUseCase     usecases.DeleteReplyExecutor
	deleteReplyFileUseCase usecases.DeleteReplyFileExecutor
	logger                 logger.Interface
}

func NewReplyHandler(
	addReplyUseCase usecases.AddReplyExecutor,
	editReplyUseCase usecases.EditReplyExecutor,
	deleteReplyUseCase usecases.DeleteReplyExecutor,
	deleteReplyFileUseCase usecases.DeleteReplyFileExecutor,
	logger logger.Interface,
) *ReplyHandler {
	return &ReplyHandler{
		addReplyUseCase:        addReplyUseCase,
		editReplyUseCase:       editReplyUseCase,
		deleteReplyUseCase:     deleteReplyUseCase,
		deleteReplyFileUseCase: deleteReplyFileUseCase,
		logger:                 logger,
	}
}

type addReplyRequest struct {
	Message string `form:"message"`
}

// AddReply handles POST /api/tickets/:id/replies
func (h *ReplyHandler) AddReply(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req addReplyRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	files, closeFiles, err := collectUploads(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid file upload: "+err.Error())
		return
	}
	defer closeFiles()

	result, err := h.addReplyUseCase.Execute(c.Request.Context(), usecases.AddReplyCommand{
		TicketID: ticketID,
		AuthorID: userID,
		IsStaff:  middleware.IsStaff(c),
		Message:  req.Message,
		Files:    files,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "reply added")
}

type editReplyRequest struct {
	Message string `json:"message" binding:"required"`
}

// EditReply handles PUT /api/tickets/:id/replies/:replyId
func (h *ReplyHandler) EditReply(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	replyID, err := utils.ParseUintParam(c, "replyId", "reply")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req editReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.editReplyUseCase.Execute(c.Request.Context(), usecases.EditReplyCommand{
		ReplyID:     replyID,
		RequesterID: userID,
		IsAdmin:     middleware.IsAdmin(c),
		Message:     req.Message,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// DeleteReply handles DELETE /api/tickets/:id/replies/:replyId
func (h *ReplyHandler) DeleteReply(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	replyID, err := utils.ParseUintParam(c, "replyId", "reply")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if _, err := h.deleteReplyUseCase.Execute(c.Request.Context(), usecases.DeleteReplyCommand{
		ReplyID:     replyID,
		RequesterID: userID,
		IsAdmin:     middleware.IsAdmin(c),
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// DeleteReplyFile handles DELETE /api/tickets/files/reply/:fileId
func (h *ReplyHandler) DeleteReplyFile(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	fileID, err := utils.ParseUintParam(c, "fileId", "file")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if _, err := h.deleteReplyFileUseCase.Execute(c.Request.Context(), usecases.DeleteReplyFileCommand{
		FileID:      fileID,
		RequesterID: userID,
		IsAdmin:     middleware.IsAdmin(c),
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
