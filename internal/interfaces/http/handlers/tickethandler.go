package handlers

import (
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

// TicketHandler handles the ticket lifecycle endpoints.
type TicketHandler struct {
	createTicketUseCase     usecases.CreateTicketExecutor
	getTicketUseCase        usecases.GetTicketExecutor
	listTicketsUseCase      usecases.ListTicketsExecutor
	assignTicketUseCase     usecases.AssignTicketExecutor
	changeStatusUseCase     usecases.ChangeStatusExecutor
	markReadUseCase         usecases.MarkReadExecutor
	unreadCountsUseCase     usecases.UnreadCountsExecutor
	deleteTicketFileUseCase usecases.DeleteTicketFileExecutor
	logger                  logger.Interface
}

func NewTicketHandler(
	createTicketUseCase usecases.CreateTicketExecutor,
	getTicketUseCase usecases.GetTicketExecutor,
	listTicketsUseCase usecases.ListTicketsExecutor,
	assignTicketUseCase usecases.AssignTicketExecutor,
	changeStatusUseCase usecases.ChangeStatusExecutor,
	markReadUseCase usecases.MarkReadExecutor,
	unreadCountsUseCase usecases.UnreadCountsExecutor,
	deleteTicketFileUseCase usecases.DeleteTicketFileExecutor,
	logger logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		createTicketUseCase:     createTicketUseCase,
		getTicketUseCase:        getTicketUseCase,
		listTicketsUseCase:      listTicketsUseCase,
		assignTicketUseCase:     assignTicketUseCase,
		changeStatusUseCase:     changeStatusUseCase,
		markReadUseCase:         markReadUseCase,
		unreadCountsUseCase:     unreadCountsUseCase,
		deleteTicketFileUseCase: deleteTicketFileUseCase,
		logger:                  logger,
	}
}

// collectUploads opens the multipart files under the "files" field. The
// returned closer must run after the use case has consumed the readers.
func collectUploads(c *gin.Context) ([]usecases.FileUpload, func(), error) {
	noop := func() {}

	form, err := c.MultipartForm()
	if err != nil {
		if err == http.ErrNotMultipart || err == http.ErrMissingBoundary {
			return nil, noop, nil
		}
		return nil, noop, err
	}

	headers := form.File["files"]
	if len(headers) > constants.MaxUploadFiles {
		headers = headers[:constants.MaxUploadFiles]
	}

	uploads := make([]usecases.FileUpload, 0, len(headers))
	opened := make([]multipart.File, 0, len(headers))
	closeAll := func() {
		for _, f := range opened {
			f.Close()
		}
	}

	for _, header := range headers {
		file, err := header.Open()
		if err != nil {
			closeAll()
			return nil, noop, err
		}
		opened = append(opened, file)
		uploads = append(uploads, usecases.FileUpload{
			OriginalName: header.Filename,
			Content:      file,
		})
	}

	return uploads, closeAll, nil
}

type createTicketRequest struct {
	Title       string `form:"title" binding:"required"`
	Description string `form:"description" binding:"required"`
	Urgency     string `form:"urgency" binding:"required"`
	Product     string `form:"product"`
	Platform    string `form:"platform"`
	SWVersion   string `form:"sw_version"`
	OS          string `form:"os"`
	TicketType  string `form:"ticket_type" binding:"required"`
}

// Create handles POST /api/tickets
func (h *TicketHandler) Create(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var req createTicketRequest
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

	result, err := h.createTicketUseCase.Execute(c.Request.Context(), usecases.CreateTicketCommand{
		Title:       req.Title,
		Description: req.Description,
		Urgency:     req.Urgency,
		Product:     req.Product,
		Platform:    req.Platform,
		SWVersion:   req.SWVersion,
		OS:          req.OS,
		TicketType:  req.TicketType,
		CustomerID:  userID,
		Files:       files,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "ticket created")
}

// ListMine handles GET /api/tickets/my
func (h *TicketHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	result, err := h.listTicketsUseCase.Execute(c.Request.Context(), usecases.ListTicketsQuery{
		RequesterID: userID,
		IsStaff:     false,
		Status:      c.Query("status"),
		Urgency:     c.Query("urgency"),
		Keyword:     c.Query("keyword"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListAll handles GET /api/tickets
func (h *TicketHandler) ListAll(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	result, err := h.listTicketsUseCase.Execute(c.Request.Context(), usecases.ListTicketsQuery{
		RequesterID: userID,
		IsStaff:     true,
		Status:      c.Query("status"),
		Urgency:     c.Query("urgency"),
		Keyword:     c.Query("keyword"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Get handles GET /api/tickets/:id
func (h *TicketHandler) Get(c *gin.Context) {
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

	result, err := h.getTicketUseCase.Execute(c.Request.Context(), usecases.GetTicketQuery{
		TicketID:    ticketID,
		RequesterID: userID,
		IsStaff:     middleware.IsStaff(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

type assignTicketRequest struct {
	AssigneeID *uint `json:"assignee_id"`
}

// Assign handles PUT /api/tickets/:id/assignee
func (h *TicketHandler) Assign(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req assignTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.assignTicketUseCase.Execute(c.Request.Context(), usecases.AssignTicketCommand{
		TicketID:   ticketID,
		AssigneeID: req.AssigneeID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

type changeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// SetStatus handles PATCH /api/tickets/:id/status
func (h *TicketHandler) SetStatus(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req changeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.changeStatusUseCase.Execute(c.Request.Context(), usecases.ChangeStatusCommand{
		TicketID: ticketID,
		Status:   req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// MarkRead handles POST /api/tickets/:id/read
func (h *TicketHandler) MarkRead(c *gin.Context) {
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

	result, err := h.markReadUseCase.Execute(c.Request.Context(), usecases.MarkReadCommand{
		TicketID:    ticketID,
		RequesterID: userID,
		IsStaff:     middleware.IsStaff(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// MyUnreadCounts handles GET /api/tickets/my/unread-counts
func (h *TicketHandler) MyUnreadCounts(c *gin.Context) {
	h.unreadCounts(c, false)
}

// AdminUnreadCounts handles GET /api/tickets/admin/unread-counts
func (h *TicketHandler) AdminUnreadCounts(c *gin.Context) {
	h.unreadCounts(c, true)
}

func (h *TicketHandler) unreadCounts(c *gin.Context, isStaff bool) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	result, err := h.unreadCountsUseCase.Execute(c.Request.Context(), usecases.UnreadCountsQuery{
		RequesterID: userID,
		IsStaff:     isStaff,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// DeleteTicketFile handles DELETE /api/tickets/files/ticket/:fileId
func (h *TicketHandler) DeleteTicketFile(c *gin.Context) {
	fileID, err := utils.ParseUintParam(c, "fileId", "file")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if _, err := h.deleteTicketFileUseCase.Execute(c.Request.Context(), usecases.DeleteTicketFileCommand{
		FileID: fileID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
