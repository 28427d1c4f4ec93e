package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/user/usecases"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

// UserHandler handles account administration and profile endpoints.
type UserHandler struct {
	createTeamMemberUseCase usecases.CreateTeamMemberExecutor
	setApprovalUseCase      usecases.SetApprovalExecutor
	updateProfileUseCase    usecases.UpdateProfileExecutor
	deleteAccountUseCase    usecases.DeleteAccountExecutor
	listUsersUseCase        usecases.ListUsersExecutor
	logger                  logger.Interface
}

func NewUserHandler(
	createTeamMemberUseCase usecases.CreateTeamMemberExecutor,
	setApprovalUseCase usecases.SetApprovalExecutor,
	updateProfileUseCase usecases.UpdateProfileExecutor,
	deleteAccountUseCase usecases.DeleteAccountExecutor,
	listUsersUseCase usecases.ListUsersExecutor,
	logger logger.Interface,
) *UserHandler {
	return &UserHandler{
		createTeamMemberUseCase: createTeamMemberUseCase,
		setApprovalUseCase:      setApprovalUseCase,
		updateProfileUseCase:    updateProfileUseCase,
		deleteAccountUseCase:    deleteAccountUseCase,
		listUsersUseCase:        listUsersUseCase,
		logger:                  logger,
	}
}

// ListCustomers handles GET /api/users/customers
func (h *UserHandler) ListCustomers(c *gin.Context) {
	h.listGroup(c, usecases.GroupCustomers)
}

// ListTeamMembers handles GET /api/users/team
func (h *UserHandler) ListTeamMembers(c *gin.Context) {
	h.listGroup(c, usecases.GroupTeamMembers)
}

// ListAssignees handles GET /api/users/assignees
func (h *UserHandler) ListAssignees(c *gin.Context) {
	h.listGroup(c, usecases.GroupAssignees)
}

func (h *UserHandler) listGroup(c *gin.Context, group usecases.UserGroup) {
	result, err := h.listUsersUseCase.Execute(c.Request.Context(), usecases.ListUsersQuery{Group: group})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

type createTeamMemberRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

// CreateTeamMember handles POST /api/users/team
func (h *UserHandler) CreateTeamMember(c *gin.Context) {
	var req createTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.createTeamMemberUseCase.Execute(c.Request.Context(), usecases.CreateTeamMemberCommand{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Role:     req.Role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "team member created")
}

type setApprovalRequest struct {
	Approved *bool `json:"approved" binding:"required"`
}

// SetApproval handles PATCH /api/users/:id/approve
func (h *UserHandler) SetApproval(c *gin.Context) {
	userID, err := utils.ParseUintParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req setApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.setApprovalUseCase.Execute(c.Request.Context(), usecases.SetApprovalCommand{
		UserID:   userID,
		Approved: *req.Approved,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

type updateProfileRequest struct {
	Name        string  `json:"name" binding:"required"`
	CompanyName *string `json:"company_name"`
}

// UpdateProfile handles PUT /api/users/profile
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.updateProfileUseCase.Execute(c.Request.Context(), usecases.UpdateProfileCommand{
		UserID:      userID,
		Name:        req.Name,
		CompanyName: req.CompanyName,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "profile updated", result)
}

// DeleteMe handles DELETE /api/users/me
func (h *UserHandler) DeleteMe(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	if _, err := h.deleteAccountUseCase.Execute(c.Request.Context(), usecases.DeleteAccountCommand{
		UserID: userID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
