package handlers

import (
	"fmt"
	"html"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/accessrequest/usecases"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

// MagicLinkHandler handles the passwordless access flow: public request and
// redemption endpoints plus the admin review surface.
type MagicLinkHandler struct {
	requestAccessUseCase    usecases.RequestAccessExecutor
	approveRequestUseCase   usecases.ApproveRequestExecutor
	rejectRequestUseCase    usecases.RejectRequestExecutor
	requestLoginLinkUseCase usecases.RequestLoginLinkExecutor
	redeemMagicLinkUseCase  usecases.RedeemMagicLinkExecutor
	listRequestsUseCase     usecases.ListRequestsExecutor
	frontendURL             string
	logger                  logger.Interface
}

func NewMagicLinkHandler(
	requestAccessUseCase usecases.RequestAccessExecutor,
	approveRequestUseCase usecases.ApproveRequestExecutor,
	rejectRequestUseCase usecases.RejectRequestExecutor,
	requestLoginLinkUseCase usecases.RequestLoginLinkExecutor,
	redeemMagicLinkUseCase usecases.RedeemMagicLinkExecutor,
	listRequestsUseCase usecases.ListRequestsExecutor,
	frontendURL string,
	logger logger.Interface,
) *MagicLinkHandler {
	return &MagicLinkHandler{
		requestAccessUseCase:    requestAccessUseCase,
		approveRequestUseCase:   approveRequestUseCase,
		rejectRequestUseCase:    rejectRequestUseCase,
		requestLoginLinkUseCase: requestLoginLinkUseCase,
		redeemMagicLinkUseCase:  redeemMagicLinkUseCase,
		listRequestsUseCase:     listRequestsUseCase,
		frontendURL:             frontendURL,
		logger:                  logger,
	}
}

// Open handles GET /api/auth/open. Email clients open links in whatever
// browser embeds them; this interstitial hands the token to the frontend
// login page in a real tab instead.
func (h *MagicLinkHandler) Open(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.String(http.StatusBadRequest, "missing token")
		return
	}

	targetURL := fmt.Sprintf("%s/magic-login?token=%s", h.frontendURL, url.QueryEscape(token))
	escaped := html.EscapeString(targetURL)

	page := fmt.Sprintf(`<!doctype html>
<html lang="ko">
  <head>
    <meta charset="utf-8" />
    <meta http-equiv="refresh" content="0; url='%s'" />
    <title>로그인 페이지로 이동 중...</title>
  </head>
  <body>
    <p>잠시만 기다려 주세요. 로그인 페이지로 이동 중입니다...</p>
    <p><a href="%s" rel="noopener noreferrer">바로 이동하기</a></p>
  </body>
</html>`, escaped, escaped)

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.String(http.StatusOK, page)
}

type requestAccessRequest struct {
	Email       string  `json:"email" binding:"required,email"`
	Name        string  `json:"name" binding:"required"`
	CompanyName *string `json:"company_name"`
}

// RequestAccess handles POST /api/auth/request-access
func (h *MagicLinkHandler) RequestAccess(c *gin.Context) {
	var req requestAccessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.requestAccessUseCase.Execute(c.Request.Context(), usecases.RequestAccessCommand{
		Email:       req.Email,
		Name:        req.Name,
		CompanyName: req.CompanyName,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "access request submitted")
}

// ListRequests handles GET /api/auth/admin/requests
func (h *MagicLinkHandler) ListRequests(c *gin.Context) {
	result, err := h.listRequestsUseCase.Execute(c.Request.Context(), usecases.ListRequestsQuery{
		Status: c.Query("status"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ApproveRequest handles POST /api/auth/admin/requests/:id/approve
func (h *MagicLinkHandler) ApproveRequest(c *gin.Context) {
	requestID, err := utils.ParseUintParam(c, "id", "request")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.approveRequestUseCase.Execute(c.Request.Context(), usecases.ApproveRequestCommand{
		RequestID: requestID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "access request approved", result)
}

// RejectRequest handles POST /api/auth/admin/requests/:id/reject
func (h *MagicLinkHandler) RejectRequest(c *gin.Context) {
	requestID, err := utils.ParseUintParam(c, "id", "request")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.rejectRequestUseCase.Execute(c.Request.Context(), usecases.RejectRequestCommand{
		RequestID: requestID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "access request rejected", result)
}

type requestLoginLinkRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// RequestLoginLink handles POST /api/auth/request-login-link
func (h *MagicLinkHandler) RequestLoginLink(c *gin.Context) {
	var req requestLoginLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.requestLoginLinkUseCase.Execute(c.Request.Context(), usecases.RequestLoginLinkCommand{
		Email: req.Email,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "login link sent", result)
}

type redeemMagicLinkRequest struct {
	Token string `json:"token" binding:"required"`
}

// LoginWithLink handles POST /api/auth/login-with-link
func (h *MagicLinkHandler) LoginWithLink(c *gin.Context) {
	var req redeemMagicLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.redeemMagicLinkUseCase.Execute(c.Request.Context(), usecases.RedeemMagicLinkCommand{
		Token: req.Token,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"token": result.Credential,
		"user": gin.H{
			"id":    result.UserID,
			"email": result.Email,
			"name":  result.Name,
			"role":  result.Role,
		},
	})
}
