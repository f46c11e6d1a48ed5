package http

import (
	"errors"
	"net/http"

	"github.com/wyfcoding/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/wyfcoding/optionpricing/internal/option/application"
	"github.com/wyfcoding/optionpricing/internal/option/domain"
	"github.com/wyfcoding/pkg/logging"
)

// OptionHandler 负责处理期权记录相关的 HTTP 请求
type OptionHandler struct {
	cmd   *application.OptionCommandService
	query *application.OptionQueryService
}

// NewOptionHandler 创建 HTTP 处理器
func NewOptionHandler(cmd *application.OptionCommandService, query *application.OptionQueryService) *OptionHandler {
	return &OptionHandler{cmd: cmd, query: query}
}

// RegisterRoutes 注册路由
func (h *OptionHandler) RegisterRoutes(router *gin.RouterGroup) {
	api := router.Group("/v1/options")
	{
		api.POST("/:name", h.CreateOption)
		api.GET("", h.ListOptions)
		api.GET("/:name", h.GetOption)
		api.DELETE("/:name", h.DeleteOption)
	}
}

// CreateOption 创建期权记录并返回计算出的现值
func (h *OptionHandler) CreateOption(c *gin.Context) {
	var raw domain.RawOption
	if err := c.ShouldBindJSON(&raw); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	name := c.Param("name")
	dto, err := h.cmd.CreateOption(c.Request.Context(), name, raw)
	if err != nil {
		status := statusFromError(err)
		if status >= http.StatusInternalServerError {
			logging.Error(c.Request.Context(), "failed to create option", "name", name, "error", err)
		}
		response.ErrorWithStatus(c, status, err.Error(), "")
		return
	}

	response.Success(c, dto)
}

// GetOption 读取单条期权记录
func (h *OptionHandler) GetOption(c *gin.Context) {
	name := c.Param("name")

	dto, err := h.query.GetOption(c.Request.Context(), name)
	if err != nil {
		response.ErrorWithStatus(c, statusFromError(err), err.Error(), "")
		return
	}

	response.Success(c, dto)
}

// ListOptions 枚举全部期权记录
func (h *OptionHandler) ListOptions(c *gin.Context) {
	dtos, err := h.query.ListOptions(c.Request.Context())
	if err != nil {
		logging.Error(c.Request.Context(), "failed to list options", "error", err)
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error(), "")
		return
	}

	response.Success(c, gin.H{"options": dtos, "count": len(dtos)})
}

// DeleteOption 删除期权记录
func (h *OptionHandler) DeleteOption(c *gin.Context) {
	name := c.Param("name")

	if err := h.cmd.DeleteOption(c.Request.Context(), name); err != nil {
		response.ErrorWithStatus(c, statusFromError(err), err.Error(), "")
		return
	}

	response.Success(c, gin.H{"deleted": name})
}

// statusFromError 把领域错误类别映射到 HTTP 状态码
func statusFromError(err error) int {
	switch {
	case errors.Is(err, domain.ErrOptionExists):
		return http.StatusConflict
	case errors.Is(err, domain.ErrOptionNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrComputationFailed):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrMissingField),
		errors.Is(err, domain.ErrInvalidFormat),
		errors.Is(err, domain.ErrInvalidExpiryFormat),
		errors.Is(err, domain.ErrInvalidOptionType),
		errors.Is(err, domain.ErrFieldOutOfRange),
		errors.Is(err, domain.ErrOptionExpired):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
