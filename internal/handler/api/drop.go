package api

import (
	"errors"
	"net/http"

	reqdto "sneakerdrop/internal/handler/dto/request"
	resdto "sneakerdrop/internal/handler/dto/response"
	"sneakerdrop/internal/handler/httperr"
	"sneakerdrop/internal/usecase/commands"
	"sneakerdrop/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DropHandler struct {
	commands commands.DropCommands
	queries  queries.DropQueries
}

func NewDropHandler(cmds commands.DropCommands, qrs queries.DropQueries) *DropHandler {
	return &DropHandler{
		commands: cmds,
		queries:  qrs,
	}
}

func (h *DropHandler) ListDrops(c *gin.Context) {
	var q reqdto.ListDropsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.Abort(c, http.StatusBadRequest, err, "Invalid query parameters")
		return
	}

	views, err := h.queries.ListDrops(c.Request.Context(), q.ToFilter())
	if err != nil {
		httperr.Abort(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromDropViews(views))
}

func (h *DropHandler) ListLiveDrops(c *gin.Context) {
	views, err := h.queries.ListLiveDrops(c.Request.Context())
	if err != nil {
		httperr.Abort(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromDropViews(views))
}

func (h *DropHandler) GetDrop(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.Abort(c, http.StatusBadRequest, err, "Invalid drop ID format")
		return
	}

	view, err := h.queries.GetDrop(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrDropNotFound):
			httperr.Abort(c, http.StatusNotFound, err, "Drop not found")
		default:
			httperr.Abort(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromDropView(view))
}

func (h *DropHandler) CreateDrop(c *gin.Context) {
	var req reqdto.CreateDropRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Abort(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	view, err := h.commands.CreateDrop(c.Request.Context(), req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidDrop):
			httperr.Abort(c, http.StatusBadRequest, err, "Invalid drop attributes")
		case errors.Is(err, commands.ErrDuplicateSKU):
			httperr.Abort(c, http.StatusConflict, err, "A drop with this SKU already exists")
		default:
			httperr.Abort(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromDropView(view))
}

func (h *DropHandler) UpdateDrop(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.Abort(c, http.StatusBadRequest, err, "Invalid drop ID format")
		return
	}

	var req reqdto.UpdateDropRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Abort(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	view, err := h.commands.UpdateDrop(c.Request.Context(), id, req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDropNotFound):
			httperr.Abort(c, http.StatusNotFound, err, "Drop not found")
		case errors.Is(err, commands.ErrInvalidDrop):
			httperr.Abort(c, http.StatusBadRequest, err, "Invalid drop attributes")
		default:
			httperr.Abort(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromDropView(view))
}

func (h *DropHandler) DeactivateDrop(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.Abort(c, http.StatusBadRequest, err, "Invalid drop ID format")
		return
	}

	if err := h.commands.DeactivateDrop(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrDropNotFound):
			httperr.Abort(c, http.StatusNotFound, err, "Drop not found")
		default:
			httperr.Abort(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
