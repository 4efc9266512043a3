package api

import (
	"errors"
	"net/http"

	resdto "sneakerdrop/internal/handler/dto/response"
	"sneakerdrop/internal/handler/httperr"
	"sneakerdrop/internal/handler/middleware"
	"sneakerdrop/internal/usecase/commands"
	"sneakerdrop/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	commands commands.ReservationCommands
	queries  queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, qrs queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{
		commands: cmds,
		queries:  qrs,
	}
}

func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.Abort(c, http.StatusInternalServerError, nil, "Internal server error")
		return
	}

	dropID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.Abort(c, http.StatusBadRequest, err, "Invalid drop ID format")
		return
	}

	result, err := h.commands.Create(c.Request.Context(), dropID, userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDropNotFound):
			httperr.Abort(c, http.StatusNotFound, err, "Drop not found")
		case errors.Is(err, commands.ErrDropNotAvailable):
			httperr.Abort(c, http.StatusConflict, err, "Drop is not live")
		case errors.Is(err, commands.ErrInsufficientStock):
			httperr.Abort(c, http.StatusConflict, err, "Insufficient stock")
		case errors.Is(err, commands.ErrDuplicateReservation):
			httperr.Abort(c, http.StatusConflict, err, "An active reservation for this drop already exists")
		default:
			httperr.Abort(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromReservationResult(result))
}

func (h *ReservationHandler) CompleteReservation(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.Abort(c, http.StatusInternalServerError, nil, "Internal server error")
		return
	}

	reservationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.Abort(c, http.StatusBadRequest, err, "Invalid reservation ID format")
		return
	}

	result, err := h.commands.Complete(c.Request.Context(), reservationID, userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrReservationNotFound):
			httperr.Abort(c, http.StatusNotFound, err, "Reservation not found")
		case errors.Is(err, commands.ErrForbidden):
			httperr.Abort(c, http.StatusForbidden, err, "Reservation belongs to another user")
		case errors.Is(err, commands.ErrReservationExpired):
			httperr.Abort(c, http.StatusGone, err, "Reservation has expired")
		case errors.Is(err, commands.ErrInvalidState):
			httperr.Abort(c, http.StatusConflict, err, "Reservation is not active")
		default:
			httperr.Abort(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationResult(result))
}

func (h *ReservationHandler) CancelReservation(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.Abort(c, http.StatusInternalServerError, nil, "Internal server error")
		return
	}

	reservationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.Abort(c, http.StatusBadRequest, err, "Invalid reservation ID format")
		return
	}

	result, err := h.commands.Cancel(c.Request.Context(), reservationID, userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrReservationNotFound):
			httperr.Abort(c, http.StatusNotFound, err, "Reservation not found")
		case errors.Is(err, commands.ErrForbidden):
			httperr.Abort(c, http.StatusForbidden, err, "Reservation belongs to another user")
		case errors.Is(err, commands.ErrInvalidState):
			httperr.Abort(c, http.StatusConflict, err, "Reservation is not active")
		default:
			httperr.Abort(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationResult(result))
}

func (h *ReservationHandler) GetActiveReservations(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.Abort(c, http.StatusInternalServerError, nil, "Internal server error")
		return
	}

	views, err := h.queries.ListActiveForUser(c.Request.Context(), userID)
	if err != nil {
		httperr.Abort(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	responses := make([]*resdto.ActiveReservationResponse, len(views))
	for i := range views {
		responses[i] = resdto.FromActiveReservationView(&views[i])
	}

	c.JSON(http.StatusOK, responses)
}
