package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/professional-agenda/internal/dto"
	"github.com/BruksfildServices01/professional-agenda/internal/httperr"
	"github.com/BruksfildServices01/professional-agenda/internal/httpresp"
	ucAvailability "github.com/BruksfildServices01/professional-agenda/internal/usecase/availability"
)

// ======================================================
// HANDLER
// ======================================================

type AvailabilityHandler struct {
	register *ucAvailability.RegisterAvailability
	update   *ucAvailability.UpdateAvailability
	get      *ucAvailability.GetAvailability
	inRange  *ucAvailability.GetAvailabilityInRange
	remove   *ucAvailability.DeleteAvailability
	log      *zap.Logger
}

func NewAvailabilityHandler(
	register *ucAvailability.RegisterAvailability,
	update *ucAvailability.UpdateAvailability,
	get *ucAvailability.GetAvailability,
	inRange *ucAvailability.GetAvailabilityInRange,
	remove *ucAvailability.DeleteAvailability,
	log *zap.Logger,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		register: register,
		update:   update,
		get:      get,
		inRange:  inRange,
		remove:   remove,
		log:      log,
	}
}

// ======================================================
// REGISTER
// ======================================================

func (h *AvailabilityHandler) Register(c *gin.Context) {
	var req dto.AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}

	if err := h.register.Execute(c.Request.Context(), req.ID, req.Availabilities); err != nil {
		h.fail(c, err, "register_failed", "Não foi possível adicionar os horários de disponibilidade.")
		return
	}

	httpresp.Message(c, "Os horários foram registrados com sucesso.")
}

// ======================================================
// UPDATE
// ======================================================

func (h *AvailabilityHandler) Update(c *gin.Context) {
	var req dto.AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}

	if err := h.update.Execute(c.Request.Context(), req.ID, req.Availabilities); err != nil {
		h.fail(c, err, "update_failed", "Não foi possível atualizar os horários de disponibilidade.")
		return
	}

	httpresp.Message(c, "Os horários foram atualizados com sucesso.")
}

// ======================================================
// QUERIES
// ======================================================

func (h *AvailabilityHandler) Get(c *gin.Context) {
	var q dto.AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		invalidRequest(c)
		return
	}

	days, err := h.get.Execute(c.Request.Context(), q.ID)
	if err != nil {
		h.fail(c, err, "query_failed", "Não foi possível consultar os horários de disponibilidade.")
		return
	}

	httpresp.OK(c, days)
}

func (h *AvailabilityHandler) GetByInterval(c *gin.Context) {
	var q dto.AvailabilityIntervalQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		invalidRequest(c)
		return
	}

	days, err := h.inRange.Execute(c.Request.Context(), q.ID, q.StartDate, q.EndDate)
	if err != nil {
		h.fail(c, err, "query_failed", "Não foi possível consultar os horários de disponibilidade.")
		return
	}

	httpresp.OK(c, days)
}

// ======================================================
// DELETE
// ======================================================

func (h *AvailabilityHandler) Delete(c *gin.Context) {
	var req dto.DeleteAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}

	if err := h.remove.Execute(c.Request.Context(), req.ID, req.Day); err != nil {
		h.fail(c, err, "delete_failed", "Não foi possível apagar os horários de disponibilidade.")
		return
	}

	httpresp.Message(c, "Os horários de disponibilidade foram excluídos para o dia informado.")
}

func (h *AvailabilityHandler) fail(c *gin.Context, err error, code, message string) {
	if httperr.CodeOf(err) == "" {
		h.log.Error(code, zap.Error(err))
	}
	httperr.FromBusiness(c, err, availabilityErrors, code, message)
}
