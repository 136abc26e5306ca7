package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/professional-agenda/internal/domain/availability"
	"github.com/BruksfildServices01/professional-agenda/internal/httperr"
)

// ======================================================
// BUSINESS ERROR MAPPING
// ======================================================

var availabilityErrors = map[string]httperr.Mapping{
	domain.CodeMalformedRange: {
		Status:  http.StatusBadRequest,
		Message: "Intervalo de horário inválido. Use o formato HH:mm-HH:mm.",
	},
	domain.CodeDayAlreadyExists: {
		Status:  http.StatusConflict,
		Message: "Já existem horários registrados para esse dia.",
	},
	domain.CodeProfessionalNotFound: {
		Status:  http.StatusBadRequest,
		Message: "Esse identificador não corresponde a nenhum profissional.",
	},
	domain.CodeNotFound: {
		Status:  http.StatusNotFound,
		Message: "Os dados para esse profissional não foram encontrados.",
	},
	domain.CodeEmptyAvailability: {
		Status:  http.StatusBadRequest,
		Message: "Ao menos um horário precisa ser informado.",
	},
	domain.CodeInvalidInterval: {
		Status:  http.StatusBadRequest,
		Message: "Período de datas inválido.",
	},
}

var sessionErrors = map[string]httperr.Mapping{
	domain.CodeNotFound: {
		Status:  http.StatusNotFound,
		Message: "Não há período de disponibilidade para o dia informado.",
	},
	domain.CodeSlotNotOffered: {
		Status:  http.StatusBadRequest,
		Message: "O profissional não atende nesse horário.",
	},
	domain.CodeSlotUnavailable: {
		Status:  http.StatusConflict,
		Message: "O profissional não está disponível nesse horário.",
	},
}

func invalidRequest(c *gin.Context) {
	httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
}
