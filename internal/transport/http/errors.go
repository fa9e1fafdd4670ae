package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ettorepuccetti/terrarossa/internal/domain"
)

// User-facing messages shown in the booking dialog. The app serves an
// Italian audience, so these stay literal.
const (
	MsgGeneric = "Si è verificato un problema, per favore riprova."

	MsgInvalidRange     = "Inserisci un orario di fine valido"
	MsgPastTime         = "Non puoi prenotare una data nel passato"
	MsgBadGranularity   = "Prenota 1 ora, 1 ora e mezzo o 2 ore"
	MsgDurationExceeded = "Prenota al massimo 2 ore. Rispetta l'orario di chiusura del circolo"
	MsgConflict         = "La tua prenotazione non puo' essere effettuata. Per favore, scegli un orario in cui il campo è libero"
	MsgForbidden        = "Non sei autorizzato a eseguire questa operazione"
	MsgTooLateToCancel  = "Non puoi cancellare una prenotazione così a ridosso del suo inizio"
	MsgNotFound         = "Risorsa non trovata"
)

func statusAndMessage(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidRange):
		return http.StatusBadRequest, MsgInvalidRange
	case errors.Is(err, domain.ErrPastTime):
		return http.StatusBadRequest, MsgPastTime
	case errors.Is(err, domain.ErrBadGranularity):
		return http.StatusBadRequest, MsgBadGranularity
	case errors.Is(err, domain.ErrDurationExceeded), errors.Is(err, domain.ErrAfterClosing):
		// the dialog shows one combined message for both rules
		return http.StatusBadRequest, MsgDurationExceeded
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, MsgConflict
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, MsgForbidden
	case errors.Is(err, domain.ErrTooLateToCancel):
		return http.StatusForbidden, MsgTooLateToCancel
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, MsgNotFound
	default:
		return http.StatusInternalServerError, MsgGeneric
	}
}

// fail writes the error response: a stable machine code plus the
// literal message the dialog displays.
func fail(c *gin.Context, err error) {
	status, msg := statusAndMessage(err)
	code := err.Error()
	if status == http.StatusInternalServerError {
		code = "internal"
	}
	c.JSON(status, gin.H{"code": code, "message": msg})
}
