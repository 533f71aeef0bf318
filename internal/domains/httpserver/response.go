package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/Fivegen-LLC/wol-agent/internal/constants"
	"github.com/Fivegen-LLC/wol-agent/internal/errs"
	"github.com/Fivegen-LLC/wol-agent/internal/objects/dto"
)

const maxBodyBytes = 1 << 16

// errorStatuses is ordered from the most specific sentinel to the most general.
var errorStatuses = []struct {
	err    error
	status int
}{
	{err: errs.ErrInvalidMacAddress, status: http.StatusBadRequest},
	{err: errs.ErrInvalidIPFormat, status: http.StatusBadRequest},
	{err: errs.ErrInvalidNetmask, status: http.StatusBadRequest},
	{err: errs.ErrInvalidParameters, status: http.StatusBadRequest},
	{err: errs.ErrInvalidToken, status: http.StatusUnauthorized},
	{err: errs.ErrSessionNotFound, status: http.StatusUnauthorized},
	{err: errs.ErrUnauthorized, status: http.StatusUnauthorized},
	{err: errs.ErrInvalidCredentials, status: http.StatusUnauthorized},
	{err: errs.ErrForbidden, status: http.StatusForbidden},
	{err: errs.ErrInterfaceNotFound, status: http.StatusNotFound},
	{err: errs.ErrEntryNotFound, status: http.StatusNotFound},
	{err: errs.ErrNoDefaultInterface, status: http.StatusUnprocessableEntity},
	{err: errs.ErrNetworkTransport, status: http.StatusUnprocessableEntity},
}

// StatusForError maps a classified error to its HTTP status; anything unknown is 500.
func StatusForError(err error) int {
	for _, item := range errorStatuses {
		if errors.Is(err, item.err) {
			return item.status
		}
	}

	return http.StatusInternalServerError
}

func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("WriteJSON")
	}
}

// WriteError writes {detail} using the matched sentinel text so wrapped internals never reach the client.
func WriteError(w http.ResponseWriter, err error) {
	status := StatusForError(err)
	detail := http.StatusText(status)
	for _, item := range errorStatuses {
		if errors.Is(err, item.err) {
			detail = item.err.Error()
			break
		}
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		detail = fmt.Sprintf("%s: %s", detail, describeValidation(validationErrs))
	}

	if status == http.StatusUnauthorized {
		w.Header().Set(constants.HeaderAuthenticate, "Bearer")
	}

	if status == http.StatusInternalServerError {
		log.Error().Err(err).Msg("WriteError")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("WriteError")
	}

	WriteJSON(w, status, dto.ErrorResponse{Detail: detail})
}

// DecodeAndValidate reads a JSON body into dst and runs struct validation on it.
func DecodeAndValidate(r *http.Request, validate *validator.Validate, dst any) (err error) {
	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err = decoder.Decode(dst); err != nil {
		return fmt.Errorf("DecodeAndValidate: %w: %w", errs.ErrInvalidParameters, err)
	}

	if err = validate.Struct(dst); err != nil {
		return fmt.Errorf("DecodeAndValidate: %w: %w", errs.ErrInvalidParameters, err)
	}

	return nil
}

func describeValidation(validationErrs validator.ValidationErrors) string {
	fields := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fields = append(fields, fmt.Sprintf("%s failed on %s", fieldErr.Field(), fieldErr.Tag()))
	}

	return strings.Join(fields, ", ")
}
