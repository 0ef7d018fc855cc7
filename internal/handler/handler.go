package handler

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
)

// APIError — ошибка инфраструктурного уровня (неизвестный маршрут, неверный метод,
// некорректное тело запроса), отдается как {"message": ...} с кодом Status.
type APIError struct {
	Status  int    `json:"-"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return e.Message
}

func newAPIError(status int, message string) *APIError {
	return &APIError{Status: status, Message: message}
}

type msgResponse struct {
	Msg string `json:"msg"`
}

type listResponse struct {
	Msg     string      `json:"msg"`
	Results interface{} `json:"results"`
}

type itemResponse struct {
	Msg    string      `json:"msg"`
	Result interface{} `json:"result"`
}

type internalErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// respondWithJSON отправляет JSON-ответ клиенту.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}, logger *slog.Logger) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		logger.Error("failed to marshal JSON response", "error", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err = w.Write(response); err != nil {
		logger.Error("failed to write HTTP response", "error", err)
	}
}

// respondWithMsg отвечает {"msg": ...}
func respondWithMsg(w http.ResponseWriter, code int, msg string, logger *slog.Logger) {
	respondWithJSON(w, code, msgResponse{Msg: msg}, logger)
}

func respondWithAPIError(w http.ResponseWriter, apiErr *APIError, logger *slog.Logger) {
	respondWithJSON(w, apiErr.Status, apiErr, logger)
}

// respondWithInternalError отвечает 500 с текстом исходной ошибки
func respondWithInternalError(w http.ResponseWriter, err error, logger *slog.Logger) {
	respondWithJSON(w, http.StatusInternalServerError, internalErrorResponse{
		Error:   "Internal server error",
		Message: err.Error(),
	}, logger)
}

// pathID читает числовой параметр пути; маршруты уже ограничены цифрами.
// Значения больше BIGINT не могут быть id строки и считаются отсутствующими.
func pathID(r *http.Request, name string) (uint, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id < 0 {
		return 0, false
	}
	return uint(id), true
}

// decodeJSON разбирает тело запроса в dst
func decodeJSON(r *http.Request, dst interface{}) *APIError {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return newAPIError(http.StatusBadRequest, "Request body must not be empty")
		}
		return newAPIError(http.StatusBadRequest, "Request body must be valid JSON: "+err.Error())
	}
	return nil
}

// NotFound отвечает на неизвестные маршруты
func NotFound(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondWithAPIError(w, newAPIError(http.StatusNotFound, "Not found"), logger)
	}
}

// MethodNotAllowed отвечает на известный маршрут с неподдерживаемым методом
func MethodNotAllowed(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondWithAPIError(w, newAPIError(http.StatusMethodNotAllowed, "Method not allowed"), logger)
	}
}
