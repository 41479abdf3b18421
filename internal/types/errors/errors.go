package errors

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

var (
	ErrDBInternal      = errors.New("database internal error")
	ErrStorageInternal = errors.New("storage internal error")
	ErrNotFound        = errors.New("record not found")

	ErrNoProvider = errors.New("cart store provider is not configured")

	ErrBadID        = errors.New("bad id")
	ErrInvalidPrice = errors.New("price must not be negative")

	ErrInvalidJSONPayload = errors.New("invalid JSON payload")
	ErrUnknownDriver      = errors.New("unknown storage driver")
)

type ErrorServer struct {
	Message string `json:"message"`
}

func (e *ErrorServer) Error() string {
	return e.Message
}

/*
NewErrorServer
Функция имеет возможность принимать "nil ошибку"
при получении nil наша функция понимает, что нам
просто надо отдать саксесс клиенту
*/
func NewErrorServer(err error) ErrorServer {
	if err == nil {
		return ErrorServer{
			Message: "success",
		}
	}

	return ErrorServer{
		Message: err.Error(),
	}
}

func SendErrorTo(w http.ResponseWriter, err error, statusCode int, logger *zap.SugaredLogger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if errEncode := json.NewEncoder(w).Encode(NewErrorServer(err)); errEncode != nil {
		logger.Error(errEncode)
	}
}
