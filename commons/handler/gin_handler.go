package handler

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"kiro/commons/error_handler"
	"kiro/commons/response"
	"kiro/internal/logger"

	"github.com/gin-gonic/gin"
)

// ServiceFunc is the unit a route maps to: it receives the parsed request
// and returns the response DTO or a collection of errors. The DTO is
// serialized as the response body as-is, so each endpoint's JSON contract
// is exactly its output type.
type ServiceFunc[InputDto any, OutputDto any] func(
	ctx context.Context,
	ioutil *RequestIo[InputDto],
) (OutputDto, *error_handler.ErrorCollection)

func HandleFunc[InputDto any, OutputDto any](
	deps HandlerDependencies,
	serviceFunc ServiceFunc[InputDto, OutputDto],
) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		log := deps.Logger.WithContext(ctx)

		ioutil := BuildRequestIo[InputDto](c)

		if c.Request.Method == http.MethodPost || c.Request.Method == http.MethodPut || c.Request.Method == http.MethodPatch {
			bodyBytes, err := io.ReadAll(c.Request.Body)
			if err != nil {
				log.Error("unable to read request body", logger.Error(err))
				SendErrorResponse(c, error_handler.NewErrorCollection().
					AddError(error_handler.CodeInternalServerError, "Unable to read request body", nil))
				return
			}

			ioutil.RawBody = bodyBytes

			if len(bodyBytes) > 0 {
				// Restore the body for ShouldBindJSON to read
				c.Request.Body = io.NopCloser(bytes.NewReader(bodyBytes))

				if err := c.ShouldBindJSON(&ioutil.Body); err != nil {
					log.Error("unable to bind request body", logger.Error(err))
					SendErrorResponse(c, error_handler.NewErrorCollection().
						AddError(error_handler.CodeValidationError, err.Error(), nil))
					return
				}
			}
		}

		outputDto, errorCollection := serviceFunc(ctx, ioutil)

		if errorCollection != nil && errorCollection.HasErrors() {
			SendErrorResponse(c, errorCollection)
		} else {
			SendSuccessResponse(c, outputDto)
		}
	}
}

func SendSuccessResponse[T any](c *gin.Context, data T) {
	c.JSON(http.StatusOK, data)
}

func SendErrorResponse(c *gin.Context, errorCollection *error_handler.ErrorCollection) {
	httpStatus := errorCollection.GetHTTPStatus()
	errors := errorCollection.GetErrors()

	var primaryErrorCode int
	var primaryMessage string

	if len(errors) > 0 {
		primaryErrorCode = errors[0].ErrorCode
		primaryMessage = errors[0].Message
	} else {
		primaryErrorCode = error_handler.CodeInternalServerError
		primaryMessage = "Internal server error"
	}

	errorResponse := response.ErrorResponse{
		Status:    response.StatusFailed,
		ErrorCode: primaryErrorCode,
		Message:   primaryMessage,
		Errors:    errors,
	}

	c.JSON(httpStatus, errorResponse)
}
