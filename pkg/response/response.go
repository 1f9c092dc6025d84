package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK sends 200 JSON with data as the top-level body.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created sends 201 JSON with data as the top-level body.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// Message sends 200 with a {"message": ...} body.
func Message(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, MessageResp{Message: msg})
}

// Error sends a 400 response with the error text as detail.
func Error(c *gin.Context, err error) {
	Detail(c, http.StatusBadRequest, errText(err, http.StatusText(http.StatusBadRequest)))
}

// NotFound sends a 404 response with the given detail.
func NotFound(c *gin.Context, detail string) {
	if detail == "" {
		detail = DefaultNotFoundError
	}
	Detail(c, http.StatusNotFound, detail)
}

// InternalError sends 500 with the error string in detail.
func InternalError(c *gin.Context, err error) {
	Detail(c, http.StatusInternalServerError, errText(err, DefaultErrorMessage))
}

// Detail aborts the request with status and a {"detail": ...} body.
func Detail(c *gin.Context, status int, detail string) {
	c.AbortWithStatusJSON(status, ErrorResp{Detail: detail})
}

// Recovery converts panics into a 500 {"detail": ...} response.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		if err, ok := recovered.(error); ok {
			InternalError(c, err)
			return
		}
		if s, ok := recovered.(string); ok {
			Detail(c, http.StatusInternalServerError, s)
			return
		}
		Detail(c, http.StatusInternalServerError, DefaultErrorMessage)
	})
}

func errText(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	return err.Error()
}
