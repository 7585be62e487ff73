package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"reflect"
	"strings"
	"time"

	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/consts"
	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type contextKey string

const LogDetailsKey contextKey = "logDetails"

func extractHeaders(headers map[string][]string) map[string]interface{} {
	result := make(map[string]interface{})
	for key, values := range headers {
		result[key] = values[0]
	}
	return maskSensitiveData(result, consts.SensitiveKeys)
}

// AttachRequestDetails seeds the request context with an operation log
// entry and emits it once the handler chain finishes. Auth headers are
// masked before logging.
func AttachRequestDetails() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestTime := time.Now().UTC()

		details := models.RequestDetails{
			RequestID:     uuid.New().String(),
			IP:            c.ClientIP(),
			UserAgent:     c.Request.UserAgent(),
			HTTPMethod:    c.Request.Method,
			Path:          c.Request.URL.String(),
			OperationName: operationName(c.HandlerName()),
			RequestTime:   requestTime.Format(time.RFC3339Nano),
			RequestParams: map[string]interface{}{
				"headers": extractHeaders(c.Request.Header),
				"payload": map[string]interface{}{},
				"query":   c.Request.URL.Query(),
			},
		}

		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), LogDetailsKey, details))
		c.Next()

		details.Status = c.Writer.Status()
		details.ResponseTime = time.Now().UTC().Format(time.RFC3339Nano)
		details.ResponseParams = map[string]interface{}{
			"headers": extractHeaders(c.Writer.Header()),
			"body":    map[string]interface{}{},
		}

		logMessage, err := json.Marshal(details)
		if err != nil {
			log.Fatalf("Error encoding log message to JSON: %v", err)
		}
		fmt.Println(string(logMessage))
	}
}

func maskSensitiveData(data map[string]interface{}, keysToMask []string) map[string]interface{} {
	masked := make(map[string]interface{})
	for key, value := range data {
		switch {
		case contains(keysToMask, key):
			masked[key] = "*****"
		case reflect.TypeOf(value).Kind() == reflect.Map:
			if nested, ok := value.(map[string]interface{}); ok {
				masked[key] = maskSensitiveData(nested, keysToMask)
			} else {
				masked[key] = value
			}
		default:
			masked[key] = value
		}
	}
	return masked
}

func contains(slice []string, item string) bool {
	for _, a := range slice {
		if a == item {
			return true
		}
	}
	return false
}

// operationName trims gin handler names like
// "github.com/Cysparks-Inc/lendy-sub000/internal/app/handlers.RecordPayment-fm"
// down to their first two path segments.
func operationName(handlerName string) string {
	segments := strings.Split(handlerName, "/")
	if len(segments) > 2 {
		return strings.Join(segments[:2], "/")
	}
	return handlerName
}
