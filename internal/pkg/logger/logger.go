package logger

import (
	"context"
	"encoding/json"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/Cysparks-Inc/lendy-sub000/configs"
	"github.com/Cysparks-Inc/lendy-sub000/internal/app/middleware"
	"github.com/Cysparks-Inc/lendy-sub000/internal/pkg/models"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	log         *zap.Logger
	serviceName string
)

func init() {

	err := configs.LoadEnv()
	if err != nil {
		fmt.Printf("error loading .env file : %v", err)
	}
	serviceName = configs.SERVICE_NAME
	if serviceName == "" {
		serviceName = "lendyloanengine"
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(parseLevel(configs.LOG_LEVEL))
	config.Encoding = "json"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.LevelKey = "log_level"
	config.EncoderConfig.MessageKey = "message"
	config.EncoderConfig.TimeKey = "timestamp"
	config.OutputPaths = []string{"stdout"}
	config.EncoderConfig.CallerKey = ""
	config.EncoderConfig.StacktraceKey = ""
	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	log, _ = config.Build(zap.AddCallerSkip(1))
}

func parseLevel(raw string) zapcore.Level {
	switch strings.ToLower(raw) {
	case "debug":
		return zap.DebugLevel
	case "info":
		return zap.InfoLevel
	case "warn":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	case "panic":
		return zap.PanicLevel
	default:
		return zap.InfoLevel
	}
}

// The variadic helpers accept an optional leading context.Context. When
// present, the request id and trace id travel with every log line, so a
// single payment can be followed across service, store and publisher logs.

func Info(args ...interface{}) {
	emit(zap.InfoLevel, args...)
}

func Debug(args ...interface{}) {
	emit(zap.DebugLevel, args...)
}

func Error(args ...interface{}) {
	emit(zap.ErrorLevel, args...)
}

func Warn(args ...interface{}) {
	emit(zap.WarnLevel, args...)
}

func Panic(args ...interface{}) {
	emit(zap.PanicLevel, args...)
}

func emit(level zapcore.Level, args ...interface{}) {
	var msg string
	var fields []zapcore.Field
	var ctx context.Context
	seen := make(map[string]struct{})

	if len(args) > 0 {
		if firstArg, ok := args[0].(context.Context); ok {
			ctx = firstArg
			if len(args) > 1 {
				switch secondArg := args[1].(type) {
				case string:
					msg = format(args[1:]...)
				default:
					msg = format(args[2:]...)
					fields = append(fields, structFields(secondArg)...)
				}
			}
		} else {
			msg = format(args...)
		}
	}

	for _, field := range contextFields(ctx) {
		if _, exists := seen[field.Key]; !exists {
			fields = append(fields, field)
			seen[field.Key] = struct{}{}
		}
	}

	debugEnabled := log.Core().Enabled(zap.DebugLevel)
	if debugEnabled || level == zap.DebugLevel {
		for _, field := range callerFields(3) {
			if _, exists := seen[field.Key]; !exists {
				fields = append(fields, field)
				seen[field.Key] = struct{}{}
			}
		}
	}

	switch level {
	case zap.DebugLevel:
		log.Debug(msg, fields...)
	case zap.InfoLevel:
		log.Info(msg, fields...)
	case zap.WarnLevel:
		log.Warn(msg, fields...)
	case zap.ErrorLevel:
		log.Error(msg, fields...)
	case zap.PanicLevel:
		log.Panic(msg, fields...)
	}
}

// structFields flattens an arbitrary struct into string fields via its
// JSON form. Values are stringified so the log schema stays uniform.
func structFields(data interface{}) []zapcore.Field {
	fields := []zapcore.Field{
		zap.String("timestamp", time.Now().Format(time.RFC3339)),
	}

	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return append(fields, zap.String("error", fmt.Sprintf("failed to serialize struct: %v", err)))
	}

	var jsonMap map[string]interface{}
	if err := json.Unmarshal(jsonBytes, &jsonMap); err != nil {
		return append(fields, zap.String("error", fmt.Sprintf("failed to parse JSON: %v", err)))
	}

	for key, value := range jsonMap {
		fields = append(fields, zap.String(key, fmt.Sprintf("%v", value)))
	}

	return fields
}

func format(args ...interface{}) string {
	if len(args) == 0 {
		return ""
	}
	msg, ok := args[0].(string)
	if !ok {
		msg = fmt.Sprintf("%v", args[0])
	}

	if len(args) > 1 {
		msg = fmt.Sprintf(msg, args[1:]...)
	}
	return msg
}

func contextFields(ctx context.Context) []zapcore.Field {
	if ctx == nil {
		return nil
	}

	var fields []zapcore.Field
	if details, ok := ctx.Value(middleware.LogDetailsKey).(models.RequestDetails); ok {
		fields = append(fields, zap.String("request_id", details.RequestID))
	}

	span := trace.SpanFromContext(ctx)
	if span != nil {
		spanContext := span.SpanContext()
		if spanContext.HasTraceID() {
			fields = append(fields, zap.String("trace_id", spanContext.TraceID().String()))
		}
	}

	return append(fields, zap.String("service_name", serviceName))
}

func callerFields(skip int) []zapcore.Field {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return nil
	}

	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return nil
	}

	fileParts := strings.Split(file, "/")
	funcParts := strings.Split(fn.Name(), ".")

	return []zapcore.Field{
		zap.String("file_name", fileParts[len(fileParts)-1]),
		zap.Int("line_number", line),
		zap.String("function_name", funcParts[len(funcParts)-1]),
	}
}
