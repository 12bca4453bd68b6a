package infra

import (
	"errors"
	"log/slog"

	"appointment-finder/internal/pkg/errs"
)

type GatewayErrorKind string

// GatewayError describes a failure talking to something outside the process:
// an upstream API or the source of the location table.
type GatewayError struct {
	Kind GatewayErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e GatewayError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e GatewayError) Unwrap() error {
	return e.err
}

func WrapGatewayErr(slogger *slog.Logger, kind GatewayErrorKind, msg string, err error) error {
	LogGatewayFailure(slogger, kind, msg, err)

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return GatewayError{Kind: kind, msg: msg, err: err}
}

// LogGatewayFailure records a gateway failure that the caller folds into a
// result value instead of returning. err may be nil.
func LogGatewayFailure(slogger *slog.Logger, kind GatewayErrorKind, msg string, err error, attrs ...slog.Attr) {
	logArgs := []any{
		slog.String("kind", string(kind)),
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("error", err.Error()))
	}
	for _, a := range attrs {
		logArgs = append(logArgs, a)
	}

	slogger.Warn("Gateway error: "+msg, logArgs...)
}

func IsKind(err error, kind GatewayErrorKind) bool {
	var e GatewayError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Infrastructure-specific error kinds
const (
	KindTransport      GatewayErrorKind = "TRANSPORT"
	KindUpstreamStatus GatewayErrorKind = "UPSTREAM_STATUS"
	KindDecode         GatewayErrorKind = "DECODE"
	KindSource         GatewayErrorKind = "SOURCE"
)
