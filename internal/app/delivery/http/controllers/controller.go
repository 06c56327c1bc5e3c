package controllers

import (
	"context"
	"time"

	"vitacare-service/internal/pkg/constvars"
	"vitacare-service/internal/pkg/exceptions"
)

const requestTimeout = 10 * time.Second

func callerIDFromContext(ctx context.Context) (string, error) {
	callerID, ok := ctx.Value(constvars.CONTEXT_CALLER_ID_KEY).(string)
	if !ok || callerID == "" {
		return "", exceptions.ErrMissingCallerID(nil)
	}
	return callerID, nil
}
