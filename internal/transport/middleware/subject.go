package middleware

import "context"

type subjectHolderKey struct{}

// subjectHolder carries the admin subject from AdminAuth back out to
// Logger, which wraps it and never sees the inner request context.
type subjectHolder struct {
	subject string
}

func withSubjectHolder(ctx context.Context, h *subjectHolder) context.Context {
	return context.WithValue(ctx, subjectHolderKey{}, h)
}

func recordSubject(ctx context.Context, subject string) {
	if h, ok := ctx.Value(subjectHolderKey{}).(*subjectHolder); ok {
		h.subject = subject
	}
}
