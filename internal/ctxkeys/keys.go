package ctxkeys

// TraceIDKey 链路追踪ID的上下文键
type TraceIDKey struct{}
