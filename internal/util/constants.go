package util

const (
	GeneratorMock   = "mock"
	GeneratorGemini = "gemini"
)

const (
	MimeJSON = "application/json"
)

// 请求上下文键
const (
	ContextRequestID = "request_id"
	HeaderRequestID  = "X-Request-ID"
)
