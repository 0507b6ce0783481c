package response

// JSONResponse is the envelope used by middleware-level responses
// (auth rejections, the global error handler). Feature handlers use
// their own success shapes.
type JSONResponse struct {
	Status  string      `json:"status"`
	Code    string      `json:"code,omitempty"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func Success(message string, data interface{}) JSONResponse {
	return JSONResponse{
		Status:  "success",
		Message: message,
		Data:    data,
	}
}

func Error(code, message string, data interface{}) JSONResponse {
	return JSONResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		Data:    data,
	}
}
