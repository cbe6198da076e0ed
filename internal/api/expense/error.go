package expense

import (
	"DompetCurhat/pkg/response"
	"net/http"
)

var (
	ErrInvalidFileType = response.NewError(http.StatusBadRequest, "invalid file type, only images are allowed")
	ErrFileTooLarge    = response.NewError(http.StatusBadRequest, "file too large, maximum size is 5MB")
)
