package httperrors

import (
	"net/http"

	"github.com/kashguard/go-docsig/internal/types"
)

var (
	ErrBadRequestZeroDocumentSize = NewHTTPError(http.StatusBadRequest, types.PublicHTTPErrorTypeGeneric, "Document size of 0 is not supported.")
)
