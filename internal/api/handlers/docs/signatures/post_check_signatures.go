package signatures

import (
	"encoding/base64"
	"errors"
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/kashguard/go-docsig/internal/api"
	"github.com/kashguard/go-docsig/internal/api/httperrors"
	"github.com/kashguard/go-docsig/internal/docsig/inspect"
	"github.com/kashguard/go-docsig/internal/types"
	"github.com/kashguard/go-docsig/internal/util"
	"github.com/labstack/echo/v4"
)

func PostCheckSignaturesRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Documents.POST("/signatures", postCheckSignaturesHandler(s))
}

func postCheckSignaturesHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		var body types.PostCheckDocumentPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		// 解码文档
		document, err := decodeDocument(&body)
		if err != nil {
			return err
		}

		// 调用服务
		req := &inspect.CheckRequest{
			Document: document,
			ClientIP: c.RealIP(),
		}
		report, err := s.InspectionService.SignatureReport(ctx, req)
		if err != nil {
			log.Error().Err(err).Msg("Failed to build document signature report")
			s.Metrics.InspectionFailures.Inc()
			return mapInspectionError(err)
		}

		s.Metrics.DocumentsInspected.Inc()
		s.Metrics.SignatureLinesSeen.Add(float64(len(report.Signatures)))

		// 转换响应
		signatureItems := make([]*types.SignatureStatusItem, 0, len(report.Signatures))
		for i := range report.Signatures {
			status := report.Signatures[i]
			signatureItems = append(signatureItems, &types.SignatureStatusItem{
				SuggestedSigner: swag.String(status.SuggestedSigner),
				Email:           swag.String(status.Email),
				Signed:          swag.Bool(status.Signed),
			})
		}

		response := &types.PostCheckSignaturesResponse{
			IsDigitallySigned: swag.Bool(report.IsDigitallySigned),
			SignatureCount:    swag.Int64(int64(report.SignatureCount)),
			Signatures:        signatureItems,
		}

		return util.ValidateAndReturn(c, http.StatusOK, response)
	}
}

// decodeDocument 解码请求体中 base64 编码的文档字节
func decodeDocument(body *types.PostCheckDocumentPayload) ([]byte, error) {
	if body.Document == nil {
		return nil, httperrors.NewHTTPValidationError(
			http.StatusBadRequest,
			types.PublicHTTPErrorTypeGeneric,
			"Invalid request",
			[]*types.HTTPValidationErrorDetail{
				{
					Key:   swag.String("document"),
					In:    swag.String("body"),
					Error: swag.String("document is required"),
				},
			},
		)
	}

	document, err := base64.StdEncoding.DecodeString(body.Document.String())
	if err != nil {
		return nil, httperrors.NewHTTPValidationError(
			http.StatusBadRequest,
			types.PublicHTTPErrorTypeGeneric,
			"Invalid document format",
			[]*types.HTTPValidationErrorDetail{
				{
					Key:   swag.String("document"),
					In:    swag.String("body"),
					Error: swag.String("must be base64 encoded"),
				},
			},
		)
	}

	if len(document) == 0 {
		return nil, httperrors.ErrBadRequestZeroDocumentSize
	}

	return document, nil
}

// mapInspectionError 将服务哨兵错误映射为 HTTP 错误
func mapInspectionError(err error) error {
	if errors.Is(err, inspect.ErrMalformedPackage) {
		return httperrors.NewHTTPError(http.StatusUnprocessableEntity, types.PublicHTTPErrorTypeGeneric, "Document is not a valid OPC package")
	}
	if errors.Is(err, inspect.ErrMalformedSignaturePart) {
		return httperrors.NewHTTPError(http.StatusUnprocessableEntity, types.PublicHTTPErrorTypeGeneric, "Document contains a malformed signature part")
	}

	return httperrors.NewHTTPError(http.StatusInternalServerError, types.PublicHTTPErrorTypeGeneric, "Failed to inspect document")
}
