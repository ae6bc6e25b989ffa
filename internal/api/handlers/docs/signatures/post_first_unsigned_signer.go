package signatures

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/kashguard/go-docsig/internal/api"
	"github.com/kashguard/go-docsig/internal/docsig/inspect"
	"github.com/kashguard/go-docsig/internal/types"
	"github.com/kashguard/go-docsig/internal/util"
	"github.com/labstack/echo/v4"
)

func PostFirstUnsignedSignerRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Documents.POST("/first-unsigned-signer", postFirstUnsignedSignerHandler(s))
}

func postFirstUnsignedSignerHandler(s *api.Server) echo.HandlerFunc {
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
		result, err := s.InspectionService.FirstUnsignedSigner(ctx, req)
		if err != nil {
			log.Error().Err(err).Msg("Failed to find first unsigned signer")
			s.Metrics.InspectionFailures.Inc()
			return mapInspectionError(err)
		}

		s.Metrics.DocumentsInspected.Inc()

		// 转换响应
		response := &types.PostFirstUnsignedSignerResponse{
			Found: swag.Bool(result.Found),
		}
		if result.Signer != nil {
			response.Signer = &types.SignatureStatusItem{
				SuggestedSigner: swag.String(result.Signer.SuggestedSigner),
				Email:           swag.String(result.Signer.Email),
				Signed:          swag.Bool(result.Signer.Signed),
			}
		}

		return util.ValidateAndReturn(c, http.StatusOK, response)
	}
}
