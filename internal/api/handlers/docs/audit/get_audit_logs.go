package audit

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/kashguard/go-docsig/internal/api"
	"github.com/kashguard/go-docsig/internal/api/httperrors"
	"github.com/kashguard/go-docsig/internal/docsig/storage"
	"github.com/kashguard/go-docsig/internal/types"
	"github.com/kashguard/go-docsig/internal/util"
	"github.com/labstack/echo/v4"
)

func GetAuditLogsRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Documents.GET("/audit-logs", getAuditLogsHandler(s))
}

func getAuditLogsHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		// 构建过滤器
		filter := &storage.AuditLogFilter{
			Limit:  s.Config.Docsig.AuditLogsDefaultLimit,
			Offset: 0,
		}

		// 解析查询参数
		if v := c.QueryParam("document_digest"); v != "" {
			filter.DocumentDigest = v
		}
		if v := c.QueryParam("event_type"); v != "" {
			filter.EventType = v
		}
		if v := c.QueryParam("operation"); v != "" {
			filter.Operation = v
		}
		if v := c.QueryParam("result"); v != "" {
			filter.Result = v
		}

		// 解析时间参数
		if v := c.QueryParam("start_time"); v != "" {
			startTime, err := time.Parse(time.RFC3339, v)
			if err != nil {
				return httperrors.NewHTTPError(http.StatusBadRequest, types.PublicHTTPErrorTypeGeneric, "start_time must be RFC3339 formatted")
			}
			filter.StartTime = &startTime
		}
		if v := c.QueryParam("end_time"); v != "" {
			endTime, err := time.Parse(time.RFC3339, v)
			if err != nil {
				return httperrors.NewHTTPError(http.StatusBadRequest, types.PublicHTTPErrorTypeGeneric, "end_time must be RFC3339 formatted")
			}
			filter.EndTime = &endTime
		}

		// 解析 limit 和 offset
		if v := c.QueryParam("limit"); v != "" {
			limit, err := strconv.Atoi(v)
			if err != nil || limit < 0 {
				return httperrors.NewHTTPError(http.StatusBadRequest, types.PublicHTTPErrorTypeGeneric, "limit must be a non-negative integer")
			}
			filter.Limit = limit
		}
		if v := c.QueryParam("offset"); v != "" {
			offset, err := strconv.Atoi(v)
			if err != nil || offset < 0 {
				return httperrors.NewHTTPError(http.StatusBadRequest, types.PublicHTTPErrorTypeGeneric, "offset must be a non-negative integer")
			}
			filter.Offset = offset
		}

		// 查询审计日志
		events, err := s.AuditStore.QueryAuditLogs(ctx, filter)
		if err != nil {
			log.Error().Err(err).Msg("Failed to query audit logs")
			return httperrors.NewHTTPError(http.StatusInternalServerError, types.PublicHTTPErrorTypeGeneric, "Failed to query audit logs")
		}

		// 转换响应
		eventResponses := make([]*types.GetAuditLogsResponseEventsItems0, 0, len(events))
		for _, event := range events {
			timestamp := strfmt.DateTime(event.Timestamp)
			eventResponse := &types.GetAuditLogsResponseEventsItems0{
				Timestamp:      &timestamp,
				EventType:      &event.EventType,
				Operation:      &event.Operation,
				Result:         &event.Result,
				DocumentDigest: event.DocumentDigest,
				IPAddress:      event.IPAddress,
			}
			if event.Details != nil {
				eventResponse.Details = event.Details
			}
			eventResponses = append(eventResponses, eventResponse)
		}

		response := &types.GetAuditLogsResponse{
			Events: eventResponses,
			Total:  int64(len(eventResponses)),
		}

		return util.ValidateAndReturn(c, http.StatusOK, response)
	}
}
