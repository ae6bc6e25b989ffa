package inspect_test

import (
	"context"
	"testing"
	"time"

	"github.com/dropbox/godropbox/time2"
	"github.com/kashguard/go-docsig/internal/docsig/audit"
	"github.com/kashguard/go-docsig/internal/docsig/inspect"
	"github.com/kashguard/go-docsig/internal/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockAuditLogger 用于测试的 mock 审计日志
type mockAuditLogger struct {
	events []*audit.AuditEvent
}

func (m *mockAuditLogger) LogEvent(_ context.Context, event *audit.AuditEvent) error {
	m.events = append(m.events, event)
	return nil
}

func newTestService(t *testing.T) (inspect.Service, *mockAuditLogger) {
	t.Helper()

	logger := &mockAuditLogger{}
	service, err := inspect.NewService(time2.NewMockClock(time.Now()), logger)
	require.NoError(t, err)

	return service, logger
}

func TestFirstUnsignedSigner_NoOriginPart(t *testing.T) {
	// 场景 A：一个签名行，无签名源部件
	service, _ := newTestService(t)

	document := test.DocumentFixture{
		BodyXML: test.BodyWithSignatureLines(test.SignatureLineEntry{Signer: "Jane Doe"}),
	}.Build(t)

	result, err := service.FirstUnsignedSigner(context.Background(), &inspect.CheckRequest{Document: document})
	require.NoError(t, err)

	require.True(t, result.Found)
	require.NotNil(t, result.Signer)
	assert.Equal(t, "Jane Doe", result.Signer.SuggestedSigner)
	assert.Equal(t, "Unknown", result.Signer.Email)
	assert.False(t, result.Signer.Signed)
}

func TestSignatureReport_MatchedByIssuerName(t *testing.T) {
	// 场景 B：同一正文加上颁发者为 "CN=Jane Doe, O=Acme" 的签名部件
	service, _ := newTestService(t)

	document := test.DocumentFixture{
		BodyXML:             test.BodyWithSignatureLines(test.SignatureLineEntry{Signer: "Jane Doe"}),
		WithSignatureOrigin: true,
		SignaturePartsXML:   []string{test.SignaturePartWithIssuers("CN=Jane Doe, O=Acme")},
	}.Build(t)

	report, err := service.SignatureReport(context.Background(), &inspect.CheckRequest{Document: document})
	require.NoError(t, err)

	assert.True(t, report.IsDigitallySigned)
	assert.Equal(t, 1, report.SignatureCount)
	require.Len(t, report.Signatures, 1)
	assert.True(t, report.Signatures[0].Signed)
}

func TestFirstUnsignedSigner_SkipsSignedLines(t *testing.T) {
	// 场景 C："Alice" 已签名、"Bob" 未签名，返回 "Bob"
	service, _ := newTestService(t)

	document := test.DocumentFixture{
		BodyXML: test.BodyWithSignatureLines(
			test.SignatureLineEntry{Signer: "Alice"},
			test.SignatureLineEntry{Signer: "Bob"},
		),
		WithSignatureOrigin: true,
		SignaturePartsXML:   []string{test.SignaturePartWithIssuers("CN=Alice, O=Acme")},
	}.Build(t)

	result, err := service.FirstUnsignedSigner(context.Background(), &inspect.CheckRequest{Document: document})
	require.NoError(t, err)

	require.True(t, result.Found)
	assert.Equal(t, "Bob", result.Signer.SuggestedSigner)
}

func TestSignatureReport_NoSignatureLines(t *testing.T) {
	service, _ := newTestService(t)

	document := test.DocumentFixture{
		BodyXML: test.BodyWithSignatureLines(),
	}.Build(t)

	report, err := service.SignatureReport(context.Background(), &inspect.CheckRequest{Document: document})
	require.NoError(t, err)
	assert.Empty(t, report.Signatures)
	assert.False(t, report.IsDigitallySigned)
	assert.Equal(t, 0, report.SignatureCount)

	result, err := service.FirstUnsignedSigner(context.Background(), &inspect.CheckRequest{Document: document})
	require.NoError(t, err)
	assert.False(t, result.Found)
	assert.Nil(t, result.Signer)
}

func TestSignatureReport_OriginWithoutParts(t *testing.T) {
	// 签名源容器存在但无签名子部件：IsDigitallySigned=true，计数为 0
	service, _ := newTestService(t)

	document := test.DocumentFixture{
		BodyXML:             test.BodyWithSignatureLines(test.SignatureLineEntry{Signer: "Jane Doe"}),
		WithSignatureOrigin: true,
	}.Build(t)

	report, err := service.SignatureReport(context.Background(), &inspect.CheckRequest{Document: document})
	require.NoError(t, err)
	assert.True(t, report.IsDigitallySigned)
	assert.Equal(t, 0, report.SignatureCount)
	require.Len(t, report.Signatures, 1)
	assert.False(t, report.Signatures[0].Signed)
}

func TestSignatureReport_MalformedDocument(t *testing.T) {
	// 场景 D：非法输入整体失败，不产生部分报告
	service, logger := newTestService(t)

	_, err := service.SignatureReport(context.Background(), &inspect.CheckRequest{Document: []byte("not a zip")})
	require.Error(t, err)
	assert.ErrorIs(t, err, inspect.ErrMalformedPackage)

	// 失败也会记录审计事件
	require.Len(t, logger.events, 1)
	assert.Equal(t, "Failure", logger.events[0].Result)
}

func TestSignatureReport_Idempotent(t *testing.T) {
	service, _ := newTestService(t)

	document := test.DocumentFixture{
		BodyXML: test.BodyWithSignatureLines(
			test.SignatureLineEntry{Signer: "Alice", Email: "alice@example.com"},
			test.SignatureLineEntry{Signer: "Bob"},
		),
		WithSignatureOrigin: true,
		SignaturePartsXML:   []string{test.SignaturePartWithIssuers("CN=Alice, O=Acme")},
	}.Build(t)

	first, err := service.SignatureReport(context.Background(), &inspect.CheckRequest{Document: document})
	require.NoError(t, err)
	second, err := service.SignatureReport(context.Background(), &inspect.CheckRequest{Document: document})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAuditEventsCarryDocumentDigest(t *testing.T) {
	service, logger := newTestService(t)

	document := test.DocumentFixture{
		BodyXML: test.BodyWithSignatureLines(test.SignatureLineEntry{Signer: "Jane Doe"}),
	}.Build(t)

	_, err := service.SignatureReport(context.Background(), &inspect.CheckRequest{Document: document, ClientIP: "203.0.113.7"})
	require.NoError(t, err)

	require.Len(t, logger.events, 1)
	event := logger.events[0]
	assert.Equal(t, "DocumentInspected", event.EventType)
	assert.Equal(t, "signature_report", event.Operation)
	assert.Equal(t, "Success", event.Result)
	assert.Equal(t, "203.0.113.7", event.IPAddress)
	assert.Len(t, event.DocumentDigest, 64)
	assert.False(t, event.Timestamp.IsZero())
}
