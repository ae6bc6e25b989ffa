package signatures_test

import (
	"net/http"
	"testing"

	"github.com/go-openapi/strfmt"
	"github.com/kashguard/go-docsig/internal/api"
	"github.com/kashguard/go-docsig/internal/api/httperrors"
	"github.com/kashguard/go-docsig/internal/test"
	"github.com/kashguard/go-docsig/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkPayload(document []byte) *types.PostCheckDocumentPayload {
	encoded := strfmt.Base64(document)
	return &types.PostCheckDocumentPayload{Document: &encoded}
}

func TestPostCheckSignatures(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		document := test.DocumentFixture{
			BodyXML: test.BodyWithSignatureLines(
				test.SignatureLineEntry{Signer: "Alice", Email: "alice@example.com"},
				test.SignatureLineEntry{Signer: "Bob"},
			),
			WithSignatureOrigin: true,
			SignaturePartsXML:   []string{test.SignaturePartWithIssuers("CN=Alice Example, O=Acme")},
		}.Build(t)

		res := test.PerformRequest(t, s, "POST", "/api/v1/documents/signatures", checkPayload(document), nil)
		require.Equal(t, http.StatusOK, res.Code)

		var response types.PostCheckSignaturesResponse
		test.ParseResponseBody(t, res, &response)

		require.NotNil(t, response.IsDigitallySigned)
		assert.True(t, *response.IsDigitallySigned)
		require.NotNil(t, response.SignatureCount)
		assert.EqualValues(t, 1, *response.SignatureCount)

		require.Len(t, response.Signatures, 2)
		assert.Equal(t, "Alice", *response.Signatures[0].SuggestedSigner)
		assert.Equal(t, "alice@example.com", *response.Signatures[0].Email)
		assert.True(t, *response.Signatures[0].Signed)
		assert.Equal(t, "Bob", *response.Signatures[1].SuggestedSigner)
		assert.Equal(t, "Unknown", *response.Signatures[1].Email)
		assert.False(t, *response.Signatures[1].Signed)
	})
}

func TestPostCheckSignatures_UnsignedDocument(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		document := test.DocumentFixture{
			BodyXML: test.BodyWithSignatureLines(test.SignatureLineEntry{Signer: "Jane Doe"}),
		}.Build(t)

		res := test.PerformRequest(t, s, "POST", "/api/v1/documents/signatures", checkPayload(document), nil)
		require.Equal(t, http.StatusOK, res.Code)

		var response types.PostCheckSignaturesResponse
		test.ParseResponseBody(t, res, &response)

		assert.False(t, *response.IsDigitallySigned)
		assert.EqualValues(t, 0, *response.SignatureCount)
		require.Len(t, response.Signatures, 1)
		assert.False(t, *response.Signatures[0].Signed)
	})
}

func TestPostCheckSignatures_MalformedDocument(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "POST", "/api/v1/documents/signatures", checkPayload([]byte("not a zip")), nil)
		assert.Equal(t, http.StatusUnprocessableEntity, res.Code)
	})
}

func TestPostCheckSignatures_MissingDocument(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "POST", "/api/v1/documents/signatures", map[string]interface{}{}, nil)
		assert.Equal(t, http.StatusBadRequest, res.Code)
	})
}

func TestPostCheckSignatures_EmptyDocument(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "POST", "/api/v1/documents/signatures", checkPayload([]byte{}), nil)
		test.RequireHTTPError(t, res, httperrors.ErrBadRequestZeroDocumentSize)
	})
}
