package signatures_test

import (
	"net/http"
	"testing"

	"github.com/kashguard/go-docsig/internal/api"
	"github.com/kashguard/go-docsig/internal/test"
	"github.com/kashguard/go-docsig/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostFirstUnsignedSigner(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		document := test.DocumentFixture{
			BodyXML: test.BodyWithSignatureLines(
				test.SignatureLineEntry{Signer: "Alice"},
				test.SignatureLineEntry{Signer: "Bob", Email: "bob@example.com"},
			),
			WithSignatureOrigin: true,
			SignaturePartsXML:   []string{test.SignaturePartWithIssuers("CN=Alice, O=Acme")},
		}.Build(t)

		res := test.PerformRequest(t, s, "POST", "/api/v1/documents/first-unsigned-signer", checkPayload(document), nil)
		require.Equal(t, http.StatusOK, res.Code)

		var response types.PostFirstUnsignedSignerResponse
		test.ParseResponseBody(t, res, &response)

		require.NotNil(t, response.Found)
		assert.True(t, *response.Found)
		require.NotNil(t, response.Signer)
		assert.Equal(t, "Bob", *response.Signer.SuggestedSigner)
		assert.Equal(t, "bob@example.com", *response.Signer.Email)
		assert.False(t, *response.Signer.Signed)
	})
}

func TestPostFirstUnsignedSigner_AllSigned(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		document := test.DocumentFixture{
			BodyXML:             test.BodyWithSignatureLines(test.SignatureLineEntry{Signer: "Jane Doe"}),
			WithSignatureOrigin: true,
			SignaturePartsXML:   []string{test.SignaturePartWithIssuers("CN=Jane Doe, O=Acme")},
		}.Build(t)

		res := test.PerformRequest(t, s, "POST", "/api/v1/documents/first-unsigned-signer", checkPayload(document), nil)
		require.Equal(t, http.StatusOK, res.Code)

		var response types.PostFirstUnsignedSignerResponse
		test.ParseResponseBody(t, res, &response)

		require.NotNil(t, response.Found)
		assert.False(t, *response.Found)
		assert.Nil(t, response.Signer)
	})
}

func TestPostFirstUnsignedSigner_NoSignatureLines(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		document := test.DocumentFixture{
			BodyXML: test.BodyWithSignatureLines(),
		}.Build(t)

		res := test.PerformRequest(t, s, "POST", "/api/v1/documents/first-unsigned-signer", checkPayload(document), nil)
		require.Equal(t, http.StatusOK, res.Code)

		var response types.PostFirstUnsignedSignerResponse
		test.ParseResponseBody(t, res, &response)

		assert.False(t, *response.Found)
		assert.Nil(t, response.Signer)
	})
}

func TestPostFirstUnsignedSigner_MalformedDocument(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "POST", "/api/v1/documents/first-unsigned-signer", checkPayload([]byte("junk bytes")), nil)
		assert.Equal(t, http.StatusUnprocessableEntity, res.Code)
	})
}
